package cursorbuf

import (
	"bufio"
	"os"
	"path"
	"regexp"

	"github.com/mstoykov/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// rootPath stores path to the installation root
var rootPath string

// confPath stores path to cursorbuf.conf
var confPath string

// config stores the configuration as read from cursorbuf.conf and the environment
var config map[string]string

// fs is where the config file is read from
var fs = afero.NewOsFs()

// pat matches a valid key-value line
var pat = regexp.MustCompile("([A-Z0-9_]+)=(.*)")

// envConfig holds the environment variables understood by the package
type envConfig struct {
	Dir    string `envconfig:"CURSORBUF_DIR" default:"/"`
	Conf   string `envconfig:"CURSORBUF_CONF"`
	TmpDir string `envconfig:"CURSORBUF_TMP_DIR"`
}

// initConfig initializes the config from the process environment
func initConfig() error {
	return loadConfig(fs, os.LookupEnv)
}

// loadConfig resolves rootPath and confPath from the environment and fills config
// from the conf file. CURSORBUF_TMP_DIR from the environment wins over the file.
func loadConfig(fs afero.Fs, lookup func(string) (string, bool)) error {
	var env envConfig
	if err := envconfig.Process("", &env, lookup); err != nil {
		return errors.Wrap(err, "cannot process environment")
	}

	rootPath = env.Dir

	confPath = env.Conf
	if confPath == "" {
		confPath = path.Join(rootPath, "etc", "cursorbuf.conf")
	}

	config = make(map[string]string)
	defer func() {
		if env.TmpDir != "" {
			config["CURSORBUF_TMP_DIR"] = env.TmpDir
		}
	}()

	f, err := fs.Open(confPath)
	if err != nil {
		return errors.Wrapf(err, "cannot open %v", confPath)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			config[matches[1]] = matches[2]
		}
	}

	return errors.Wrapf(scanner.Err(), "cannot read %v", confPath)
}
