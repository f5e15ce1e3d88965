package config

import (
	"io"
	"io/ioutil"
	"net"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	env "github.com/caarlos0/env/v11"
	"github.com/juju/errors"
)

const (
	DefaultListen    = "127.0.0.1:8080"
	DefaultCacheSize = 1024
)

type Config struct {
	Listen            string `toml:"listen" env:"CLIENTGEO_LISTEN"`
	RootDirectory     string `toml:"root_directory" env:"CLIENTGEO_ROOT_DIRECTORY"`
	DatabasePath      string `toml:"database_path" env:"GEOIP2_CITY_DATABASE_PATH"`
	CacheSize         int    `toml:"cache_size" env:"CLIENTGEO_CACHE_SIZE"`
	BasicAuthUser     string `toml:"basic_auth_user" env:"CLIENTGEO_BASIC_AUTH_USER"`
	BasicAuthPassword string `toml:"basic_auth_password" env:"CLIENTGEO_BASIC_AUTH_PASSWORD"`
}

// Parse reads TOML config from file. Environment variables take
// precedence over the values from the file.
func Parse(file io.Reader) (*Config, error) {
	conf := &Config{
		Listen:    DefaultListen,
		CacheSize: DefaultCacheSize,
	}

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err := env.Parse(conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse environment")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.DatabasePath == "" {
		return errors.NotValidf("empty database_path")
	}

	if _, _, err := net.SplitHostPort(conf.Listen); err != nil {
		return errors.Annotatef(err, "Incorrect host:port for listen %s", conf.Listen)
	}

	if conf.CacheSize < 0 {
		return errors.Errorf("Incorrect cache_size %d", conf.CacheSize)
	}

	if (conf.BasicAuthUser == "") != (conf.BasicAuthPassword == "") {
		return errors.Errorf("basic_auth_user and basic_auth_password should be set together")
	}

	if conf.RootDirectory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Annotate(err, "Cannot detect working directory")
		}
		conf.RootDirectory = wd
	}

	rootDir, err := filepath.Abs(conf.RootDirectory)
	if err != nil {
		return errors.Annotatef(err, "Incorrect root directory %s", conf.RootDirectory)
	}
	conf.RootDirectory = rootDir

	if stat, err := os.Stat(conf.RootDirectory); err != nil {
		return errors.Annotatef(err, "Incorrect root directory %s", conf.RootDirectory)
	} else if !stat.IsDir() {
		return errors.Errorf("Incorrect root directory %s", conf.RootDirectory)
	}

	return nil
}
