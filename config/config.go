package config

import (
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"reflect"

	"github.com/activecm/leakhunt/util"
	"github.com/creasty/defaults"
)

//Version is filled at compile time with the git version of leakhunt
var Version = "v0.0.0+dev"

//ExactVersion is filled at compile time with the git commit of leakhunt
var ExactVersion = "undefined"

type (
	//Config holds the configuration for the running system
	Config struct {
		R RunningCfg
		S StaticCfg
		T TableCfg
	}
)

//defaultConfigPaths lists the config files tried when none is given
func defaultConfigPaths() []string {
	var paths []string
	if usr, err := user.Current(); err == nil {
		paths = append(paths, path.Join(usr.HomeDir, ".leakhunt", "config.yaml"))
	}
	return append(paths, "/etc/leakhunt/config.yaml")
}

//LoadConfig initializes a Config struct from the first config file found,
//falling back on the built in defaults when there is none.
//An explicitly requested file must exist.
func LoadConfig(cfgPath string) (*Config, error) {
	var cfgFile []byte
	var err error

	if cfgPath != "" {
		cfgFile, err = ioutil.ReadFile(cfgPath)
		if err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range defaultConfigPaths() {
			if exists, _ := util.Exists(candidate); !exists || util.IsDir(candidate) {
				continue
			}
			cfgFile, err = ioutil.ReadFile(candidate)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	return loadConfigBytes(cfgFile)
}

//loadConfigBytes applies defaults, then the yaml document, then derives
//the running config
func loadConfigBytes(cfgFile []byte) (*Config, error) {
	config := &Config{}

	if err := defaults.Set(&config.T); err != nil {
		return nil, err
	}

	if err := defaults.Set(&config.S); err != nil {
		return nil, err
	}

	if err := parseStaticConfig(cfgFile, &config.S); err != nil {
		return nil, err
	}

	if err := initRunningConfig(&config.S, &config.R); err != nil {
		return nil, err
	}

	return config, nil
}

// expandConfig expands environment variables in config strings
func expandConfig(reflected reflect.Value) {
	for i := 0; i < reflected.NumField(); i++ {
		f := reflected.Field(i)
		// process sub configs
		if f.Kind() == reflect.Struct {
			expandConfig(f)
		} else if f.Kind() == reflect.String {
			f.SetString(os.ExpandEnv(f.String()))
		} else if f.Kind() == reflect.Slice && f.Type().Elem().Kind() == reflect.String {
			strs := f.Interface().([]string)
			for i, str := range strs {
				strs[i] = os.ExpandEnv(str)
			}
			f.Set(reflect.ValueOf(strs))
		}
	}
}
