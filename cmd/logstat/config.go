package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const defaultConfigPath = "~/.logstat.toml"

// config holds the settings which may be given in a TOML file. Flags given on
// the command line take precedence.
type config struct {
	Top    *int   `toml:"top"`
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

// loadConfig reads the TOML file at path, after expanding a leading ~. A
// missing file is only an error if the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	var cfg config
	expanded, err := homedir.Expand(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "expanding config path %s", path)
	}
	if _, err := os.Stat(expanded); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "reading config")
	}
	if _, err := toml.DecodeFile(expanded, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", expanded)
	}
	return cfg, nil
}
