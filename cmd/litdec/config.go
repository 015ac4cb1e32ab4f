package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	DefaultType string `toml:"default_type"`
	JSON        bool   `toml:"json"`
}

type appConfig struct {
	DefaultType string
	JSON        bool
}

func defaultAppConfig() appConfig {
	return appConfig{
		DefaultType: "auto",
	}
}

// loadConfig reads defaults from the TOML file at path, if one was given.
// Only keys the file defines override the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	if path == "" {
		return cfg, nil
	}

	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)

	if err != nil {
		return appConfig{}, fmt.Errorf("load litdec config: %w", err)
	}

	if meta.IsDefined("default_type") {
		name := strings.TrimSpace(raw.DefaultType)

		if _, ok := targets[name]; !ok && name != "auto" {
			return appConfig{}, fmt.Errorf("load litdec config: unknown default_type %q", name)
		}
		cfg.DefaultType = name
	}

	if meta.IsDefined("json") {
		cfg.JSON = raw.JSON
	}
	return cfg, nil
}
