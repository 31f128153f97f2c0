package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the tokbridge configuration file
// (~/.config/tokbridge/config.yaml). Values act as defaults; explicit CLI
// flags always win.
type Config struct {
	TokenizerPath string `yaml:"tokenizer_path"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tokbridge", "config.yaml")
}

// LoadConfig reads the config file. Returns a zero Config if the file
// doesn't exist or can't be parsed.
func LoadConfig() Config {
	return loadConfigAt(configPath())
}

func loadConfigAt(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// applyConfig fills flag variables from the config file when the
// corresponding CLI flag was not explicitly set.
func applyConfig(c *cli.Command, cfg Config) {
	if cfg.TokenizerPath != "" && !c.IsSet("tokenizer") {
		tokenizerPath = cfg.TokenizerPath
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}
