package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the command line. A YAML file may pre-fill any field;
// flags the user actually set win over the file.
type Config struct {
	Pattern       string `yaml:"pattern"`
	Threads       int    `yaml:"threads"`
	Streaming     bool   `yaml:"streaming"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Comment       string `yaml:"comment"`
	Output        string `yaml:"output"`
	Mnemonic      bool   `yaml:"mnemonic"`
	Verbose       bool   `yaml:"verbose"`
	MetricsAddr   string `yaml:"metrics"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies over every field whose flag name appears in set.
func (c *Config) merge(flags Config, set map[string]bool) {
	if set["pattern"] {
		c.Pattern = flags.Pattern
	}
	if set["threads"] {
		c.Threads = flags.Threads
	}
	if set["streaming"] {
		c.Streaming = flags.Streaming
	}
	if set["case-sensitive"] {
		c.CaseSensitive = flags.CaseSensitive
	}
	if set["comment"] {
		c.Comment = flags.Comment
	}
	if set["output"] {
		c.Output = flags.Output
	}
	if set["mnemonic"] {
		c.Mnemonic = flags.Mnemonic
	}
	if set["verbose"] {
		c.Verbose = flags.Verbose
	}
	if set["metrics"] {
		c.MetricsAddr = flags.MetricsAddr
	}
}
