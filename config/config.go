package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete botwatch configuration
type Config struct {
	Log     LogConfig     `json:"log" yaml:"log"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Web     WebConfig     `json:"web" yaml:"web"`
}

// LogConfig locates the bot log to analyze
type LogConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ReportConfig contains presentation parameters
type ReportConfig struct {
	// Markets maps perp market indexes to display names, e.g. 30: DRIFT.
	Markets map[int]string `json:"markets" yaml:"markets"`
	// Recent is how many trailing transactions the report shows.
	Recent int `json:"recent" yaml:"recent"`
}

// JournalConfig contains run-journaling parameters
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// WebConfig contains dashboard server parameters
type WebConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Log.Path == "" {
		return fmt.Errorf("log.path is required")
	}
	if c.Report.Recent <= 0 {
		return fmt.Errorf("report.recent must be positive")
	}
	for idx, name := range c.Report.Markets {
		if idx < 0 {
			return fmt.Errorf("report.markets: negative market index %d", idx)
		}
		if name == "" {
			return fmt.Errorf("report.markets: empty name for market index %d", idx)
		}
	}
	if c.Journal.Enabled && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required when journal is enabled")
	}
	if c.Web.Addr == "" {
		return fmt.Errorf("web.addr is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Path: "./bot.log",
		},
		Report: ReportConfig{
			Markets: map[int]string{
				30: "DRIFT",
				28: "KMNO",
			},
			Recent: 10,
		},
		Journal: JournalConfig{
			Enabled: false,
			DBPath:  "./botwatch.sqlite",
		},
		Web: WebConfig{
			Addr: ":8080",
		},
	}
}
