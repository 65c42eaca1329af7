package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration loaded from YAML, then overridden by
// environment variables.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Data    DataConfig    `yaml:"data"`
	Merge   MergeConfig   `yaml:"merge"`
	Display DisplayConfig `yaml:"display"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
	// SeqURL enables the Seq sink when set (e.g. "http://localhost:5341").
	SeqURL string `yaml:"seq_url"`
}

// DataConfig points at the YAML data file that seeds the tables.
type DataConfig struct {
	File string `yaml:"file"`
}

// MergeConfig selects the two customer tables and the columns to merge.
type MergeConfig struct {
	Name     string `yaml:"name"`
	TableA   string `yaml:"table_a"`
	TableB   string `yaml:"table_b"`
	PrefixA  string `yaml:"prefix_a"`
	PrefixB  string `yaml:"prefix_b"`
	ColumnsA []int  `yaml:"columns_a"`
	ColumnsB []int  `yaml:"columns_b"`
}

// DisplayConfig controls how tables are rendered to the console.
type DisplayConfig struct {
	Style string `yaml:"style"`
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Data: DataConfig{
			File: "./databases/sample.yaml",
		},
		Merge: MergeConfig{
			Name:     "customers",
			TableA:   "customer_profile",
			TableB:   "customer_transactions",
			PrefixA:  "CustomerProfile_",
			PrefixB:  "CustomerTransactions_",
			ColumnsA: []int{0, 1, 2, 3, 4},
			ColumnsB: []int{0, 1, 2, 3, 4},
		},
		Display: DisplayConfig{
			Style: "light",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MINITABLES_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MINITABLES_SEQ_URL"); v != "" {
		cfg.Logging.SeqURL = v
	}
	if v := os.Getenv("MINITABLES_DATA_FILE"); v != "" {
		cfg.Data.File = v
	}
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}

	if c.Data.File == "" {
		return fmt.Errorf("data.file is required")
	}

	if c.Merge.TableA == "" || c.Merge.TableB == "" {
		return fmt.Errorf("merge.table_a and merge.table_b are required")
	}

	return nil
}
