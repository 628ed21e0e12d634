package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidConfig is returned for a config file holding a value no command
// can use.
var ErrInvalidConfig = errors.New("invalid config")

// Source names accepted in Config.Source.
const (
	SourceSQLite = "sqlite"
	SourceJSON   = "json"
)

// Config holds application configuration.
type Config struct {
	ItemHeight int    `json:"itemHeight"` // rows per item in the terminal
	Tolerance  *int   `json:"tolerance"`  // nil = default; 0 is a valid value
	SeedCount  int    `json:"seedCount"`
	Source     string `json:"source"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	tolerance := 2
	return Config{
		ItemHeight: 5,
		Tolerance:  &tolerance,
		SeedCount:  5000,
		Source:     SourceSQLite,
	}
}

// ToleranceOrDefault returns the configured tolerance.
func (c Config) ToleranceOrDefault() int {
	if c.Tolerance == nil {
		return *DefaultConfig().Tolerance
	}
	return *c.Tolerance
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields. Present but invalid values are left
	// alone so list construction can reject them.
	defaults := DefaultConfig()
	if _, ok := rawKeys(data)["itemHeight"]; !ok {
		config.ItemHeight = defaults.ItemHeight
	}
	if config.Tolerance == nil {
		config.Tolerance = defaults.Tolerance
	}
	if config.SeedCount == 0 {
		config.SeedCount = defaults.SeedCount
	}
	if config.SeedCount < 0 {
		return nil, fmt.Errorf("%w: seedCount must be a positive number, got %d", ErrInvalidConfig, config.SeedCount)
	}
	if config.Source == "" {
		config.Source = defaults.Source
	}

	return &config, nil
}

func rawKeys(data []byte) map[string]json.RawMessage {
	var raw map[string]json.RawMessage
	_ = json.Unmarshal(data, &raw)
	return raw
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/vscroll/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
