package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI configuration
type Config struct {
	Output OutputConfig `toml:"output"`
}

// OutputConfig controls how results and diagnostics are printed
type OutputConfig struct {
	Format    string `toml:"format"`
	Precision int    `toml:"precision"`
	Color     bool   `toml:"color"`
}

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    FormatText,
			Precision: -1,
			Color:     true,
		},
	}
}

// Load loads configuration from a TOML file. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve finds and loads the configuration. It tries, in order, the
// explicit path, $COREPARSE_CONFIG, ./coreparse.toml and
// $HOME/.config/coreparse/config.toml, and falls back to DefaultConfig.
//
// The second result names where the configuration came from.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = os.Getenv("COREPARSE_CONFIG")
	}
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./coreparse.toml",
			filepath.Join(os.Getenv("HOME"), ".config/coreparse/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return DefaultConfig(), "defaults", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatYAML, c.Output.Format)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision must be -1 or more, got %d", c.Output.Precision)
	}
	return nil
}
