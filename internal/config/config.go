package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds viewer and output settings.
type Config struct {
	// Precision is the number of decimals used when printing distances.
	Precision int `yaml:"precision"`

	Viewer ViewerConfig `yaml:"viewer"`
}

// ViewerConfig configures the terminal viewer.
type ViewerConfig struct {
	ZoomStep    float64 `yaml:"zoom_step"`
	AccentColor string  `yaml:"accent_color"`
	DimColor    string  `yaml:"dim_color"`
}

func Default() *Config {
	return &Config{
		Precision: 6,
		Viewer: ViewerConfig{
			ZoomStep:    1.2,
			AccentColor: "#7C3AED",
			DimColor:    "#6B7280",
		},
	}
}

// Load reads a YAML config from path, applying defaults for absent fields.
// A missing file returns the defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("config: precision out of range: %d", c.Precision)
	}
	if c.Viewer.ZoomStep <= 1 {
		return fmt.Errorf("config: zoom_step must be greater than 1, got %g", c.Viewer.ZoomStep)
	}
	return nil
}
