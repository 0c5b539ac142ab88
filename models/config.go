package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "bias-bars.yaml"

// Config holds runtime configuration. Values come from an optional YAML
// file and are overridden by CLI flags.
type Config struct {
	ReviewsFile string        `yaml:"reviews_file"`
	DiseaseFile string        `yaml:"disease_file"`
	Ingest      IngestConfig  `yaml:"ingest"`
	Chart       ChartConfig   `yaml:"chart"`
	Logging     LoggingConfig `yaml:"logging"`
	MetricsFile string        `yaml:"metrics_file,omitempty"`
}

// IngestConfig controls how review text is turned into word keys.
type IngestConfig struct {
	FoldCase      bool `yaml:"fold_case"`
	SkipStopwords bool `yaml:"skip_stopwords"`
}

// ChartConfig is the canvas size used by the plot command.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		ReviewsFile: "data/full-data.txt",
		DiseaseFile: "data/disease1.txt",
		Chart: ChartConfig{
			Width:  1000,
			Height: 600,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// If required is false, a missing file yields the defaults.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: config %s", ErrMissingFile, path)
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings that would make the chart geometry degenerate.
func (c Config) Validate() error {
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Chart.Width, c.Chart.Height)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	return nil
}
