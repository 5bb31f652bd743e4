package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/byteflip/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no --config is given.
const DefaultFileName = ".byteflip.yaml"

// Config holds the settings the CLI accepts from a config file.
// Tag markers are deliberately absent: they are fixed.
type Config struct {
	Input           string `mapstructure:"input"`
	Output          string `mapstructure:"output"`
	LogLevel        string `mapstructure:"log_level"`
	MetricsTextfile string `mapstructure:"metrics_textfile"`
	Quiet           bool   `mapstructure:"quiet"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  domain.DefaultInputFile,
		Output: domain.DefaultOutputFile,
	}
}

// Load reads a YAML config file on top of Default().
// A missing file is only an error when required is true (an explicit --config).
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if len(raw) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// Resolve makes relative file paths relative to dir.
func (c Config) Resolve(dir string) Config {
	c.Input = resolvePath(dir, c.Input)
	c.Output = resolvePath(dir, c.Output)
	if c.MetricsTextfile != "" {
		c.MetricsTextfile = resolvePath(dir, c.MetricsTextfile)
	}
	return c
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}
