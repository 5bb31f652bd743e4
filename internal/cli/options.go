package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/byteflip/internal/config"
	"github.com/aretw0/byteflip/internal/logging"
)

// RunOptions contains the flag values of the run and check commands.
// Empty strings mean "not set on the command line".
type RunOptions struct {
	Dir             string
	ConfigPath      string
	Input           string
	Output          string
	MetricsTextfile string
	Debug           bool
	Quiet           bool
	Strict          bool
}

// resolveConfig loads the config file and layers the flags over it.
func resolveConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	required := path != ""
	if !required {
		path = filepath.Join(opts.Dir, config.DefaultFileName)
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	if opts.Input != "" {
		cfg.Input = opts.Input
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.MetricsTextfile != "" {
		cfg.MetricsTextfile = opts.MetricsTextfile
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	cfg.Quiet = cfg.Quiet || opts.Quiet

	return cfg.Resolve(opts.Dir), nil
}

// createLogger configures the application logger.
// Without a level it is silent, keeping stderr clean for the summary and errors.
func createLogger(level string) (*slog.Logger, error) {
	if level == "" {
		return logging.NewNop(), nil
	}
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return logging.New(l), nil
}
