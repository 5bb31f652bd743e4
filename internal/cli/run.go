package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/byteflip"
	"github.com/aretw0/byteflip/internal/config"
	"github.com/aretw0/byteflip/internal/presentation/tui"
	"github.com/aretw0/byteflip/pkg/domain"
	"github.com/aretw0/byteflip/pkg/metrics"
	"github.com/aretw0/byteflip/pkg/scanner"
	"github.com/muesli/termenv"
)

// ErrUnterminated is returned by Check in strict mode when a region is left open.
var ErrUnterminated = errors.New("region not closed before end of input")

// Execute handles the 'run' command: it flips the configured input into the configured output.
func Execute(opts RunOptions, stdout io.Writer) (scanner.Stats, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return scanner.Stats{}, err
	}
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return scanner.Stats{}, err
	}

	stats, err := flipFile(cfg, logger)
	if err != nil {
		return stats, err
	}

	if !cfg.Quiet {
		tui.PrintSummary(stdout, profileOf(stdout), cfg.Input, cfg.Output, stats)
	}
	return stats, nil
}

// Check handles the 'check' command: it scans the input and discards the output.
func Check(opts RunOptions, stdout io.Writer) (scanner.Stats, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return scanner.Stats{}, err
	}
	logger, err := createLogger(cfg.LogLevel)
	if err != nil {
		return scanner.Stats{}, err
	}

	in, err := os.Open(cfg.Input)
	if err != nil {
		return scanner.Stats{}, fmt.Errorf("%w %s: %w", domain.ErrOpenInput, cfg.Input, err)
	}
	defer in.Close()

	stats, err := scanner.New(scannerOptions(logger, nil)...).Scan(in, io.Discard)
	if err != nil {
		return stats, err
	}

	if !cfg.Quiet {
		tui.PrintSummary(stdout, profileOf(stdout), cfg.Input, "(dry run)", stats)
	}
	if opts.Strict && stats.Unterminated() {
		return stats, ErrUnterminated
	}
	return stats, nil
}

// flipFile runs a single pass and exports metrics when requested.
func flipFile(cfg config.Config, logger *slog.Logger) (scanner.Stats, error) {
	var collector *metrics.Collector
	if cfg.MetricsTextfile != "" {
		collector = metrics.NewCollector()
	}

	logger.Info("Flipping", "input", cfg.Input, "output", cfg.Output)
	stats, err := byteflip.FlipFile(cfg.Input, cfg.Output, scannerOptions(logger, collector)...)
	if err != nil {
		return stats, err
	}

	if collector != nil {
		if err := collector.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return stats, fmt.Errorf("%s: %w", cfg.MetricsTextfile, err)
		}
	}
	return stats, nil
}

func scannerOptions(logger *slog.Logger, collector *metrics.Collector) []scanner.Option {
	opts := []scanner.Option{
		scanner.WithLogger(logger),
		scanner.WithHooks(createDebugHooks(logger)),
	}
	if collector != nil {
		opts = append(opts, scanner.WithRecorder(collector))
	}
	return opts
}

func profileOf(w io.Writer) termenv.Profile {
	f, _ := w.(*os.File)
	return tui.ProfileFor(f)
}
