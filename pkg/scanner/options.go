package scanner

import (
	"log/slog"

	"github.com/aretw0/byteflip/pkg/domain"
)

// Recorder receives scan activity, typically a *metrics.Collector.
type Recorder interface {
	LineWritten(transformed bool)
	LiteralsFlipped(n int)
	RegionOpened()
	RegionClosed()
}

// Option defines a functional option for configuring the Scanner.
type Option func(*Scanner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithHooks registers region boundary callbacks.
func WithHooks(hooks domain.ScanHooks) Option {
	return func(s *Scanner) {
		s.hooks = hooks
	}
}

// WithRecorder configures a metrics sink.
func WithRecorder(r Recorder) Option {
	return func(s *Scanner) {
		s.recorder = r
	}
}
