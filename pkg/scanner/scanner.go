package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/byteflip/pkg/domain"
	"github.com/aretw0/byteflip/pkg/flipper"
)

// Scanner copies lines from an input to an output, flipping byte literals
// inside tagged regions.
type Scanner struct {
	logger   *slog.Logger
	hooks    domain.ScanHooks
	recorder Recorder
}

// New creates a Scanner. Without options it logs nothing and records nothing.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Scan performs a single pass over r, writing every line to w.
// The returned Stats are valid even when an error is returned, covering the
// lines processed up to the failure.
func (s *Scanner) Scan(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats
	state := domain.StateInactive

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			stats.FinalState = state
			return stats, fmt.Errorf("failed to read line %d: %w", stats.Lines+1, readErr)
		}
		if line == "" {
			break
		}
		stats.Lines++

		t := Step(state, line)
		out := line
		if t.Transform {
			var n int
			out, n = flipper.FlipLineCount(line)
			stats.LinesTransformed++
			stats.LiteralsFlipped += n
			if s.recorder != nil {
				s.recorder.LiteralsFlipped(n)
			}
		}

		if _, err := bw.WriteString(out); err != nil {
			stats.FinalState = state
			return stats, fmt.Errorf("failed to write line %d: %w", stats.Lines, err)
		}
		if s.recorder != nil {
			s.recorder.LineWritten(t.Transform)
		}

		if t.Closed {
			stats.RegionsClosed++
			s.emitLeave(stats.Lines, stats.RegionsOpened)
		}
		if t.Opened {
			stats.RegionsOpened++
			s.emitEnter(stats.Lines, stats.RegionsOpened)
		}
		state = t.Next

		if readErr != nil {
			break
		}
	}

	stats.FinalState = state
	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	if stats.Unterminated() {
		s.logger.Warn("Region not closed before end of input",
			"region", stats.RegionsOpened, "lines", stats.Lines)
	}
	s.logger.Debug("Scan complete",
		"lines", stats.Lines,
		"transformed", stats.LinesTransformed,
		"literals", stats.LiteralsFlipped,
		"regions", stats.RegionsOpened)

	return stats, nil
}

func (s *Scanner) emitEnter(line, region int) {
	if s.recorder != nil {
		s.recorder.RegionOpened()
	}
	if s.hooks.OnRegionEnter != nil {
		s.hooks.OnRegionEnter(&domain.RegionEvent{Type: domain.EventRegionEnter, Line: line, Region: region})
	}
}

func (s *Scanner) emitLeave(line, region int) {
	if s.recorder != nil {
		s.recorder.RegionClosed()
	}
	if s.hooks.OnRegionLeave != nil {
		s.hooks.OnRegionLeave(&domain.RegionEvent{Type: domain.EventRegionLeave, Line: line, Region: region})
	}
}
