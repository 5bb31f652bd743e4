/*
Package scanner implements the region state machine that drives the byte flipper.

The scanner reads its input line by line, keeping line terminators intact. Lines
between a start-tag line and an end-tag line are passed through flipper.FlipLine;
every other line, including the tag lines themselves, is copied verbatim. Every
input line is written exactly once and in order.

The transition rules live in Step, a pure function over (RegionState, line), so
the tag-boundary cases can be tested without any I/O.

# Usage

	s := scanner.New(scanner.WithLogger(logger))
	stats, err := s.Scan(in, out)
	if err != nil {
		return err
	}
	if stats.Unterminated() {
		logger.Warn("region not closed")
	}
*/
package scanner
