package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/byteflip/pkg/scanner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ProfileFor returns the color profile to use when writing to f.
// Anything that is not a terminal gets plain ASCII.
func ProfileFor(f *os.File) termenv.Profile {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// PrintSummary writes a short report of a completed scan.
func PrintSummary(w io.Writer, p termenv.Profile, input, output string, stats scanner.Stats) {
	label := func(s string) termenv.Style {
		return p.String(s).Foreground(p.Color("#a78bfa")).Bold()
	}

	fmt.Fprintf(w, "%s %s -> %s\n", label("byteflip"), input, output)
	fmt.Fprintf(w, "  %s %d (%d transformed)\n", label("lines:"), stats.Lines, stats.LinesTransformed)
	fmt.Fprintf(w, "  %s %d\n", label("literals:"), stats.LiteralsFlipped)
	fmt.Fprintf(w, "  %s %d opened, %d closed\n", label("regions:"), stats.RegionsOpened, stats.RegionsClosed)

	if stats.Unterminated() {
		warn := p.String("warning:").Foreground(p.Color("#fb7185")).Bold()
		fmt.Fprintf(w, "  %s region %d has no closing tag; flipped through end of input\n", warn, stats.RegionsOpened)
	}
}
