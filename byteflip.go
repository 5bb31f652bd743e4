package byteflip

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/byteflip/pkg/domain"
	"github.com/aretw0/byteflip/pkg/scanner"
)

// Version is the release of the byteflip module.
var Version = "0.1.0"

// Flip copies r to w, flipping byte literals inside tagged regions.
func Flip(r io.Reader, w io.Writer, opts ...scanner.Option) (scanner.Stats, error) {
	return scanner.New(opts...).Scan(r, w)
}

// FlipFile flips input into output, creating or truncating output.
// Output must not be the input file. Both files are closed on every return path.
func FlipFile(input, output string, opts ...scanner.Option) (stats scanner.Stats, err error) {
	in, err := os.Open(input)
	if err != nil {
		return stats, fmt.Errorf("%w %s: %w", domain.ErrOpenInput, input, err)
	}
	defer in.Close()

	if err := checkDistinct(in, output); err != nil {
		return stats, err
	}

	out, err := os.Create(output)
	if err != nil {
		return stats, fmt.Errorf("%w %s: %w", domain.ErrOpenOutput, output, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return Flip(in, out, opts...)
}

// checkDistinct refuses an output path that resolves to the open input,
// which os.Create would truncate before it is read.
func checkDistinct(in *os.File, output string) error {
	outInfo, err := os.Stat(output)
	if err != nil {
		// A missing output cannot be the input; other errors surface from os.Create.
		return nil
	}
	inInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("%w %s: %w", domain.ErrOpenInput, in.Name(), err)
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w %s: %w", domain.ErrOpenOutput, output, domain.ErrSameFile)
	}
	return nil
}
