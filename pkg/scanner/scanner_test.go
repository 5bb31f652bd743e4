package scanner

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aretw0/byteflip/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, input string, opts ...Option) (string, Stats) {
	t.Helper()
	var out bytes.Buffer
	stats, err := New(opts...).Scan(strings.NewReader(input), &out)
	require.NoError(t, err)
	return out.String(), stats
}

func TestScan_RegionBoundaries(t *testing.T) {
	input := "A 0x01\n" +
		"// byteflip-begin 0x01\n" +
		"B 0x01\n" +
		"C 0x0F\n" +
		"// byteflip-end 0x01\n" +
		"D 0x01\n"
	want := "A 0x01\n" +
		"// byteflip-begin 0x01\n" +
		"B 0x80\n" +
		"C 0xf0\n" +
		"// byteflip-end 0x01\n" +
		"D 0x01\n"

	out, stats := scan(t, input)
	assert.Equal(t, want, out)
	assert.Equal(t, Stats{
		Lines:            6,
		LinesTransformed: 2,
		LiteralsFlipped:  2,
		RegionsOpened:    1,
		RegionsClosed:    1,
		FinalState:       domain.StateInactive,
	}, stats)
	assert.False(t, stats.Unterminated())
}

func TestScan_Unterminated(t *testing.T) {
	out, stats := scan(t, "byteflip-begin\n0x01\n0x02\n")
	assert.Equal(t, "byteflip-begin\n0x80\n0x40\n", out)
	assert.True(t, stats.Unterminated())
	assert.Equal(t, 2, stats.LinesTransformed)
	assert.Zero(t, stats.RegionsClosed)
}

func TestScan_NoRegion(t *testing.T) {
	input := "0x01\n0x02\r\n0xFF"
	out, stats := scan(t, input)
	assert.Equal(t, input, out)
	assert.Zero(t, stats.LinesTransformed)
	assert.Equal(t, 3, stats.Lines)
}

func TestScan_PreservesTerminators(t *testing.T) {
	input := "byteflip-begin\r\n0x01\r\n\r\n0x02"
	out, stats := scan(t, input)
	assert.Equal(t, "byteflip-begin\r\n0x80\r\n\r\n0x40", out)
	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 3, stats.LinesTransformed)
}

func TestScan_LineCountPreserved(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 250; i++ {
		switch i % 50 {
		case 10:
			b.WriteString("/* byteflip-begin */\n")
		case 40:
			b.WriteString("/* byteflip-end */\n")
		default:
			b.WriteString("  0x3C, 0x42,\n")
		}
	}
	out, stats := scan(t, b.String())
	assert.Equal(t, strings.Count(b.String(), "\n"), strings.Count(out, "\n"))
	assert.Equal(t, 250, stats.Lines)
	assert.Equal(t, 5, stats.RegionsOpened)
	assert.Equal(t, 5, stats.RegionsClosed)
	assert.Equal(t, 5*29, stats.LinesTransformed)
}

func TestScan_Empty(t *testing.T) {
	out, stats := scan(t, "")
	assert.Empty(t, out)
	assert.Equal(t, Stats{}, stats)
}

func TestScan_ReopenOnSameLine(t *testing.T) {
	input := "byteflip-begin\n0x01\nbyteflip-end byteflip-begin 0x01\n0x01\nbyteflip-end\n0x01\n"
	want := "byteflip-begin\n0x80\nbyteflip-end byteflip-begin 0x01\n0x80\nbyteflip-end\n0x01\n"
	out, stats := scan(t, input)
	assert.Equal(t, want, out)
	assert.Equal(t, 2, stats.RegionsOpened)
	assert.Equal(t, 2, stats.RegionsClosed)
}

func TestScan_Hooks(t *testing.T) {
	var events []domain.RegionEvent
	hooks := domain.ScanHooks{
		OnRegionEnter: func(e *domain.RegionEvent) { events = append(events, *e) },
		OnRegionLeave: func(e *domain.RegionEvent) { events = append(events, *e) },
	}
	scan(t, "x\nbyteflip-begin\n0x01\nbyteflip-end\n", WithHooks(hooks))

	require.Len(t, events, 2)
	assert.Equal(t, domain.RegionEvent{Type: domain.EventRegionEnter, Line: 2, Region: 1}, events[0])
	assert.Equal(t, domain.RegionEvent{Type: domain.EventRegionLeave, Line: 4, Region: 1}, events[1])
}

type fakeRecorder struct {
	transformed, passthrough, literals, opened, closed int
}

func (f *fakeRecorder) LineWritten(transformed bool) {
	if transformed {
		f.transformed++
	} else {
		f.passthrough++
	}
}
func (f *fakeRecorder) LiteralsFlipped(n int) { f.literals += n }
func (f *fakeRecorder) RegionOpened()         { f.opened++ }
func (f *fakeRecorder) RegionClosed()         { f.closed++ }

func TestScan_Recorder(t *testing.T) {
	rec := &fakeRecorder{}
	scan(t, "byteflip-begin\n0x01, 0x02\n0xGG\nbyteflip-end\nend\n", WithRecorder(rec))

	assert.Equal(t, &fakeRecorder{transformed: 2, passthrough: 3, literals: 2, opened: 1, closed: 1}, rec)
}

func TestScan_ReadError(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer
	_, err := New().Scan(iotest.ErrReader(boom), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestScan_WriteError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := New().Scan(strings.NewReader("0x01\n"), failingWriter{err: boom})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestNew_NilLogger(t *testing.T) {
	s := New(WithLogger(nil))
	require.NotNil(t, s.logger)
	_, err := s.Scan(strings.NewReader("byteflip-begin\n"), &bytes.Buffer{})
	require.NoError(t, err)
}

func TestScan_LogsSummaryOnlyAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scan(t, "byteflip-begin\n0x01\nbyteflip-end\n", WithLogger(logger))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "one record expected, got:\n%s", out)
	assert.Contains(t, out, "Scan complete")
}
