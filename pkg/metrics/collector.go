package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "byteflip"

// Line dispositions used as the "disposition" label value.
const (
	DispositionTransformed = "transformed"
	DispositionPassthrough = "passthrough"
)

// Collector records scan activity into a private Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	lines    *prometheus.CounterVec
	literals prometheus.Counter
	opened   prometheus.Counter
	closed   prometheus.Counter
}

// NewCollector creates a Collector with all byteflip metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lines_total",
				Help:      "Total number of lines written, by disposition",
			},
			[]string{"disposition"},
		),
		literals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "literals_flipped_total",
			Help:      "Total number of hex byte literals bit-reversed",
		}),
		opened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_opened_total",
			Help:      "Total number of tagged regions opened",
		}),
		closed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "regions_closed_total",
			Help:      "Total number of tagged regions closed by an end tag",
		}),
	}
	c.registry.MustRegister(c.lines, c.literals, c.opened, c.closed)
	return c
}

// LineWritten counts one output line.
func (c *Collector) LineWritten(transformed bool) {
	if transformed {
		c.lines.WithLabelValues(DispositionTransformed).Inc()
		return
	}
	c.lines.WithLabelValues(DispositionPassthrough).Inc()
}

// LiteralsFlipped adds n reversed literals.
func (c *Collector) LiteralsFlipped(n int) {
	if n > 0 {
		c.literals.Add(float64(n))
	}
}

// RegionOpened counts a start tag that activated a region.
func (c *Collector) RegionOpened() { c.opened.Inc() }

// RegionClosed counts an end tag that closed a region.
func (c *Collector) RegionClosed() { c.closed.Inc() }

// Registry returns the underlying registry, e.g. for promhttp or tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the current metric values to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
