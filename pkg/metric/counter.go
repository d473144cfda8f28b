package metric

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type Counter interface {
	Inc()
	Add(v float64)
	Close() bool
	Value() float64
}

type counter struct {
	c   prom.Counter
	val atomic.Float64
}

type CounterOpts Opts

func NewCounter(opts CounterOpts) Counter {
	c := prom.NewCounter(prom.CounterOpts{
		Namespace:   opts.Namespace,
		Subsystem:   opts.Subsystem,
		Name:        opts.Name,
		Help:        opts.Help,
		ConstLabels: prom.Labels(opts.ConstLabels),
	})
	prom.MustRegister(c)
	return &counter{
		c: c,
	}
}

func (c *counter) Inc() {
	c.c.Inc()
	c.val.Add(1)
}

func (c *counter) Add(v float64) {
	c.c.Add(v)
	c.val.Add(v)
}

// Value mirrors the counter so callers can read it back without scraping.
func (c *counter) Value() float64 {
	return c.val.Load()
}

func (c *counter) Close() bool {
	return prom.Unregister(c.c)
}
