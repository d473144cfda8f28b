package metric

import (
	prom "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

type Gauge interface {
	Set(v float64)
	Inc()
	Add(v float64)
	Close() bool
	Value() float64
}

type gauge struct {
	g   prom.Gauge
	val atomic.Float64
}

type GaugeOpts Opts

func NewGauge(o GaugeOpts) Gauge {
	g := prom.NewGauge(prom.GaugeOpts{
		Namespace:   o.Namespace,
		Subsystem:   o.Subsystem,
		Name:        o.Name,
		Help:        o.Help,
		ConstLabels: prom.Labels(o.ConstLabels),
	})
	prom.MustRegister(g)
	return &gauge{
		g: g,
	}
}

func (g *gauge) Set(v float64) {
	g.g.Set(v)
	g.val.Store(v)
}

func (g *gauge) Inc() {
	g.g.Inc()
	g.val.Add(1)
}

func (g *gauge) Add(v float64) {
	g.g.Add(v)
	g.val.Add(v)
}

func (g *gauge) Value() float64 {
	return g.val.Load()
}

func (g *gauge) Close() bool {
	return prom.Unregister(g.g)
}
