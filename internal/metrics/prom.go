package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/linprimer/internal/anim"
)

// Collectors are the process-wide prometheus series.
type Collectors struct {
	Ticks         *prometheus.CounterVec
	Requests      *prometheus.CounterVec
	RenderSeconds prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewCollectors registers the series on reg. A nil reg gets a private
// registry, which keeps tests isolated.
func NewCollectors(reg *prometheus.Registry) *Collectors {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	c := &Collectors{
		Ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linprimer_ticks_total",
				Help: "Animation ticks advanced, by animation.",
			},
			[]string{"animation"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linprimer_http_requests_total",
				Help: "HTTP requests served, by route and status code.",
			},
			[]string{"route", "code"},
		),
		RenderSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "linprimer_frame_render_seconds",
				Help:    "Time spent rendering one frame.",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 8),
			},
		),
		gatherer: reg,
	}
	reg.MustRegister(c.Ticks, c.Requests, c.RenderSeconds)
	return c
}

// Observer counts host ticks per animation.
func (c *Collectors) Observer() anim.Observer {
	return anim.ObserverFunc(func(name string, tick int) {
		c.Ticks.WithLabelValues(name).Inc()
	})
}

// TimeRender records how long fn takes.
func (c *Collectors) TimeRender(fn func()) {
	start := time.Now()
	fn()
	c.RenderSeconds.Observe(time.Since(start).Seconds())
}

func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
