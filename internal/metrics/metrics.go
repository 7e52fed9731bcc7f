// Package metrics records Prometheus metrics for rendered pages.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pthm/govuk"
)

// Metrics holds the render collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	// RendersTotal counts renders. Labels: result (ok, error)
	RendersTotal *prometheus.CounterVec
	// FailuresTotal counts failed renders. Labels: kind (see govuk.ErrorKind)
	FailuresTotal *prometheus.CounterVec
	// RenderDuration observes how long a render took.
	RenderDuration prometheus.Histogram
}

// New registers the collectors with reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		RendersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "govuk",
				Subsystem: "render",
				Name:      "total",
				Help:      "Total number of page renders",
			},
			[]string{"result"},
		),
		FailuresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "govuk",
				Subsystem: "render",
				Name:      "failures_total",
				Help:      "Total number of failed renders by error kind",
			},
			[]string{"kind"},
		),
		RenderDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "govuk",
				Subsystem: "render",
				Name:      "duration_seconds",
				Help:      "Duration of page renders in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// ObserveRender records one render and its outcome.
func (m *Metrics) ObserveRender(err error, d time.Duration) {
	m.RenderDuration.Observe(d.Seconds())
	if err == nil {
		m.RendersTotal.WithLabelValues("ok").Inc()
		return
	}
	m.RendersTotal.WithLabelValues("error").Inc()
	kind := govuk.ErrorKind(err)
	if kind == "" {
		kind = "other"
	}
	m.FailuresTotal.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
