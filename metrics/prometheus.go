// Package metrics provides a Prometheus-backed core.Collector.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/busworks/busbar/core"
)

// Prometheus implements core.Collector on top of a Prometheus registry.
// Attach it to a bus with core.WithCollector.
type Prometheus struct {
	dispatched *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	listeners  *prometheus.GaugeVec
	added      *prometheus.CounterVec
	removed    *prometheus.CounterVec
}

// NewPrometheus creates the busbar collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer to use the default registry. Event
// names label the listener metrics, so keep the event namespace bounded
// when scraping.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "busbar",
			Name:      "events_dispatched_total",
			Help:      "Events dispatched, partitioned by bus and outcome.",
		}, []string{"bus", "handled"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "busbar",
			Name:      "dispatch_duration_seconds",
			Help:      "Synchronous dispatch time, including delegates.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"bus"}),
		listeners: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "busbar",
			Name:      "listeners",
			Help:      "Current listener count per bus and event.",
		}, []string{"bus", "event"}),
		added: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "busbar",
			Name:      "listeners_added_total",
			Help:      "Listener registrations per bus and event.",
		}, []string{"bus", "event"}),
		removed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "busbar",
			Name:      "listeners_removed_total",
			Help:      "Listener removals per bus and event.",
		}, []string{"bus", "event"}),
	}

	for _, c := range []prometheus.Collector{p.dispatched, p.duration, p.listeners, p.added, p.removed} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("busbar/metrics: register: %w", err)
		}
	}
	return p, nil
}

func (p *Prometheus) EventDispatched(bus, _ string, handled bool, d time.Duration) {
	p.dispatched.WithLabelValues(bus, strconv.FormatBool(handled)).Inc()
	p.duration.WithLabelValues(bus).Observe(d.Seconds())
}

func (p *Prometheus) ListenerAdded(bus, event string, count int) {
	p.added.WithLabelValues(bus, event).Inc()
	p.listeners.WithLabelValues(bus, event).Set(float64(count))
}

func (p *Prometheus) ListenerRemoved(bus, event string, count int) {
	p.removed.WithLabelValues(bus, event).Inc()
	p.listeners.WithLabelValues(bus, event).Set(float64(count))
}

var _ core.Collector = (*Prometheus)(nil)
