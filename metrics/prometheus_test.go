package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busworks/busbar/core"
	"github.com/busworks/busbar/metrics"
)

// gather flattens a registry into "name,label=value,..." -> sample value.
func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "," + lp.GetName() + "=" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				got[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				got[key] = m.GetGauge().GetValue()
			}
		}
	}
	return got
}

func TestPrometheus_CollectsBusActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	coll, err := metrics.NewPrometheus(reg)
	require.NoError(t, err)

	b := core.New(core.WithName("orders"), core.WithCollector(coll))
	off := b.On("x", func(any) {})
	b.Emit("x", nil)
	b.Emit("missing", nil)
	off()

	got := gather(t, reg)
	assert.Equal(t, 1.0, got["busbar_events_dispatched_total,bus=orders,handled=true"])
	assert.Equal(t, 1.0, got["busbar_events_dispatched_total,bus=orders,handled=false"])
	assert.Equal(t, 1.0, got["busbar_listeners_added_total,bus=orders,event=x"])
	assert.Equal(t, 1.0, got["busbar_listeners_removed_total,bus=orders,event=x"])
	assert.Equal(t, 0.0, got["busbar_listeners,bus=orders,event=x"])
}

func TestPrometheus_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewPrometheus(reg)
	require.NoError(t, err)

	_, err = metrics.NewPrometheus(reg)
	require.Error(t, err)
}
