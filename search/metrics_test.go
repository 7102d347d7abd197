package search

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorExposesStats(t *testing.T) {
	s, err := New(Options{Pattern: instantPattern, Threads: 1})
	require.NoError(t, err)

	_, err = s.Run(context.Background(), nil)
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewCollector(s.Stats())))

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, fam := range families {
		require.Len(t, fam.GetMetric(), 1)
		m := fam.GetMetric()[0]
		switch fam.GetName() {
		case "vanityssh_attempts_total", "vanityssh_matches_total":
			values[fam.GetName()] = m.GetCounter().GetValue()
		case "vanityssh_keys_per_second":
			values[fam.GetName()] = m.GetGauge().GetValue()
		}
	}

	assert.Equal(t, float64(s.Stats().Attempts()), values["vanityssh_attempts_total"])
	assert.GreaterOrEqual(t, values["vanityssh_matches_total"], float64(1))
	assert.Contains(t, values, "vanityssh_keys_per_second")
}
