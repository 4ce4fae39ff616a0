package selector

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInitialization(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "Social")

	sl := NewSelector(testLogger(), DefaultSettings(), m)

	_, err := sl.Propose(context.Background(), testSource(),
		Request{Category: "Social", Scale: 2, Month: time.May}, zeroRand())
	require.NoError(t, err)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range metricFamilies {
		names[mf.GetName()] = true
	}
	for _, name := range []string{
		"selector_proposals_total",
		"selector_exclusions_total",
		"selector_propose_duration_seconds",
		"selector_pool_size",
		"selector_winner_penalty",
		"selector_team_avg_experience",
		"selector_roles_assigned_total",
	} {
		assert.True(t, names[name], "%s not found in registry", name)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Proposals.WithLabelValues("Social", "full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Excluded.WithLabelValues("reserve")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RolesAssigned.WithLabelValues("LEAD")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RolesAssigned.WithLabelValues("SUPPORT")))
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.TeamExperience.WithLabelValues("Social")), 1e-9)
}

func TestMetricsEmptyCategory(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.TrackProposal(&Proposal{Outcome: OutcomeEmpty}, 0.001)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Proposals.WithLabelValues("unknown", "empty")))
}

func TestMetricsCategoryLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "Social", " Wellness ", "")

	for _, category := range []string{"Social", "social", "Wellness", "x-1", "x-2", "x-3"} {
		m.TrackProposal(&Proposal{Request: Request{Category: category}, Outcome: OutcomeFull}, 0.001)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Proposals.WithLabelValues("Social", "full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Proposals.WithLabelValues("Wellness", "full")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Proposals.WithLabelValues("other", "full")))

	// every category outside the list shares one series
	assert.Equal(t, 3, testutil.CollectAndCount(m.Proposals))
	assert.Equal(t, 3, testutil.CollectAndCount(m.PoolSize))
}
