package selector

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all prometheus metrics for the selector
type Metrics struct {
	// Proposal outcomes
	Proposals *prometheus.CounterVec
	Excluded  *prometheus.CounterVec

	// Selection performance
	ProposeDuration *prometheus.HistogramVec
	PoolSize        *prometheus.HistogramVec
	WinnerPenalty   prometheus.Histogram

	// Team composition
	TeamExperience *prometheus.GaugeVec
	RolesAssigned  *prometheus.CounterVec

	// lowercased category -> label
	categories map[string]string
}

// NewMetrics creates and registers all selector metrics. Only the listed
// categories get their own label value; requests for any other category
// are counted as "other".
func NewMetrics(reg prometheus.Registerer, categories ...string) *Metrics {
	m := &Metrics{
		categories: make(map[string]string, len(categories)),
		Proposals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selector_proposals_total",
				Help: "Total number of team proposals by outcome",
			},
			[]string{"category", "outcome"},
		),

		Excluded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selector_exclusions_total",
				Help: "Total number of roster members excluded from a pool",
			},
			[]string{"reason"},
		),

		ProposeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "selector_propose_duration_seconds",
				Help:    "Time spent building a proposal in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"category"},
		),

		PoolSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "selector_pool_size",
				Help:    "Number of eligible candidates per proposal",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
			[]string{"category"},
		),

		// penalties of the drawn candidates; high values mean the
		// roster keeps pairing the same people
		WinnerPenalty: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "selector_winner_penalty",
				Help:    "Collaboration penalty of each drawn candidate",
				Buckets: []float64{0, 3, 6, 9, 12, 18, 30},
			},
		),

		TeamExperience: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "selector_team_avg_experience",
				Help: "Average experience of the last proposed team",
			},
			[]string{"category"},
		),

		RolesAssigned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selector_roles_assigned_total",
				Help: "Total number of team slots filled by role",
			},
			[]string{"role"},
		),
	}

	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		m.categories[strings.ToLower(c)] = c
	}

	reg.MustRegister(
		m.Proposals,
		m.Excluded,
		m.ProposeDuration,
		m.PoolSize,
		m.WinnerPenalty,
		m.TeamExperience,
		m.RolesAssigned,
	)

	return m
}

// categoryLabel bounds the category label to the configured set
func (m *Metrics) categoryLabel(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "unknown"
	}
	if label, ok := m.categories[strings.ToLower(category)]; ok {
		return label
	}
	return "other"
}

// TrackProposal records the outcome of one proposal
func (m *Metrics) TrackProposal(p *Proposal, duration float64) {
	category := m.categoryLabel(p.Request.Category)

	m.Proposals.WithLabelValues(category, string(p.Outcome)).Inc()
	m.ProposeDuration.WithLabelValues(category).Observe(duration)
	m.PoolSize.WithLabelValues(category).Observe(float64(p.PoolSize))

	for _, ex := range p.Excluded {
		m.Excluded.WithLabelValues(string(ex.Reason)).Inc()
	}

	for _, r := range p.Rounds {
		for _, w := range r.Weights {
			if w.ID == r.Winner {
				m.WinnerPenalty.Observe(float64(w.Penalty))
				break
			}
		}
	}

	for _, tm := range p.Team {
		m.RolesAssigned.WithLabelValues(tm.Role.String()).Inc()
	}

	if p.HasBalance {
		m.TeamExperience.WithLabelValues(category).Set(p.Balance.AvgExperience)
	}
}
