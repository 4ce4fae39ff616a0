package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	s := DefaultSettings()

	member := func(exp float64) TeamMember {
		return TeamMember{Candidate: Candidate{Experience: exp}, Role: RoleSupport}
	}

	tests := []struct {
		name   string
		team   []TeamMember
		avg    float64
		status BalanceStatus
	}{
		{"all senior", []TeamMember{member(3), member(3)}, 3, StatusUnbalanced},
		{"mixed", []TeamMember{member(3), member(1), member(2)}, 2, StatusBalanced},
		{"lower bound", []TeamMember{member(1), member(2)}, 1.5, StatusBalanced},
		{"upper bound", []TeamMember{member(3), member(2)}, 2.5, StatusBalanced},
		{"all new", []TeamMember{member(1)}, 1, StatusUnbalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := s.Balance(tt.team)
			assert.True(t, ok)
			assert.InDelta(t, tt.avg, r.AvgExperience, 1e-9)
			assert.Equal(t, tt.status, r.Status)
		})
	}

	_, ok := s.Balance(nil)
	assert.False(t, ok, "empty team has no balance")
}
