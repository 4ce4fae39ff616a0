package selector

// BalanceStatus classifies a team's mean experience
type BalanceStatus string

const (
	StatusBalanced   BalanceStatus = "Balanced"
	StatusUnbalanced BalanceStatus = "Unbalanced"
)

// BalanceReport summarizes the experience mix of a team
type BalanceReport struct {
	AvgExperience float64       `json:"avg_experience"`
	Status        BalanceStatus `json:"status"`
}

// Balance reports the mean experience of members. The second return value
// is false for an empty team.
func (s Settings) Balance(members []TeamMember) (BalanceReport, bool) {
	if len(members) == 0 {
		return BalanceReport{}, false
	}

	sum := 0.0
	for _, m := range members {
		sum += m.Experience
	}
	avg := sum / float64(len(members))

	status := StatusUnbalanced
	if avg >= s.BalancedMin && avg <= s.BalancedMax {
		status = StatusBalanced
	}

	return BalanceReport{AvgExperience: avg, Status: status}, true
}
