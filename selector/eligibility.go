package selector

import (
	"fmt"
	"time"
)

// BuildPool returns the candidates eligible to staff a program in month,
// and the roster members that were left out. Every candidate starts with
// the same base weight regardless of seniority.
//
// The monthly cap counts history rows by month of year only, so programs
// from earlier years in the same month count too.
func (s Settings) BuildPool(roster []Member, history []Assignment, month time.Month) ([]Candidate, []Exclusion) {
	monthCounts := countInMonth(history, month)

	pool := make([]Candidate, 0, len(roster))
	var excluded []Exclusion

	for _, m := range roster {
		exp := s.Tiers.Experience(m.JoinPeriod)

		if ex := s.checkEligibility(m, exp, monthCounts[m.ID], month); ex.Reason != exclusionNone {
			excluded = append(excluded, ex)
			continue
		}

		pool = append(pool, Candidate{
			ID:         m.ID,
			Name:       m.Name,
			Experience: exp,
			BaseWeight: s.BaseWeight,
			Weight:     s.BaseWeight,
		})
	}

	return pool, excluded
}

// checkEligibility applies the exclusion rules to one roster member
func (s Settings) checkEligibility(m Member, exp float64, inMonth int, month time.Month) Exclusion {
	ex := Exclusion{MemberID: m.ID, Name: m.Name}

	if exp == reserveExperience {
		ex.Reason = exclusionReserve
		ex.Details = fmt.Sprintf("join period %q is a reserve tier", m.JoinPeriod)
		return ex
	}

	if inMonth >= s.MonthlyCap {
		ex.Reason = exclusionMonthlyCap
		ex.Details = fmt.Sprintf("%d programs in %s (cap %d)", inMonth, month, s.MonthlyCap)
		return ex
	}

	return ex
}

// countInMonth counts history rows per member for a month of any year
func countInMonth(history []Assignment, month time.Month) map[int64]int {
	counts := make(map[int64]int)
	for _, a := range history {
		if a.ProgramDate.IsZero() {
			continue
		}
		if a.ProgramDate.Month() == month {
			counts[a.MemberID]++
		}
	}
	return counts
}
