package selector

import (
	"cmp"
	"context"
	"slices"
)

// SimulationReport summarizes many proposals over the same data
type SimulationReport struct {
	Request     Request
	Requirement Requirement
	Seed        uint64
	Trials      int
	PoolSize    int
	Excluded    []Exclusion
	Outcomes    map[Outcome]int
	Balanced    int
	Members     []MemberFrequency
}

// MemberFrequency is how often a candidate was picked
type MemberFrequency struct {
	ID         int64
	Name       string
	Experience float64
	Picks      int
	Leads      int
}

// Simulate runs trials independent selections for req over snap with one
// generator stream. The pool only depends on the data, so it is built once.
func (sl *Selector) Simulate(ctx context.Context, snap *Snapshot, req Request, trials int, rng Rand) (*SimulationReport, error) {
	if trials < 1 {
		return nil, invalidInput("trials must be at least 1, got %d", trials)
	}

	requirement, err := sl.Requirement(req)
	if err != nil {
		return nil, err
	}

	pool, excluded := sl.settings.BuildPool(snap.Roster, snap.History, req.Month)

	report := &SimulationReport{
		Request:     req,
		Requirement: requirement,
		Trials:      trials,
		PoolSize:    len(pool),
		Excluded:    excluded,
		Outcomes:    make(map[Outcome]int),
	}

	freq := make(map[int64]*MemberFrequency, len(pool))
	for _, c := range pool {
		freq[c.ID] = &MemberFrequency{ID: c.ID, Name: c.Name, Experience: c.Experience}
	}

	for i := range trials {
		team, _ := sl.settings.SelectTeam(pool, requirement, snap.Collab, rng)
		members := AssignRoles(team, requirement)

		report.Outcomes[outcomeFor(len(team), requirement)]++

		if b, ok := sl.settings.Balance(members); ok && b.Status == StatusBalanced {
			report.Balanced++
		}

		ids := make([]int64, 0, len(members))
		for _, tm := range members {
			f := freq[tm.ID]
			f.Picks++
			if tm.Role == RoleLead {
				f.Leads++
			}
			ids = append(ids, tm.ID)
		}

		sl.log.DebugContext(ctx, "trial", "n", i+1, "team", ids)
	}

	for _, f := range freq {
		report.Members = append(report.Members, *f)
	}
	slices.SortFunc(report.Members, func(a, b MemberFrequency) int {
		if c := cmp.Compare(b.Picks, a.Picks); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	sl.log.InfoContext(ctx, "simulation completed",
		"trials", trials,
		"pool", len(pool),
		"balanced", report.Balanced)

	return report, nil
}

// PickRate is the share of trials the member was selected in
func (f MemberFrequency) PickRate(trials int) float64 {
	if trials == 0 {
		return 0
	}
	return float64(f.Picks) / float64(trials)
}
