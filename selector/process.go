package selector

// SelectTeam drafts up to req.Total() members from pool, one slot at a
// time. Before each draw every remaining candidate's working weight is
// recomputed from its collaboration history with the members picked so
// far. The team is shorter than requested only when the pool runs out.
//
// The pool slice is not modified. The returned rounds record the weights
// used for each draw.
func (s Settings) SelectTeam(pool []Candidate, req Requirement, idx *CollabIndex, rng Rand) ([]Candidate, []Round) {
	remaining := make([]Candidate, len(pool))
	copy(remaining, pool)

	team := make([]Candidate, 0, req.Total())
	rounds := make([]Round, 0, req.Total())

	weights := make([]int, len(remaining))

	for slot := 0; slot < req.Total(); slot++ {
		if len(remaining) == 0 {
			break
		}

		round := Round{
			Slot:    slot + 1,
			Weights: make([]WeightedCandidate, 0, len(remaining)),
		}

		weights = weights[:len(remaining)]
		for i := range remaining {
			c := &remaining[i]
			penalty := collabPenalty(c.ID, team, idx, s.PenaltyPerShared)
			c.Weight = workingWeight(c.BaseWeight, penalty)
			weights[i] = c.Weight

			round.Weights = append(round.Weights, WeightedCandidate{
				ID:      c.ID,
				Penalty: penalty,
				Weight:  c.Weight,
			})
		}

		winner := drawIndex(weights, rng)
		if winner < 0 {
			break
		}

		round.Winner = remaining[winner].ID
		rounds = append(rounds, round)

		team = append(team, remaining[winner])
		remaining = append(remaining[:winner], remaining[winner+1:]...)
	}

	return team, rounds
}
