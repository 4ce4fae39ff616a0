package selector

// Rand is the random source for the weighted draw; *math/rand/v2.Rand
// satisfies it. Inject a seeded generator for reproducible proposals.
type Rand interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// collabPenalty is the number of tickets a candidate loses for the
// members already on the team
func collabPenalty(candidateID int64, team []Candidate, idx *CollabIndex, perShared int) int {
	penalty := 0
	for _, member := range team {
		penalty += idx.Shared(candidateID, member.ID) * perShared
	}
	return penalty
}

// workingWeight applies a penalty to a base weight, keeping the floor
func workingWeight(base, penalty int) int {
	return max(minWorkingWeight, base-penalty)
}

// drawIndex picks an index with probability proportional to its weight
// by walking the cumulative weights (roulette wheel). Weights must be
// positive.
func drawIndex(weights []int, rng Rand) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}

	ticket := rng.IntN(total)
	for i, w := range weights {
		if ticket < w {
			return i
		}
		ticket -= w
	}

	// not reached for positive weights
	return len(weights) - 1
}
