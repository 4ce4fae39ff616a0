package selector

// pairKey is an unordered pair of member IDs, smallest first
type pairKey struct {
	lo, hi int64
}

func newPairKey(a, b int64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// CollabIndex answers how many past programs two members staffed together.
// Lookups are symmetric: Shared(a, b) == Shared(b, a).
type CollabIndex struct {
	counts map[pairKey]int
}

// NewCollabIndex builds an index from pair counts. A pair may be listed in
// both orders; both rows describe the same programs, so the larger count
// is kept instead of adding them up.
func NewCollabIndex(rows []CollabCount) *CollabIndex {
	ci := &CollabIndex{counts: make(map[pairKey]int, len(rows))}
	for _, r := range rows {
		if r.MemberA == r.MemberB || r.Shared <= 0 {
			continue
		}
		key := newPairKey(r.MemberA, r.MemberB)
		if r.Shared > ci.counts[key] {
			ci.counts[key] = r.Shared
		}
	}
	return ci
}

// CollabIndexFromHistory derives the index directly from assignment rows,
// counting each program once per pair.
func CollabIndexFromHistory(history []Assignment) *CollabIndex {
	programs := make(map[int64][]int64)
	seen := make(map[[2]int64]bool)
	for _, a := range history {
		k := [2]int64{a.ProgramID, a.MemberID}
		if seen[k] {
			continue
		}
		seen[k] = true
		programs[a.ProgramID] = append(programs[a.ProgramID], a.MemberID)
	}

	ci := &CollabIndex{counts: make(map[pairKey]int)}
	for _, members := range programs {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				ci.counts[newPairKey(members[i], members[j])]++
			}
		}
	}
	return ci
}

// Shared returns the number of programs a and b staffed together
func (ci *CollabIndex) Shared(a, b int64) int {
	if ci == nil || a == b {
		return 0
	}
	return ci.counts[newPairKey(a, b)]
}

// Len is the number of pairs with at least one shared program
func (ci *CollabIndex) Len() int {
	if ci == nil {
		return 0
	}
	return len(ci.counts)
}
