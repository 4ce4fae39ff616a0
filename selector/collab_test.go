package selector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollabIndexSymmetric(t *testing.T) {
	idx := NewCollabIndex([]CollabCount{
		{MemberA: 1, MemberB: 2, Shared: 3},
		{MemberA: 5, MemberB: 4, Shared: 1},
		{MemberA: 7, MemberB: 7, Shared: 9}, // self pair
		{MemberA: 8, MemberB: 9, Shared: 0},
	})

	assert.Equal(t, 3, idx.Shared(1, 2))
	assert.Equal(t, 3, idx.Shared(2, 1))
	assert.Equal(t, 1, idx.Shared(4, 5))
	assert.Equal(t, 1, idx.Shared(5, 4))
	assert.Equal(t, 0, idx.Shared(1, 3), "unknown pair")
	assert.Equal(t, 0, idx.Shared(7, 7))
	assert.Equal(t, 2, idx.Len())
}

func TestCollabIndexDuplicatePairs(t *testing.T) {
	idx := NewCollabIndex([]CollabCount{
		{MemberA: 1, MemberB: 2, Shared: 2},
		{MemberA: 2, MemberB: 1, Shared: 2},
		{MemberA: 1, MemberB: 2, Shared: 1},
	})

	assert.Equal(t, 2, idx.Shared(1, 2))
	assert.Equal(t, 1, idx.Len())
}

func TestCollabIndexNil(t *testing.T) {
	var idx *CollabIndex
	assert.Equal(t, 0, idx.Shared(1, 2))
	assert.Equal(t, 0, idx.Len())
}

func TestCollabIndexFromHistory(t *testing.T) {
	d := date(2025, time.February, 1)
	history := []Assignment{
		{MemberID: 1, ProgramID: 100, ProgramDate: d},
		{MemberID: 2, ProgramID: 100, ProgramDate: d},
		{MemberID: 3, ProgramID: 100, ProgramDate: d},
		{MemberID: 1, ProgramID: 101, ProgramDate: d},
		{MemberID: 2, ProgramID: 101, ProgramDate: d},
		{MemberID: 2, ProgramID: 101, ProgramDate: d}, // listed twice
		{MemberID: 4, ProgramID: 102, ProgramDate: d},
	}

	idx := CollabIndexFromHistory(history)

	assert.Equal(t, 2, idx.Shared(1, 2))
	assert.Equal(t, 2, idx.Shared(2, 1))
	assert.Equal(t, 1, idx.Shared(3, 1))
	assert.Equal(t, 1, idx.Shared(2, 3))
	assert.Equal(t, 0, idx.Shared(4, 1))
	assert.Equal(t, 3, idx.Len())
}
