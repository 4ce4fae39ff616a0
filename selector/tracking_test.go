package selector

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.aira.dev/staffing/airadb"
)

type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return int64(r), nil }
func (r fakeResult) RowsAffected() (int64, error) { return 1, nil }

// fakeDB records inserts; it doesn't nest transactions
type fakeDB struct {
	roster  []airadb.GetRosterRow
	history []airadb.GetAssignmentHistoryRow
	counts  []airadb.GetCollaborationCountsRow

	programs    []airadb.InsertProgramParams
	assignments []airadb.InsertAssignmentParams
	failAssign  error

	committed  bool
	rolledBack bool
}

func (f *fakeDB) GetRoster(ctx context.Context) ([]airadb.GetRosterRow, error) {
	return f.roster, nil
}

func (f *fakeDB) GetAssignmentHistory(ctx context.Context) ([]airadb.GetAssignmentHistoryRow, error) {
	return f.history, nil
}

func (f *fakeDB) GetCollaborationCounts(ctx context.Context) ([]airadb.GetCollaborationCountsRow, error) {
	return f.counts, nil
}

func (f *fakeDB) GetProgram(ctx context.Context, programID int64) (airadb.Program, error) {
	i := int(programID) - 101
	if i < 0 || i >= len(f.programs) {
		return airadb.Program{}, sql.ErrNoRows
	}
	arg := f.programs[i]
	return airadb.Program{
		ProgramID:    programID,
		ProgramName:  arg.ProgramName,
		ProgramDate:  arg.ProgramDate,
		Category:     arg.Category,
		Scale:        arg.Scale,
		SemesterHeld: arg.SemesterHeld,
	}, nil
}

func (f *fakeDB) InsertProgram(ctx context.Context, arg airadb.InsertProgramParams) (sql.Result, error) {
	f.programs = append(f.programs, arg)
	return fakeResult(100 + len(f.programs)), nil
}

func (f *fakeDB) InsertAssignment(ctx context.Context, arg airadb.InsertAssignmentParams) (sql.Result, error) {
	if f.failAssign != nil {
		return nil, f.failAssign
	}
	f.assignments = append(f.assignments, arg)
	return fakeResult(len(f.assignments)), nil
}

func (f *fakeDB) Begin(ctx context.Context) (airadb.QuerierTx, error) { return f, nil }

func (f *fakeDB) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeDB) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

func TestDBSource(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{
		roster: []airadb.GetRosterRow{
			{RaID: 1, Name: "Alice", SemesterJoined: sql.NullString{String: "S23", Valid: true}},
			{RaID: 2, Name: "Bob"},
		},
		history: []airadb.GetAssignmentHistoryRow{
			{
				RaID: 1, ProgramID: 7,
				RaRole:      sql.NullString{String: "lead", Valid: true},
				ProgramDate: sql.NullTime{Time: date(2025, time.March, 1), Valid: true},
				Category:    sql.NullString{String: "Social", Valid: true},
			},
			{RaID: 2, ProgramID: 8},
		},
		counts: []airadb.GetCollaborationCountsRow{{Ra1: 1, Ra2: 2, SharedCount: 3}},
	}

	src := NewDBSource(db)

	roster, err := src.GetRoster(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Member{
		{ID: 1, Name: "Alice", JoinPeriod: "S23"},
		{ID: 2, Name: "Bob"},
	}, roster)

	history, err := src.GetAssignmentHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, Assignment{
		MemberID: 1, ProgramID: 7, Role: "lead",
		ProgramDate: date(2025, time.March, 1), Category: "Social",
	}, history[0])
	assert.True(t, history[1].ProgramDate.IsZero())

	counts, err := src.GetCollaborationCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []CollabCount{{MemberA: 1, MemberB: 2, Shared: 3}}, counts)
}

func savedProposal() *Proposal {
	team := AssignRoles(candidates(3, 1), Requirement{Lead: 1, Support: 1})
	return &Proposal{
		Request: Request{Category: "Social", Scale: 1, Month: time.September, Duo: true},
		Team:    team,
		Outcome: OutcomeFull,
	}
}

func TestSaveProposal(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{}

	id, err := SaveProposal(ctx, db, savedProposal(), ProgramInfo{
		Name: "Game Night",
		Date: date(2025, time.September, 12),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
	assert.True(t, db.committed)

	require.Len(t, db.programs, 1)
	prog := db.programs[0]
	assert.Equal(t, "Game Night", prog.ProgramName)
	assert.Equal(t, "Social", prog.Category.String)
	assert.Equal(t, int32(1), prog.Scale.Int32)
	assert.Equal(t, "F25", prog.SemesterHeld.String)

	require.Len(t, db.assignments, 2)
	assert.Equal(t, int64(3), db.assignments[0].RaID)
	assert.Equal(t, "lead", db.assignments[0].RaRole.String)
	assert.Equal(t, int64(101), db.assignments[0].ProgramID)
	assert.Equal(t, "support", db.assignments[1].RaRole.String)
}

func TestSaveProposalRollback(t *testing.T) {
	db := &fakeDB{failAssign: errors.New("duplicate entry")}

	_, err := SaveProposal(context.Background(), db, savedProposal(), ProgramInfo{
		Name: "Game Night",
		Date: date(2025, time.September, 12),
	})
	require.Error(t, err)
	assert.True(t, db.rolledBack)
	assert.False(t, db.committed)
}

func TestSaveProposalRejected(t *testing.T) {
	d := date(2025, time.September, 12)

	tests := []struct {
		name string
		p    *Proposal
		info ProgramInfo
	}{
		{"empty team", &Proposal{Request: Request{Month: time.September}}, ProgramInfo{Name: "x", Date: d}},
		{"no name", savedProposal(), ProgramInfo{Date: d}},
		{"no date", savedProposal(), ProgramInfo{Name: "x"}},
		{"other month", savedProposal(), ProgramInfo{Name: "x", Date: d.AddDate(0, 1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{}
			_, err := SaveProposal(context.Background(), db, tt.p, tt.info)
			assert.ErrorIs(t, err, ErrNotSaved)
			assert.Empty(t, db.programs)
		})
	}
}

func TestSemesterLabel(t *testing.T) {
	assert.Equal(t, "S25", SemesterLabel(date(2025, time.January, 10)))
	assert.Equal(t, "S25", SemesterLabel(date(2025, time.July, 31)))
	assert.Equal(t, "F25", SemesterLabel(date(2025, time.August, 1)))
	assert.Equal(t, "F09", SemesterLabel(date(2009, time.December, 1)))
}
