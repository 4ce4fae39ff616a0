package selector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.ntppool.org/common/database"

	"go.aira.dev/staffing/airadb"
)

// ErrNotSaved is returned when a proposal can't be recorded as asked
var ErrNotSaved = errors.New("proposal not saved")

// NewDBSource returns a Source reading from the aira database
func NewDBSource(db airadb.Querier) Source {
	return &dbSource{db: db}
}

type dbSource struct {
	db airadb.Querier
}

func (s *dbSource) GetRoster(ctx context.Context) ([]Member, error) {
	rows, err := s.db.GetRoster(ctx)
	if err != nil {
		return nil, err
	}
	roster := make([]Member, 0, len(rows))
	for _, r := range rows {
		roster = append(roster, Member{
			ID:         r.RaID,
			Name:       r.Name,
			JoinPeriod: r.SemesterJoined.String,
		})
	}
	return roster, nil
}

func (s *dbSource) GetAssignmentHistory(ctx context.Context) ([]Assignment, error) {
	rows, err := s.db.GetAssignmentHistory(ctx)
	if err != nil {
		return nil, err
	}
	history := make([]Assignment, 0, len(rows))
	for _, r := range rows {
		a := Assignment{
			MemberID:  r.RaID,
			ProgramID: r.ProgramID,
			Role:      r.RaRole.String,
			Category:  r.Category.String,
		}
		// undated programs never count toward a monthly cap
		if r.ProgramDate.Valid {
			a.ProgramDate = r.ProgramDate.Time
		}
		history = append(history, a)
	}
	return history, nil
}

func (s *dbSource) GetCollaborationCounts(ctx context.Context) ([]CollabCount, error) {
	rows, err := s.db.GetCollaborationCounts(ctx)
	if err != nil {
		return nil, err
	}
	counts := make([]CollabCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, CollabCount{
			MemberA: r.Ra1,
			MemberB: r.Ra2,
			Shared:  int(r.SharedCount),
		})
	}
	return counts, nil
}

// ProgramInfo describes the program a proposal is saved as
type ProgramInfo struct {
	Name string
	Date time.Time
}

// SaveProposal records the proposed program and its team in one
// transaction and returns the new program ID.
func SaveProposal(ctx context.Context, db airadb.QuerierTx, p *Proposal, info ProgramInfo) (int64, error) {
	if len(p.Team) == 0 {
		return 0, fmt.Errorf("%w: the team is empty", ErrNotSaved)
	}
	if strings.TrimSpace(info.Name) == "" {
		return 0, fmt.Errorf("%w: a program name is required", ErrNotSaved)
	}
	if info.Date.IsZero() {
		return 0, fmt.Errorf("%w: a program date is required", ErrNotSaved)
	}
	if info.Date.Month() != p.Request.Month {
		return 0, fmt.Errorf("%w: program date %s is not in %s",
			ErrNotSaved, info.Date.Format(time.DateOnly), p.Request.Month)
	}

	var programID int64

	err := database.WithTransaction(ctx, db, func(ctx context.Context, db airadb.QuerierTx) error {
		res, err := db.InsertProgram(ctx, airadb.InsertProgramParams{
			ProgramName:  info.Name,
			ProgramDate:  sql.NullTime{Time: info.Date, Valid: true},
			Category:     sql.NullString{String: p.Request.Category, Valid: p.Request.Category != ""},
			Scale:        sql.NullInt32{Int32: int32(p.Request.Scale), Valid: true},
			SemesterHeld: sql.NullString{String: SemesterLabel(info.Date), Valid: true},
		})
		if err != nil {
			return fmt.Errorf("insert program: %w", err)
		}

		programID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("program id: %w", err)
		}

		for _, tm := range p.Team {
			_, err := db.InsertAssignment(ctx, airadb.InsertAssignmentParams{
				RaID:      tm.ID,
				ProgramID: programID,
				RaRole:    sql.NullString{String: strings.ToLower(tm.Role.String()), Valid: true},
			})
			if err != nil {
				return fmt.Errorf("insert assignment for %d: %w", tm.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return programID, nil
}

// SemesterLabel returns the semester a date falls in, "S25" for January
// through July and "F25" for August through December.
func SemesterLabel(t time.Time) string {
	season := "S"
	if t.Month() >= time.August {
		season = "F"
	}
	return fmt.Sprintf("%s%02d", season, t.Year()%100)
}
