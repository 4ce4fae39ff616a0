package selector

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"go.ntppool.org/common/logger"
	"go.ntppool.org/common/tracing"
)

// Source provides the roster and history a proposal is made from
type Source interface {
	GetRoster(ctx context.Context) ([]Member, error)
	GetAssignmentHistory(ctx context.Context) ([]Assignment, error)
	GetCollaborationCounts(ctx context.Context) ([]CollabCount, error)
}

// Request describes the program to staff
type Request struct {
	Category string     `json:"category"`
	Scale    int        `json:"scale"`
	Month    time.Month `json:"month"`
	Duo      bool       `json:"duo,omitempty"`
}

// Outcome classifies a proposal
type Outcome string

const (
	OutcomeFull  Outcome = "full"  // every slot filled
	OutcomeShort Outcome = "short" // pool ran out before the quota
	OutcomeEmpty Outcome = "empty" // no eligible candidates
)

// Proposal is one proposed team
type Proposal struct {
	ID          ulid.ULID     `json:"id"`
	Request     Request       `json:"request"`
	Requirement Requirement   `json:"requirement"`
	PoolSize    int           `json:"pool_size"`
	Excluded    []Exclusion   `json:"excluded"`
	Team        []TeamMember  `json:"team"`
	Rounds      []Round       `json:"rounds,omitempty"`
	Balance     BalanceReport `json:"balance"`
	HasBalance  bool          `json:"has_balance"`
	Outcome     Outcome       `json:"outcome"`

	names map[int64]string
}

// Snapshot is the data loaded from a Source for one or more proposals
type Snapshot struct {
	Roster  []Member
	History []Assignment
	Collab  *CollabIndex
}

// LoadSnapshot reads the roster, the assignment history and the
// collaboration counts from src. When src has no counts the index is
// derived from the history instead.
func LoadSnapshot(ctx context.Context, src Source) (*Snapshot, error) {
	ctx, span := tracing.Start(ctx, "selector.load")
	defer span.End()

	roster, err := src.GetRoster(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	history, err := src.GetAssignmentHistory(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to load assignment history: %w", err)
	}

	counts, err := src.GetCollaborationCounts(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to load collaboration counts: %w", err)
	}

	collab := NewCollabIndex(counts)
	if len(counts) == 0 && len(history) > 0 {
		logger.FromContext(ctx).DebugContext(ctx,
			"no collaboration counts, deriving them from assignment history",
			"history", len(history))
		collab = CollabIndexFromHistory(history)
	}

	span.SetAttributes(
		attribute.Int("roster", len(roster)),
		attribute.Int("history", len(history)),
		attribute.Int("pairs", collab.Len()),
	)

	return &Snapshot{
		Roster:  roster,
		History: history,
		Collab:  collab,
	}, nil
}

// Requirement validates req and returns the staffing requirement for it
func (sl *Selector) Requirement(req Request) (Requirement, error) {
	if err := checkMonth(req.Month); err != nil {
		return Requirement{}, err
	}
	if req.Duo && req.Scale != 1 {
		sl.log.Debug("duo flag only applies to scale 1 programs", "scale", req.Scale)
	}
	return sl.settings.Scales.Requirement(req.Scale, req.Duo)
}

// Propose loads data from src and proposes a team for req. Invalid
// requests fail with ErrInvalidInput before anything is loaded.
func (sl *Selector) Propose(ctx context.Context, src Source, req Request, rng Rand) (*Proposal, error) {
	if _, err := sl.Requirement(req); err != nil {
		return nil, err
	}

	snap, err := LoadSnapshot(ctx, src)
	if err != nil {
		return nil, err
	}

	return sl.ProposeFrom(ctx, snap, req, rng)
}

// ProposeFrom proposes a team for req from already loaded data
func (sl *Selector) ProposeFrom(ctx context.Context, snap *Snapshot, req Request, rng Rand) (*Proposal, error) {
	ctx, span := tracing.Start(ctx, "selector.propose")
	defer span.End()

	start := time.Now()

	requirement, err := sl.Requirement(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	id, err := makeULID(start)
	if err != nil {
		return nil, fmt.Errorf("could not make proposal ID: %w", err)
	}

	log := sl.log.With("proposalID", id.String(), "category", req.Category)

	// Step 1: Build the eligible pool
	pool, excluded := sl.settings.BuildPool(snap.Roster, snap.History, req.Month)
	for _, ex := range excluded {
		log.DebugContext(ctx, "member excluded",
			"memberID", ex.MemberID,
			"reason", ex.Reason,
			"details", ex.Details)
	}

	// Step 2: Draft the team
	team, rounds := sl.settings.SelectTeam(pool, requirement, snap.Collab, rng)
	for _, r := range rounds {
		log.DebugContext(ctx, "draw",
			"slot", r.Slot,
			"candidates", len(r.Weights),
			"winner", r.Winner)
	}

	// Step 3: Roles and balance
	members := AssignRoles(team, requirement)
	balance, hasBalance := sl.settings.Balance(members)

	p := &Proposal{
		ID:          id,
		Request:     req,
		Requirement: requirement,
		PoolSize:    len(pool),
		Excluded:    excluded,
		Team:        members,
		Rounds:      rounds,
		Balance:     balance,
		HasBalance:  hasBalance,
		Outcome:     outcomeFor(len(team), requirement),
		names:       make(map[int64]string, len(pool)),
	}
	for _, c := range pool {
		p.names[c.ID] = c.Name
	}

	span.SetAttributes(
		attribute.String("category", req.Category),
		attribute.Int("scale", req.Scale),
		attribute.Int("pool", len(pool)),
		attribute.Int("team", len(team)),
		attribute.String("outcome", string(p.Outcome)),
	)

	if sl.metrics != nil {
		sl.metrics.TrackProposal(p, time.Since(start).Seconds())
	}

	switch p.Outcome {
	case OutcomeEmpty:
		log.WarnContext(ctx, "no eligible candidates",
			"month", req.Month,
			"roster", len(snap.Roster),
			"excluded", len(excluded))
	case OutcomeShort:
		log.WarnContext(ctx, "pool exhausted before the team was complete",
			"needed", requirement.Total(),
			"selected", len(team))
	}

	log.InfoContext(ctx, "team proposed",
		"scale", req.Scale,
		"month", req.Month,
		"pool", len(pool),
		"excluded", len(excluded),
		"team", len(team),
		"outcome", p.Outcome,
		"avgExperience", balance.AvgExperience)

	return p, nil
}

// Name returns the name of a pool member of this proposal
func (p *Proposal) Name(id int64) string {
	if name, ok := p.names[id]; ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

func outcomeFor(selected int, req Requirement) Outcome {
	switch {
	case selected == 0:
		return OutcomeEmpty
	case selected < req.Total():
		return OutcomeShort
	default:
		return OutcomeFull
	}
}

// Pool loads data from src and returns the eligible pool for month along
// with the excluded roster members.
func (sl *Selector) Pool(ctx context.Context, src Source, month time.Month) ([]Candidate, []Exclusion, error) {
	if err := checkMonth(month); err != nil {
		return nil, nil, err
	}

	snap, err := LoadSnapshot(ctx, src)
	if err != nil {
		return nil, nil, err
	}

	pool, excluded := sl.settings.BuildPool(snap.Roster, snap.History, month)
	return pool, excluded, nil
}
