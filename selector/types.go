package selector

import (
	"time"
)

// Member is an RA on the roster
type Member struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	JoinPeriod string `json:"join_period"` // semester joined, e.g. "F24"
}

// Assignment is one history row: a member staffed a program
type Assignment struct {
	MemberID    int64     `json:"member_id"`
	ProgramID   int64     `json:"program_id"`
	Role        string    `json:"role,omitempty"`
	ProgramDate time.Time `json:"program_date"`
	Category    string    `json:"category,omitempty"`
}

// CollabCount is the number of programs two members staffed together
type CollabCount struct {
	MemberA int64 `json:"member_a"`
	MemberB int64 `json:"member_b"`
	Shared  int   `json:"shared"`
}

// Candidate is an eligible member for one selection run
type Candidate struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Experience float64 `json:"experience"`
	BaseWeight int     `json:"base_weight"`
	Weight     int     `json:"weight"` // working weight of the last round the candidate took part in
}

// Requirement is the number of slots per role for a program
type Requirement struct {
	Lead    int `json:"lead"`
	Support int `json:"support"`
}

// Total is the team size the requirement asks for
func (r Requirement) Total() int {
	return r.Lead + r.Support
}

// TeamMember is a selected candidate with its role
type TeamMember struct {
	Candidate
	Role Role `json:"role"`
}

// exclusionReason identifies why a member is not in the pool
type exclusionReason string

const (
	exclusionNone       exclusionReason = ""            // Eligible
	exclusionReserve    exclusionReason = "reserve"     // Reserve tier
	exclusionMonthlyCap exclusionReason = "monthly_cap" // Too many programs in the target month
)

// Exclusion records a roster member that was left out of the pool
type Exclusion struct {
	MemberID int64           `json:"member_id"`
	Name     string          `json:"name"`
	Reason   exclusionReason `json:"reason"`
	Details  string          `json:"details"`
}

// Round records the weights of one draw; Slot counts from 1
type Round struct {
	Slot    int                 `json:"slot"`
	Weights []WeightedCandidate `json:"weights"`
	Winner  int64               `json:"winner"`
}

// WeightedCandidate is a candidate's penalty and working weight in a round
type WeightedCandidate struct {
	ID      int64 `json:"id"`
	Penalty int   `json:"penalty"`
	Weight  int   `json:"weight"`
}
