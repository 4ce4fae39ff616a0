package selector

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.aira.dev/staffing/config"
)

// Hardcoded selection defaults
const (
	defaultBaseWeight       = 10 // Tickets every eligible candidate starts with
	defaultPenaltyPerShared = 3  // Tickets lost per shared past program
	defaultMonthlyCap       = 2  // Assignments in the target month that exclude a member
	minWorkingWeight        = 1  // Every candidate keeps at least one ticket

	defaultBalancedMin = 1.5
	defaultBalancedMax = 2.5

	reserveExperience  = 0.0 // Reserve members are never selected
	fallbackExperience = 1.0 // Unknown join periods count as the newest active tier
)

// experienceValues is the fixed set of experience points a tier can map to
var experienceValues = []float64{0, 1, 2, 3}

// ErrInvalidInput is returned (wrapped) for a request that can't be staffed
// as asked, before any data is loaded.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Tiers maps a join period to experience points
type Tiers map[string]float64

// DefaultTiers returns the semester table used when none is configured
func DefaultTiers() Tiers {
	return Tiers{
		"S23": 3, "F23": 3,
		"S24": 3, "F24": 2,
		"S25": 2, "F25": 1,
		"S26": 1, "F26": 0, // reserves
	}
}

// NewTiers validates a join period table. Keys are matched case-insensitively.
func NewTiers(m map[string]float64) (Tiers, error) {
	t := make(Tiers, len(m))
	for period, exp := range m {
		if !slices.Contains(experienceValues, exp) {
			return nil, invalidInput("tier %q: experience %v is not one of %v", period, exp, experienceValues)
		}
		t[normalizePeriod(period)] = exp
	}
	return t, nil
}

// Experience returns the experience points for a join period. Unknown
// periods get the lowest non-reserve tier.
func (t Tiers) Experience(period string) float64 {
	if exp, ok := t[normalizePeriod(period)]; ok {
		return exp
	}
	return fallbackExperience
}

func normalizePeriod(period string) string {
	return strings.ToUpper(strings.TrimSpace(period))
}

// ScaleTable maps a program scale to its staffing requirement
type ScaleTable map[int]Requirement

// DefaultScaleTable returns the small/medium/large/extra large table
func DefaultScaleTable() ScaleTable {
	return ScaleTable{
		1: {Lead: 1, Support: 0},
		2: {Lead: 1, Support: 2},
		3: {Lead: 1, Support: 3},
		4: {Lead: 1, Support: 4},
	}
}

// Requirement returns the requirement for scale. A scale 1 program can be
// staffed as a duo, which adds one support slot.
func (st ScaleTable) Requirement(scale int, duo bool) (Requirement, error) {
	req, ok := st[scale]
	if !ok {
		return Requirement{}, invalidInput("unknown program scale %d (known: %v)", scale, st.scales())
	}
	if duo && scale == 1 && req.Total() == 1 {
		req.Support++
	}
	return req, nil
}

func (st ScaleTable) scales() []int {
	keys := make([]int, 0, len(st))
	for k := range st {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Settings are the selection rules
type Settings struct {
	Tiers            Tiers
	Scales           ScaleTable
	BaseWeight       int
	PenaltyPerShared int
	MonthlyCap       int
	BalancedMin      float64
	BalancedMax      float64
}

// DefaultSettings returns the built-in selection rules
func DefaultSettings() Settings {
	return Settings{
		Tiers:            DefaultTiers(),
		Scales:           DefaultScaleTable(),
		BaseWeight:       defaultBaseWeight,
		PenaltyPerShared: defaultPenaltyPerShared,
		MonthlyCap:       defaultMonthlyCap,
		BalancedMin:      defaultBalancedMin,
		BalancedMax:      defaultBalancedMax,
	}
}

// SettingsFromConfig converts the loaded configuration
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	s := DefaultSettings()
	if cfg == nil {
		return s, nil
	}

	tiers, err := NewTiers(cfg.Tiers)
	if err != nil {
		return s, err
	}
	s.Tiers = tiers

	scales := make(ScaleTable, len(cfg.Scales))
	for key, sc := range cfg.Scales {
		scale, err := strconv.Atoi(key)
		if err != nil {
			return s, invalidInput("scale key %q is not a number", key)
		}
		scales[scale] = Requirement{Lead: sc.Lead, Support: sc.Support}
	}
	s.Scales = scales

	s.BaseWeight = cfg.Selection.BaseWeight
	s.PenaltyPerShared = cfg.Selection.PenaltyPerShared
	s.MonthlyCap = cfg.Selection.MonthlyCap
	s.BalancedMin = cfg.Selection.BalancedMin
	s.BalancedMax = cfg.Selection.BalancedMax

	return s, nil
}

// checkMonth verifies the target month of a request
func checkMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return invalidInput("month %d is outside 1-12", int(month))
	}
	return nil
}
