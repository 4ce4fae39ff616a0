package selector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.aira.dev/staffing/config"
)

func TestScaleRequirement(t *testing.T) {
	st := DefaultScaleTable()

	tests := []struct {
		scale int
		duo   bool
		want  Requirement
	}{
		{1, false, Requirement{Lead: 1, Support: 0}},
		{1, true, Requirement{Lead: 1, Support: 1}},
		{2, false, Requirement{Lead: 1, Support: 2}},
		{2, true, Requirement{Lead: 1, Support: 2}},
		{3, false, Requirement{Lead: 1, Support: 3}},
		{4, false, Requirement{Lead: 1, Support: 4}},
	}

	for _, tt := range tests {
		got, err := st.Requirement(tt.scale, tt.duo)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "scale %d duo %t", tt.scale, tt.duo)
	}

	for _, scale := range []int{0, 5, -1} {
		_, err := st.Requirement(scale, false)
		assert.ErrorIs(t, err, ErrInvalidInput, "scale %d", scale)
	}
}

func TestTiers(t *testing.T) {
	tiers := DefaultTiers()
	assert.Equal(t, 3.0, tiers.Experience("S23"))
	assert.Equal(t, 2.0, tiers.Experience("F24"))
	assert.Equal(t, 1.0, tiers.Experience("S26"))
	assert.Equal(t, 0.0, tiers.Experience("F26"))
	assert.Equal(t, 1.0, tiers.Experience(""))
	assert.Equal(t, 1.0, tiers.Experience("W30"))

	custom, err := NewTiers(map[string]float64{"f27": 0, " s27 ": 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, custom.Experience("F27"))
	assert.Equal(t, 1.0, custom.Experience("S27"))

	_, err = NewTiers(map[string]float64{"S27": 2.5})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCheckMonth(t *testing.T) {
	assert.NoError(t, checkMonth(time.January))
	assert.NoError(t, checkMonth(time.December))
	assert.ErrorIs(t, checkMonth(0), ErrInvalidInput)
	assert.ErrorIs(t, checkMonth(13), ErrInvalidInput)
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	cfg := config.New()
	cfg.Selection.PenaltyPerShared = 5
	cfg.Scales["5"] = config.ScaleConfig{Lead: 2, Support: 6}
	cfg.Tiers["s27"] = 1

	s, err = SettingsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, s.PenaltyPerShared)
	assert.Equal(t, Requirement{Lead: 2, Support: 6}, s.Scales[5])
	assert.Equal(t, 1.0, s.Tiers.Experience("S27"))

	cfg.Scales["big"] = config.ScaleConfig{Lead: 1}
	_, err = SettingsFromConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
