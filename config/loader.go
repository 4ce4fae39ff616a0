package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix   = "AIRA_"
	envFile     = "AIRA_CONFIG"
	defaultFile = "aira.yaml"
)

// Load builds a Config from defaults, the YAML file at path and the
// environment. An empty path falls back to $AIRA_CONFIG and then to
// ./aira.yaml when it exists.
func Load(path string) (*Config, error) {
	cfg := New()

	k := koanf.New(".")

	explicit := path != ""
	if path == "" {
		path = os.Getenv(envFile)
		explicit = path != ""
	}
	if path == "" {
		path = defaultFile
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, wrapLoad(path, err)
		}
	}

	// AIRA_SELECTION__BASE_WEIGHT -> selection.base_weight
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, wrapLoad("environment", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, wrapLoad("values", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	s := c.Selection
	if s.BaseWeight < 1 {
		return invalid("selection.base_weight must be at least 1, got %d", s.BaseWeight)
	}
	if s.PenaltyPerShared < 0 {
		return invalid("selection.penalty_per_shared must not be negative, got %d", s.PenaltyPerShared)
	}
	if s.MonthlyCap < 1 {
		return invalid("selection.monthly_cap must be at least 1, got %d", s.MonthlyCap)
	}
	if s.BalancedMin > s.BalancedMax {
		return invalid("selection.balanced_min (%.2f) is above balanced_max (%.2f)", s.BalancedMin, s.BalancedMax)
	}

	if len(c.Tiers) == 0 {
		return invalid("no experience tiers configured")
	}
	for period, exp := range c.Tiers {
		if exp < 0 {
			return invalid("tier %q has negative experience %.1f", period, exp)
		}
	}

	if len(c.Scales) == 0 {
		return invalid("no program scales configured")
	}
	for key, sc := range c.Scales {
		if _, err := strconv.Atoi(key); err != nil {
			return invalid("scale key %q is not a number", key)
		}
		if sc.Lead < 0 || sc.Support < 0 || sc.Lead+sc.Support == 0 {
			return invalid("scale %s needs a positive number of slots", key)
		}
	}

	return nil
}
