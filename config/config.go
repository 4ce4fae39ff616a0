// Package config loads the aira configuration.
//
// Values are layered, lowest precedence first: built-in defaults, an
// optional YAML file, then AIRA_ environment variables. Nested keys use a
// double underscore in the environment, for example
// AIRA_SELECTION__BASE_WEIGHT=12 or AIRA_DATABASE__DSN=....
package config

import "time"

// Config is the full process configuration.
type Config struct {
	Database  DatabaseConfig         `koanf:"database"`
	Selection SelectionConfig        `koanf:"selection"`
	Tiers     map[string]float64     `koanf:"tiers"`
	Scales    map[string]ScaleConfig `koanf:"scales"`
	Server    ServerConfig           `koanf:"server"`
}

// DatabaseConfig configures the MySQL connection.
type DatabaseConfig struct {
	DSN            string        `koanf:"dsn"`
	MaxOpenConns   int           `koanf:"max_open_conns"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// SelectionConfig holds the selection tunables.
type SelectionConfig struct {
	// BaseWeight is the number of tickets every eligible candidate starts with.
	BaseWeight int `koanf:"base_weight"`

	// PenaltyPerShared is subtracted for every past program a candidate
	// shared with an already selected member.
	PenaltyPerShared int `koanf:"penalty_per_shared"`

	// MonthlyCap excludes members with this many assignments in the
	// target month.
	MonthlyCap int `koanf:"monthly_cap"`

	BalancedMin float64 `koanf:"balanced_min"`
	BalancedMax float64 `koanf:"balanced_max"`

	// MetricCategories are the program categories reported as their own
	// metric label; anything else is counted as "other".
	MetricCategories []string `koanf:"metric_categories"`
}

// ScaleConfig is the staffing requirement for one program scale.
type ScaleConfig struct {
	Lead    int `koanf:"lead"`
	Support int `koanf:"support"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Listen      string `koanf:"listen"`
	MetricsPort int    `koanf:"metrics_port"` // 0 disables the metrics listener

	// JWTSecret enables HS256 bearer authentication for /api when set
	JWTSecret       string        `koanf:"jwt_secret"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New returns a Config with the built-in defaults.
func New() *Config {
	return &Config{
		Database: DatabaseConfig{
			MaxOpenConns:   10,
			ConnectTimeout: 30 * time.Second,
		},
		Selection: SelectionConfig{
			BaseWeight:       10,
			PenaltyPerShared: 3,
			MonthlyCap:       2,
			BalancedMin:      1.5,
			BalancedMax:      2.5,
		},
		// semester joined -> experience points (3 = senior, 0 = reserve)
		Tiers: map[string]float64{
			"S23": 3,
			"F23": 3,
			"S24": 3,
			"F24": 2,
			"S25": 2,
			"F25": 1,
			"S26": 1,
			"F26": 0,
		},
		Scales: map[string]ScaleConfig{
			"1": {Lead: 1, Support: 0},
			"2": {Lead: 1, Support: 2},
			"3": {Lead: 1, Support: 3},
			"4": {Lead: 1, Support: 4},
		},
		Server: ServerConfig{
			Listen:          ":8080",
			MetricsPort:     9000,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}
