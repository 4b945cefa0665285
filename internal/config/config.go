// Package config assembles runtime settings for the CampusMind CLI.
//
// Sources are applied in order, later ones winning:
//
//	defaults -> environment (.env + process env) -> JSON file (-c/-config) -> flags
package config

import "time"

// Config holds runtime settings for the client.
//
// MaxRetries and RetryDelay are read from every source and carried here,
// but no retry loop consults them: the gateway performs exactly one
// attempt per call. They are kept so existing config files stay valid.
type Config struct {
	// BaseURL is the address of the grievance service.
	BaseURL string

	// RequestTimeout bounds a single gateway call.
	RequestTimeout time.Duration

	MaxRetries int
	RetryDelay time.Duration

	// InactivityTimeout is how long a session survives without user
	// activity; InactivityCheckInterval is how often that is checked.
	InactivityTimeout       time.Duration
	InactivityCheckInterval time.Duration

	// RefreshDelay is the pause between a successful mutating action and
	// the re-render of the active view, giving the service's side effects
	// time to settle.
	RefreshDelay time.Duration

	// StateDBPath is the sqlite file holding persisted client state.
	StateDBPath string
}

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.MaxRetries = 3
	c.RetryDelay = 1 * time.Second
	c.InactivityTimeout = 30 * time.Minute
	c.InactivityCheckInterval = 60 * time.Second
	c.RefreshDelay = 1 * time.Second
	c.StateDBPath = "campusmind.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
