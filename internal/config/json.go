package config

import (
	"encoding/json"
	"os"

	"github.com/campusmind/client/internal/flagx"
	"github.com/campusmind/client/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept either strings like "30m" or integer nanoseconds (timex.Duration).
// Zero values mean "not set" and leave the runtime Config untouched.
type JsonConfig struct {
	BaseURL                 string         `json:"base_url"`
	RequestTimeout          timex.Duration `json:"request_timeout"`
	MaxRetries              int            `json:"max_retries"`
	RetryDelay              timex.Duration `json:"retry_delay"`
	InactivityTimeout       timex.Duration `json:"inactivity_timeout"`
	InactivityCheckInterval timex.Duration `json:"inactivity_check_interval"`
	RefreshDelay            timex.Duration `json:"refresh_delay"`
	StateDBPath             string         `json:"state_db_path"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag means no JSON is loaded. Read or unmarshal
// failures panic; the config stage has no way to continue without a file
// the operator explicitly asked for.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.MaxRetries > 0 {
		cfg.MaxRetries = jc.MaxRetries
	}
	if jc.RetryDelay.Duration > 0 {
		cfg.RetryDelay = jc.RetryDelay.Duration
	}
	if jc.InactivityTimeout.Duration > 0 {
		cfg.InactivityTimeout = jc.InactivityTimeout.Duration
	}
	if jc.InactivityCheckInterval.Duration > 0 {
		cfg.InactivityCheckInterval = jc.InactivityCheckInterval.Duration
	}
	if jc.RefreshDelay.Duration > 0 {
		cfg.RefreshDelay = jc.RefreshDelay.Duration
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
}
