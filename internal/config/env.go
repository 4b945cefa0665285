package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// first merging a .env file from the working directory when one exists.
// Missing variables leave the current value untouched.
//
// Recognised variables:
//
//	CAMPUSMIND_API_URL          service base address
//	CAMPUSMIND_STATE_DB         sqlite state file path
//	CAMPUSMIND_REQUEST_TIMEOUT  per-request timeout in seconds
func parseEnv(cfg *Config) {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("CAMPUSMIND_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("CAMPUSMIND_STATE_DB"); v != "" {
		cfg.StateDBPath = v
	}
	if v := os.Getenv("CAMPUSMIND_REQUEST_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
}
