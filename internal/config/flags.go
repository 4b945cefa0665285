package config

import (
	"flag"
	"os"
	"time"

	"github.com/campusmind/client/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base address of the grievance service
//	-t int      request timeout in seconds
//	-s string   sqlite state file path
//
// Arguments are pre-filtered with flagx.FilterArgs so flags owned by other
// components (such as -c/-config) do not trip this flag set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base address of the grievance service")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StateDBPath, "s", cfg.StateDBPath, "sqlite state file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
