package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/greenpath/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite database path (empty for an in-memory session)
//	-a string   advisor base URL (empty for offline advice)
//	-t int      advisor timeout (in seconds)
//	-s int      save delay (in milliseconds)
//	-m string   metrics listen address (empty disables)
//	-l string   log level
//	-f string   log format (text or json)
//
// Only the flags listed above are taken from args (see flagx.FilterArgs), so
// -c/-config and anything else is ignored here.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-a", "-t", "-s", "-m", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database")
	fs.StringVar(&cfg.AdvisorEndpoint, "a", cfg.AdvisorEndpoint, "base URL of the AI advisor")
	advisorTimeout := fs.Int("t", int(cfg.AdvisorTimeout.Seconds()), "advisor timeout (in seconds)")
	saveDelay := fs.Int("s", int(cfg.SaveDelay.Milliseconds()), "save delay (in milliseconds)")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t and -s override earlier values only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.AdvisorTimeout = time.Duration(*advisorTimeout) * time.Second
		case "s":
			cfg.SaveDelay = time.Duration(*saveDelay) * time.Millisecond
		}
	})
}
