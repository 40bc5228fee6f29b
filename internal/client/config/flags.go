package config

import (
	"flag"
	"os"

	"github.com/fabienvalero1/userdir/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   directory API base URL (e.g., "http://localhost:4000")
//	-f string   sqlite file for persisted preferences
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerBaseURL, "a", config.ServerBaseURL, "directory API base URL")
	fs.StringVar(&config.StateDSN, "f", config.StateDSN, "preference store file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
