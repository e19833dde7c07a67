package config

import (
	"flag"
	"os"

	"pantrypal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   data directory (default: <user-home>/PantryPal)
//	-l string   log level: debug|info|warn|error
//	-argon2     write argon2id verifiers for new accounts
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-argon2"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseDir, "d", cfg.BaseDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.UseArgon2, "argon2", cfg.UseArgon2, "write argon2id password verifiers for new accounts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
