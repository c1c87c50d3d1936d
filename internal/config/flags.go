package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-f string   path to the password store file (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so it does not trip over the config-file flags
// handled elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "f", cfg.StorePath, "path to the password store file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
