package config

import (
	"flag"
	"time"

	"github.com/reomoon/memo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   memo server URL
//	-d string   data directory
//	-n int      memos per page
//	-b string   storage backend (sqlite|s3)
//	-t int      request timeout in seconds
//	-v          verbose logging
//
// Note: The function filters args to only include the flags it knows about,
// using flagx.FilterArgs, so cobra subcommand flags do not interfere.
func parseFlags(cfg *Config, args []string) {
	values := flagx.FilterArgs(args, []string{"-a", "-d", "-n", "-b", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "memo server URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.IntVar(&cfg.PageSize, "n", cfg.PageSize, "memos per page")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite|s3)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(values); err != nil {
		panic(err)
	}

	// -v is parsed separately: FilterArgs pairs it with the following token.
	bs := flag.NewFlagSet("bool", flag.ContinueOnError)
	bs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	if err := bs.Parse(flagx.FilterArgs(args, []string{"-v"})); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

// CommandArgs returns args without the flags owned by this package, leaving
// subcommands and their own flags for the command parser.
func CommandArgs(args []string) []string {
	return flagx.StripArgs(args,
		[]string{"-c", "-config", "--config", "-a", "-d", "-n", "-b", "-t"},
		[]string{"-v"},
	)
}
