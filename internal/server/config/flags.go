package config

import (
	"flag"

	"github.com/reomoon/memo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address (e.g., ":3000")
//	-k string   AI provider key
//	-i string   GitHub OAuth client id
//	-s string   GitHub OAuth client secret
//	-m string   AI model
//	-u string   AI base URL
//	-t string   session store (memory|postgres)
//	-d string   PostgreSQL DSN
//	-r string   default OAuth redirect URL
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-i", "-s", "-m", "-u", "-t", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "address and port to run server")
	fs.StringVar(&cfg.AIKey, "k", cfg.AIKey, "AI provider key")
	fs.StringVar(&cfg.GitHubClientID, "i", cfg.GitHubClientID, "GitHub client id")
	fs.StringVar(&cfg.GitHubClientSecret, "s", cfg.GitHubClientSecret, "GitHub client secret")
	fs.StringVar(&cfg.AIModel, "m", cfg.AIModel, "AI model")
	fs.StringVar(&cfg.AIBaseURL, "u", cfg.AIBaseURL, "AI base URL")
	fs.StringVar(&cfg.SessionStore, "t", cfg.SessionStore, "session store (memory|postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.RedirectURL, "r", cfg.RedirectURL, "default OAuth redirect URL")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
