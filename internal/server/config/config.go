// Package config handles configuration for the server component,
// including defaults, environment variables, a JSON or YAML overlay, and
// command-line flags.
package config

import (
	"fmt"
	"os"
)

const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Config holds runtime settings for the memo proxy server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - GitHubClientID / GitHubClientSecret: OAuth app credentials. When
//     either is empty the callback answers 400.
//   - AIKey: provider API key. When empty the text endpoints answer 500.
//   - AIBaseURL / AIModel: OpenAI-compatible endpoint and model name.
//   - SessionStore: "memory" or "postgres".
//   - DatabaseDSN: PostgreSQL DSN (pgx), used by the postgres session store.
//   - RedirectURL: OAuth redirect used when the client does not send one.
type Config struct {
	ListenAddr         string
	GitHubClientID     string
	GitHubClientSecret string
	AIKey              string
	AIBaseURL          string
	AIModel            string
	SessionStore       string
	DatabaseDSN        string
	RedirectURL        string
}

// LoadDefaults populates Config with development defaults. Secrets stay
// empty and must come from the environment, a file or flags.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.AIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	c.AIModel = "gemini-2.0-flash"
	c.SessionStore = SessionStoreMemory
	c.RedirectURL = "http://localhost:3000/callback"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address is empty")
	}
	switch c.SessionStore {
	case SessionStoreMemory:
	case SessionStorePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("postgres session store requires a database DSN")
		}
	default:
		return fmt.Errorf("unknown session store %q", c.SessionStore)
	}
	return nil
}

// Load builds a Config by applying defaults, then the environment (after
// loading .env when present), then the optional config file and finally the
// flags found in args. Invalid input panics.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg, args)
	parseFlags(cfg, args)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig is Load over the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}
