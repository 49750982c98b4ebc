package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Seams for tests.
var (
	loadDotEnv = func() error { return godotenv.Load() }
	lookupEnv  = os.LookupEnv
)

// parseEnv loads .env into the process environment (existing variables win)
// and overlays the variables it knows about. A missing .env is ignored; a
// malformed one panics.
//
//	PORT                port to listen on, becomes ":PORT"
//	GH_CLIENT_ID        GitHub OAuth client id
//	GH_CLIENT_SECRET    GitHub OAuth client secret
//	GEMINI_API_KEY      AI provider key
//	AI_BASE_URL         OpenAI-compatible base URL
//	AI_MODEL            model name
//	SESSION_STORE       memory | postgres
//	DATABASE_DSN        PostgreSQL DSN
//	OAUTH_REDIRECT_URL  default OAuth redirect
func parseEnv(cfg *Config) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := env("PORT"); ok {
		if strings.HasPrefix(v, ":") {
			cfg.ListenAddr = v
		} else {
			cfg.ListenAddr = ":" + v
		}
	}
	envString(&cfg.GitHubClientID, "GH_CLIENT_ID")
	envString(&cfg.GitHubClientSecret, "GH_CLIENT_SECRET")
	envString(&cfg.AIKey, "GEMINI_API_KEY")
	envString(&cfg.AIBaseURL, "AI_BASE_URL")
	envString(&cfg.AIModel, "AI_MODEL")
	envString(&cfg.SessionStore, "SESSION_STORE")
	envString(&cfg.DatabaseDSN, "DATABASE_DSN")
	envString(&cfg.RedirectURL, "OAUTH_REDIRECT_URL")
}

func env(name string) (string, bool) {
	v, ok := lookupEnv(name)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func envString(dst *string, name string) {
	if v, ok := env(name); ok {
		*dst = v
	}
}
