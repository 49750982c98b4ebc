package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv replaces the environment seams with a fixed map.
func isolateEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	origLoad, origLookup := loadDotEnv, lookupEnv
	loadDotEnv = func() error { return nil }
	lookupEnv = func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
	t.Cleanup(func() { loadDotEnv, lookupEnv = origLoad, origLookup })
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		ListenAddr:   ":3000",
		AIBaseURL:    "https://generativelanguage.googleapis.com/v1beta/openai/",
		AIModel:      "gemini-2.0-flash",
		SessionStore: SessionStoreMemory,
		RedirectURL:  "http://localhost:3000/callback",
	}
	assert.Empty(t, cmp.Diff(want, c))
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty addr", func(c *Config) { c.ListenAddr = "" }, "listen address"},
		{"unknown store", func(c *Config) { c.SessionStore = "redis" }, `unknown session store "redis"`},
		{"postgres without dsn", func(c *Config) { c.SessionStore = SessionStorePostgres }, "database DSN"},
		{"postgres with dsn", func(c *Config) {
			c.SessionStore = SessionStorePostgres
			c.DatabaseDSN = "postgres://x"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseEnv(t *testing.T) {
	isolateEnv(t, map[string]string{
		"PORT":             "8080",
		"GH_CLIENT_ID":     "cid",
		"GH_CLIENT_SECRET": " secret ",
		"GEMINI_API_KEY":   "key",
		"AI_MODEL":         "gemini-pro",
		"SESSION_STORE":    "postgres",
		"DATABASE_DSN":     "postgres://db",
		"AI_BASE_URL":      "",
	})

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.ListenAddr)
	assert.Equal(t, "cid", c.GitHubClientID)
	assert.Equal(t, "secret", c.GitHubClientSecret)
	assert.Equal(t, "key", c.AIKey)
	assert.Equal(t, "gemini-pro", c.AIModel)
	assert.Equal(t, SessionStorePostgres, c.SessionStore)
	assert.Equal(t, "postgres://db", c.DatabaseDSN)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/openai/", c.AIBaseURL, "empty value keeps default")
}

func TestParseEnv_DotEnvErrors(t *testing.T) {
	isolateEnv(t, nil)

	loadDotEnv = func() error { return &os.PathError{Op: "open", Path: ".env", Err: os.ErrNotExist} }
	assert.NotPanics(t, func() { parseEnv(&Config{}) })

	loadDotEnv = func() error { return errors.New("unexpected character") }
	assert.Panics(t, func() { parseEnv(&Config{}) })
}

func TestParseFile_JSONAndYAML(t *testing.T) {
	jsonPath := writeFile(t, "server.json", `{"listen_addr":":9000","ai_key":"jk","session_store":"postgres","database_dsn":"postgres://j"}`)
	yamlPath := writeFile(t, "server.yaml", "listen_addr: \":9100\"\nai_model: m-yaml\ngithub_client_id: y-id\n")

	var c Config
	c.LoadDefaults()
	parseFile(&c, []string{"-c", jsonPath})
	assert.Equal(t, ":9000", c.ListenAddr)
	assert.Equal(t, "jk", c.AIKey)
	assert.Equal(t, "postgres://j", c.DatabaseDSN)

	c = Config{}
	c.LoadDefaults()
	parseFile(&c, []string{"-config", yamlPath})
	assert.Equal(t, ":9100", c.ListenAddr)
	assert.Equal(t, "m-yaml", c.AIModel)
	assert.Equal(t, "y-id", c.GitHubClientID)
	assert.Equal(t, SessionStoreMemory, c.SessionStore)
}

func TestParseFile_Errors(t *testing.T) {
	bad := writeFile(t, "bad.json", `{`)
	assert.Panics(t, func() { parseFile(&Config{}, []string{"-c", bad}) })
	assert.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}) })
	assert.NotPanics(t, func() { parseFile(&Config{}, nil) })
}

func TestParseFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseFlags(&c, []string{
		"-a", ":7000", "-k", "fk", "-i", "fid", "-s", "fsecret", "-m", "fm",
		"-u", "http://ai", "-t", "postgres", "-d", "postgres://f", "-r", "http://cb",
		"-x", "ignored",
	})

	want := Config{
		ListenAddr:         ":7000",
		GitHubClientID:     "fid",
		GitHubClientSecret: "fsecret",
		AIKey:              "fk",
		AIBaseURL:          "http://ai",
		AIModel:            "fm",
		SessionStore:       SessionStorePostgres,
		DatabaseDSN:        "postgres://f",
		RedirectURL:        "http://cb",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoad_Precedence(t *testing.T) {
	isolateEnv(t, map[string]string{"PORT": "4000", "GEMINI_API_KEY": "env-key", "AI_MODEL": "env-model"})
	path := writeFile(t, "server.yml", "ai_key: file-key\n")

	cfg := Load([]string{"-c", path, "-m", "flag-model"})

	assert.Equal(t, ":4000", cfg.ListenAddr)
	assert.Equal(t, "file-key", cfg.AIKey)
	assert.Equal(t, "flag-model", cfg.AIModel)
}

func TestLoad_InvalidPanics(t *testing.T) {
	isolateEnv(t, nil)
	assert.Panics(t, func() { Load([]string{"-t", "redis"}) })
}
