package config

import (
	"encoding/json"
	"os"

	"github.com/reomoon/memo/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used only for reading the config file. The same
// keys are used for JSON and YAML.
type FileConfig struct {
	ListenAddr         string `json:"listen_addr" yaml:"listen_addr"`
	GitHubClientID     string `json:"github_client_id" yaml:"github_client_id"`
	GitHubClientSecret string `json:"github_client_secret" yaml:"github_client_secret"`
	AIKey              string `json:"ai_key" yaml:"ai_key"`
	AIBaseURL          string `json:"ai_base_url" yaml:"ai_base_url"`
	AIModel            string `json:"ai_model" yaml:"ai_model"`
	SessionStore       string `json:"session_store" yaml:"session_store"`
	DatabaseDSN        string `json:"database_dsn" yaml:"database_dsn"`
	RedirectURL        string `json:"redirect_url" yaml:"redirect_url"`
}

// parseFile overlays Config with the non-empty values of the file named by
// -c or -config in args. Files ending in .yaml or .yml are read as YAML,
// everything else as JSON. Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	if flagx.IsYAML(path) {
		err = yaml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	setString(&cfg.ListenAddr, fc.ListenAddr)
	setString(&cfg.GitHubClientID, fc.GitHubClientID)
	setString(&cfg.GitHubClientSecret, fc.GitHubClientSecret)
	setString(&cfg.AIKey, fc.AIKey)
	setString(&cfg.AIBaseURL, fc.AIBaseURL)
	setString(&cfg.AIModel, fc.AIModel)
	setString(&cfg.SessionStore, fc.SessionStore)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.RedirectURL, fc.RedirectURL)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
