package config

import (
	"fmt"
	"os"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
)

// S3 holds the settings of the s3 storage backend. They come from the JSON
// file only.
type S3 struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Prefix       string
}

// Config holds runtime settings for the memo CLI.
//
// Fields:
//   - ServerURL: base URL of the memo proxy server.
//   - DataDir: directory of the local sqlite database.
//   - PageSize: memos per page.
//   - Backend: "sqlite" or "s3".
//   - RequestTimeout: bound for every call to the proxy.
//   - RedirectURL: OAuth redirect sent with the login request; empty uses
//     the server default.
//   - Verbose: log at debug level.
type Config struct {
	ServerURL      string
	DataDir        string
	PageSize       int
	Backend        string
	RequestTimeout time.Duration
	RedirectURL    string
	Verbose        bool
	S3             S3
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3000"
	c.DataDir = "~/.memo"
	c.PageSize = 10
	c.Backend = BackendSQLite
	c.RequestTimeout = 10 * time.Second
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.Backend {
	case BackendSQLite:
	case BackendS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3 backend requires s3_bucket")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	return nil
}

// Load builds a Config from defaults, the optional JSON file and flags found
// in args, in that order of precedence. Invalid input panics.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
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
