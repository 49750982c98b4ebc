// Package config loads runtime configuration for the memo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   memo server URL
//	-d string   data directory
//	-n int      memos per page
//	-b string   storage backend (sqlite|s3)
//	-t int      request timeout (seconds)
//	-v          verbose logging
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:3000",
//	  "data_dir": "~/.memo",
//	  "page_size": 10,
//	  "backend": "s3",
//	  "request_timeout": "10s",
//	  "s3_bucket": "memos",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://localhost:9000",
//	  "s3_access_key": "minio",
//	  "s3_secret_key": "minio123",
//	  "s3_prefix": "alice/"
//	}
//
// S3 settings are read from the JSON file only.
package config
