// Package config loads runtime configuration for the SkillUp client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the auth/product service
//	-b string   base URL of the open catalog service
//	-s string   catalog source: "openlibrary" or "products"
//	-t int      request timeout (seconds)
//	-d string   path/DSN of the local settings database
//	-l int      per-subject page size for the catalog fan-out
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "auth_base_url": "https://dummyjson.com",
//	  "catalog_base_url": "https://openlibrary.org",
//	  "catalog_source": "openlibrary",
//	  "request_timeout": "15s",
//	  "database_dsn": "skillup.db",
//	  "subjects": ["programming", "business", "design", "science"],
//	  "subject_limit": 8
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
