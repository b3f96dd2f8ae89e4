package config

import (
	"time"

	"skillup/internal/api"
)

// Catalog source selectors. SourceOpenLibrary is the evolved book-catalog
// variant; SourceProducts keeps the legacy product-as-course service
// reachable for deployments still pointed at it.
const (
	SourceOpenLibrary = "openlibrary"
	SourceProducts    = "products"
)

// Config holds runtime settings for the SkillUp client.
//
// Fields:
//   - AuthBaseURL: base URL of the auth/product service.
//   - CatalogBaseURL: base URL of the open catalog service.
//   - CatalogSource: which catalog variant serves the course listing.
//   - RequestTimeout: fixed per-request timeout for all API calls.
//   - DatabaseDSN: location of the local SQLite settings database.
//   - Subjects / SubjectLimit: fan-out shape of the catalog listing fetch.
type Config struct {
	AuthBaseURL    string
	CatalogBaseURL string
	CatalogSource  string
	RequestTimeout time.Duration
	DatabaseDSN    string
	Subjects       []string
	SubjectLimit   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthBaseURL = "https://dummyjson.com"
	c.CatalogBaseURL = "https://openlibrary.org"
	c.CatalogSource = SourceOpenLibrary
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "skillup.db"
	c.Subjects = append([]string(nil), api.DefaultSubjects...)
	c.SubjectLimit = api.DefaultSubjectLimit
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
