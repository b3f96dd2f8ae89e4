package config

import (
	"encoding/json"
	"os"
	"time"

	"skillup/internal/flagx"
	"skillup/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. After parsing, set values are copied into
// the runtime Config.
type JsonConfig struct {
	AuthBaseURL    string         `json:"auth_base_url"`
	CatalogBaseURL string         `json:"catalog_base_url"`
	CatalogSource  string         `json:"catalog_source"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabaseDSN    string         `json:"database_dsn"`
	Subjects       []string       `json:"subjects"`
	SubjectLimit   int            `json:"subject_limit"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. If no file is given the function returns without
// touching cfg; read or unmarshal errors panic (caller may recover).
// Only fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthBaseURL != "" {
		cfg.AuthBaseURL = jc.AuthBaseURL
	}
	if jc.CatalogBaseURL != "" {
		cfg.CatalogBaseURL = jc.CatalogBaseURL
	}
	if jc.CatalogSource != "" {
		cfg.CatalogSource = jc.CatalogSource
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if len(jc.Subjects) > 0 {
		cfg.Subjects = jc.Subjects
	}
	if jc.SubjectLimit > 0 {
		cfg.SubjectLimit = jc.SubjectLimit
	}
}
