package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "https://dummyjson.com", cfg.AuthBaseURL)
	assert.Equal(t, "https://openlibrary.org", cfg.CatalogBaseURL)
	assert.Equal(t, SourceOpenLibrary, cfg.CatalogSource)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "skillup.db", cfg.DatabaseDSN)
	assert.Equal(t, []string{"programming", "business", "design", "science"}, cfg.Subjects)
	assert.Equal(t, 8, cfg.SubjectLimit)
}

func TestLoadConfig_DefaultsWhenNoSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"app"}

	cfg := LoadConfig()

	want := &Config{}
	want.LoadDefaults()
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"app", "-a", "http://localhost:9001", "-s", SourceProducts, "-t", "3", "-l", "4", "-subjects", "history,art"}

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:9001", cfg.AuthBaseURL)
	assert.Equal(t, SourceProducts, cfg.CatalogSource)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.SubjectLimit)
	assert.Equal(t, []string{"history", "art"}, cfg.Subjects)
	// untouched fields keep their defaults
	assert.Equal(t, "https://openlibrary.org", cfg.CatalogBaseURL)
	assert.Equal(t, "skillup.db", cfg.DatabaseDSN)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	file := filepath.Join(t.TempDir(), "conf.json")
	data := `{
		"auth_base_url": "http://auth.internal",
		"catalog_source": "products",
		"request_timeout": "5s",
		"database_dsn": "alt.db",
		"subjects": ["math"],
		"subject_limit": 2
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	os.Args = []string{"app", "-c", file}
	cfg := LoadConfig()

	assert.Equal(t, "http://auth.internal", cfg.AuthBaseURL)
	assert.Equal(t, SourceProducts, cfg.CatalogSource)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "alt.db", cfg.DatabaseDSN)
	assert.Equal(t, []string{"math"}, cfg.Subjects)
	assert.Equal(t, 2, cfg.SubjectLimit)
	assert.Equal(t, "https://openlibrary.org", cfg.CatalogBaseURL)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"auth_base_url": "http://from-json"}`), 0o600))

	os.Args = []string{"app", "-c", file, "-a", "http://from-flag"}
	cfg := LoadConfig()

	assert.Equal(t, "http://from-flag", cfg.AuthBaseURL)
}

func TestLoadConfig_BadJsonPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	file := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{not json`), 0o600))

	os.Args = []string{"app", "-c", file}
	assert.Panics(t, func() { LoadConfig() })
}
