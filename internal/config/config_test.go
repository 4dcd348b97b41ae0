package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "application")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, SourceFile, cfg.Source.Kind)
	assert.Equal(t, "db.json", cfg.Source.Path)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "promo_campaigns_changed", cfg.Listener.Channel)
	assert.Equal(t, "Özel İndirim Rehberim", cfg.SiteDefaults().PageTitle)
}

func TestLoadFrom_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  addr: ":9090"
source:
  kind: postgres
postgres:
  host: db
  user: promo
  password: pw
  db_name: promo
site:
  page_title: "Kampanyalar"
wordpress:
  site_url: "https://blog.example/"
  page_id: "12"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "application.yaml"), []byte(yaml), 0o600))
	t.Setenv("APP_WORDPRESS_USERNAME", "editor")
	t.Setenv("APP_WORDPRESS_APP_PASSWORD", "abcd efgh")
	t.Setenv("APP_SERVER_ADDR", ":7000")

	cfg, err := LoadFrom(dir, "application")
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, SourcePostgres, cfg.Source.Kind)
	assert.Equal(t, "postgres://promo:pw@db:5432/promo?sslmode=disable", cfg.DSN())
	assert.Equal(t, "Kampanyalar", cfg.SiteDefaults().PageTitle)

	tg := cfg.WordPressTarget()
	assert.Equal(t, "https://blog.example/", tg.SiteURL)
	assert.Equal(t, "12", tg.PageID)
	assert.Equal(t, "editor", tg.Username)
	assert.Equal(t, "abcd efgh", tg.AppPassword)
}

func TestLoadFrom_ProfileOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "application.yaml"), []byte("server:\n  addr: \":9090\"\n  log_level: info\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.yaml"), []byte("server:\n  log_level: warn\n"), 0o600))
	t.Setenv("ENV", "PROD")

	cfg, err := LoadFrom(dir, "application")
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
}

func TestLoadFrom_MissingProfileIgnored(t *testing.T) {
	t.Setenv("ENV", "staging")
	cfg, err := LoadFrom(t.TempDir(), "application")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadFrom_UnknownSourceKind(t *testing.T) {
	t.Setenv("APP_SOURCE_KIND", "redis")
	_, err := LoadFrom(t.TempDir(), "application")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown source kind "redis"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}
