package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"promo-pages/internal/campaign"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all configuration (file + env overrides)
type Config struct {
	Server struct {
		Addr         string `mapstructure:"addr"`
		LogLevel     string `mapstructure:"log_level"`
		MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	} `mapstructure:"server"`

	Source struct {
		Kind           string `mapstructure:"kind"` // file | postgres
		Path           string `mapstructure:"path"`
		RefreshSeconds int    `mapstructure:"refresh_seconds"`
	} `mapstructure:"source"`

	Postgres struct {
		Host         string `mapstructure:"host"`
		Port         int    `mapstructure:"port"`
		User         string `mapstructure:"user"`
		Password     string `mapstructure:"password"`
		DBName       string `mapstructure:"db_name"`
		SSLMode      string `mapstructure:"ssl_mode"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
		Migration    string `mapstructure:"migration"` // optional SQL file applied at startup
	} `mapstructure:"postgres"`

	Listener struct {
		Channel          string `mapstructure:"channel"`
		ReconnectSeconds int    `mapstructure:"reconnect_seconds"`
	} `mapstructure:"listener"`

	Site struct {
		PageTitle   string `mapstructure:"page_title"`
		Description string `mapstructure:"description"`
	} `mapstructure:"site"`

	WordPress struct {
		SiteURL     string `mapstructure:"site_url"`
		PageID      string `mapstructure:"page_id"`
		Username    string `mapstructure:"username"`
		AppPassword string `mapstructure:"app_password"`
	} `mapstructure:"wordpress"`
}

// Load reads configs/application.yaml when present, overlays the ENV profile
// and applies APP_* environment overrides (APP_WORDPRESS_SITE_URL, ...).
func Load() (Config, error) {
	return LoadFrom("configs", "application")
}

// LoadFrom is Load with an explicit directory and config name.
func LoadFrom(dir, name string) (Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	if err := mergeProfile(v, dir); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad panics on configuration errors, like the server entrypoint expects.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// mergeProfile overlays <dir>/<ENV>.yaml (dev.yaml, prod.yaml, ...) when ENV
// is set and the file exists.
func mergeProfile(v *viper.Viper, dir string) error {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))
	if env == "" {
		return nil
	}
	path := filepath.Join(dir, env+".yaml")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("merge %s config: %w", env, err)
	}
	return nil
}

// AutomaticEnv only sees keys viper already knows about, so every leaf is
// registered explicitly.
func bindEnvKeys(v *viper.Viper) {
	for _, k := range []string{
		"server.addr", "server.log_level", "server.max_body_bytes",
		"source.kind", "source.path", "source.refresh_seconds",
		"postgres.host", "postgres.port", "postgres.user", "postgres.password",
		"postgres.db_name", "postgres.ssl_mode", "postgres.max_open_conns", "postgres.max_idle_conns", "postgres.migration",
		"listener.channel", "listener.reconnect_seconds",
		"site.page_title", "site.description",
		"wordpress.site_url", "wordpress.page_id", "wordpress.username", "wordpress.app_password",
	} {
		_ = v.BindEnv(k)
	}
}

func validate(c *Config) error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 8 << 20
	}
	if c.Source.Kind == "" {
		c.Source.Kind = SourceFile
	}
	if c.Source.Path == "" {
		c.Source.Path = "db.json"
	}
	if c.Source.RefreshSeconds <= 0 {
		c.Source.RefreshSeconds = 30
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.SSLMode == "" {
		c.Postgres.SSLMode = "disable"
	}
	if c.Postgres.MaxOpenConns == 0 {
		c.Postgres.MaxOpenConns = 10
	}
	if c.Postgres.MaxIdleConns == 0 {
		c.Postgres.MaxIdleConns = 2
	}
	if c.Listener.Channel == "" {
		c.Listener.Channel = "promo_campaigns_changed"
	}
	if c.Listener.ReconnectSeconds <= 0 {
		c.Listener.ReconnectSeconds = 5
	}

	switch c.Source.Kind {
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("unknown source kind %q (want %s or %s)", c.Source.Kind, SourceFile, SourcePostgres)
	}
	return nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.DBName,
		c.Postgres.SSLMode,
	)
}

func (c Config) Backoff() time.Duration { return time.Duration(c.Listener.ReconnectSeconds) * time.Second }

func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.Source.RefreshSeconds) * time.Second
}

// SiteDefaults overlays the configured copy on the built-in defaults.
func (c Config) SiteDefaults() campaign.SiteSettings {
	return campaign.MergeSettings(campaign.DefaultSettings(), campaign.SiteSettings{
		PageTitle:   c.Site.PageTitle,
		Description: c.Site.Description,
	})
}

// WordPressTarget returns the configured default publish target. Any field
// may be empty.
func (c Config) WordPressTarget() campaign.WPTarget {
	return campaign.WPTarget{
		SiteURL:     c.WordPress.SiteURL,
		PageID:      c.WordPress.PageID,
		Username:    c.WordPress.Username,
		AppPassword: c.WordPress.AppPassword,
	}
}
