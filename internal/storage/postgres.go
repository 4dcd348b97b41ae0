package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-pages/internal/campaign"
	"promo-pages/internal/config"
)

// Postgres reads the catalog from the campaigns and site_settings tables.
type Postgres struct {
	pool     *pgxpool.Pool
	channel  string
	defaults campaign.SiteSettings
}

func NewPostgres(ctx context.Context, cfg config.Config) (*Postgres, error) {
	dsn := cfg.DSN()
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres DSN: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Postgres.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Postgres.MaxIdleConns)
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return &Postgres{pool: pool, channel: cfg.Listener.Channel, defaults: cfg.SiteDefaults()}, nil
}

func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Postgres) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Migrate executes a single SQL file.
func (s *Postgres) Migrate(ctx context.Context, path string) error {
	sqlBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := s.pool.Exec(ctx, string(sqlBytes)); err != nil {
		return fmt.Errorf("exec migration: %w", err)
	}
	return nil
}

// Load returns every campaign, active or not, ordered by position then id.
func (s *Postgres) Load(ctx context.Context) (Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, discount_type, description, link,
		       image_url, button_text, accent_color, is_active
		FROM campaigns
		ORDER BY position, id
	`)
	if err != nil {
		return Catalog{}, fmt.Errorf("query campaigns: %w", err)
	}
	defer rows.Close()

	var cs []campaign.Campaign
	for rows.Next() {
		var c campaign.Campaign
		if err := rows.Scan(&c.ID, &c.Title, &c.DiscountType, &c.Description, &c.Link,
			&c.ImageURL, &c.ButtonText, &c.AccentColor, &c.IsActive); err != nil {
			return Catalog{}, fmt.Errorf("scan campaign: %w", err)
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return Catalog{}, fmt.Errorf("iterate campaigns: %w", err)
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return Catalog{}, err
	}
	return finish(Catalog{Campaigns: cs, Settings: settings}, "postgres")
}

func (s *Postgres) loadSettings(ctx context.Context) (campaign.SiteSettings, error) {
	var st campaign.SiteSettings
	err := s.pool.QueryRow(ctx, `
		SELECT page_title, description, header_image_url, primary_color
		FROM site_settings
		WHERE id = 1
	`).Scan(&st.PageTitle, &st.Description, &st.HeaderImageURL, &st.PrimaryColor)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.defaults, nil
	}
	if err != nil {
		return campaign.SiteSettings{}, fmt.Errorf("query site settings: %w", err)
	}
	return campaign.MergeSettings(s.defaults, st), nil
}

func (s *Postgres) ListenChannel() string {
	return s.channel
}

func (s *Postgres) PgxPool() *pgxpool.Pool {
	if s.pool == nil {
		panic(errors.New("pgx pool is nil"))
	}
	return s.pool
}
