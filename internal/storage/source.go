package storage

import (
	"context"
	"fmt"

	"promo-pages/internal/campaign"
	"promo-pages/internal/config"
)

// Catalog is the campaign collection plus page settings, as the editor
// stores it.
type Catalog struct {
	Campaigns []campaign.Campaign   `json:"campaigns" yaml:"campaigns"`
	Settings  campaign.SiteSettings `json:"settings" yaml:"settings"`
}

// Source supplies the current catalog. Implementations guarantee unique
// campaign ids and input order.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
	Ping(ctx context.Context) error
	Close()
}

// New opens the source selected by cfg.Source.Kind.
func New(ctx context.Context, cfg config.Config) (Source, error) {
	switch cfg.Source.Kind {
	case config.SourcePostgres:
		return NewPostgres(ctx, cfg)
	case config.SourceFile:
		return NewFileSource(cfg.Source.Path, cfg.SiteDefaults()), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}

// finish gives id-less campaigns an id derived from scope and position, so
// reloading an unchanged catalog yields the same ids.
func finish(c Catalog, scope string) (Catalog, error) {
	campaign.AssignIDs(c.Campaigns, scope)
	if err := campaign.CheckUnique(c.Campaigns); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
