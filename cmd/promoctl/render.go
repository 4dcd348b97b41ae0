package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"promo-pages/internal/logfields"
	"promo-pages/internal/render"
	"promo-pages/internal/storage"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Input  string `short:"i" help:"Catalog file (YAML or JSON)" default:"db.json"`
	Output string `short:"o" help:"Output file, - for stdout" default:"-"`
	Year   int    `help:"Pin the footer year instead of using the current one"`
}

func (c *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cat, err := storage.NewFileSource(c.Input, cfg.SiteDefaults()).Load(context.Background())
	if err != nil {
		return err
	}

	doc := rendererFor(c.Year).Render(cat.Campaigns, cat.Settings)
	if c.Output == "-" {
		_, err := fmt.Fprint(g.Out, doc)
		return err
	}
	if err := os.WriteFile(c.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	log.Info().Str("output", c.Output).Int(logfields.Bytes, len(doc)).Int(logfields.Campaigns, len(cat.Campaigns)).Msg("page rendered")
	return nil
}

func rendererFor(year int) *render.Renderer {
	if year <= 0 {
		return render.New()
	}
	return render.New(render.WithClock(func() time.Time {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}))
}
