package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"promo-pages/internal/campaign"
	"promo-pages/internal/render"
	"promo-pages/internal/storage"
	"promo-pages/internal/wordpress"
)

// PublishCmd implements the 'publish' command. Empty credential flags fall
// back to the wordpress section of the config (APP_WORDPRESS_* in the env).
type PublishCmd struct {
	Input       string        `short:"i" help:"Catalog file (YAML or JSON)" default:"db.json"`
	SiteURL     string        `name:"site-url" help:"WordPress site base URL"`
	PageID      string        `name:"page-id" help:"Page to overwrite"`
	Username    string        `help:"WordPress user"`
	AppPassword string        `name:"app-password" help:"Application password for the user"`
	Timeout     time.Duration `help:"HTTP timeout for the update request" default:"30s"`
	DryRun      bool          `name:"dry-run" help:"Print the endpoint and body size without sending anything"`
}

func (c *PublishCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cat, err := storage.NewFileSource(c.Input, cfg.SiteDefaults()).Load(context.Background())
	if err != nil {
		return err
	}

	target := campaign.WPTarget{
		SiteURL:     c.SiteURL,
		PageID:      c.PageID,
		Username:    c.Username,
		AppPassword: c.AppPassword,
	}.Merge(cfg.WordPressTarget())

	if c.DryRun {
		if err := wordpress.Validate(target); err != nil {
			return err
		}
		body, err := wordpress.EncodeBody(render.Render(cat.Campaigns, cat.Settings))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(g.Out, "POST %s (%d bytes)\n", wordpress.Endpoint(target.SiteURL, target.PageID), len(body))
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	pub := wordpress.NewPublisher(
		wordpress.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		wordpress.WithLogger(log.Logger),
	)
	res := pub.Publish(ctx, cat.Campaigns, cat.Settings, target)
	if !res.Success {
		return errors.New(res.Message)
	}
	_, err = fmt.Fprintln(g.Out, res.Message)
	return err
}
