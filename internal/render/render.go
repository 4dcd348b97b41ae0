// Package render turns a campaign collection into the standalone HTML page
// that is previewed locally and pushed to WordPress.
package render

import (
	"bytes"
	"fmt"
	"time"

	"promo-pages/internal/campaign"
)

// Renderer produces documents. The zero value uses the wall clock for the
// footer year.
type Renderer struct {
	Now func() time.Time
}

type Option func(*Renderer)

// WithClock pins the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.Now = now }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{Now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

type page struct {
	Settings   campaign.SiteSettings
	QuickLinks []campaign.Campaign
	Cards      []campaign.Campaign
	Year       int
}

// Render returns the complete document for campaigns in input order. Only
// active campaigns get a quick link; the strip is omitted when none are.
func (r *Renderer) Render(campaigns []campaign.Campaign, settings campaign.SiteSettings) string {
	now := time.Now
	if r != nil && r.Now != nil {
		now = r.Now
	}
	p := page{
		Settings:   settings,
		QuickLinks: campaign.Active(campaigns),
		Cards:      campaigns,
		Year:       now().Year(),
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, p); err != nil {
		// the template only reads string/bool fields of a fixed shape
		panic(fmt.Errorf("render document: %w", err))
	}
	return buf.String()
}

var defaultRenderer = New()

// Render renders with the wall clock.
func Render(campaigns []campaign.Campaign, settings campaign.SiteSettings) string {
	return defaultRenderer.Render(campaigns, settings)
}
