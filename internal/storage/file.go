package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"promo-pages/internal/campaign"
)

// FileSource reads a catalog from a YAML or JSON document shaped like
// {"campaigns": [...], "settings": {...}}. Unknown keys are ignored.
type FileSource struct {
	path     string
	defaults campaign.SiteSettings
}

func NewFileSource(path string, defaults campaign.SiteSettings) *FileSource {
	return &FileSource{path: path, defaults: defaults}
}

type fileDoc struct {
	Campaigns *[]campaign.Campaign  `yaml:"campaigns"`
	Settings  campaign.SiteSettings `yaml:"settings"`
}

// Load returns the sample catalog when the file does not exist yet.
// Campaigns without an id get one.
func (s *FileSource) Load(_ context.Context) (Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Catalog{Campaigns: campaign.DefaultCampaigns(), Settings: s.defaults}, nil
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog %s: %w", s.path, err)
	}

	c := Catalog{Settings: campaign.MergeSettings(s.defaults, doc.Settings)}
	if doc.Campaigns != nil {
		c.Campaigns = *doc.Campaigns
	} else {
		c.Campaigns = campaign.DefaultCampaigns()
	}
	c, err = finish(c, s.path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", s.path, err)
	}
	return c, nil
}

func (s *FileSource) Ping(_ context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileSource) Close() {}

func (s *FileSource) Path() string { return s.path }
