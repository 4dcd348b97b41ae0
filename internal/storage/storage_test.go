package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-pages/internal/campaign"
	"promo-pages/internal/config"
	"promo-pages/internal/render"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestFileSource_Load(t *testing.T) {
	defaults := campaign.DefaultSettings()

	tests := []struct {
		name      string
		file      string
		body      string
		wantIDs   []string
		wantTitle string
		wantErr   string
	}{
		{
			name:      "json editor dump",
			file:      "db.json",
			body:      `{"campaigns":[{"id":"b","title":"B","isActive":false},{"id":"a","title":"A","isActive":true}],"settings":{"pageTitle":"Fırsatlar"},"wpSettings":{"siteUrl":"x"}}`,
			wantIDs:   []string{"b", "a"},
			wantTitle: "Fırsatlar",
		},
		{
			name:      "yaml without settings",
			file:      "catalog.yaml",
			body:      "campaigns:\n  - id: one\n    title: One\n    accentColor: \"#059669\"\n    isActive: true\n",
			wantIDs:   []string{"one"},
			wantTitle: defaults.PageTitle,
		},
		{
			name:      "explicitly empty campaigns",
			file:      "db.json",
			body:      `{"campaigns":[]}`,
			wantIDs:   nil,
			wantTitle: defaults.PageTitle,
		},
		{
			name:      "no campaigns key falls back to samples",
			file:      "db.json",
			body:      `{}`,
			wantIDs:   []string{"1", "2"},
			wantTitle: defaults.PageTitle,
		},
		{
			name:    "duplicate ids",
			file:    "db.json",
			body:    `{"campaigns":[{"id":"x"},{"id":"x"}]}`,
			wantErr: "duplicate campaign ids: x",
		},
		{
			name:    "malformed",
			file:    "db.json",
			body:    `{"campaigns": [`,
			wantErr: "decode catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewFileSource(writeFile(t, tt.file, tt.body), defaults)
			cat, err := src.Load(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, c := range cat.Campaigns {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTitle, cat.Settings.PageTitle)
		})
	}
}

func TestFileSource_AssignsMissingIDs(t *testing.T) {
	src := NewFileSource(writeFile(t, "db.yaml", "campaigns:\n  - title: A\n  - title: B\n"), campaign.SiteSettings{})
	cat, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Campaigns, 2)
	assert.NotEmpty(t, cat.Campaigns[0].ID)
	assert.NotEqual(t, cat.Campaigns[0].ID, cat.Campaigns[1].ID)
}

func TestFileSource_AssignedIDsStableAcrossLoads(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "campaigns:\n  - title: Spring\n    isActive: true\n")
	src := NewFileSource(path, campaign.DefaultSettings())

	first, err := src.Load(context.Background())
	require.NoError(t, err)
	second, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, first.Campaigns, 1)
	assert.Equal(t, first.Campaigns[0].ID, second.Campaigns[0].ID)
	assert.Equal(t, campaign.DerivedID(path, 0), first.Campaigns[0].ID)
	assert.Equal(t, render.Render(first.Campaigns, first.Settings), render.Render(second.Campaigns, second.Settings))
}

func TestFileSource_MissingFileUsesSamples(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.json"), campaign.DefaultSettings())
	require.NoError(t, src.Ping(context.Background()))

	cat, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, campaign.DefaultCampaigns(), cat.Campaigns)
}

func TestNew_SelectsFileSource(t *testing.T) {
	var cfg config.Config
	cfg.Source.Kind = config.SourceFile
	cfg.Source.Path = "catalog.yaml"

	src, err := New(context.Background(), cfg)
	require.NoError(t, err)
	fs, ok := src.(*FileSource)
	require.True(t, ok)
	assert.Equal(t, "catalog.yaml", fs.Path())
}

type stubSource struct {
	cat Catalog
	err error
}

func (s *stubSource) Load(context.Context) (Catalog, error) { return s.cat, s.err }
func (s *stubSource) Ping(context.Context) error            { return s.err }
func (s *stubSource) Close()                                {}

func TestRefresh_KeepsPreviousCatalogOnError(t *testing.T) {
	c := NewCache()
	_, ok := c.Get()
	assert.False(t, ok)

	n, err := Refresh(context.Background(), &stubSource{cat: Catalog{Campaigns: campaign.DefaultCampaigns()}}, c)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = Refresh(context.Background(), &stubSource{err: errors.New("db down")}, c)
	require.Error(t, err)

	got, ok := c.Get()
	require.True(t, ok)
	assert.Len(t, got.Campaigns, 2)
}

func TestCache_GetReturnsCopy(t *testing.T) {
	c := NewCache()
	c.Update(Catalog{Campaigns: campaign.DefaultCampaigns()})

	got, _ := c.Get()
	got.Campaigns[0].Title = "mutated"

	again, _ := c.Get()
	assert.NotEqual(t, "mutated", again.Campaigns[0].Title)
}
