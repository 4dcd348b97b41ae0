package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActive_PreservesOrder(t *testing.T) {
	cs := []Campaign{
		{ID: "a", IsActive: true},
		{ID: "b"},
		{ID: "c", IsActive: true},
	}
	got := Active(cs)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Empty(t, Active([]Campaign{{ID: "x"}}))
}

func TestCheckUnique(t *testing.T) {
	tests := []struct {
		name    string
		cs      []Campaign
		wantErr string
	}{
		{"empty collection", nil, ""},
		{"unique", []Campaign{{ID: "1"}, {ID: "2"}}, ""},
		{"duplicate", []Campaign{{ID: "1"}, {ID: "2"}, {ID: "1"}, {ID: "1"}}, "duplicate campaign ids: 1"},
		{"missing id", []Campaign{{ID: "1"}, {}}, "index 1 has no id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUnique(tt.cs)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAssignIDs_KeepsExisting(t *testing.T) {
	cs := []Campaign{{ID: "keep"}, {}, {ID: "  "}}
	AssignIDs(cs, "db.json")
	assert.Equal(t, "keep", cs[0].ID)
	assert.NotEmpty(t, cs[1].ID)
	assert.NotEqual(t, cs[1].ID, cs[2].ID)
	assert.NoError(t, CheckUnique(cs))
}

func TestAssignIDs_StableForSameScope(t *testing.T) {
	first := []Campaign{{Title: "A"}, {Title: "B"}}
	second := []Campaign{{Title: "A"}, {Title: "B"}}
	AssignIDs(first, "catalog.yaml")
	AssignIDs(second, "catalog.yaml")
	assert.Equal(t, first, second)

	other := []Campaign{{Title: "A"}}
	AssignIDs(other, "other.yaml")
	assert.NotEqual(t, first[0].ID, other[0].ID)
	assert.Equal(t, DerivedID("catalog.yaml", 1), first[1].ID)
}

func TestWPTarget_Merge(t *testing.T) {
	defaults := WPTarget{SiteURL: "https://d.example", PageID: "7", Username: "admin", AppPassword: "secret"}
	got := WPTarget{PageID: "42"}.Merge(defaults)
	assert.Equal(t, WPTarget{SiteURL: "https://d.example", PageID: "42", Username: "admin", AppPassword: "secret"}, got)
}

func TestWPTarget_MergeTreatsBlankAsMissing(t *testing.T) {
	defaults := WPTarget{SiteURL: "https://d.example", PageID: "7", Username: "admin", AppPassword: "secret"}
	got := WPTarget{SiteURL: "\t", PageID: " ", Username: "editor"}.Merge(defaults)
	assert.Equal(t, WPTarget{SiteURL: "https://d.example", PageID: "7", Username: "editor", AppPassword: "secret"}, got)
}

func TestMergeSettings(t *testing.T) {
	got := MergeSettings(DefaultSettings(), SiteSettings{PageTitle: "Kampanyalar"})
	assert.Equal(t, "Kampanyalar", got.PageTitle)
	assert.Equal(t, DefaultSettings().Description, got.Description)
}

func TestDefaultCampaigns_AreUnique(t *testing.T) {
	assert.NoError(t, CheckUnique(DefaultCampaigns()))
}
