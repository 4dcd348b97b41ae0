package campaign

import "strings"

// Campaign is one promotional card.
type Campaign struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	DiscountType string `json:"discountType" yaml:"discountType"` // badge text and quick-link label
	Description  string `json:"description" yaml:"description"`
	Link         string `json:"link" yaml:"link"`
	ImageURL     string `json:"imageUrl" yaml:"imageUrl"` // remote URL or data URI
	ButtonText   string `json:"buttonText" yaml:"buttonText"`
	AccentColor  string `json:"accentColor" yaml:"accentColor"`
	IsActive     bool   `json:"isActive" yaml:"isActive"`
}

// SiteSettings holds page-level copy. HeaderImageURL and PrimaryColor are
// stored alongside but not rendered.
type SiteSettings struct {
	PageTitle      string `json:"pageTitle" yaml:"pageTitle"`
	Description    string `json:"description" yaml:"description"`
	HeaderImageURL string `json:"headerImageUrl,omitempty" yaml:"headerImageUrl,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
}

// WPTarget identifies the WordPress page to overwrite and the credentials
// used to do it. It is supplied per publish call and never stored.
type WPTarget struct {
	SiteURL     string `json:"siteUrl" yaml:"siteUrl"`
	PageID      string `json:"pageId" yaml:"pageId"`
	Username    string `json:"username" yaml:"username"`
	AppPassword string `json:"appPassword" yaml:"appPassword"`
}

// Merge fills empty or whitespace-only fields of t from defaults.
func (t WPTarget) Merge(defaults WPTarget) WPTarget {
	if isBlank(t.SiteURL) {
		t.SiteURL = defaults.SiteURL
	}
	if isBlank(t.PageID) {
		t.PageID = defaults.PageID
	}
	if isBlank(t.Username) {
		t.Username = defaults.Username
	}
	if isBlank(t.AppPassword) {
		t.AppPassword = defaults.AppPassword
	}
	return t
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
