package campaign

// Preset is a labelled value offered by the editor.
type Preset struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var DiscountPresets = []Preset{
	{Label: "%50 İndirim", Value: "%50 İndirim"},
	{Label: "1 Alana 1 Bedava", Value: "1 Alana 1 Bedava"},
	{Label: "Kargo Bedava", Value: "Kargo Bedava"},
	{Label: "Süper Fırsat", Value: "Süper Fırsat"},
	{Label: "Yıldızlı Ürün", Value: "Yıldızlı Ürün"},
	{Label: "Flaş İndirim", Value: "Flaş İndirim"},
	{Label: "Kupon Fırsatı", Value: "Kupon Fırsatı"},
}

var AccentColors = []Preset{
	{Label: "Hepsiburada Orange", Value: "#FF6000"},
	{Label: "Royal Blue", Value: "#1E40AF"},
	{Label: "Emerald", Value: "#059669"},
	{Label: "Rose", Value: "#E11D48"},
	{Label: "Violet", Value: "#7C3AED"},
}

// DefaultSettings is used when no settings have been stored yet.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		PageTitle:    "Özel İndirim Rehberim",
		Description:  "En sevilen markalarda bugüne özel Hepsiburada fırsatlarını senin için listeledim.",
		PrimaryColor: "#FF6000",
	}
}

// DefaultCampaigns returns the sample cards shown on first run.
func DefaultCampaigns() []Campaign {
	return []Campaign{
		{
			ID:           "1",
			Title:        "Çocuk Kitaplarında Büyük Fırsat",
			DiscountType: "%50 İndirim",
			Description:  "En sevilen çocuk kitaplarında bugüne özel net %50 indirim fırsatını kaçırmayın.",
			Link:         "https://www.hepsiburada.com",
			ImageURL:     "https://images.unsplash.com/photo-1512820790803-83ca734da794?auto=format&fit=crop&q=80&w=400",
			ButtonText:   "Hemen İncele",
			AccentColor:  "#FF6000",
			IsActive:     true,
		},
		{
			ID:           "2",
			Title:        "Penti Marka Ürünler",
			DiscountType: "1 Alana 1 Bedava",
			Description:  "Penti ürünlerinde beklenen kampanya başladı. Sepette 1 alana 1 bedava avantajı sizi bekliyor.",
			Link:         "https://www.hepsiburada.com",
			ImageURL:     "https://images.unsplash.com/photo-1582562124811-c09040d0a901?auto=format&fit=crop&q=80&w=400",
			ButtonText:   "Fırsatı Yakala",
			AccentColor:  "#1E40AF",
			IsActive:     false,
		},
	}
}

// MergeSettings overlays non-empty fields of s onto base.
func MergeSettings(base, s SiteSettings) SiteSettings {
	if s.PageTitle != "" {
		base.PageTitle = s.PageTitle
	}
	if s.Description != "" {
		base.Description = s.Description
	}
	if s.HeaderImageURL != "" {
		base.HeaderImageURL = s.HeaderImageURL
	}
	if s.PrimaryColor != "" {
		base.PrimaryColor = s.PrimaryColor
	}
	return base
}
