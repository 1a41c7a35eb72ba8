package handlers

// PageData is a generic view model for pages using the shared layout.
type PageData struct {
	Title     string
	SEO       SEOData
	Analytics Analytics
	Path      string

	// Optional per-page view model payloads
	Widget any
	Guide  any
}

// SEOData holds the head metadata rendered for a page.
type SEOData struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
}
