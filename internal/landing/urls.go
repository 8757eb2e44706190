package landing

import "strings"

const (
	DefaultOrigin  = "http://127.0.0.1:8000"
	DefaultContact = "support@beregne.no"

	dashboardPath = "/dashboard"
	widgetPath    = "/widget/househacker"
)

// Links holds the external destinations the page points at.
type Links struct {
	Dashboard string
	Widget    string
	Contact   string
}

// DefaultLinks points at the calculator service on the local machine.
func DefaultLinks() Links {
	return LinksFor(DefaultOrigin, DefaultContact)
}

// LinksFor derives the dashboard and widget URLs from the service origin.
func LinksFor(origin, contactEmail string) Links {
	return Links{
		Dashboard: originLink(origin, dashboardPath),
		Widget:    originLink(origin, widgetPath),
		Contact:   "mailto:" + contactEmail,
	}
}

func originLink(origin, path string) string {
	base := strings.TrimRight(origin, "/")
	if base == "" {
		return path
	}
	return base + path
}
