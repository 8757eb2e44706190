package resources

import "embed"

// FS exposes the static resource files served under /static/.
//
//go:embed favicon.svg site.css
var FS embed.FS
