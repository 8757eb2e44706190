package web

// HeadData is rendered by the shared head partial on every page.
type HeadData struct {
	Title       string
	Description string
	Lang        string
}

// Page wraps shared Head + page-specific Content.
type Page[T any] struct {
	Head    HeadData
	Content T
}
