package http

import (
	"net/http"
	"strconv"
)

// LandingHandler serves the pre-rendered landing document.
type LandingHandler struct {
	Body []byte
	Lang string
}

func (h *LandingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", h.Lang)
	w.Header().Set("Content-Length", strconv.Itoa(len(h.Body)))
	w.Header().Set("Cache-Control", "public, max-age=300")
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(h.Body)
}
