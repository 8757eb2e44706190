package http

import (
	"net/http"

	"beregne/internal/site"
	"beregne/resources"
)

// NewMux renders the landing page once and mounts it with the health and
// static routes.
func NewMux(s *site.Site) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	body, err := s.Bytes()
	if err != nil {
		return nil, err
	}

	mux.Handle("GET /{$}", &LandingHandler{Body: body, Lang: s.Lang.String()})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(resources.FS)))
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/favicon.svg", http.StatusMovedPermanently)
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	return mux, nil
}
