package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"beregne/internal/http/middleware"
	"beregne/internal/logging"
)

type MiddlewareOptions struct {
	// FrameSrc is the only URL the page may embed in a frame.
	FrameSrc string
	// Limiter is optional; nil disables rate limiting.
	Limiter *middleware.RateLimiter
	// TrustProxy reads client addresses from forwarding headers in logs.
	TrustProxy bool
}

func WithStandardMiddleware(next http.Handler, opts MiddlewareOptions) http.Handler {
	return middleware.RequestID(requestLogger(securityHeaders(opts.Limiter.Limit(next), opts.FrameSrc), opts.TrustProxy))
}

func securityHeaders(next http.Handler, frameSrc string) http.Handler {
	csp := contentSecurityPolicy(frameSrc)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy", csp)
		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(frameSrc string) string {
	frame := "'none'"
	if origin := originOf(frameSrc); origin != "" {
		frame = origin
	}
	return strings.Join([]string{
		"default-src 'self'",
		"img-src 'self' data:",
		"style-src 'self'",
		"frame-src " + frame,
		"frame-ancestors 'none'",
		"base-uri 'none'",
		"form-action 'none'",
	}, "; ")
}

func originOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func requestLogger(next http.Handler, trustProxy bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &wrapWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(ww, r)
		logging.From(r.Context()).Info("http.request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.status,
			"client", middleware.ClientIP(r, trustProxy),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type wrapWriter struct {
	http.ResponseWriter
	status int
}

func (w *wrapWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
