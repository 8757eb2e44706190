package middleware

import (
	"context"
	"net/http"
	"strings"

	"beregne/internal/logging"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type ctxKey string

const CtxRequestID ctxKey = "request_id"

// RequestID tags each request with an id, reusing a sane incoming one, and
// puts a logger carrying it into the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), CtxRequestID, id)
		ctx = logging.With(ctx, "request_id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(CtxRequestID).(string); ok {
		return v
	}
	return ""
}
