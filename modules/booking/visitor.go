package booking

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bookingform/handler"
	"github.com/dmitrymomot/bookingform/pkg/cookie"
	"github.com/dmitrymomot/bookingform/pkg/logger"
)

// VisitorCookie holds the signed visitor id.
const VisitorCookie = "visitor"

var visitorKey = handler.NewContextKey("visitor_id")

// VisitorID returns the id stored by VisitorMiddleware.
func VisitorID(ctx context.Context) string {
	return handler.ContextValue[string](ctx, visitorKey)
}

// VisitorMiddleware reads the visitor id from its signed cookie. A missing,
// tampered or malformed cookie is replaced with a fresh id.
func VisitorMiddleware(cookies *cookie.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := cookies.GetSigned(r, VisitorCookie)
			if err != nil || uuid.Validate(id) != nil {
				id = uuid.NewString()
				cookies.SetSigned(w, VisitorCookie, id)
			}
			ctx := context.WithValue(r.Context(), visitorKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VisitorLoggerExtractor adds visitor_id to records logged with a request context.
func VisitorLoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := VisitorID(ctx); id != "" {
			return logger.VisitorID(id), true
		}
		return slog.Attr{}, false
	}
}
