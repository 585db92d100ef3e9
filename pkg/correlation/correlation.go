// Package correlation assigns a unique request id to every inbound request
// and exposes it through the request context so log lines and error paths
// can be tied back to a single request.
package correlation

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the response header the request id is echoed on.
const Header = "X-Request-Id"

// Unknown is logged in place of a request id when none was bound to the
// context, e.g. a fault before the correlation middleware ran.
const Unknown = "unknown"

type ctxKey struct{}

// Middleware generates a fresh UUIDv4 request id per inbound request, binds
// it to the request context, and echoes it on the response. It must be the
// outermost middleware so every downstream log line carries the id.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
		})
	}
}

// NewContext returns a copy of ctx carrying the given request id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id bound to ctx, or "" if none.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}
