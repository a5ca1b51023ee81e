package middleware

import (
	"net/http"

	"github.com/Bahjat/a11y-lint-tool/frontend/internal/platform/requestid"
)

// RequestID is middleware that assigns a request ID to each request and
// echoes it in the response. An inbound X-Request-ID header is reused so a
// browser round trip and the lint API call it triggers share one ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" || len(id) > 128 {
			id = requestid.New()
		}

		w.Header().Set(requestid.Header, id)
		ctx := requestid.NewContext(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
