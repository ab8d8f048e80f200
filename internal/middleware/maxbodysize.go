package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes. A request whose Content-Length already exceeds the
// limit is rejected with 413 before reaching the next handler; otherwise the
// body is wrapped in http.MaxBytesReader so reads fail once the limit is hit.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				//nolint:errcheck
				w.Write([]byte(`{"error":{"code":"request_too_large","message":"request body too large"}}` + "\n"))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
