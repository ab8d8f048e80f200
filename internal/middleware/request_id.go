package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// EchoRequestID copies the ID that chimiddleware.RequestID stored in the
// request context onto the X-Request-Id response header, so a client can
// quote it when reporting a failed request. It must run after RequestID.
func EchoRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chimiddleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(chimiddleware.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
