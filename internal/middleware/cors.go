// Package middleware provides reusable HTTP middleware for the courseinfo API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 300

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
// Content-Disposition is exposed so a browser client can read the file name
// of a roster download.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:         corsMaxAge,
	})
	return c.Handler
}
