// ABOUTME: API key authentication middleware
// ABOUTME: Optional X-API-Key check, enabled when keys are configured

package middleware

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyMiddleware creates a middleware that requires a valid X-API-Key
// header. With an empty key list the middleware is a no-op, so deployments
// without configured keys stay open. The health endpoint is always exempt.
func APIKeyMiddleware(keys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			presented := r.Header.Get("X-API-Key")
			for _, key := range keys {
				if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Unauthorized","message":"A valid X-API-Key header is required."}`))
		})
	}
}
