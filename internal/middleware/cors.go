package middleware

import "net/http"

// CORS header values sent on every response of the fake weather API
const (
	AllowOrigin  = "*"
	AllowMethods = "GET, OPTIONS"
	AllowHeaders = "Content-Type"
)

// CORSHeadersMiddleware stamps the JSON content type and permissive CORS headers
// on every response, before the handler runs, so 404/405/500 answers carry them too
func CORSHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Type", "application/json")
		h.Set("Access-Control-Allow-Origin", AllowOrigin)
		h.Set("Access-Control-Allow-Methods", AllowMethods)
		h.Set("Access-Control-Allow-Headers", AllowHeaders)

		next.ServeHTTP(w, r)
	})
}
