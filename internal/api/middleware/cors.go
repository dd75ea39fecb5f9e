package middleware

import (
	"net/http"
	"regexp"
)

// Dev frontends run on Vite (5173) or CRA (3000), either on the loopback
// interface or on a private LAN address when testing from another device.
var allowedOrigins = map[string]bool{
	"http://localhost:5173": true,
	"http://localhost:3000": true,
	"http://127.0.0.1:5173": true,
	"http://127.0.0.1:3000": true,
}

var privateNetworkOrigin = regexp.MustCompile(
	`^http://(?:192\.168\.\d{1,3}\.\d{1,3}|10\.\d{1,3}\.\d{1,3}\.\d{1,3}):(?:5173|3000)$`)

func isAllowedOrigin(origin string) bool {
	return allowedOrigins[origin] || privateNetworkOrigin.MatchString(origin)
}

// CORSMiddleware adds CORS headers for the known frontend origins. Responses
// are credentialed, so the origin is echoed back rather than wildcarded.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && isAllowedOrigin(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
