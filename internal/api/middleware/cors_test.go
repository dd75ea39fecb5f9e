package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studynest/studyspaces-backend/internal/api/middleware"
)

func corsHandler() http.Handler {
	return middleware.CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSMiddleware_AllowedOrigins(t *testing.T) {
	allowed := []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://127.0.0.1:5173",
		"http://192.168.1.42:5173",
		"http://10.0.0.7:3000",
	}

	for _, origin := range allowed {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/study-spaces", nil)
			req.Header.Set("Origin", origin)
			rr := httptest.NewRecorder()

			corsHandler().ServeHTTP(rr, req)

			assert.Equal(t, origin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			assert.Contains(t, rr.Header().Values("Vary"), "Origin")
		})
	}
}

func TestCORSMiddleware_DisallowedOrigins(t *testing.T) {
	disallowed := []string{
		"http://evil.example.com",
		"https://localhost:5173",
		"http://localhost:8080",
		"http://172.16.0.1:5173",
	}

	for _, origin := range disallowed {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/study-spaces", nil)
			req.Header.Set("Origin", origin)
			rr := httptest.NewRecorder()

			corsHandler().ServeHTTP(rr, req)

			assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/reviews/upload", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()

	corsHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
