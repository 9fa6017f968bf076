package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-api/internal/config"
	"github.com/portfolio-cms/portfolio-api/internal/content/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{BodyLimitBytes: 1 << 20},
		Auth:   config.AuthConfig{AdminPassword: "letmein"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSkillsLifecycle(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodPost, "/api/skills", `{"name":"Go"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = send(r, http.MethodPut, "/api/skills/"+id, `{"name":"Golang"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"Golang"`)

	w = send(r, http.MethodGet, "/api/skills", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Golang", list[0]["name"])

	w = send(r, http.MethodDelete, "/api/skills/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodGet, "/api/skills", "")
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestCollectionsAreIndependent(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodPost, "/api/portfolio", `{"title":"Shop"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodGet, "/api/articles", "")
	require.JSONEq(t, `[]`, w.Body.String())

	for _, p := range []string{"/api/education", "/api/experience", "/api/organization", "/api/activity"} {
		w = send(r, http.MethodGet, p, "")
		require.Equal(t, http.StatusOK, w.Code, p)
		require.JSONEq(t, `[]`, w.Body.String(), p)
	}
}

func TestHeroRoute(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodGet, "/api/hero", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{}`, w.Body.String())

	w = send(r, http.MethodPost, "/api/hero", `{"name":"Ada"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodGet, "/api/hero", "")
	require.Contains(t, w.Body.String(), `"name":"Ada"`)
}

func TestLoginRoute(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodPost, "/api/login", `{"password":"letmein"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)

	w = send(r, http.MethodPost, "/api/login", `{"password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthAndReady(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", w.Body.String())

	w = send(r, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, "memory", body["backend"])
}

func TestReadyFailsWithoutRedisWhenLimiterNeedsIt(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, UseRedis: true, RPS: 100, Burst: 100, WindowSeconds: 1}
	r := NewRouter(cfg, service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "not_ready")
}

func TestPreflight(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/skills/abc", nil)
	req.Header.Set("Origin", "https://admin.example")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBodyLimitApplies(t *testing.T) {
	cfg := testConfig()
	cfg.Server.BodyLimitBytes = 32
	r := NewRouter(cfg, service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodPost, "/api/portfolio", `{"title":"`+strings.Repeat("x", 100)+`"}`)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)
	w := send(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestTrailingSlashIsServedNotRedirected(t *testing.T) {
	r := NewRouter(testConfig(), service.NewMemoryRegistry(), nil)

	w := send(r, http.MethodPost, "/api/skills/", `{"name":"Go"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodGet, "/api/skills/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"Go"`)

	w = send(r, http.MethodPost, "/api/login/", `{"password":"letmein"}`)
	require.Equal(t, http.StatusOK, w.Code)
}
