package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/config"
	middlewares "github.com/prefeitura-rio/app-busca-processos/internal/middleware"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

type emptySearcher struct{}

func (emptySearcher) Send(context.Context, court.Descriptor, query.SearchQuery) (adapter.RawResponse, error) {
	return adapter.RawResponse{"hits": map[string]interface{}{"total": map[string]interface{}{"value": float64(0)}, "hits": []interface{}{}}}, nil
}

func newTestRouter(t *testing.T, origins []string) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, err := query.NewRouter(court.Default())
	require.NoError(t, err)
	engine := search.NewEngine(router, emptySearcher{}, court.Default(), nil)

	cfg := &config.Config{Environment: "test", AllowedOrigins: origins}
	return SetupRouter(cfg, engine, nil, zap.NewNop())
}

func TestSetupRouterRoutes(t *testing.T) {
	r := newTestRouter(t, []string{"*"})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/liveness", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/v1/busca?q=habeas", http.StatusOK},
		{http.MethodGet, "/api/v1/tribunais", http.StatusOK},
		{http.MethodGet, "/api/v1/tribunais/tjrj", http.StatusOK},
		{http.MethodGet, "/api/v1/processos/0000001-70.2020.2.19.0001", http.StatusNotFound},
		{http.MethodGet, "/swagger/index.html", http.StatusOK},
		{http.MethodGet, "/api/v1/inexistente", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))
		})
	}
}

func TestSetupRouterChatDisabled(t *testing.T) {
	r := newTestRouter(t, []string{"*"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"oi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"qualquer origem", []string{"*"}, "https://exemplo.rio", "*"},
		{"origem permitida", []string{"https://prefeitura.rio"}, "https://prefeitura.rio", "https://prefeitura.rio"},
		{"origem recusada", []string{"https://prefeitura.rio"}, "https://outro.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, tt.origins)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/liveness", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
