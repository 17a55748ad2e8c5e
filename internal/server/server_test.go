package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog-api/config"
	"catalog-api/internal/app"
	"catalog-api/internal/mocks"
	"catalog-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *mocks.MockItemRepository) {
	t.Helper()
	cfg := &config.Config{
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 0, Mode: gin.TestMode},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Metrics: config.MetricsConfig{Enabled: true},
	}
	if mutate != nil {
		mutate(cfg)
	}
	repo := new(mocks.MockItemRepository)
	return NewServer(app.NewWithRepository(cfg, zap.NewNop(), repo)), repo
}

func TestServer_ServesItemsAndMetrics(t *testing.T) {
	srv, repo := newTestServer(t, nil)
	repo.On("GetAll", mock.Anything).Return([]models.Item{}, nil).Once()

	recorder := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `catalog_http_requests_total{method="GET",route="/items",status="200"} 1`)
	repo.AssertExpectations(t)
}

func TestServer_CORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	request := httptest.NewRequest(http.MethodOptions, "/items", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	recorder := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RateLimit(t *testing.T) {
	srv, repo := newTestServer(t, func(cfg *config.Config) { cfg.RateLimit.RequestsPerMinute = 1 })
	repo.On("GetAll", mock.Anything).Return([]models.Item{}, nil).Once()

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		srv.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items", nil))
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestServer_ListenAddress(t *testing.T) {
	srv, _ := newTestServer(t, func(cfg *config.Config) { cfg.Server.Port = 9091 })

	assert.Equal(t, "127.0.0.1:9091", srv.httpServer.Addr)
}
