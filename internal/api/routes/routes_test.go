package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog-api/config"
	"catalog-api/internal/api/handlers"
	"catalog-api/internal/api/routes"
	"catalog-api/internal/app"
	"catalog-api/internal/mocks"
	"catalog-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockItemHandler is a mock implementation of ItemHandlerInterface
type MockItemHandler struct {
	mock.Mock
}

func (m *MockItemHandler) GetItems(c *gin.Context)    { m.Called(c) }
func (m *MockItemHandler) CreateItem(c *gin.Context)  { m.Called(c) }
func (m *MockItemHandler) GetItemByID(c *gin.Context) { m.Called(c) }
func (m *MockItemHandler) UpdateItem(c *gin.Context)  { m.Called(c) }
func (m *MockItemHandler) DeleteItem(c *gin.Context)  { m.Called(c) }

// Ensure MockItemHandler implements the interface (compile-time check)
var _ handlers.ItemHandlerInterface = (*MockItemHandler)(nil)

func registeredRoutes(t *testing.T, router *gin.Engine) map[string]bool {
	t.Helper()
	registered := make(map[string]bool)
	for _, routeInfo := range router.Routes() {
		registered[routeInfo.Method+" "+routeInfo.Path] = true
		t.Logf("Registered: %s %s", routeInfo.Method, routeInfo.Path)
	}
	return registered
}

func TestRegisterItemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterItemRoutes(&router.RouterGroup, new(MockItemHandler))

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/items"},
		{http.MethodPost, "/items"},
		{http.MethodGet, "/items/:id"},
		{http.MethodPut, "/items/:id"},
		{http.MethodDelete, "/items/:id"},
	}

	registered := registeredRoutes(t, router)
	assert.Len(t, router.Routes(), len(expectedRoutes), "Number of registered routes should match expected")
	for _, expected := range expectedRoutes {
		assert.True(t, registered[expected.Method+" "+expected.Path], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestRegisterItemRoutes_WriteMiddlewareOnlyGuardsWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := new(MockItemHandler)
	handler.On("GetItems", mock.Anything).Return().Once()
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusForbidden) }

	routes.RegisterItemRoutes(&router.RouterGroup, handler, deny)

	for _, tc := range []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/items", http.StatusOK},
		{http.MethodPost, "/items", http.StatusForbidden},
		{http.MethodPut, "/items/" + uuid.NewString(), http.StatusForbidden},
		{http.MethodDelete, "/items/" + uuid.NewString(), http.StatusForbidden},
	} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, recorder.Code, "%s %s", tc.method, tc.path)
	}
	handler.AssertExpectations(t)
}

func newTestApp(cfg *config.Config, repo *mocks.MockItemRepository) *app.Application {
	return app.NewWithRepository(cfg, zap.NewNop(), repo)
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterRoutes(router, newTestApp(&config.Config{Metrics: config.MetricsConfig{Enabled: true}}, new(mocks.MockItemRepository)))

	registered := registeredRoutes(t, router)
	for _, key := range []string{"GET /items", "POST /items", "GET /health", "GET /metrics", "GET /swagger/*any"} {
		assert.True(t, registered[key], "Expected route %s to be registered", key)
	}
}

func TestRegisterRoutes_MetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterRoutes(router, newTestApp(&config.Config{}, new(mocks.MockItemRepository)))

	assert.False(t, registeredRoutes(t, router)["GET /metrics"])
}

func TestRegisterRoutes_AuthGuardsWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	repo := new(mocks.MockItemRepository)
	repo.On("GetAll", mock.Anything).Return([]models.Item{}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	cfg := &config.Config{Auth: config.AuthConfig{Enabled: true, JWTSecret: "s3cret"}}

	routes.RegisterRoutes(router, newTestApp(cfg, repo))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.Equal(t, http.StatusOK, recorder.Code, "reads stay public")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, newCreateRequest(""))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   "catalog-admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("s3cret"))
	require.NoError(t, err)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, newCreateRequest(signed))
	assert.Equal(t, http.StatusCreated, recorder.Code)
	repo.AssertExpectations(t)
}

func newCreateRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"Potion","price":10}`))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
