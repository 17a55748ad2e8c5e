package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"catalog-api/internal/api/middleware"
	"catalog-api/internal/api/routes"
	"catalog-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router     *gin.Engine
	app        *app.Application // Store the application container
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(app *app.Application) *Server {
	gin.SetMode(app.Config.Server.Mode)
	router := gin.New()
	logger := app.Logger.Named("server")

	router.Use(middleware.Logger(app.Logger), gin.Recovery())

	// --- Configure and Apply CORS Middleware ---
	logger.Info("configuring CORS", zap.Strings("origins", app.Config.CORS.AllowedOrigins))
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range app.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"}, // Location carries the URL of created items
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, // How long the result of a preflight request can be cached
	}
	router.Use(cors.New(corsConfig))
	// --- End CORS Configuration ---

	if app.Config.Metrics.Enabled {
		router.Use(middleware.NewMetrics(app.Registry).Handler())
	}
	if rpm := app.Config.RateLimit.RequestsPerMinute; rpm > 0 {
		logger.Info("rate limiting enabled", zap.Int("requests_per_minute", rpm))
		router.Use(middleware.NewRateLimiter(rpm).Handler())
	}

	_ = router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	routes.RegisterRoutes(router, app)

	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	return &Server{
		router: router,
		app:    app,
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}
