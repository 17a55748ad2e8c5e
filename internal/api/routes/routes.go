package routes

import (
	"catalog-api/internal/api/handlers"
	"catalog-api/internal/api/middleware"
	"catalog-api/internal/app"
	"catalog-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	// Create service and handler
	itemService := services.NewItemService(app.ItemRepo, app.Logger)
	itemHandler := handlers.NewItemHandler(itemService, app.Validator, app.Logger)

	// --- Middleware ---
	var writeMiddleware []gin.HandlerFunc
	if app.Config.Auth.Enabled {
		writeMiddleware = append(writeMiddleware, middleware.JWTAuthMiddleware(app.Config.Auth.JWTSecret, app.Logger))
	}

	// --- Register Resource Routes ---
	RegisterItemRoutes(&router.RouterGroup, itemHandler, writeMiddleware...)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	if app.Config.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))
	}

	app.Logger.Debug("configuring swagger ui handler", zap.String("path", "/swagger/index.html"))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
