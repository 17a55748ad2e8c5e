package routes

import (
	"catalog-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers all routes related to items.
// writeMiddleware runs only in front of the mutating routes.
func RegisterItemRoutes(rg *gin.RouterGroup, itemHandler handlers.ItemHandlerInterface, writeMiddleware ...gin.HandlerFunc) {
	// Define the sub-group for items (e.g., /items)
	items := rg.Group("/items")
	{
		items.GET("", itemHandler.GetItems)
		items.GET("/:id", itemHandler.GetItemByID)
	}

	writes := items.Group("")
	writes.Use(writeMiddleware...)
	{
		writes.POST("", itemHandler.CreateItem)
		writes.PUT("/:id", itemHandler.UpdateItem)
		writes.DELETE("/:id", itemHandler.DeleteItem)
	}
}
