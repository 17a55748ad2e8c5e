package handlers

import "github.com/gin-gonic/gin"

// ItemHandlerInterface defines the methods needed by the item routes.
type ItemHandlerInterface interface {
	GetItems(c *gin.Context)
	CreateItem(c *gin.Context)
	GetItemByID(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ ItemHandlerInterface = (*ItemHandler)(nil)
