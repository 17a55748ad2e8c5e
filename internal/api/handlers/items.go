package handlers

import (
	"errors"
	"net/http"
	"strings"

	"catalog-api/internal/services"
	"catalog-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ItemHandler holds the service dependency for item operations
type ItemHandler struct {
	service   services.ItemService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewItemHandler creates a new ItemHandler with the given service
func NewItemHandler(service services.ItemService, validate *validator.Validate, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{service: service, validator: validate, logger: logger.Named("handlers.items")}
}

// GetItems godoc
// @Summary      List items
// @Description  Retrieves all items. When name is given, only items whose name contains it (case-insensitive) are returned.
// @Tags         items
// @Produce      json
// @Param        name query     string false "Case-insensitive name substring"
// @Success      200  {array}   dto.ItemDTO "Successfully retrieved list of items"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.logger.Error("fetching items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID godoc
// @Summary      Get an item by ID
// @Description  Retrieves details for a specific item by its ID.
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item ID" Format(uuid)
// @Success      200  {object}  dto.ItemDTO "Successfully retrieved item"
// @Failure      400  {object}  map[string]string "Malformed ID"
// @Failure      404  "Item Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			h.logger.Error("fetching item", zap.Stringer("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary      Create a new item
// @Description  Adds a new item. The server assigns the ID and creation date.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item body      dto.CreateItemDTO true  "Item to create"
// @Success      201  {object}  dto.ItemDTO "Item created successfully"
// @Header       201  {string}  Location "URL of the new item"
// @Failure      400  {object}  map[string]any "Bad Request - Invalid input"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items [post]
// @Security     BearerAuth
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req dto.CreateItemDTO
	if !h.bindAndValidate(c, &req) {
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("creating item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+item.ID.String())
	c.JSON(http.StatusCreated, item)
}

// UpdateItem godoc
// @Summary      Update an existing item
// @Description  Replaces name, description and price of an item. ID and creation date never change.
// @Tags         items
// @Accept       json
// @Param        id   path      string            true  "Item ID" Format(uuid)
// @Param        item body      dto.UpdateItemDTO true  "New item values"
// @Success      204  "Item updated successfully"
// @Failure      400  {object}  map[string]any "Bad Request - Invalid input"
// @Failure      404  "Item Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items/{id} [put]
// @Security     BearerAuth
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateItemDTO
	if !h.bindAndValidate(c, &req) {
		return
	}

	if err := h.service.UpdateItem(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			h.logger.Error("updating item", zap.Stringer("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteItem godoc
// @Summary      Delete an item by ID
// @Description  Removes an item by its ID.
// @Tags         items
// @Param        id   path      string  true  "Item ID" Format(uuid)
// @Success      204  "Item deleted successfully"
// @Failure      400  {object}  map[string]string "Malformed ID"
// @Failure      404  "Item Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Router       /items/{id} [delete]
// @Security     BearerAuth
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.Status(http.StatusNotFound)
		} else {
			h.logger.Error("deleting item", zap.Stringer("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		}
		return
	}

	c.Status(http.StatusNoContent) // Standard response for successful DELETE
}
