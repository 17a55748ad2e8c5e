package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindAndValidate decodes the JSON body into req and runs the struct
// validator. On failure it writes the 400 response and returns false.
func (h *ItemHandler) bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}
