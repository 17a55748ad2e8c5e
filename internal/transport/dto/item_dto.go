package dto

import (
	"time"

	"github.com/google/uuid"
)

// ItemDTO is the wire representation of an item.
type ItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedDate time.Time `json:"createdDate"`
}

// CreateItemDTO defines the structure for creating a new item.
type CreateItemDTO struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gte=1,lte=1000"`
}

// UpdateItemDTO defines the structure for updating an existing item.
// The item ID is taken from the request path.
type UpdateItemDTO struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gte=1,lte=1000"`
}
