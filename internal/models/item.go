package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog entry as persisted by the item stores.
//
// Price carries no range check here; the 1..1000 bound lives on the request DTOs.
type Item struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Price       float64   `json:"price" db:"price"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}
