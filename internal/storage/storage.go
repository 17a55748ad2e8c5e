package storage

import (
	"context"

	"catalog-api/internal/models"

	"github.com/google/uuid"
)

// ItemRepository defines the interface for item data operations.
//
// Implementations live in the mongodb, postgres and redisstore subpackages.
// GetByID, Update and Delete report a missing item as ErrNotFound.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}
