package services

import (
	"errors"
	"fmt"

	"catalog-api/internal/models"
	"catalog-api/internal/storage"
	"catalog-api/internal/transport/dto"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// MapItemToDTO converts a models.Item to a dto.ItemDTO
func MapItemToDTO(item *models.Item) dto.ItemDTO {
	return dto.ItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedDate: item.CreatedDate,
	}
}
