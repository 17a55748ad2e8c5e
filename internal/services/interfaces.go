package services

import (
	"context"

	"catalog-api/internal/transport/dto"

	"github.com/google/uuid"
)

// ItemService defines the interface for item-related business logic.
type ItemService interface {
	ListItems(ctx context.Context, name string) ([]dto.ItemDTO, error)
	GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemDTO, error)
	CreateItem(ctx context.Context, req *dto.CreateItemDTO) (*dto.ItemDTO, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *dto.UpdateItemDTO) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
