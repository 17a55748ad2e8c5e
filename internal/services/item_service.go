package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"catalog-api/internal/models"
	"catalog-api/internal/storage"
	"catalog-api/internal/transport/dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type itemService struct {
	repo   storage.ItemRepository
	logger *zap.Logger
}

// NewItemService creates a new instance of ItemService.
func NewItemService(repo storage.ItemRepository, logger *zap.Logger) ItemService {
	return &itemService{
		repo:   repo,
		logger: logger.Named("items"),
	}
}

// ListItems returns every item, keeping only names that contain name
// (case-insensitive) when name is not blank.
func (s *itemService) ListItems(ctx context.Context, name string) ([]dto.ItemDTO, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("list items", zap.Error(err))
		return nil, MapRepoError(err, "listing items")
	}

	filter := strings.ToLower(strings.TrimSpace(name))
	result := make([]dto.ItemDTO, 0, len(items))
	for i := range items {
		if filter != "" && !strings.Contains(strings.ToLower(items[i].Name), filter) {
			continue
		}
		result = append(result, MapItemToDTO(&items[i]))
	}

	s.logger.Info("retrieved items", zap.Int("count", len(result)), zap.String("name_filter", name))
	return result, nil
}

func (s *itemService) GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemDTO, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError(err, "getting item by ID", id)
	}
	resp := MapItemToDTO(item)
	return &resp, nil
}

// CreateItem assigns a fresh ID and creation time; req must already be validated.
func (s *itemService) CreateItem(ctx context.Context, req *dto.CreateItemDTO) (*dto.ItemDTO, error) {
	item := &models.Item{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		// Stores keep millisecond precision at best.
		CreatedDate: time.Now().UTC().Truncate(time.Millisecond),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, s.repoError(err, "creating item", item.ID)
	}
	resp := MapItemToDTO(item)
	return &resp, nil
}

// UpdateItem overwrites name, description and price of an existing item.
// ID and CreatedDate are kept from the stored record.
func (s *itemService) UpdateItem(ctx context.Context, id uuid.UUID, req *dto.UpdateItemDTO) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.repoError(err, "fetching item for update", id)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price

	// The store replaces conditionally on ID, so a delete that raced the
	// lookup above still surfaces as ErrNotFound.
	if err := s.repo.Update(ctx, existing); err != nil {
		return s.repoError(err, "updating item", id)
	}
	return nil
}

func (s *itemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return s.repoError(err, "fetching item for delete", id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.repoError(err, "deleting item", id)
	}
	return nil
}

func (s *itemService) repoError(err error, operation string, id uuid.UUID) error {
	mapped := MapRepoError(err, operation)
	if !errors.Is(mapped, ErrNotFound) {
		s.logger.Error(operation, zap.Stringer("id", id), zap.Error(err))
	}
	return mapped
}
