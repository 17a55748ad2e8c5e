package mocks

import (
	"context"

	"catalog-api/internal/services"
	"catalog-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockItemService is a mock type for the services.ItemService interface
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) ListItems(ctx context.Context, name string) ([]dto.ItemDTO, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ItemDTO), args.Error(1)
}

func (m *MockItemService) GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemDTO), args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, req *dto.CreateItemDTO) (*dto.ItemDTO, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ItemDTO), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, id uuid.UUID, req *dto.UpdateItemDTO) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *MockItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var _ services.ItemService = (*MockItemService)(nil)
