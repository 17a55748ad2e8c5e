package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"catalog-api/internal/models"
	"catalog-api/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// replaceIfExists overwrites a hash field only when it is already present,
// so an update never resurrects a deleted item.
var replaceIfExists = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// ItemRepo implements the storage.ItemRepository interface on a single Redis
// hash: field = item ID, value = JSON document.
type ItemRepo struct {
	rdb    redis.Cmdable
	key    string
	logger *zap.Logger
}

// NewItemRepo creates a new ItemRepo storing items under the given hash key.
func NewItemRepo(rdb redis.Cmdable, key string, logger *zap.Logger) *ItemRepo {
	return &ItemRepo{rdb: rdb, key: key, logger: logger.Named("redis.items")}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

func decodeItem(raw string) (models.Item, error) {
	var item models.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return models.Item{}, fmt.Errorf("%w: undecodable item document: %v", storage.ErrIntegrity, err)
	}
	return item, nil
}

func (r *ItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	all, err := r.rdb.HGetAll(ctx, r.key).Result()
	if err != nil {
		r.logger.Error("hgetall items", zap.Error(err))
		return nil, err
	}

	items := make([]models.Item, 0, len(all))
	for _, raw := range all {
		item, err := decodeItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	raw, err := r.rdb.HGet(ctx, r.key, id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		r.logger.Error("hget item", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	item, err := decodeItem(raw)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepo) Create(ctx context.Context, item *models.Item) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	created, err := r.rdb.HSetNX(ctx, r.key, item.ID.String(), raw).Result()
	if err != nil {
		r.logger.Error("hsetnx item", zap.Stringer("id", item.ID), zap.Error(err))
		return err
	}
	if !created {
		r.logger.Warn("duplicate item id", zap.Stringer("id", item.ID))
		return storage.ErrConflict
	}
	return nil
}

func (r *ItemRepo) Update(ctx context.Context, item *models.Item) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}
	replaced, err := replaceIfExists.Run(ctx, r.rdb, []string{r.key}, item.ID.String(), raw).Int()
	if err != nil {
		r.logger.Error("replace item", zap.Stringer("id", item.ID), zap.Error(err))
		return err
	}
	if replaced == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := r.rdb.HDel(ctx, r.key, id.String()).Result()
	if err != nil {
		r.logger.Error("hdel item", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	if removed == 0 {
		return storage.ErrNotFound
	}
	return nil
}
