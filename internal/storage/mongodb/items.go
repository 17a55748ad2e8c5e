package mongodb

import (
	"context"
	"fmt"
	"time"

	"catalog-api/internal/models"
	"catalog-api/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// itemDocument is the stored shape of an item. The UUID is kept as its
// string form so documents stay readable from the mongo shell.
type itemDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	CreatedDate time.Time `bson:"createdDate"`
}

func toDocument(item *models.Item) itemDocument {
	return itemDocument{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		CreatedDate: item.CreatedDate,
	}
}

func (d itemDocument) toModel() (models.Item, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: item document has invalid _id %q", storage.ErrIntegrity, d.ID)
	}
	return models.Item{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		CreatedDate: d.CreatedDate.UTC(),
	}, nil
}

// ItemRepo implements the storage.ItemRepository interface using MongoDB.
type ItemRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
	logger  *zap.Logger
}

// NewItemRepo creates a new ItemRepo over the named collection of db.
// A zero timeout leaves deadlines to the caller's context.
func NewItemRepo(db *mongo.Database, collection string, timeout time.Duration, logger *zap.Logger) *ItemRepo {
	return &ItemRepo{
		coll:    db.Collection(collection),
		timeout: timeout,
		logger:  logger.Named("mongo.items"),
	}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

func (r *ItemRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func byID(id uuid.UUID) bson.D {
	return bson.D{{Key: "_id", Value: id.String()}}
}

func (r *ItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		r.logger.Error("find all items", zap.Error(err))
		return nil, err
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("decode items", zap.Error(err))
		return nil, err
	}

	items := make([]models.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetByID fetches up to two documents so a duplicated _id is reported as
// storage.ErrIntegrity instead of silently picking one.
func (r *ItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, byID(id), options.Find().SetLimit(2))
	if err != nil {
		r.logger.Error("find item", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}

	var docs []itemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("decode item", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}

	switch len(docs) {
	case 0:
		return nil, storage.ErrNotFound
	case 1:
		item, err := docs[0].toModel()
		if err != nil {
			return nil, err
		}
		return &item, nil
	default:
		return nil, fmt.Errorf("%w: %d items share id %s", storage.ErrIntegrity, len(docs), id)
	}
}

func (r *ItemRepo) Create(ctx context.Context, item *models.Item) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toDocument(item)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("duplicate item id", zap.Stringer("id", item.ID))
			return storage.ErrConflict
		}
		r.logger.Error("insert item", zap.Stringer("id", item.ID), zap.Error(err))
		return err
	}
	return nil
}

// Update replaces the whole document matching item.ID in a single call.
func (r *ItemRepo) Update(ctx context.Context, item *models.Item) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, byID(item.ID), toDocument(item))
	if err != nil {
		r.logger.Error("replace item", zap.Stringer("id", item.ID), zap.Error(err))
		return err
	}
	if res.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		r.logger.Error("delete item", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
