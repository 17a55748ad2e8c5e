package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/models"
	"catalog-api/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const itemsTable = "items"

var itemColumns = []string{"id", "name", "description", "price", "created_date"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DBTX is the subset of *pgxpool.Pool used by the repositories.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ItemRepo implements the storage.ItemRepository interface using PostgreSQL.
type ItemRepo struct {
	db     DBTX
	logger *zap.Logger
}

// NewItemRepo creates a new ItemRepo.
func NewItemRepo(db DBTX, logger *zap.Logger) *ItemRepo {
	return &ItemRepo{db: db, logger: logger.Named("postgres.items")}
}

// Compile-time check to ensure ItemRepo implements ItemRepository
var _ storage.ItemRepository = (*ItemRepo)(nil)

func selectItemsQuery() sq.SelectBuilder {
	return psql.Select(itemColumns...).From(itemsTable)
}

func selectItemByIDQuery(id uuid.UUID) sq.SelectBuilder {
	// LIMIT 2 is enough to detect a duplicated id.
	return selectItemsQuery().Where(sq.Eq{"id": id.String()}).Limit(2)
}

func insertItemQuery(item *models.Item) sq.InsertBuilder {
	return psql.Insert(itemsTable).
		Columns(itemColumns...).
		Values(item.ID, item.Name, item.Description, item.Price, item.CreatedDate)
}

func updateItemQuery(item *models.Item) sq.UpdateBuilder {
	return psql.Update(itemsTable).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("price", item.Price).
		Where(sq.Eq{"id": item.ID.String()})
}

func deleteItemQuery(id uuid.UUID) sq.DeleteBuilder {
	return psql.Delete(itemsTable).Where(sq.Eq{"id": id.String()})
}

func (r *ItemRepo) queryItems(ctx context.Context, b sq.SelectBuilder) ([]models.Item, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Item])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	for i := range items {
		items[i].CreatedDate = items[i].CreatedDate.UTC()
	}
	return items, nil
}

func (r *ItemRepo) exec(ctx context.Context, b sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build statement: %w", err)
	}
	return r.db.Exec(ctx, query, args...)
}

func (r *ItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	items, err := r.queryItems(ctx, selectItemsQuery())
	if err != nil {
		r.logger.Error("query all items", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	items, err := r.queryItems(ctx, selectItemByIDQuery(id))
	if err != nil {
		r.logger.Error("query item", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}
	switch len(items) {
	case 0:
		return nil, storage.ErrNotFound
	case 1:
		return &items[0], nil
	default:
		return nil, fmt.Errorf("%w: %d items share id %s", storage.ErrIntegrity, len(items), id)
	}
}

func (r *ItemRepo) Create(ctx context.Context, item *models.Item) error {
	_, err := r.exec(ctx, insertItemQuery(item))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			r.logger.Warn("duplicate item id", zap.Stringer("id", item.ID))
			return storage.ErrConflict
		}
		r.logger.Error("insert item", zap.Stringer("id", item.ID), zap.Error(err))
		return err
	}
	return nil
}

func (r *ItemRepo) Update(ctx context.Context, item *models.Item) error {
	cmdTag, err := r.exec(ctx, updateItemQuery(item))
	if err != nil {
		r.logger.Error("update item", zap.Stringer("id", item.ID), zap.Error(err))
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.exec(ctx, deleteItemQuery(id))
	if err != nil {
		r.logger.Error("delete item", zap.Stringer("id", id), zap.Error(err))
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
