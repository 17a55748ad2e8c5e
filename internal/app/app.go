package app

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/config"
	"catalog-api/internal/database"
	"catalog-api/internal/storage"
	"catalog-api/internal/storage/mongodb"
	"catalog-api/internal/storage/postgres"
	"catalog-api/internal/storage/redisstore"
	"catalog-api/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	Logger    *zap.Logger
	Validator *validator.Validate
	ItemRepo  storage.ItemRepository
	Registry  *prometheus.Registry

	closers []func(context.Context) error
}

// New connects to the configured item store and assembles the container.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	a := &Application{
		Config:    cfg,
		Logger:    logger,
		Validator: validation.New(),
		Registry:  newRegistry(),
	}

	repo, err := a.openItemRepository(ctx)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}
	a.ItemRepo = repo
	return a, nil
}

// NewWithRepository builds a container around an already opened item store.
func NewWithRepository(cfg *config.Config, logger *zap.Logger, repo storage.ItemRepository) *Application {
	return &Application{
		Config:    cfg,
		Logger:    logger,
		Validator: validation.New(),
		ItemRepo:  repo,
		Registry:  newRegistry(),
	}
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func (a *Application) openItemRepository(ctx context.Context) (storage.ItemRepository, error) {
	cfg := a.Config
	logger := a.Logger.Named("storage")

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		return mongodb.NewItemRepo(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection, cfg.Mongo.Timeout, logger), nil

	case config.DriverPostgres:
		if err := database.RunMigrations(cfg.DB.DSN(), logger); err != nil {
			return nil, err
		}
		pool, err := database.NewConnectionPool(ctx, cfg.DB, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
		return postgres.NewItemRepo(pool, logger), nil

	case config.DriverRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		return redisstore.NewItemRepo(rdb, cfg.Redis.Key, logger), nil
	}

	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}

// Close releases store connections in reverse order of acquisition.
func (a *Application) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
