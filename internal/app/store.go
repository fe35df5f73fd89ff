package app

import (
	"context"
	"fmt"
	"log"

	"hoodbook/internal/config"
	"hoodbook/internal/database"
	"hoodbook/internal/repository"
)

// Store is the opened state backend together with its health probe and
// shutdown hook.
type Store struct {
	repository.StateStore
	Ping  func(ctx context.Context) error
	Close func() error
}

// OpenStore connects the backend selected by STORE_BACKEND.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := repository.NewRedisClient(cfg.RedisURL)
		if err := repository.RedisHealthCheck(ctx, client); err != nil {
			// keep serving from memory-backed documents until redis comes back
			log.Printf("state_store_degraded backend=redis error=%q", err.Error())
		}
		return &Store{
			StateStore: repository.NewRedisStore(client),
			Ping:       func(ctx context.Context) error { return repository.RedisHealthCheck(ctx, client) },
			Close:      client.Close,
		}, nil

	case config.BackendMemory:
		return &Store{
			StateStore: repository.NewMemoryStore(),
			Ping:       func(context.Context) error { return nil },
			Close:      func() error { return nil },
		}, nil
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	sqlStore := repository.NewSQLStore(db)
	if err := sqlStore.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate state store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	return &Store{
		StateStore: sqlStore,
		Ping:       sqlDB.PingContext,
		Close:      sqlDB.Close,
	}, nil
}
