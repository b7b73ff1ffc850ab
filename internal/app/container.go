package app

import (
	"context"
	"log"
	"os"
	"time"

	"kindred/internal/config"
	"kindred/internal/database"
	"kindred/internal/database/migration"
	dbpostgres "kindred/internal/database/postgres"
	"kindred/internal/database/seeder"
	"kindred/internal/infrastructure/cache"
	"kindred/migrations"
)

// Container holds the process-wide dependencies: config, the Postgres pool
// and the Redis client, plus the shared logger.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Files: migrations.FS}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.App.Environment == "development" {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	return &Container{Config: cfg, DB: db, Cache: redis, Logger: logger}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
