package app

import (
	"context"
	"database/sql"
	"fmt"

	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/database"
	"portfolio/internal/database/migration"
	"portfolio/internal/repository"
	"portfolio/internal/repository/file"
	"portfolio/internal/repository/postgres"
	"portfolio/internal/storage"
)

// OpenDB connects to PostgreSQL and applies the schema if it is missing.
func OpenDB(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenRepository returns the content repository for the configured source.
// The returned DB is nil unless the source is postgres.
func OpenRepository(ctx context.Context, cfg *config.AppConfig) (repository.ContentRepository, *sql.DB, error) {
	switch cfg.Content.Source {
	case config.SourceFile:
		repo, err := file.Open(cfg.Content.File, cfg.Content.BlogDir)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	case config.SourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewContentPostgres(db), db, nil
	}
	return nil, nil, fmt.Errorf("unknown content source %q", cfg.Content.Source)
}

// OpenStore loads the immutable content store from the configured source.
func OpenStore(ctx context.Context, cfg *config.AppConfig) (*content.Store, *sql.DB, error) {
	repo, db, err := OpenRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := content.Load(ctx, repo)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, err
	}
	return store, db, nil
}

// OpenMedia connects to object storage. It returns nil when storage is not
// configured.
func OpenMedia(ctx context.Context, cfg *config.AppConfig) (storage.Storage, error) {
	if !cfg.MinIO.Enabled() {
		return nil, nil
	}
	store, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	return store, nil
}

// ContactAddress is the configured address, or the profile's when unset.
func ContactAddress(cfg *config.AppConfig, store *content.Store) string {
	if cfg.Contact.Address != "" {
		return cfg.Contact.Address
	}
	return store.Profile().Email
}

// Serve opens every dependency described by cfg and runs the HTTP server
// until ctx is canceled.
func Serve(ctx context.Context, cfg *config.AppConfig) error {
	store, db, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	media, err := OpenMedia(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := NewServer(cfg, Options{Store: store, DB: db, Media: media})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
