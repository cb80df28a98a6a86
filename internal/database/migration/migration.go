package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

// List-valued fields are stored as JSONB arrays; position keeps the authored
// collection order.
var steps = []migrationStep{
	{
		Name: "create_table_profile",
		SQL: `CREATE TABLE IF NOT EXISTS profile (
  id   SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
  data JSONB    NOT NULL
);`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id                     TEXT    PRIMARY KEY,
  position               INT     NOT NULL,
  title                  TEXT    NOT NULL,
  description            TEXT    NOT NULL DEFAULT '',
  tags                   JSONB   NOT NULL DEFAULT '[]',
  image_url              TEXT    NOT NULL DEFAULT '',
  category               TEXT    NOT NULL CHECK (category IN ('tech', 'robotics', 'iot', 'ai')),
  featured               BOOLEAN NOT NULL DEFAULT false,
  date                   TEXT    NOT NULL DEFAULT '',
  link                   TEXT    NOT NULL DEFAULT '',
  full_description       TEXT    NOT NULL DEFAULT '',
  full_description_image TEXT    NOT NULL DEFAULT '',
  journey                TEXT    NOT NULL DEFAULT '',
  journey_image          TEXT    NOT NULL DEFAULT '',
  challenges             TEXT    NOT NULL DEFAULT '',
  challenges_image       TEXT    NOT NULL DEFAULT '',
  tech_stack             JSONB   NOT NULL DEFAULT '[]',
  github_link            TEXT    NOT NULL DEFAULT '',
  demo_link              TEXT    NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_media",
		SQL: `CREATE TABLE IF NOT EXISTS media (
  kind        TEXT    NOT NULL CHECK (kind IN ('animations', 'edits')),
  id          TEXT    NOT NULL,
  position    INT     NOT NULL,
  title       TEXT    NOT NULL,
  description TEXT    NOT NULL DEFAULT '',
  video_url   TEXT    NOT NULL DEFAULT '',
  image_url   TEXT    NOT NULL DEFAULT '',
  featured    BOOLEAN NOT NULL DEFAULT false,
  date        TEXT    NOT NULL DEFAULT '',
  software    JSONB   NOT NULL DEFAULT '[]',
  PRIMARY KEY (kind, id)
);`,
	},
	{
		Name: "create_table_blog_posts",
		SQL: `CREATE TABLE IF NOT EXISTS blog_posts (
  id        TEXT    PRIMARY KEY,
  position  INT     NOT NULL,
  title     TEXT    NOT NULL,
  excerpt   TEXT    NOT NULL DEFAULT '',
  date      TEXT    NOT NULL DEFAULT '',
  read_time TEXT    NOT NULL DEFAULT '',
  image_url TEXT    NOT NULL DEFAULT '',
  featured  BOOLEAN NOT NULL DEFAULT false,
  tags      JSONB   NOT NULL DEFAULT '[]',
  author    TEXT    NOT NULL DEFAULT '',
  content   JSONB   NOT NULL DEFAULT '[]'
);`,
	},
	{
		Name: "create_index_media_kind_position",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_media_kind_position ON media (kind, position);`,
	},
}

// EnsureMigrated checks if the 'projects' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logging.Info("database", "db_migration_check", map[string]any{
		"status":  "starting",
		"db_host": dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.projects') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logging.Error("database", "db_migration_failed", err, map[string]any{
			"status":      "error",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logging.Info("database", "db_migration_skip", map[string]any{
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logging.Error("database", "db_migration_failed", err, map[string]any{
				"status":           "error",
				"migration_step":   step.Name,
				"db_host":          dbHost,
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logging.Info("database", "db_migration_step", map[string]any{
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logging.Info("database", "db_migration_success", map[string]any{
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
