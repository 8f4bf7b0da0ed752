package cli

import (
	"fmt"
	"log/slog"

	"github.com/rpggio/toolbox/internal/config"
	"github.com/rpggio/toolbox/internal/sqlite"
)

// openStore opens the database file, creating its directory, and brings the
// schema up to date.
func openStore(cfg config.DBConfig, logger *slog.Logger) (*sqlite.DB, error) {
	if err := ensureParentDir(cfg.Path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := db.SchemaVersion()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("database ready", "path", cfg.Path, "schema_version", version, "dirty", dirty)
	return db, nil
}
