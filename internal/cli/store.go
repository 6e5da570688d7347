package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jask/splitpane/internal/config"
	"github.com/jask/splitpane/internal/database"
	"github.com/jask/splitpane/internal/database/repository"
	"github.com/jask/splitpane/internal/layout"
	"github.com/jask/splitpane/internal/prefs"
)

// openStore opens the configured layout store. The returned func releases
// the backend's resources.
func openStore(ctx context.Context, cfg config.StorageConfig) (layout.Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "sqlite":
		db, err := database.Open(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		if err := database.RunMigrationsWithDB(db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return repository.NewLayoutRepo(db), db.Close, nil
	case "file":
		path := cfg.File
		if path == "" {
			p, err := prefs.DefaultFilePath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		return prefs.NewFileStore(path), noop, nil
	case "redis":
		client, err := prefs.DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return prefs.NewRedisStore(client, cfg.KeyPrefix), client.Close, nil
	case "memory":
		return layout.NewMemoryStore(), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}
