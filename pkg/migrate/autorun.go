package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/invitation-backend/pkg/config"
	"github.com/angelmondragon/invitation-backend/pkg/db"
	"github.com/angelmondragon/invitation-backend/pkg/logger"
)

// MaybeRunDev applies pending migrations at boot when running in dev with
// INVITE_AUTO_MIGRATE set, so a fresh sqlite file comes up with the seeded
// catalog.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	dialect := db.Dialect(cfg.DB)
	ctx = logg.WithFields(ctx, map[string]any{"dir": DefaultDir, "dialect": dialect})
	logg.Info(ctx, "migrate.autorun_start")

	if err := Run(ctx, sqlDB, dialect, DefaultDir, "up"); err != nil {
		return fmt.Errorf("dev auto-migrate: %w", err)
	}

	logg.Info(ctx, "migrate.autorun_done")
	return nil
}
