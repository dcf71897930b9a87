// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/learnhub/internal/app/resources"
	resourcestore "github.com/dalemusser/learnhub/internal/app/store/resources"
	"github.com/dalemusser/learnhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
//
// LearnHub seeds the sample catalog here when the collection is empty, so a
// fresh install has something to browse. An already-populated database is
// left untouched.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	if !appCfg.SeedSampleData {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	store := resourcestore.New(deps.LearnHubMongoDatabase)
	inserted, err := store.SeedIfEmpty(ctx, resourcestore.SampleResources())
	if err != nil {
		logger.Error("seeding sample catalog failed", zap.Error(err))
		return err
	}
	if inserted > 0 {
		logger.Info("seeded sample catalog", zap.Int("resources", inserted))
	}
	return nil
}
