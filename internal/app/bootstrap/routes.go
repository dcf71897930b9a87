// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	apifeature "github.com/dalemusser/learnhub/internal/app/features/api"
	errorsfeature "github.com/dalemusser/learnhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/learnhub/internal/app/features/health"
	libraryfeature "github.com/dalemusser/learnhub/internal/app/features/library"
	_ "github.com/dalemusser/learnhub/internal/app/features/library/views"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// LearnHub initializes the template engine and mounts the health endpoint,
// the resource REST API, static assets, and the browsable library page.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.LearnHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Resource REST API
	apiHandler := apifeature.NewHandler(deps.LearnHubMongoDatabase, errLog, logger)
	r.Mount("/api/resources", apifeature.Routes(apiHandler))

	// Browsable library page at the site root
	secure := coreCfg.Env == "prod"
	prefs := libraryfeature.NewPrefs(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	libraryHandler := libraryfeature.NewHandler(deps.LearnHubMongoDatabase, prefs, errLog, logger)
	r.Mount("/", libraryfeature.Routes(libraryHandler))

	return r, nil
}
