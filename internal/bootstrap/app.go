package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/cvgen"
	"jobboard-backend/internal/cvstore"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/services/health"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/shared/telemetry"
)

// App holds shared dependencies and the router serving them.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Gateway        *jobs.Gateway
	CVGenService   *cvgen.Service
	CVStoreRepo    cvstore.Repo
	CVStoreService *cvstore.Service
	Health         *health.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.JobServiceURL) == "" {
		return nil, fmt.Errorf("job service url is required")
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:       cfg,
		DB:           sqlDB,
		Gateway:      jobs.NewGateway(cfg.JobServiceURL, cfg.UpstreamTimeout),
		CVGenService: cvgen.NewService(cfg.GenerationDelay, cfg.ParseDelay),
	}
	if sqlDB != nil {
		app.CVStoreRepo = &cvstore.PGRepo{DB: sqlDB}
		app.Health = health.NewService(sqlDB)
	} else {
		app.CVStoreRepo = cvstore.NewMemoryRepo()
		app.Health = health.NewService(nil)
	}
	app.CVStoreService = cvstore.NewService(app.CVStoreRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		JobsHandler:    jobs.NewHandler(app.Gateway),
		CVGenHandler:   cvgen.NewHandler(app.CVGenService),
		CVStoreHandler: cvstore.NewHandler(app.CVStoreService),
		Health:         app.Health,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":         cfg.Env,
		"job_service": cfg.JobServiceURL,
		"store":       app.Health.Status(ctx).Store,
	})
	return app, nil
}

// buildDB returns nil when DATABASE_URL is unset; the CV store then lives in memory.
var (
	connectDB = db.Connect
	migrateDB = db.RunMigrations
)

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.memory_store", map[string]any{"reason": "DATABASE_URL empty"})
		return nil, nil
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	opts := db.OptionsFromEnv(db.DefaultOptions())
	if db.IsLambdaRuntime() {
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		sqlDB, err = connectDB(ctx, cfg.DatabaseURL, opts)
	}
	if err == nil {
		if err = migrateDB(ctx, sqlDB); err != nil && !db.IsLambdaRuntime() {
			// the Lambda pool is a process-wide singleton and stays open
			_ = sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Error("bootstrap.memory_store", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, fmt.Errorf("database: %w", err)
	}
	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
