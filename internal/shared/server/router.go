package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/cvgen"
	"jobboard-backend/internal/cvstore"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/services/health"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

const (
	groupGenerate = "GENERATE"
	generatePath  = "/cv/generate"
)

// RouterDeps carries the handlers mounted on the engine. Nil handlers are skipped.
type RouterDeps struct {
	Config         config.Config
	JobsHandler    *jobs.Handler
	CVGenHandler   *cvgen.Handler
	CVStoreHandler *cvstore.Handler
	Health         *health.Service
	Now            func() time.Time
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// Job ids and queries are relayed byte-for-byte.
	r.UseRawPath = true
	r.UnescapePathValues = false

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    rateLimitRules(deps.Config),
			GroupFor: rateLimitGroup,
			Limiter:  middleware.NewRateLimiter(deps.Now),
		}),
	)

	r.GET("/health", func(c *gin.Context) {
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	r.GET("/metrics", metrics.Handler())

	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(r)
	}
	if deps.CVGenHandler != nil {
		deps.CVGenHandler.RegisterRoutes(r)
	}
	if deps.CVStoreHandler != nil {
		deps.CVStoreHandler.RegisterRoutes(r)
	}

	return r
}

// rateLimitRules only ever limits generation; the job proxy stays a pure pass-through.
func rateLimitRules(cfg config.Config) map[string]middleware.RateLimitRule {
	if cfg.GenerateRateLimit <= 0 || cfg.GenerateBurst <= 0 {
		return nil
	}
	return map[string]middleware.RateLimitRule{
		groupGenerate: {Rate: cfg.GenerateRateLimit, Burst: cfg.GenerateBurst},
	}
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && c.FullPath() == generatePath {
		return groupGenerate
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
