package server

import (
	"github.com/gin-gonic/gin"

	"resume-coach/internal/ats"
	"resume-coach/internal/extract"
	"resume-coach/internal/interview"
	"resume-coach/internal/jobparse"
	"resume-coach/internal/scores"
	"resume-coach/internal/services/health"
	"resume-coach/internal/shared/config"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/server/middleware"
)

// RouterDeps carries the constructed feature handlers into the router.
type RouterDeps struct {
	Config    config.Config
	Health    *health.Handler
	ATS       *ats.Handler
	JobParse  *jobparse.Handler
	Interview *interview.Handler
	Extract   *extract.Handler
	Scores    *scores.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 20, Burst: 40},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	deps.Health.RegisterRoutes(api)
	deps.ATS.RegisterRoutes(api)
	deps.JobParse.RegisterRoutes(api)
	deps.Interview.RegisterRoutes(api)
	deps.Extract.RegisterRoutes(api)
	deps.Scores.RegisterRoutes(api)

	return r
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
