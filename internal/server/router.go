package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-api/handlers"
	"github.com/portfolio-cms/portfolio-api/internal/config"
	"github.com/portfolio-cms/portfolio-api/internal/content"
	"github.com/portfolio-cms/portfolio-api/internal/content/handler"
	"github.com/portfolio-cms/portfolio-api/internal/content/service"
	"github.com/portfolio-cms/portfolio-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

// NewRouter builds the gin engine serving the content API. rdb may be nil;
// it is only used by the optional Redis-backed rate limiter.
func NewRouter(cfg *config.Config, reg *service.Registry, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	// content routes register their slash-suffixed forms themselves
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	r.GET("/ready", readiness(cfg, reg, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handlers.RegisterSwagger(r)

	api := r.Group("/api")
	handler.RegisterSingleton[content.Hero](api, "/hero", reg.Hero)
	handlers.NewAuthHandler(cfg.Auth).Register(api)

	handler.RegisterCollection[content.Item](api, "/portfolio", reg.Portfolio)
	handler.RegisterCollection[content.Item](api, "/articles", reg.Articles)
	handler.RegisterCollection[content.Education](api, "/education", reg.Education)
	handler.RegisterCollection[content.Experience](api, "/experience", reg.Experience)
	handler.RegisterCollection[content.Organization](api, "/organization", reg.Organizations)
	handler.RegisterCollection[content.Activity](api, "/activity", reg.Activities)
	handler.RegisterCollection[content.Skill](api, "/skills", reg.Skills)

	return r
}

// readiness answers 200 only when the content store (and Redis, when the
// limiter depends on it) responds.
func readiness(cfg *config.Config, reg *service.Registry, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		ready := true
		deps := map[string]bool{}

		deps["storage"] = reg.Ping(ctx) == nil
		if !deps["storage"] {
			ready = false
		}

		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = rdb != nil && rdb.Ping(ctx).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		}

		body := gin.H{"status": "ready", "backend": reg.Backend(), "deps": deps, "uptime": time.Since(startTime).String()}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
