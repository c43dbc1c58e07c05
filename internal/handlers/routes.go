// Package handlers wires the HTTP surface: six fixed routes under /api,
// permissive CORS on every response, and a catch-all 404.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pagecraft/go-ai-website-builder/internal/archive"
	internalaws "github.com/pagecraft/go-ai-website-builder/internal/aws"
	"github.com/pagecraft/go-ai-website-builder/internal/generator"
	"github.com/pagecraft/go-ai-website-builder/internal/records"
	"github.com/pagecraft/go-ai-website-builder/internal/validation"
)

// List caps for the read endpoints.
const (
	GenerationsListLimit = 50
	StatusListLimit      = 1000
)

// DownloadFileName is the attachment name for the zip response.
const DownloadFileName = "generated-website.zip"

// HandlerConfig groups dependencies for the API handlers. Everything is
// constructed once at process start and injected; handlers hold no other state.
type HandlerConfig struct {
	Generator    generator.Generator
	Generations  *records.GenerationStore
	StatusChecks *records.StatusStore
	Metrics      *internalaws.MetricsPublisher // optional; nil disables metrics
	Logger       *zap.Logger
	AllowOrigin  string // CORS allowed origin; "" or "*" allows all
}

// NewRouter builds the gin engine: recovery, CORS, the /api routes and the
// 404 fallback. Unhandled panics become blank 500s and never reach the
// transport layer.
func NewRouter(cfg HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.AllowOrigin)))

	RegisterRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Route %s not found", c.Request.URL.Path),
		})
	})

	return r
}

func corsConfig(allowOrigin string) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if allowOrigin == "" || allowOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{allowOrigin}
	}
	return corsCfg
}

// RegisterRoutes registers the /api routes on the engine.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	builder := archive.NewBuilder()

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Website Builder API is running"})
	})

	api.POST("/generate", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.GenerateRequest
		if err := validation.BindAndValidate(c, &req, v, "Prompt is required and must be a string"); err != nil {
			// BindAndValidate already wrote a 400; nothing was generated or stored
			return
		}

		code, err := cfg.Generator.Generate(ctx, req.Prompt)
		if err != nil {
			cfg.Logger.Error("generation failed", zap.Error(err))
			cfg.countMetric(ctx, internalaws.MetricGenerationFailed)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate website"})
			return
		}

		rec := records.GenerationRecord{
			ID:        uuid.NewString(),
			Prompt:    req.Prompt,
			Code:      code,
			CreatedAt: time.Now().UTC(),
		}
		if err := cfg.Generations.Put(ctx, rec); err != nil {
			cfg.Logger.Error("failed to store generation", zap.Error(err), zap.String("id", rec.ID))
			cfg.countMetric(ctx, internalaws.MetricGenerationFailed)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generation"})
			return
		}

		cfg.countMetric(ctx, internalaws.MetricGenerationSucceeded)
		c.JSON(http.StatusOK, gin.H{"success": true, "code": code, "id": rec.ID})
	})

	api.POST("/download", func(c *gin.Context) {
		var req validation.DownloadRequest
		if err := validation.BindAndValidate(c, &req, v, "Code is required"); err != nil {
			return
		}

		data, err := builder.Build(req.Code)
		if err != nil {
			cfg.Logger.Error("failed to build archive", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zip file"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadFileName))
		c.Data(http.StatusOK, "application/zip", data)
	})

	api.GET("/generations", func(c *gin.Context) {
		list, err := cfg.Generations.ListRecent(c.Request.Context(), GenerationsListLimit)
		if err != nil {
			cfg.Logger.Error("failed to list generations", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch generations"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	api.POST("/status", func(c *gin.Context) {
		var req validation.StatusRequest
		if err := validation.BindAndValidate(c, &req, v, "client_name is required"); err != nil {
			return
		}

		rec := records.StatusRecord{
			ID:         uuid.NewString(),
			ClientName: req.ClientName,
			CreatedAt:  time.Now().UTC(),
		}
		if err := cfg.StatusChecks.Put(c.Request.Context(), rec); err != nil {
			cfg.Logger.Error("failed to store status check", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create status check"})
			return
		}

		c.JSON(http.StatusOK, records.StatusView{
			ID:         rec.ID,
			ClientName: rec.ClientName,
			Timestamp:  rec.CreatedAt,
		})
	})

	api.GET("/status", func(c *gin.Context) {
		list, err := cfg.StatusChecks.List(c.Request.Context(), StatusListLimit)
		if err != nil {
			cfg.Logger.Error("failed to list status checks", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status checks"})
			return
		}
		c.JSON(http.StatusOK, list)
	})
}

// countMetric publishes a best-effort count; failures are logged and dropped
// so metrics can never fail a request.
func (cfg HandlerConfig) countMetric(ctx context.Context, name string) {
	if cfg.Metrics == nil {
		return
	}
	if err := cfg.Metrics.Count(ctx, name); err != nil {
		cfg.Logger.Warn("metric publish failed", zap.Error(err), zap.String("metric", name))
	}
}
