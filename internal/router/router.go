package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/config"
	"github.com/portfolioapi/internal/handler"
	"github.com/portfolioapi/internal/observability"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	r.Use(requestID())
	if cfg.Tracing.Enabled {
		r.Use(tracing())
	}
	r.Use(accessLog(logger))
	if metrics != nil {
		r.Use(metricsMiddleware(metrics))
	}
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	api := handler.NewAPI(gdb, handler.Options{
		DefaultPerPage:      cfg.Pagination.DefaultPerPage,
		MaxPerPage:          cfg.Pagination.MaxPerPage,
		ValidateEmailFormat: cfg.Contact.ValidateEmailFormat,
		Logger:              logger,
		Metrics:             metrics,
	})

	r.GET("/health", api.Health)
	if metrics != nil {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(metrics.Handler()))
	}

	// 博客
	r.GET("/blog-posts", api.ListBlogPosts)
	r.GET("/blog-posts/:slug", api.GetBlogPost)

	// 项目
	r.GET("/projects", api.ListProjects)
	r.GET("/projects/:slug", api.GetProject)

	// 分类与标签
	r.GET("/categories", api.ListCategories)
	r.GET("/tags", api.ListTags)

	// 表单提交
	r.POST("/contact", api.SubmitContact)
	r.POST("/newsletter/subscribe", api.SubscribeNewsletter)

	return r
}
