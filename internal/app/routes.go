package app

import (
	"todoweb/internal/cache"
	"todoweb/internal/config"
	"todoweb/internal/handlers"
	"todoweb/internal/repo"
	"todoweb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Setup registers all routes on the given engine. rdb may be nil, in which
// case the list cache is disabled.
func Setup(r *gin.Engine, cfg config.Config, log zerolog.Logger, todos repo.TodoRepo, rdb *redis.Client) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	var todoCache *cache.TodoCache
	if rdb != nil {
		todoCache = cache.NewTodoCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}
	todoSvc := service.NewTodoService(todos, todoCache)
	todoHandler := handlers.NewTodoHandler(todoSvc, log)
	registerTodoRoutes(r, todoHandler)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func registerTodoRoutes(r *gin.Engine, h *handlers.TodoHandler) {
	r.GET("/", h.List)
	r.GET("/create/", h.CreateForm)
	r.POST("/create/", h.Create)
	r.GET("/update/:id/", h.UpdateForm)
	r.POST("/update/:id/", h.Update)
	r.GET("/delete/:id/", h.DeleteConfirm)
	r.POST("/delete/:id/", h.Delete)
	r.GET("/toggle/:id/", h.Toggle)
}
