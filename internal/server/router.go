package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerwatch/log/v3"
)

type Dependencies struct {
	Handler *Handler
	Logger  log.Logger
}

// New builds an engine with recovery, request logging and all routes.
func New(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(d.Logger))
	Register(r, d)
	return r
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/compress", d.Handler.Compress)
		v1.POST("/decompress", d.Handler.Decompress)
	}
}

func requestLogger(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Debug("request", "method", c.Request.Method, "path", c.Request.URL.Path,
			"status", c.Writer.Status(), "took", time.Since(start))
	}
}
