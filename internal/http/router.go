package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"samayas/internal/config"
	h "samayas/internal/http/handlers"
	"samayas/internal/http/middleware"
	"samayas/internal/logger"
)

func NewRouter(env config.Env, log logger.ILogger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warning("failed to set trusted proxies", logger.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		api.GET("/tariffs", h.Tariffs)
		api.POST("/quote", h.Quote)

		sessions := api.Group("/sessions")
		sessions.POST("", h.OpenSession)
		sessions.GET("/:id", h.GetSession)
		sessions.PATCH("/:id", h.PatchSession)
		sessions.POST("/:id/category", h.SwitchCategory)
		sessions.POST("/:id/submit", h.SubmitSession)
		sessions.POST("/:id/confirm", h.ConfirmSession)
		sessions.POST("/:id/cancel", h.CancelSession)
		sessions.GET("/:id/quote.pdf", h.SessionQuotePDF)
	}

	h.SetRouter(r)
	return r
}
