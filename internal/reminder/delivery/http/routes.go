package http

import (
	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	reminders := rg.Group("/reminders", mw.RateLimit())
	{
		reminders.POST("", h.Create)
		reminders.GET("/export", h.Export)
	}
}
