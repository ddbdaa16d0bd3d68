package http

import (
	"github.com/gin-gonic/gin"

	"reminder-extractor/internal/middleware"
)

// RegisterRoutes maps the extraction endpoints under rg. Model calls are
// rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	extract := rg.Group("/extract", mw.RateLimit())
	{
		extract.POST("/text", h.ExtractText)
		extract.POST("/document", h.ExtractDocument)
	}
	rg.POST("/process", mw.RateLimit(), h.Process)
	rg.GET("/models", h.Models)
}
