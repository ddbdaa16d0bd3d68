package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	extractionHTTP "reminder-extractor/internal/extraction/delivery/http"
	"reminder-extractor/internal/middleware"
	"reminder-extractor/internal/model"
	reminderHTTP "reminder-extractor/internal/reminder/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{RateLimitPerMin: srv.rateLimitPerMin})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())
	if srv.metrics != nil {
		srv.gin.Use(srv.metrics.Middleware())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	eh := extractionHTTP.New(srv.l, srv.extractionUC, srv.maxUploadBytes)
	extractionHTTP.RegisterRoutes(api, eh, mw)
	srv.l.Infof(ctx, "Extraction routes registered under /api/v1")

	if srv.reminderUC != nil {
		rh := reminderHTTP.New(srv.l, srv.reminderUC, srv.location)
		reminderHTTP.RegisterRoutes(api, rh, mw)
		srv.l.Infof(ctx, "Reminder routes registered under /api/v1/reminders")
	} else {
		srv.l.Infof(ctx, "Reminder store not configured, skipping reminder routes")
	}
}
