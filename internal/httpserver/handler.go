package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mrdom-sdr/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	api := srv.gin.Group(APIPrefix)
	srv.registerSystemRoutes(api)

	if err := srv.registerDomainRoutes(api); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.CORS(),
	)

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes(api *gin.RouterGroup) {
	api.GET("/health", srv.healthCheck)
	api.GET("/health/detailed", srv.detailedHealthCheck)
	api.GET("/ready", srv.readyCheck)
	api.GET("/live", srv.liveCheck)
	api.GET("/metrics", srv.metrics)
	api.GET("/info", srv.systemInfo)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup) error {
	ctx := context.Background()

	if err := srv.setupAgentDomain(ctx, api); err != nil {
		return err
	}

	if err := srv.setupWebhookDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
