package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voice-fact-skill/internal/model"
)

func (srv *HTTPServer) mapHandlers() {
	ctx := context.Background()

	srv.registerMiddlewares(ctx)
	srv.registerSystemRoutes()
	srv.setupSkillDomain(ctx)
}

func (srv *HTTPServer) registerMiddlewares(ctx context.Context) {
	srv.gin.Use(gin.Recovery())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
