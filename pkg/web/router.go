package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/aquachem/ionmatch/internal/config"
	"github.com/aquachem/ionmatch/pkg/middleware/logger"
	"github.com/aquachem/ionmatch/pkg/web/views/health"
	saltView "github.com/aquachem/ionmatch/pkg/web/views/salt"
)

func NewRouter(_ context.Context, g *gin.Engine) {
	installMiddleware(g)
	installURL(g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(g *gin.Engine) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	sHandle := saltView.NewHandle()

	v1 := api.Group("/v1")
	{
		saltRouter := v1.Group("/salt")
		saltRouter.POST("/identify", sHandle.Identify)
		saltRouter.POST("/identify/batch", sHandle.IdentifyBatch)
		saltRouter.POST("/build", sHandle.Build)
		saltRouter.GET("/history", sHandle.History)
	}
}
