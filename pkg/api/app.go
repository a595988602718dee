package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railscope/railscope/pkg/api/routes"
	"github.com/railscope/railscope/pkg/pipeline"
)

func SetupServer(listen string, statusPipeline *pipeline.Pipeline) {
	webApp := fiber.New()

	webApp.Get("version", routes.APIVersion)
	webApp.Get("healthcheck", routes.HealthCheck(statusPipeline))

	statusGroup := webApp.Group("/status")
	routes.StatusRouter(statusGroup, statusPipeline)

	webApp.Listen(listen)
}
