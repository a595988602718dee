package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railscope/railscope/pkg/pipeline"
)

func HealthCheck(statusPipeline *pipeline.Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := statusPipeline.HealthCheck(c.Context())

		if health.Overall == "unhealthy" {
			c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.JSON(health)
	}
}
