package routes

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/sourcegraph/conc/pool"

	"github.com/railscope/railscope/pkg/ctrf"
	"github.com/railscope/railscope/pkg/pipeline"
)

const maxBatchSize = 10

func StatusRouter(router fiber.Router, statusPipeline *pipeline.Pipeline) {
	router.Get("/", listStatuses(statusPipeline))
	router.Get("/:number", getStatus(statusPipeline))
}

func getStatus(statusPipeline *pipeline.Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		request := pipeline.Request{
			TrainNumber: c.Params("number"),
			Date:        c.Query("date"),
		}

		targetLatQuery := c.Query("target_lat")
		targetLonQuery := c.Query("target_lon")

		if targetLatQuery != "" && targetLonQuery != "" {
			targetLat, latErr := strconv.ParseFloat(targetLatQuery, 64)
			targetLon, lonErr := strconv.ParseFloat(targetLonQuery, 64)

			if latErr != nil || lonErr != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Target co-ordinates must be decimal degrees",
				})
			}

			request.Target = &ctrf.Coordinates{Lat: targetLat, Lon: targetLon}
		}

		outcome := statusPipeline.Run(c.Context(), request)

		return sendReduced(c, &outcome, marshalGroups(c))
	}
}

func listStatuses(statusPipeline *pipeline.Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		trainsQuery := c.Query("trains")

		if trainsQuery == "" {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "A list of train numbers must be provided",
			})
		}

		trainNumbers := strings.Split(trainsQuery, ",")
		if len(trainNumbers) > maxBatchSize {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Too many train numbers in one request",
			})
		}

		date := c.Query("date")

		requestPool := pool.NewWithResults[ctrf.Outcome]()

		for _, trainNumber := range trainNumbers {
			requestPool.Go(func() ctrf.Outcome {
				return statusPipeline.Run(context.Background(), pipeline.Request{
					TrainNumber: trainNumber,
					Date:        date,
				})
			})
		}

		outcomes := requestPool.Wait()

		return sendReduced(c, outcomes, marshalGroups(c))
	}
}

func marshalGroups(c *fiber.Ctx) []string {
	groups := []string{"basic"}

	if c.Query("detailed") == "true" {
		groups = append(groups, "detailed")
	}

	return groups
}

func sendReduced(c *fiber.Ctx, value any, groups []string) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, value)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not reduce Outcome",
		})
	}

	return c.JSON(reduced)
}
