package rest

import (
	"errors"
	"log/slog"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requestLogger tags every request with an id and stores a logger carrying
// it in the user context.
func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)

		l := logger.With("request_id", id)
		c.SetUserContext(logging.WithLogger(c.UserContext(), l))

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		l.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}
