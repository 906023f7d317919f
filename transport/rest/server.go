package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/X1ag/BahnBestpreis/internal/logging"
	"github.com/X1ag/BahnBestpreis/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// StationSearch registers GET /api/search-station. Only meaningful with
	// the remote resolver.
	StationSearch bool
}

// NewApp wires the HTTP routes on top of the search and station usecases.
func NewApp(searchUC *usecase.SearchUsecase, stationUC *usecase.StationUsecase, opts Options, logger *slog.Logger) *fiber.App {
	if logger == nil {
		logger = slog.Default()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler(logger),
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		JSONEncoder:           encodeJSON,
		DisableStartupMessage: true,
	})

	app.Use(requestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New())

	h := NewHandler(searchUC, stationUC)

	app.Get("/api/health", h.Health)
	if opts.StationSearch {
		app.Get("/api/search-station", h.SearchStation)
	}
	app.Post("/api/search-prices", h.SearchPrices)

	return app
}

func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"error": fe.Message,
			})
		}

		logging.FromContext(c.UserContext(), logger).Error("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}

// encodeJSON is encoding/json without HTML escaping.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
