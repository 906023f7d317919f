package rest

import (
	"errors"

	"github.com/X1ag/BahnBestpreis/internal/domain"
	"github.com/X1ag/BahnBestpreis/internal/logging"
	"github.com/X1ag/BahnBestpreis/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	searchUC  *usecase.SearchUsecase
	stationUC *usecase.StationUsecase
}

func NewHandler(searchUC *usecase.SearchUsecase, stationUC *usecase.StationUsecase) *Handler {
	return &Handler{
		searchUC:  searchUC,
		stationUC: stationUC,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// SearchStation handles GET /api/search-station?query=<text>
func (h *Handler) SearchStation(c *fiber.Ctx) error {
	station, err := h.stationUC.Search(c.UserContext(), c.Query("query"))
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing query parameter",
		})
	case errors.Is(err, domain.ErrStationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Station not found",
		})
	case err != nil:
		return err
	}
	return c.JSON(station)
}

// SearchPrices handles POST /api/search-prices
func (h *Handler) SearchPrices(c *fiber.Ctx) error {
	logger := logging.FromContext(c.UserContext(), nil)

	var body searchPricesBody
	if c.Is("json") && len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid JSON body",
			})
		}
	}
	logger.Info("received request", "body", string(c.Body()))

	req, err := body.toSearchRequest()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.searchUC.SearchPrices(c.UserContext(), req)
	if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrDayLimit) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return err
	}

	logger.Info("sending response", "keys", append(result.Dates(), domain.MetaKey))
	return c.JSON(result)
}
