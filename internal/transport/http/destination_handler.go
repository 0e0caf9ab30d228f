package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
	"github.com/njprem/Travel_Diary_BackEnd/internal/service"
	"github.com/njprem/Travel_Diary_BackEnd/internal/util"
)

type DestinationHandler struct {
	destinations *service.DestinationService
	log          zerolog.Logger
}

func RegisterDestinations(e *echo.Echo, destService *service.DestinationService, logger zerolog.Logger) {
	handler := &DestinationHandler{destinations: destService, log: logger}

	api := e.Group("/api")
	api.GET("/destinations", handler.listUserDestinations)
	api.POST("/destinations", handler.createDestination)
	api.GET("/catalog", handler.listCatalog)
}

// listUserDestinations answers with the stored subset only; a broken store reads as empty.
func (h *DestinationHandler) listUserDestinations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.destinations.ListUser(c.Request().Context()))
}

func (h *DestinationHandler) listCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, h.destinations.GetAll(c.Request().Context()))
}

func (h *DestinationHandler) createDestination(c echo.Context) error {
	var req domain.DestinationInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Failure(domain.MessageInvalidBody))
	}

	dest, err := h.destinations.Submit(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDestinationExists):
			return c.JSON(http.StatusBadRequest, util.Failure(domain.MessageDestinationExists))
		default:
			h.log.Error().Err(err).Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Msg("save destination")
			return c.JSON(http.StatusInternalServerError, util.Failure(domain.MessageSaveFailed))
		}
	}

	return c.JSON(http.StatusOK, util.Success("destination", dest))
}
