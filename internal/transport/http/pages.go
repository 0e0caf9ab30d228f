package http

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/njprem/Travel_Diary_BackEnd/internal/presentation"
	"github.com/njprem/Travel_Diary_BackEnd/internal/service"
)

type PageHandler struct {
	destinations *service.DestinationService
	images       *service.ImageService
	renderer     *presentation.Renderer
	log          zerolog.Logger
}

func RegisterPages(e *echo.Echo, destinations *service.DestinationService, images *service.ImageService, renderer *presentation.Renderer, staticDir string, logger zerolog.Logger) {
	h := &PageHandler{
		destinations: destinations,
		images:       images,
		renderer:     renderer,
		log:          logger.With().Str("component", "pages").Logger(),
	}

	e.GET("/", h.catalogPage)
	e.GET("/fragments/destinations", h.cardsFragment)

	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			e.Static("/static", staticDir)
		}
	}
}

func (h *PageHandler) renderCards(ctx context.Context) ([]byte, error) {
	list := h.destinations.GetAll(ctx)
	urls := h.images.ResolveAll(ctx, list)

	var buf bytes.Buffer
	if err := h.renderer.RenderCards(&buf, presentation.CardsFor(list, urls)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *PageHandler) catalogPage(c echo.Context) error {
	page := presentation.Page{}
	cards, err := h.renderCards(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("render destination cards")
		page.Error = presentation.LoadErrorMessage
	} else {
		page.Cards = template.HTML(cards)
	}

	var out bytes.Buffer
	if err := h.renderer.RenderPage(&out, page); err != nil {
		h.log.Error().Err(err).Msg("render catalogue page")
		return c.String(http.StatusInternalServerError, presentation.LoadErrorMessage)
	}
	return c.HTMLBlob(http.StatusOK, out.Bytes())
}

func (h *PageHandler) cardsFragment(c echo.Context) error {
	cards, err := h.renderCards(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("render destination cards")
		return c.String(http.StatusInternalServerError, presentation.LoadErrorMessage)
	}
	return c.HTMLBlob(http.StatusOK, cards)
}
