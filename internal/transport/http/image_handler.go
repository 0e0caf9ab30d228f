package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/Travel_Diary_BackEnd/internal/service"
	"github.com/njprem/Travel_Diary_BackEnd/internal/util"
)

func RegisterImages(e *echo.Echo, images *service.ImageService) {
	e.GET("/api/unsplash-image", func(c echo.Context) error {
		url := images.Resolve(c.Request().Context(), c.QueryParam("query"))
		return c.JSON(http.StatusOK, util.Data("url", url))
	})
}
