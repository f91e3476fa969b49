package analytics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/analytics/top-diagnoses", h.TopDiagnoses)
	api.GET("/analytics/treatment-by-gender", h.TreatmentByGender)
	api.GET("/analytics/daily-records", h.DailyTrend)
}

func (h *Handler) TopDiagnoses(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.TopDiagnoses(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) TreatmentByGender(c echo.Context) error {
	items, err := h.svc.TreatmentByGender(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DailyTrend(c echo.Context) error {
	items, err := h.svc.DailyTrend(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
