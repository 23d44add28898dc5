package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/core/ports"
)

type MetricsHandler struct {
	metricsService ports.MetricsService
}

func NewMetricsHandler(metricsService ports.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

// Snapshot returns the aggregate counts shown on the dashboard.
//
// @Summary      Dashboard metrics snapshot
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  ports.MetricsSnapshot
// @Router       /api/metrics [get]
func (h *MetricsHandler) Snapshot(c echo.Context) error {
	snap, err := h.metricsService.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}
