package handler

import (
	"net/http"

	"github.com/harborview/hotel-backend/internal/dto"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type OverviewHandler struct {
	svc service.SummaryService
}

func NewOverviewHandler(svc service.SummaryService) *OverviewHandler {
	return &OverviewHandler{svc: svc}
}

func (h *OverviewHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/overview", h.Overview)
}

// Overview serves the precomputed buckets; it never scans the booking table.
func (h *OverviewHandler) Overview(c echo.Context) error {
	buckets, err := h.svc.Buckets(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.SummaryBucketResponse, len(buckets))
	for i, bucket := range buckets {
		resp[i] = dto.ToSummaryBucketResponse(&bucket)
	}
	return c.JSON(http.StatusOK, map[string]any{"sales": resp})
}
