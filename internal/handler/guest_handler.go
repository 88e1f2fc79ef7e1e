package handler

import (
	"net/http"

	"github.com/harborview/hotel-backend/internal/dto"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type GuestHandler struct {
	svc service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

func (h *GuestHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/guests", h.ListGuests)
	e.GET("/api/guests/:id", h.GetGuest)
}

func (h *GuestHandler) ListGuests(c echo.Context) error {
	guests, err := h.svc.ListGuests(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.GuestResponse, len(guests))
	for i, guest := range guests {
		resp[i] = dto.ToGuestResponse(&guest)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *GuestHandler) GetGuest(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetGuest(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToGuestDetailResponse(detail))
}
