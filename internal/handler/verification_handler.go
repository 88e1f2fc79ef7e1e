package handler

import (
	"net/http"

	"github.com/harborview/hotel-backend/internal/dto"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type VerificationHandler struct {
	svc service.VerificationService
}

func NewVerificationHandler(svc service.VerificationService) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

func (h *VerificationHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/verification/request-code", h.RequestCode)
}

func (h *VerificationHandler) RequestCode(c echo.Context) error {
	var req dto.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	code, err := h.svc.RequestCode(c.Request().Context(), req.FullName, req.Email, req.Phone)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.RequestCodeResponse{
		Message:               "Verification code sent. Please check your inbox.",
		VerificationRequestID: code.ID,
	})
}
