package handler

import (
	"net/http"
	"strings"

	"github.com/harborview/hotel-backend/internal/dto"
	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type RateHandler struct {
	svc service.RateService
}

func NewRateHandler(svc service.RateService) *RateHandler {
	return &RateHandler{svc: svc}
}

func (h *RateHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/rates/quote", h.Quote)
	e.GET("/api/public/room-types", h.ListRoomTypes)
	e.GET("/api/room-types/:id/rates", h.ListRules)
	e.POST("/api/room-types/:id/rates", h.CreateRule)
}

func (h *RateHandler) Quote(c echo.Context) error {
	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	checkIn, err := dto.ParseDate(req.CheckIn)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check-in or check-out date")
	}
	checkOut, err := dto.ParseDate(req.CheckOut)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid check-in or check-out date")
	}

	result, err := h.svc.Quote(c.Request().Context(), req.RoomTypeID, req.RoomType, checkIn, checkOut)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToQuoteResponse(result))
}

func (h *RateHandler) ListRoomTypes(c echo.Context) error {
	roomTypes, err := h.svc.ListRoomTypes(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		resp[i] = dto.ToRoomTypeResponse(&roomType)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RateHandler) ListRules(c echo.Context) error {
	roomTypeID, err := parseID(c)
	if err != nil {
		return err
	}

	rules, err := h.svc.ListRules(c.Request().Context(), roomTypeID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RateRuleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = dto.ToRateRuleResponse(&rule)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *RateHandler) CreateRule(c echo.Context) error {
	roomTypeID, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.CreateRateRuleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start or end date")
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start or end date")
	}

	rule := &models.RateRule{
		RoomTypeID:      roomTypeID,
		Name:            strings.TrimSpace(req.Name),
		AdjustmentKind:  models.AdjustmentKind(strings.ToLower(req.AdjustmentKind)),
		AdjustmentValue: req.AdjustmentValue,
		StartDate:       startDate,
		EndDate:         endDate,
		MinStayNights:   req.MinStayNights,
		MaxStayNights:   req.MaxStayNights,
		Active:          true,
	}
	if req.Description != "" {
		desc := req.Description
		rule.Description = &desc
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}

	if err := h.svc.CreateRule(c.Request().Context(), rule); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToRateRuleResponse(rule))
}
