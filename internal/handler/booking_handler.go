package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/harborview/hotel-backend/internal/dto"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/bookings", h.CreateBooking)
	e.POST("/api/bookings/direct", h.CreateDirectBooking)
	e.GET("/api/bookings", h.ListBookings)
	e.GET("/api/bookings/:id", h.GetBooking)
	e.PATCH("/api/bookings/:id/checkin", h.CheckIn)
	e.PATCH("/api/bookings/:id/checkout", h.CheckOut)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	input, err := h.bindBookingInput(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), *input)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.BookingCreatedResponse{
		Message:   "Booking confirmed. We look forward to your stay!",
		BookingID: booking.ID,
		GuestID:   booking.GuestID,
	})
}

func (h *BookingHandler) CreateDirectBooking(c echo.Context) error {
	input, err := h.bindBookingInput(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.CreateDirectBooking(c.Request().Context(), *input)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.BookingCreatedResponse{
		Message:   "Booking recorded successfully.",
		BookingID: booking.ID,
		GuestID:   booking.GuestID,
	})
}

func (h *BookingHandler) bindBookingInput(c echo.Context) (*service.BookingInput, error) {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	checkIn, err := dto.ParseDate(req.CheckIn)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid check-in or check-out date")
	}
	checkOut, err := dto.ParseDate(req.CheckOut)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid check-in or check-out date")
	}

	return &service.BookingInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           req.Guests,
		RoomType:         req.RoomType,
		SpecialRequests:  req.SpecialRequests,
		VerificationCode: req.VerificationCode,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: req.PaymentReference,
		PaymentAmount:    req.PaymentAmount,
		MarketingOptIn:   req.MarketingOptIn,
		Preferences:      string(req.Preferences),
	}, nil
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	var startDate, endDate *time.Time
	if raw := c.QueryParam("startDate"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
		}
		startDate = &parsed
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
		}
		endDate = &parsed
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), startDate, endDate)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp[i] = dto.ToBookingResponse(&booking)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CheckIn(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.svc.CheckIn(c.Request().Context(), id, req.RoomNumber); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Guest checked in successfully."})
}

func (h *BookingHandler) CheckOut(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.svc.CheckOut(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Guest checked out successfully."})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
