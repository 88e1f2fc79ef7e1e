package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/harborview/hotel-backend/internal/middleware"
	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()
	return e
}

// call invokes a handler directly and funnels any returned error through the
// application error handler, so the recorder sees the same status and body a
// live server would send.
func call(e *echo.Echo, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if err := h(c); err != nil {
		middleware.ErrorHandler(err, c)
	}
	return rec
}

// --- Mock BookingService ---

type mockBookingService struct {
	createFn       func(ctx context.Context, input service.BookingInput) (*models.Booking, error)
	createDirectFn func(ctx context.Context, input service.BookingInput) (*models.Booking, error)
	getFn          func(ctx context.Context, id uint) (*models.Booking, error)
	listFn         func(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error)
	checkInFn      func(ctx context.Context, id uint, roomNumber string) error
	checkOutFn     func(ctx context.Context, id uint) error
}

func (m *mockBookingService) CreateBooking(ctx context.Context, input service.BookingInput) (*models.Booking, error) {
	return m.createFn(ctx, input)
}

func (m *mockBookingService) CreateDirectBooking(ctx context.Context, input service.BookingInput) (*models.Booking, error) {
	return m.createDirectFn(ctx, input)
}

func (m *mockBookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getFn(ctx, id)
}

func (m *mockBookingService) ListBookings(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error) {
	return m.listFn(ctx, startDate, endDate)
}

func (m *mockBookingService) CheckIn(ctx context.Context, id uint, roomNumber string) error {
	return m.checkInFn(ctx, id, roomNumber)
}

func (m *mockBookingService) CheckOut(ctx context.Context, id uint) error {
	return m.checkOutFn(ctx, id)
}

// --- Mock VerificationService ---

type mockVerificationService struct {
	requestCodeFn func(ctx context.Context, fullName, email, phone string) (*models.VerificationCode, error)
}

func (m *mockVerificationService) RequestCode(ctx context.Context, fullName, email, phone string) (*models.VerificationCode, error) {
	return m.requestCodeFn(ctx, fullName, email, phone)
}

// --- Mock RateService ---

type mockRateService struct {
	quoteFn         func(ctx context.Context, roomTypeID *uint, roomTypeName string, checkIn, checkOut time.Time) (*service.QuoteResult, error)
	listRoomTypesFn func(ctx context.Context) ([]models.RoomType, error)
	listRulesFn     func(ctx context.Context, roomTypeID uint) ([]models.RateRule, error)
	createRuleFn    func(ctx context.Context, rule *models.RateRule) error
}

func (m *mockRateService) Quote(ctx context.Context, roomTypeID *uint, roomTypeName string, checkIn, checkOut time.Time) (*service.QuoteResult, error) {
	return m.quoteFn(ctx, roomTypeID, roomTypeName, checkIn, checkOut)
}

func (m *mockRateService) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return m.listRoomTypesFn(ctx)
}

func (m *mockRateService) ListRules(ctx context.Context, roomTypeID uint) ([]models.RateRule, error) {
	return m.listRulesFn(ctx, roomTypeID)
}

func (m *mockRateService) CreateRule(ctx context.Context, rule *models.RateRule) error {
	return m.createRuleFn(ctx, rule)
}
