package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RequestCodeRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

type CreateBookingRequest struct {
	FullName         string          `json:"fullName" validate:"required"`
	Email            string          `json:"email" validate:"required,email"`
	Phone            string          `json:"phone" validate:"required"`
	CheckIn          string          `json:"checkIn" validate:"required"`
	CheckOut         string          `json:"checkOut" validate:"required"`
	Guests           int             `json:"guests" validate:"required,gt=0"`
	RoomType         string          `json:"roomType" validate:"required"`
	VerificationCode string          `json:"verificationCode"`
	PaymentMethod    string          `json:"paymentMethod" validate:"required"`
	PaymentReference string          `json:"paymentReference" validate:"required"`
	PaymentAmount    decimal.Decimal `json:"paymentAmount" validate:"required"`
	SpecialRequests  string          `json:"specialRequests"`
	// Preferences is passed through opaquely onto the guest profile.
	Preferences    json.RawMessage `json:"preferences"`
	MarketingOptIn *bool           `json:"marketingOptIn"`
}

type QuoteRequest struct {
	RoomTypeID *uint  `json:"roomTypeId"`
	RoomType   string `json:"roomType"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
}

type CreateRateRuleRequest struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description"`
	AdjustmentKind  string          `json:"adjustmentKind" validate:"required"`
	AdjustmentValue decimal.Decimal `json:"adjustmentValue"`
	StartDate       string          `json:"startDate" validate:"required"`
	EndDate         string          `json:"endDate" validate:"required"`
	MinStayNights   *int            `json:"minStayNights"`
	MaxStayNights   *int            `json:"maxStayNights"`
	Active          *bool           `json:"active"`
}

type CheckInRequest struct {
	RoomNumber string `json:"roomNumber" validate:"required"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts both full timestamps and bare calendar dates, normalized
// to UTC.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
