package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
)

type BookingSource string

const (
	SourceOnline BookingSource = "online"
	SourceDirect BookingSource = "direct"
)

type Booking struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	GuestID            uint            `gorm:"not null;index" json:"guest_id"`
	FullName           string          `gorm:"size:255;not null" json:"full_name"`
	Email              string          `gorm:"size:255;not null;index" json:"email"`
	Phone              string          `gorm:"size:50;not null" json:"phone"`
	CheckIn            time.Time       `gorm:"not null" json:"check_in"`
	CheckOut           time.Time       `gorm:"not null" json:"check_out"`
	Guests             int             `gorm:"not null" json:"guests"`
	RoomType           string          `gorm:"size:120;not null" json:"room_type"`
	RoomNumber         *string         `gorm:"size:20" json:"room_number,omitempty"`
	SpecialRequests    *string         `json:"special_requests,omitempty"`
	VerificationCodeID *uint           `gorm:"uniqueIndex" json:"verification_code_id,omitempty"`
	Source             BookingSource   `gorm:"type:varchar(20);not null" json:"source"`
	PaymentMethod      string          `gorm:"size:50;not null" json:"payment_method"`
	PaymentReference   string          `gorm:"size:80;not null" json:"payment_reference"`
	PaymentAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"payment_amount"`
	PaymentReceived    bool            `gorm:"not null;default:true" json:"payment_received"`
	Status             BookingStatus   `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CheckedInAt        *time.Time      `json:"checked_in_at,omitempty"`
	CheckedOutAt       *time.Time      `json:"checked_out_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// Nights counts whole nights in the half-open stay interval [CheckIn, CheckOut).
func (b *Booking) Nights() int {
	return StayNights(b.CheckIn, b.CheckOut)
}

// StayNights rounds partial days to the nearest whole night, never below one.
// Timestamped inputs shorter than 36 hours still count a single night.
func StayNights(checkIn, checkOut time.Time) int {
	nights := int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
