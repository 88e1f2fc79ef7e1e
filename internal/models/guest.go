package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuestProfile is the per-guest lifetime ledger. The stay counters are only
// ever written inside the booking transaction, so they always equal the sums
// over that guest's committed bookings.
type GuestProfile struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	FullName          string          `gorm:"size:255;not null" json:"full_name"`
	Email             string          `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone             *string         `gorm:"size:50" json:"phone,omitempty"`
	PreferredRoomType *string         `gorm:"size:120" json:"preferred_room_type,omitempty"`
	MarketingOptIn    bool            `gorm:"not null;default:false" json:"marketing_opt_in"`
	Preferences       *string         `json:"preferences,omitempty"`
	TotalStays        int             `gorm:"not null;default:0" json:"total_stays"`
	TotalNights       int             `gorm:"not null;default:0" json:"total_nights"`
	LifetimeValue     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"lifetime_value"`
	LastStayAt        *time.Time      `json:"last_stay_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
