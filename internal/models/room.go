package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomType struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Description *string         `gorm:"size:500" json:"description,omitempty"`
	TotalRooms  int             `gorm:"not null" json:"total_rooms"`
	BaseRate    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_rate"`
	Sleeps      int             `gorm:"not null" json:"sleeps"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	RateRules []RateRule `gorm:"foreignKey:RoomTypeID" json:"rate_rules,omitempty"`
}

type AdjustmentKind string

const (
	AdjustmentFlat    AdjustmentKind = "flat"
	AdjustmentPercent AdjustmentKind = "percent"
)

// RateRule is a date- and stay-length-scoped additive adjustment to a room
// type's nightly price. Start/end dates are inclusive, date-only, UTC.
type RateRule struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	RoomTypeID      uint            `gorm:"not null;index" json:"room_type_id"`
	Name            string          `gorm:"size:120;not null" json:"name"`
	Description     *string         `gorm:"size:500" json:"description,omitempty"`
	AdjustmentKind  AdjustmentKind  `gorm:"type:varchar(10);not null" json:"adjustment_kind"`
	AdjustmentValue decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"adjustment_value"`
	StartDate       time.Time       `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time       `gorm:"type:date;not null" json:"end_date"`
	MinStayNights   *int            `json:"min_stay_nights,omitempty"`
	MaxStayNights   *int            `json:"max_stay_nights,omitempty"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
