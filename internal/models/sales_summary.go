package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type SummaryWindow string

const (
	WindowDaily   SummaryWindow = "daily"
	WindowWeekly  SummaryWindow = "weekly"
	WindowMonthly SummaryWindow = "monthly"
	WindowYearly  SummaryWindow = "yearly"
)

// SalesSummary holds one fully recomputed bucket per window kind. Rows are
// replaced wholesale on refresh, never patched incrementally.
type SalesSummary struct {
	ID          uint            `gorm:"primaryKey" json:"-"`
	Window      SummaryWindow   `gorm:"column:period_type;type:varchar(20);not null;uniqueIndex" json:"window"`
	PeriodStart time.Time       `gorm:"not null" json:"period_start"`
	PeriodEnd   time.Time       `gorm:"not null" json:"period_end"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
