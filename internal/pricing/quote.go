// Package pricing computes nightly rate quotes by stacking rate rule
// adjustments onto a room type's base rate. All functions are pure.
package pricing

import (
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/shopspring/decimal"
)

var percentBase = decimal.NewFromInt(100)

type Adjustment struct {
	RuleID          uint                  `json:"rule_id"`
	Name            string                `json:"name"`
	AdjustmentKind  models.AdjustmentKind `json:"adjustment_kind"`
	AdjustmentValue decimal.Decimal       `json:"adjustment_value"`
	AppliedAmount   decimal.Decimal       `json:"applied_amount"`
}

type Night struct {
	Date        string          `json:"date"`
	BaseRate    decimal.Decimal `json:"base_rate"`
	FinalRate   decimal.Decimal `json:"final_rate"`
	Adjustments []Adjustment    `json:"adjustments"`
}

type Quote struct {
	Nights         int             `json:"nights"`
	BaseRate       decimal.Decimal `json:"base_rate"`
	BaseTotal      decimal.Decimal `json:"base_total"`
	Total          decimal.Decimal `json:"total"`
	Nightly        []Night         `json:"nightly"`
	AppliedRuleIDs []uint          `json:"applied_rule_ids"`
}

// Calculate prices every night in [checkIn, checkOut). Each active rule whose
// inclusive date window contains the night and whose stay-length bounds are
// satisfied by the total stay length contributes additively; there is no rule
// precedence, matching adjustments are summed. A night never drops below zero.
func Calculate(roomType *models.RoomType, rules []models.RateRule, checkIn, checkOut time.Time) Quote {
	baseRate := roomType.BaseRate
	totalNights := models.StayNights(checkIn, checkOut)

	quote := Quote{
		Nights:   totalNights,
		BaseRate: baseRate,
		Nightly:  make([]Night, 0, totalNights),
	}

	appliedIDs := make(map[uint]bool)
	start := dateOnly(checkIn)

	for offset := 0; offset < totalNights; offset++ {
		night := start.AddDate(0, 0, offset)
		nightlyRate := baseRate
		var adjustments []Adjustment

		for _, rule := range rules {
			if !rule.Active || !appliesToStay(rule, totalNights) || !appliesToDate(rule, night) {
				continue
			}

			amount := rule.AdjustmentValue
			if rule.AdjustmentKind == models.AdjustmentPercent {
				amount = baseRate.Mul(rule.AdjustmentValue).Div(percentBase)
			}

			nightlyRate = nightlyRate.Add(amount)
			adjustments = append(adjustments, Adjustment{
				RuleID:          rule.ID,
				Name:            rule.Name,
				AdjustmentKind:  rule.AdjustmentKind,
				AdjustmentValue: rule.AdjustmentValue,
				AppliedAmount:   amount,
			})
			if !appliedIDs[rule.ID] {
				appliedIDs[rule.ID] = true
				quote.AppliedRuleIDs = append(quote.AppliedRuleIDs, rule.ID)
			}
		}

		if nightlyRate.IsNegative() {
			nightlyRate = decimal.Zero
		}

		quote.BaseTotal = quote.BaseTotal.Add(baseRate)
		quote.Total = quote.Total.Add(nightlyRate)
		quote.Nightly = append(quote.Nightly, Night{
			Date:        night.Format("2006-01-02"),
			BaseRate:    baseRate,
			FinalRate:   nightlyRate,
			Adjustments: adjustments,
		})
	}

	return quote
}

// Stay-length bounds apply to the whole stay, not the individual night.
func appliesToStay(rule models.RateRule, totalNights int) bool {
	if rule.MinStayNights != nil && totalNights < *rule.MinStayNights {
		return false
	}
	if rule.MaxStayNights != nil && totalNights > *rule.MaxStayNights {
		return false
	}
	return true
}

func appliesToDate(rule models.RateRule, night time.Time) bool {
	if night.Before(dateOnly(rule.StartDate)) {
		return false
	}
	if night.After(dateOnly(rule.EndDate)) {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
