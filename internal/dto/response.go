package dto

import (
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/pricing"
	"github.com/harborview/hotel-backend/internal/service"
	"github.com/shopspring/decimal"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type RequestCodeResponse struct {
	Message               string `json:"message"`
	VerificationRequestID uint   `json:"verificationRequestId"`
}

type BookingCreatedResponse struct {
	Message   string `json:"message"`
	BookingID uint   `json:"bookingId"`
	GuestID   uint   `json:"guestId"`
}

type BookingResponse struct {
	ID               uint                 `json:"id"`
	GuestID          uint                 `json:"guestId"`
	FullName         string               `json:"fullName"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	CheckIn          time.Time            `json:"checkIn"`
	CheckOut         time.Time            `json:"checkOut"`
	Nights           int                  `json:"nights"`
	Guests           int                  `json:"guests"`
	RoomType         string               `json:"roomType"`
	RoomNumber       *string              `json:"roomNumber,omitempty"`
	Status           models.BookingStatus `json:"status"`
	Source           models.BookingSource `json:"source"`
	PaymentMethod    string               `json:"paymentMethod"`
	PaymentReference string               `json:"paymentReference"`
	PaymentAmount    decimal.Decimal      `json:"paymentAmount"`
	PaymentReceived  bool                 `json:"paymentReceived"`
	CheckedInAt      *time.Time           `json:"checkedInAt,omitempty"`
	CheckedOutAt     *time.Time           `json:"checkedOutAt,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		GuestID:          b.GuestID,
		FullName:         b.FullName,
		Email:            b.Email,
		Phone:            b.Phone,
		CheckIn:          b.CheckIn,
		CheckOut:         b.CheckOut,
		Nights:           b.Nights(),
		Guests:           b.Guests,
		RoomType:         b.RoomType,
		RoomNumber:       b.RoomNumber,
		Status:           b.Status,
		Source:           b.Source,
		PaymentMethod:    b.PaymentMethod,
		PaymentReference: b.PaymentReference,
		PaymentAmount:    b.PaymentAmount,
		PaymentReceived:  b.PaymentReceived,
		CheckedInAt:      b.CheckedInAt,
		CheckedOutAt:     b.CheckedOutAt,
		CreatedAt:        b.CreatedAt,
	}
}

type RoomTypeResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	TotalRooms  int             `json:"totalRooms"`
	BaseRate    decimal.Decimal `json:"baseRate"`
	Sleeps      int             `json:"sleeps"`
}

func ToRoomTypeResponse(rt *models.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          rt.ID,
		Name:        rt.Name,
		Description: rt.Description,
		TotalRooms:  rt.TotalRooms,
		BaseRate:    rt.BaseRate,
		Sleeps:      rt.Sleeps,
	}
}

type RateRuleResponse struct {
	ID              uint                  `json:"id"`
	RoomTypeID      uint                  `json:"roomTypeId"`
	Name            string                `json:"name"`
	Description     *string               `json:"description,omitempty"`
	AdjustmentKind  models.AdjustmentKind `json:"adjustmentKind"`
	AdjustmentValue decimal.Decimal       `json:"adjustmentValue"`
	StartDate       string                `json:"startDate"`
	EndDate         string                `json:"endDate"`
	MinStayNights   *int                  `json:"minStayNights,omitempty"`
	MaxStayNights   *int                  `json:"maxStayNights,omitempty"`
	Active          bool                  `json:"active"`
}

func ToRateRuleResponse(rule *models.RateRule) RateRuleResponse {
	return RateRuleResponse{
		ID:              rule.ID,
		RoomTypeID:      rule.RoomTypeID,
		Name:            rule.Name,
		Description:     rule.Description,
		AdjustmentKind:  rule.AdjustmentKind,
		AdjustmentValue: rule.AdjustmentValue,
		StartDate:       rule.StartDate.UTC().Format("2006-01-02"),
		EndDate:         rule.EndDate.UTC().Format("2006-01-02"),
		MinStayNights:   rule.MinStayNights,
		MaxStayNights:   rule.MaxStayNights,
		Active:          rule.Active,
	}
}

type QuoteResponse struct {
	RoomType     RoomTypeResponse   `json:"roomType"`
	CheckIn      time.Time          `json:"checkIn"`
	CheckOut     time.Time          `json:"checkOut"`
	Nights       int                `json:"nights"`
	BaseRate     decimal.Decimal    `json:"baseRate"`
	BaseTotal    decimal.Decimal    `json:"baseTotal"`
	Total        decimal.Decimal    `json:"total"`
	Nightly      []pricing.Night    `json:"nightly"`
	AppliedRules []RateRuleResponse `json:"appliedRules"`
}

func ToQuoteResponse(result *service.QuoteResult) QuoteResponse {
	applied := make([]RateRuleResponse, len(result.AppliedRules))
	for i, rule := range result.AppliedRules {
		applied[i] = ToRateRuleResponse(&rule)
	}
	return QuoteResponse{
		RoomType:     ToRoomTypeResponse(result.RoomType),
		CheckIn:      result.CheckIn,
		CheckOut:     result.CheckOut,
		Nights:       result.Quote.Nights,
		BaseRate:     result.Quote.BaseRate,
		BaseTotal:    result.Quote.BaseTotal,
		Total:        result.Quote.Total,
		Nightly:      result.Quote.Nightly,
		AppliedRules: applied,
	}
}

type GuestResponse struct {
	ID                uint            `json:"id"`
	FullName          string          `json:"fullName"`
	Email             string          `json:"email"`
	Phone             *string         `json:"phone,omitempty"`
	PreferredRoomType *string         `json:"preferredRoomType,omitempty"`
	MarketingOptIn    bool            `json:"marketingOptIn"`
	TotalStays        int             `json:"totalStays"`
	TotalNights       int             `json:"totalNights"`
	LifetimeValue     decimal.Decimal `json:"lifetimeValue"`
	LastStayAt        *time.Time      `json:"lastStayAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func ToGuestResponse(g *models.GuestProfile) GuestResponse {
	return GuestResponse{
		ID:                g.ID,
		FullName:          g.FullName,
		Email:             g.Email,
		Phone:             g.Phone,
		PreferredRoomType: g.PreferredRoomType,
		MarketingOptIn:    g.MarketingOptIn,
		TotalStays:        g.TotalStays,
		TotalNights:       g.TotalNights,
		LifetimeValue:     g.LifetimeValue,
		LastStayAt:        g.LastStayAt,
		CreatedAt:         g.CreatedAt,
	}
}

type GuestDetailResponse struct {
	GuestResponse
	NextStayAt   *time.Time        `json:"nextStayAt,omitempty"`
	LastRoomType *string           `json:"lastRoomType,omitempty"`
	History      []BookingResponse `json:"history"`
}

func ToGuestDetailResponse(detail *service.GuestDetail) GuestDetailResponse {
	history := make([]BookingResponse, len(detail.History))
	for i, booking := range detail.History {
		history[i] = ToBookingResponse(&booking)
	}
	return GuestDetailResponse{
		GuestResponse: ToGuestResponse(detail.Profile),
		NextStayAt:    detail.NextStayAt,
		LastRoomType:  detail.LastRoomType,
		History:       history,
	}
}

type SummaryBucketResponse struct {
	Window      models.SummaryWindow `json:"window"`
	PeriodStart time.Time            `json:"periodStart"`
	PeriodEnd   time.Time            `json:"periodEnd"`
	TotalAmount decimal.Decimal      `json:"totalAmount"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func ToSummaryBucketResponse(bucket *models.SalesSummary) SummaryBucketResponse {
	return SummaryBucketResponse{
		Window:      bucket.Window,
		PeriodStart: bucket.PeriodStart,
		PeriodEnd:   bucket.PeriodEnd,
		TotalAmount: bucket.TotalAmount,
		UpdatedAt:   bucket.UpdatedAt,
	}
}
