package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/pricing"
	"github.com/harborview/hotel-backend/internal/repository"
	"gorm.io/gorm"
)

type QuoteResult struct {
	RoomType *models.RoomType
	CheckIn  time.Time
	CheckOut time.Time
	Quote    pricing.Quote
	// AppliedRules are the full rule rows behind Quote.AppliedRuleIDs, for
	// display and audit.
	AppliedRules []models.RateRule
}

type RateService interface {
	Quote(ctx context.Context, roomTypeID *uint, roomTypeName string, checkIn, checkOut time.Time) (*QuoteResult, error)
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
	ListRules(ctx context.Context, roomTypeID uint) ([]models.RateRule, error)
	CreateRule(ctx context.Context, rule *models.RateRule) error
}

type rateService struct {
	roomTypeRepo repository.RoomTypeRepository
}

func NewRateService(roomTypeRepo repository.RoomTypeRepository) RateService {
	return &rateService{roomTypeRepo: roomTypeRepo}
}

// Quote is pure with respect to the datastore: it reads the room type and its
// rules, then delegates the arithmetic to the pricing package. Nothing is
// written, so a quote never reserves anything.
func (s *rateService) Quote(ctx context.Context, roomTypeID *uint, roomTypeName string, checkIn, checkOut time.Time) (*QuoteResult, error) {
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
	}

	roomType, err := s.resolveRoomType(ctx, roomTypeID, roomTypeName)
	if err != nil {
		return nil, err
	}

	// Only rules whose date window touches the stay can match; the final
	// per-night filtering happens in the pricing package. Bounds are
	// normalized to calendar dates so a timestamped check-in cannot exclude
	// a rule the per-night comparison would apply.
	windowStart := dateOnly(checkIn)
	windowEnd := dateOnly(checkOut).AddDate(0, 0, -1)
	rules, err := s.roomTypeRepo.FindRateRules(ctx, roomType.ID, repository.RateRuleFilter{
		ActiveOnly:  true,
		WindowStart: &windowStart,
		WindowEnd:   &windowEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("load rate rules: %w", err)
	}

	quote := pricing.Calculate(roomType, rules, checkIn, checkOut)

	applied := make([]models.RateRule, 0, len(quote.AppliedRuleIDs))
	for _, rule := range rules {
		for _, id := range quote.AppliedRuleIDs {
			if rule.ID == id {
				applied = append(applied, rule)
				break
			}
		}
	}

	return &QuoteResult{
		RoomType:     roomType,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Quote:        quote,
		AppliedRules: applied,
	}, nil
}

func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *rateService) resolveRoomType(ctx context.Context, roomTypeID *uint, roomTypeName string) (*models.RoomType, error) {
	if roomTypeID != nil {
		roomType, err := s.roomTypeRepo.FindByID(ctx, *roomTypeID)
		if err == nil {
			return roomType, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("look up room type: %w", err)
		}
	}
	if strings.TrimSpace(roomTypeName) != "" {
		roomType, err := s.roomTypeRepo.FindByName(ctx, roomTypeName)
		if err == nil {
			return roomType, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("look up room type: %w", err)
		}
	}
	return nil, fmt.Errorf("%w: room type", ErrNotFound)
}

func (s *rateService) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return s.roomTypeRepo.FindAll(ctx)
}

func (s *rateService) ListRules(ctx context.Context, roomTypeID uint) ([]models.RateRule, error) {
	if _, err := s.roomTypeRepo.FindByID(ctx, roomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room type %d", ErrNotFound, roomTypeID)
		}
		return nil, err
	}
	return s.roomTypeRepo.FindRateRules(ctx, roomTypeID, repository.RateRuleFilter{})
}

func (s *rateService) CreateRule(ctx context.Context, rule *models.RateRule) error {
	if len(strings.TrimSpace(rule.Name)) < 3 {
		return fmt.Errorf("%w: rate rule name must be at least 3 characters long", ErrValidation)
	}
	if rule.AdjustmentKind != models.AdjustmentFlat && rule.AdjustmentKind != models.AdjustmentPercent {
		return fmt.Errorf(`%w: adjustment kind must be "flat" or "percent"`, ErrValidation)
	}
	if rule.StartDate.After(rule.EndDate) {
		return fmt.Errorf("%w: rate rule start date must be on or before end date", ErrValidation)
	}
	if rule.MinStayNights != nil && *rule.MinStayNights < 0 {
		return fmt.Errorf("%w: minimum stay must be a non-negative integer", ErrValidation)
	}
	if rule.MaxStayNights != nil {
		if *rule.MaxStayNights <= 0 {
			return fmt.Errorf("%w: maximum stay must be a positive integer", ErrValidation)
		}
		if rule.MinStayNights != nil && *rule.MinStayNights > *rule.MaxStayNights {
			return fmt.Errorf("%w: minimum stay cannot exceed maximum stay", ErrValidation)
		}
	}

	if _, err := s.roomTypeRepo.FindByID(ctx, rule.RoomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: room type %d", ErrNotFound, rule.RoomTypeID)
		}
		return err
	}
	return s.roomTypeRepo.CreateRateRule(ctx, rule)
}
