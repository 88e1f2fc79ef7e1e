package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/repository"
	"gorm.io/gorm"
)

// GuestDetail is a ledger read: the stored profile plus two projections
// computed from the booking table on every read, so they can never drift
// from it.
type GuestDetail struct {
	Profile      *models.GuestProfile
	NextStayAt   *time.Time
	LastRoomType *string
	History      []models.Booking
}

type GuestService interface {
	ListGuests(ctx context.Context) ([]models.GuestProfile, error)
	GetGuest(ctx context.Context, id uint) (*GuestDetail, error)
}

type guestService struct {
	guestRepo   repository.GuestRepository
	bookingRepo repository.BookingRepository
}

func NewGuestService(guestRepo repository.GuestRepository, bookingRepo repository.BookingRepository) GuestService {
	return &guestService{guestRepo: guestRepo, bookingRepo: bookingRepo}
}

func (s *guestService) ListGuests(ctx context.Context) ([]models.GuestProfile, error) {
	return s.guestRepo.FindAll(ctx)
}

func (s *guestService) GetGuest(ctx context.Context, id uint) (*GuestDetail, error) {
	profile, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: guest profile %d", ErrNotFound, id)
		}
		return nil, err
	}

	now := time.Now()
	nextStay, err := s.guestRepo.NextCheckIn(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("project next stay: %w", err)
	}
	lastRoomType, err := s.guestRepo.LastRoomType(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("project last room type: %w", err)
	}
	if lastRoomType == nil {
		lastRoomType = profile.PreferredRoomType
	}

	history, err := s.bookingRepo.FindByGuestID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking history: %w", err)
	}

	return &GuestDetail{
		Profile:      profile,
		NextStayAt:   nextStay,
		LastRoomType: lastRoomType,
		History:      history,
	}, nil
}
