package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SummaryRefresher recomputes the sales summary buckets. The coordinator
// triggers it after commit and never lets its failure touch the response.
type SummaryRefresher interface {
	Refresh(ctx context.Context, reference time.Time) error
}

// EventPublisher pushes domain events onto the broker, best-effort.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type BookingInput struct {
	FullName         string
	Email            string
	Phone            string
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	RoomType         string
	SpecialRequests  string
	VerificationCode string
	PaymentMethod    string
	PaymentReference string
	PaymentAmount    decimal.Decimal
	MarketingOptIn   *bool
	Preferences      string
}

type BookingService interface {
	CreateBooking(ctx context.Context, input BookingInput) (*models.Booking, error)
	CreateDirectBooking(ctx context.Context, input BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error)
	CheckIn(ctx context.Context, id uint, roomNumber string) error
	CheckOut(ctx context.Context, id uint) error
}

type bookingService struct {
	bookingRepo      repository.BookingRepository
	guestRepo        repository.GuestRepository
	verificationRepo repository.VerificationRepository
	roomTypeRepo     repository.RoomTypeRepository
	refresher        SummaryRefresher
	publisher        EventPublisher
	logger           *logrus.Logger
	minimumDeposit   decimal.Decimal
	onlineMethods    []string
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	guestRepo repository.GuestRepository,
	verificationRepo repository.VerificationRepository,
	roomTypeRepo repository.RoomTypeRepository,
	refresher SummaryRefresher,
	publisher EventPublisher,
	logger *logrus.Logger,
	minimumDeposit decimal.Decimal,
	onlineMethods []string,
) BookingService {
	return &bookingService{
		bookingRepo:      bookingRepo,
		guestRepo:        guestRepo,
		verificationRepo: verificationRepo,
		roomTypeRepo:     roomTypeRepo,
		refresher:        refresher,
		publisher:        publisher,
		logger:           logger,
		minimumDeposit:   minimumDeposit,
		onlineMethods:    onlineMethods,
	}
}

// CreateBooking handles the guest-facing path: the request must carry a live
// verification code, which is consumed in the same transaction that persists
// the booking and the ledger update.
func (s *bookingService) CreateBooking(ctx context.Context, input BookingInput) (*models.Booking, error) {
	if err := s.validate(ctx, input, true); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, input); err != nil {
		return nil, err
	}

	code, err := s.verificationRepo.FindLatestByEmailAndCode(ctx, strings.TrimSpace(input.Email), strings.TrimSpace(input.VerificationCode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: verification code is incorrect for this email", ErrUnauthorized)
		}
		return nil, fmt.Errorf("look up verification code: %w", err)
	}
	if code.Used {
		return nil, fmt.Errorf("%w: verification code has already been used", ErrUnauthorized)
	}
	if code.Expired(time.Now()) {
		return nil, fmt.Errorf("%w: verification code has expired", ErrUnauthorized)
	}

	return s.commit(ctx, input, models.SourceOnline, &code.ID)
}

// CreateDirectBooking is the staff-entered path. The caller's identity has
// already been verified upstream, so no code is required; every other
// invariant of the online path still holds.
func (s *bookingService) CreateDirectBooking(ctx context.Context, input BookingInput) (*models.Booking, error) {
	if err := s.validate(ctx, input, false); err != nil {
		return nil, err
	}
	if err := s.checkOverlap(ctx, input); err != nil {
		return nil, err
	}
	return s.commit(ctx, input, models.SourceDirect, nil)
}

func (s *bookingService) validate(ctx context.Context, input BookingInput, online bool) error {
	if input.FullName == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Phone) == "" {
		return fmt.Errorf("%w: full name, email, and phone are required", ErrValidation)
	}
	if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrValidation)
	}
	if !input.CheckOut.After(input.CheckIn) {
		return fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
	}
	if input.Guests <= 0 {
		return fmt.Errorf("%w: guest count must be a positive number", ErrValidation)
	}

	method := strings.TrimSpace(input.PaymentMethod)
	if method == "" {
		return fmt.Errorf("%w: select a payment method", ErrValidation)
	}
	if online && !s.allowedMethod(method) {
		return fmt.Errorf("%w: select a supported payment method", ErrValidation)
	}

	minReferenceLen := 3
	if online {
		minReferenceLen = 6
		if strings.TrimSpace(input.VerificationCode) == "" {
			return fmt.Errorf("%w: verification code is required", ErrValidation)
		}
	}
	if len(strings.TrimSpace(input.PaymentReference)) < minReferenceLen {
		return fmt.Errorf("%w: enter a valid payment reference", ErrValidation)
	}

	if input.PaymentAmount.LessThan(s.minimumDeposit) {
		return fmt.Errorf("%w: deposit must be at least %s", ErrValidation, s.minimumDeposit.StringFixed(2))
	}

	if _, err := s.roomTypeRepo.FindByName(ctx, input.RoomType); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown room type selected", ErrValidation)
		}
		return fmt.Errorf("look up room type: %w", err)
	}
	return nil
}

// checkOverlap is a pre-check outside the transaction: two concurrent
// requests for the same email can both pass it before either commits. That
// window is a known limitation, flagged in the test suite, and matches the
// behavior this service replaced.
func (s *bookingService) checkOverlap(ctx context.Context, input BookingInput) error {
	_, err := s.bookingRepo.FindOverlapping(ctx, strings.TrimSpace(input.Email), input.CheckIn, input.CheckOut)
	if err == nil {
		return fmt.Errorf("%w: a confirmed booking already overlaps these dates, contact support to modify it", ErrOverlap)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check overlapping bookings: %w", err)
	}
	return nil
}

// commit runs the atomic unit: guest upsert, booking insert, conditional code
// consumption, and the ledger update either all become visible together or
// none do.
func (s *bookingService) commit(ctx context.Context, input BookingInput, source models.BookingSource, codeID *uint) (*models.Booking, error) {
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	roomType := strings.TrimSpace(input.RoomType)

	booking := &models.Booking{
		FullName:           strings.TrimSpace(input.FullName),
		Email:              email,
		Phone:              phone,
		CheckIn:            input.CheckIn,
		CheckOut:           input.CheckOut,
		Guests:             input.Guests,
		RoomType:           roomType,
		VerificationCodeID: codeID,
		Source:             source,
		PaymentMethod:      strings.TrimSpace(input.PaymentMethod),
		PaymentReference:   strings.TrimSpace(input.PaymentReference),
		PaymentAmount:      input.PaymentAmount,
		PaymentReceived:    true,
		Status:             models.StatusConfirmed,
	}
	if trimmed := strings.TrimSpace(input.SpecialRequests); trimmed != "" {
		booking.SpecialRequests = &trimmed
	}

	err := s.bookingRepo.Transaction(ctx, func(tx *gorm.DB) error {
		guest, err := s.upsertGuest(ctx, tx, input, email, phone, roomType)
		if err != nil {
			return err
		}
		booking.GuestID = guest.ID

		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		if codeID != nil {
			affected, err := s.verificationRepo.Consume(ctx, tx, *codeID, time.Now())
			if err != nil {
				return fmt.Errorf("consume verification code: %w", err)
			}
			// Zero rows means another request spent the code after our
			// pre-check; aborting here rolls back the booking and the guest
			// ledger update with it.
			if affected != 1 {
				return fmt.Errorf("%w: verification code has already been used", ErrUnauthorized)
			}
		}

		return s.guestRepo.RecordStay(ctx, tx, repository.StayRecord{
			GuestID:           guest.ID,
			Nights:            booking.Nights(),
			Amount:            booking.PaymentAmount,
			CheckOut:          booking.CheckOut,
			PreferredRoomType: roomType,
		})
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit("booking.created", booking)
	return booking, nil
}

func (s *bookingService) upsertGuest(ctx context.Context, tx *gorm.DB, input BookingInput, email, phone, roomType string) (*models.GuestProfile, error) {
	guest, err := s.guestRepo.FindByEmail(ctx, tx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("look up guest profile: %w", err)
		}
		guest = &models.GuestProfile{
			FullName:          strings.TrimSpace(input.FullName),
			Email:             email,
			Phone:             &phone,
			PreferredRoomType: &roomType,
		}
		if input.MarketingOptIn != nil {
			guest.MarketingOptIn = *input.MarketingOptIn
		}
		if input.Preferences != "" {
			prefs := input.Preferences
			guest.Preferences = &prefs
		}
		if err := s.guestRepo.Create(ctx, tx, guest); err != nil {
			return nil, fmt.Errorf("create guest profile: %w", err)
		}
		return guest, nil
	}

	guest.FullName = strings.TrimSpace(input.FullName)
	guest.Phone = &phone
	if input.MarketingOptIn != nil {
		guest.MarketingOptIn = *input.MarketingOptIn
	}
	if input.Preferences != "" {
		prefs := input.Preferences
		guest.Preferences = &prefs
	}
	if err := s.guestRepo.Update(ctx, tx, guest); err != nil {
		return nil, fmt.Errorf("update guest profile: %w", err)
	}
	return guest, nil
}

// afterCommit fans out the fire-and-forget side effects. Neither the summary
// refresh nor the broker publish can fail the booking that triggered them.
func (s *bookingService) afterCommit(routingKey string, booking *models.Booking) {
	if s.publisher != nil {
		if err := s.publisher.Publish(routingKey, booking); err != nil {
			s.logger.WithError(err).WithField("booking_id", booking.ID).
				Warn("failed to publish booking event")
		}
	}
	if s.refresher != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.refresher.Refresh(ctx, time.Now()); err != nil {
				s.logger.WithError(err).Warn("failed to refresh sales summary cache")
			}
		}()
	}
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error) {
	return s.bookingRepo.FindInRange(ctx, startDate, endDate)
}

func (s *bookingService) CheckIn(ctx context.Context, id uint, roomNumber string) error {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return fmt.Errorf("%w: roomNumber is required to check a guest in", ErrValidation)
	}
	if len(roomNumber) > 20 {
		return fmt.Errorf("%w: roomNumber must be 20 characters or less", ErrValidation)
	}

	affected, err := s.bookingRepo.MarkCheckedIn(ctx, id, roomNumber, time.Now())
	if err != nil {
		return fmt.Errorf("check in booking: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: booking not found or already checked in/out", ErrNotFound)
	}
	return nil
}

func (s *bookingService) CheckOut(ctx context.Context, id uint) error {
	affected, err := s.bookingRepo.MarkCheckedOut(ctx, id, time.Now())
	if err != nil {
		return fmt.Errorf("check out booking: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: booking not found or already checked out", ErrNotFound)
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err == nil {
		s.afterCommit("booking.checked_out", booking)
	}
	return nil
}

func (s *bookingService) allowedMethod(method string) bool {
	for _, allowed := range s.onlineMethods {
		if strings.EqualFold(method, allowed) {
			return true
		}
	}
	return false
}
