package service

import (
	"context"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/harborview/hotel-backend/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn          func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findByIDFn        func(ctx context.Context, id uint) (*models.Booking, error)
	findOverlappingFn func(ctx context.Context, email string, checkIn, checkOut time.Time) (*models.Booking, error)
	findByGuestIDFn   func(ctx context.Context, guestID uint) ([]models.Booking, error)
	markCheckedInFn   func(ctx context.Context, id uint, roomNumber string, at time.Time) (int64, error)
	markCheckedOutFn  func(ctx context.Context, id uint, at time.Time) (int64, error)
	sumPaymentsFn     func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	txErr             error
}

func (m *mockBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if m.txErr != nil {
		return m.txErr
	}
	return fn(nil)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, booking)
	}
	booking.ID = 1
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, email string, checkIn, checkOut time.Time) (*models.Booking, error) {
	if m.findOverlappingFn != nil {
		return m.findOverlappingFn(ctx, email, checkIn, checkOut)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBookingRepo) FindByGuestID(ctx context.Context, guestID uint) ([]models.Booking, error) {
	if m.findByGuestIDFn != nil {
		return m.findByGuestIDFn(ctx, guestID)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindInRange(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepo) MarkCheckedIn(ctx context.Context, id uint, roomNumber string, at time.Time) (int64, error) {
	if m.markCheckedInFn != nil {
		return m.markCheckedInFn(ctx, id, roomNumber, at)
	}
	return 1, nil
}

func (m *mockBookingRepo) MarkCheckedOut(ctx context.Context, id uint, at time.Time) (int64, error) {
	if m.markCheckedOutFn != nil {
		return m.markCheckedOutFn(ctx, id, at)
	}
	return 1, nil
}

func (m *mockBookingRepo) SumReceivedPayments(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	if m.sumPaymentsFn != nil {
		return m.sumPaymentsFn(ctx, start, end)
	}
	return decimal.Zero, nil
}

// --- Mock GuestRepository ---

type mockGuestRepo struct {
	findByIDFn     func(ctx context.Context, id uint) (*models.GuestProfile, error)
	findAllFn      func(ctx context.Context) ([]models.GuestProfile, error)
	findByEmailFn  func(ctx context.Context, tx *gorm.DB, email string) (*models.GuestProfile, error)
	createFn       func(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error
	updateFn       func(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error
	recordStayFn   func(ctx context.Context, tx *gorm.DB, record repository.StayRecord) error
	nextCheckInFn  func(ctx context.Context, guestID uint, after time.Time) (*time.Time, error)
	lastRoomTypeFn func(ctx context.Context, guestID uint) (*string, error)
}

func (m *mockGuestRepo) FindByID(ctx context.Context, id uint) (*models.GuestProfile, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGuestRepo) FindAll(ctx context.Context) ([]models.GuestProfile, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockGuestRepo) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.GuestProfile, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, tx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGuestRepo) Create(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, profile)
	}
	profile.ID = 1
	return nil
}

func (m *mockGuestRepo) Update(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tx, profile)
	}
	return nil
}

func (m *mockGuestRepo) RecordStay(ctx context.Context, tx *gorm.DB, record repository.StayRecord) error {
	if m.recordStayFn != nil {
		return m.recordStayFn(ctx, tx, record)
	}
	return nil
}

func (m *mockGuestRepo) NextCheckIn(ctx context.Context, guestID uint, after time.Time) (*time.Time, error) {
	if m.nextCheckInFn != nil {
		return m.nextCheckInFn(ctx, guestID, after)
	}
	return nil, nil
}

func (m *mockGuestRepo) LastRoomType(ctx context.Context, guestID uint) (*string, error) {
	if m.lastRoomTypeFn != nil {
		return m.lastRoomTypeFn(ctx, guestID)
	}
	return nil, nil
}

// --- Mock VerificationRepository ---

type mockVerificationRepo struct {
	createFn             func(ctx context.Context, code *models.VerificationCode) error
	findLatestByEmailFn  func(ctx context.Context, email string) (*models.VerificationCode, error)
	findByEmailAndCodeFn func(ctx context.Context, email, code string) (*models.VerificationCode, error)
	consumeFn            func(ctx context.Context, tx *gorm.DB, id uint, usedAt time.Time) (int64, error)
}

func (m *mockVerificationRepo) Create(ctx context.Context, code *models.VerificationCode) error {
	if m.createFn != nil {
		return m.createFn(ctx, code)
	}
	code.ID = 1
	return nil
}

func (m *mockVerificationRepo) FindLatestByEmail(ctx context.Context, email string) (*models.VerificationCode, error) {
	if m.findLatestByEmailFn != nil {
		return m.findLatestByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVerificationRepo) FindLatestByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationCode, error) {
	if m.findByEmailAndCodeFn != nil {
		return m.findByEmailAndCodeFn(ctx, email, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVerificationRepo) Consume(ctx context.Context, tx *gorm.DB, id uint, usedAt time.Time) (int64, error) {
	if m.consumeFn != nil {
		return m.consumeFn(ctx, tx, id, usedAt)
	}
	return 1, nil
}

// --- Mock RoomTypeRepository ---

type mockRoomTypeRepo struct {
	findAllFn        func(ctx context.Context) ([]models.RoomType, error)
	findByIDFn       func(ctx context.Context, id uint) (*models.RoomType, error)
	findByNameFn     func(ctx context.Context, name string) (*models.RoomType, error)
	findRateRulesFn  func(ctx context.Context, roomTypeID uint, filter repository.RateRuleFilter) ([]models.RateRule, error)
	createRateRuleFn func(ctx context.Context, rule *models.RateRule) error
}

func (m *mockRoomTypeRepo) FindAll(ctx context.Context) ([]models.RoomType, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockRoomTypeRepo) FindByID(ctx context.Context, id uint) (*models.RoomType, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomTypeRepo) FindByName(ctx context.Context, name string) (*models.RoomType, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomTypeRepo) FindRateRules(ctx context.Context, roomTypeID uint, filter repository.RateRuleFilter) ([]models.RateRule, error) {
	if m.findRateRulesFn != nil {
		return m.findRateRulesFn(ctx, roomTypeID, filter)
	}
	return nil, nil
}

func (m *mockRoomTypeRepo) CreateRateRule(ctx context.Context, rule *models.RateRule) error {
	if m.createRateRuleFn != nil {
		return m.createRateRuleFn(ctx, rule)
	}
	rule.ID = 1
	return nil
}

// --- Mock SummaryRepository ---

type mockSummaryRepo struct {
	upsertFn  func(ctx context.Context, bucket *models.SalesSummary) error
	findAllFn func(ctx context.Context) ([]models.SalesSummary, error)
}

func (m *mockSummaryRepo) Upsert(ctx context.Context, bucket *models.SalesSummary) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, bucket)
	}
	return nil
}

func (m *mockSummaryRepo) FindAll(ctx context.Context) ([]models.SalesSummary, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}
