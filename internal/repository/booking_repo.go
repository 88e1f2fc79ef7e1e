package repository

import (
	"context"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository interface {
	// Transaction runs fn inside a single database transaction; every write in
	// fn commits together or not at all.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindOverlapping(ctx context.Context, email string, checkIn, checkOut time.Time) (*models.Booking, error)
	FindByGuestID(ctx context.Context, guestID uint) ([]models.Booking, error)
	FindInRange(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error)
	MarkCheckedIn(ctx context.Context, id uint, roomNumber string, at time.Time) (int64, error)
	MarkCheckedOut(ctx context.Context, id uint, at time.Time) (int64, error)
	SumReceivedPayments(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindOverlapping returns any booking for the email whose half-open stay
// interval intersects [checkIn, checkOut). Back-to-back stays do not overlap.
func (r *bookingRepository) FindOverlapping(ctx context.Context, email string, checkIn, checkOut time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Where("NOT (check_out <= ? OR check_in >= ?)", checkIn, checkOut).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByGuestID(ctx context.Context, guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("check_in DESC, created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindInRange(ctx context.Context, startDate, endDate *time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx)
	if startDate != nil {
		q = q.Where("check_out > ?", *startDate)
	}
	if endDate != nil {
		q = q.Where("check_in < ?", *endDate)
	}
	if err := q.Order("check_in ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) MarkCheckedIn(ctx context.Context, id uint, roomNumber string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status NOT IN ?", id, []models.BookingStatus{models.StatusCheckedIn, models.StatusCheckedOut}).
		Updates(map[string]any{
			"status":        models.StatusCheckedIn,
			"room_number":   roomNumber,
			"checked_in_at": at,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) MarkCheckedOut(ctx context.Context, id uint, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status <> ?", id, models.StatusCheckedOut).
		Updates(map[string]any{
			"status":         models.StatusCheckedOut,
			"room_number":    nil,
			"checked_out_at": at,
		})
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) SumReceivedPayments(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("SUM(payment_amount)").
		Where("payment_received = ? AND created_at >= ? AND created_at < ?", true, start, end).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
