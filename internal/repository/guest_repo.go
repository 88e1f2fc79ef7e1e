package repository

import (
	"context"
	"errors"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StayRecord is the ledger delta applied to a guest profile when a booking
// commits. It travels through the same transaction as the booking insert.
type StayRecord struct {
	GuestID           uint
	Nights            int
	Amount            decimal.Decimal
	CheckOut          time.Time
	PreferredRoomType string
}

type GuestRepository interface {
	FindByID(ctx context.Context, id uint) (*models.GuestProfile, error)
	FindAll(ctx context.Context) ([]models.GuestProfile, error)
	FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.GuestProfile, error)
	Create(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error
	Update(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error
	RecordStay(ctx context.Context, tx *gorm.DB, record StayRecord) error
	NextCheckIn(ctx context.Context, guestID uint, after time.Time) (*time.Time, error)
	LastRoomType(ctx context.Context, guestID uint) (*string, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) FindByID(ctx context.Context, id uint) (*models.GuestProfile, error) {
	var profile models.GuestProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *guestRepository) FindAll(ctx context.Context) ([]models.GuestProfile, error) {
	var profiles []models.GuestProfile
	if err := r.db.WithContext(ctx).Order("full_name ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *guestRepository) FindByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.GuestProfile, error) {
	var profile models.GuestProfile
	if err := tx.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *guestRepository) Create(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error {
	return tx.WithContext(ctx).Create(profile).Error
}

func (r *guestRepository) Update(ctx context.Context, tx *gorm.DB, profile *models.GuestProfile) error {
	return tx.WithContext(ctx).Save(profile).Error
}

// RecordStay applies the ledger arithmetic in SQL so the counters stay
// monotonic even when several transactions race on the same guest.
func (r *guestRepository) RecordStay(ctx context.Context, tx *gorm.DB, record StayRecord) error {
	return tx.WithContext(ctx).
		Model(&models.GuestProfile{}).
		Where("id = ?", record.GuestID).
		Updates(map[string]any{
			"total_stays":    gorm.Expr("total_stays + 1"),
			"total_nights":   gorm.Expr("total_nights + ?", record.Nights),
			"lifetime_value": gorm.Expr("lifetime_value + ?", record.Amount),
			"preferred_room_type": gorm.Expr(
				"COALESCE(NULLIF(?, ''), preferred_room_type)", record.PreferredRoomType),
			"last_stay_at": gorm.Expr(
				"CASE WHEN last_stay_at IS NULL OR last_stay_at < ? THEN ? ELSE last_stay_at END",
				record.CheckOut, record.CheckOut),
		}).Error
}

// NextCheckIn projects the guest's earliest upcoming check-in from the booking
// table; it is never stored on the profile.
func (r *guestRepository) NextCheckIn(ctx context.Context, guestID uint, after time.Time) (*time.Time, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ? AND check_in >= ?", guestID, after).
		Order("check_in ASC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking.CheckIn, nil
}

func (r *guestRepository) LastRoomType(ctx context.Context, guestID uint) (*string, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("check_in DESC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking.RoomType, nil
}
