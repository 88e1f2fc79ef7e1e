package repository

import (
	"context"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"gorm.io/gorm"
)

type VerificationRepository interface {
	Create(ctx context.Context, code *models.VerificationCode) error
	FindLatestByEmail(ctx context.Context, email string) (*models.VerificationCode, error)
	FindLatestByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationCode, error)
	// Consume flips used=false to used=true and reports how many rows changed.
	// Zero means a concurrent booking already spent the code.
	Consume(ctx context.Context, tx *gorm.DB, id uint, usedAt time.Time) (int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, code *models.VerificationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *verificationRepository) FindLatestByEmail(ctx context.Context, email string) (*models.VerificationCode, error) {
	var code models.VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC, id DESC").
		First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *verificationRepository) FindLatestByEmailAndCode(ctx context.Context, email, code string) (*models.VerificationCode, error) {
	var row models.VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		Order("created_at DESC, id DESC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *verificationRepository) Consume(ctx context.Context, tx *gorm.DB, id uint, usedAt time.Time) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.VerificationCode{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]any{"used": true, "used_at": usedAt})
	return result.RowsAffected, result.Error
}
