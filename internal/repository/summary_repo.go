package repository

import (
	"context"

	"github.com/harborview/hotel-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRepository interface {
	// Upsert replaces the bucket for its window kind wholesale.
	Upsert(ctx context.Context, bucket *models.SalesSummary) error
	FindAll(ctx context.Context) ([]models.SalesSummary, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

func (r *summaryRepository) Upsert(ctx context.Context, bucket *models.SalesSummary) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "period_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"period_start", "period_end", "total_amount", "updated_at"}),
	}).Create(bucket).Error
}

func (r *summaryRepository) FindAll(ctx context.Context) ([]models.SalesSummary, error) {
	var buckets []models.SalesSummary
	if err := r.db.WithContext(ctx).Order("period_type ASC").Find(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}
