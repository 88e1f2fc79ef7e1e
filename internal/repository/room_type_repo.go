package repository

import (
	"context"
	"strings"
	"time"

	"github.com/harborview/hotel-backend/internal/models"
	"gorm.io/gorm"
)

type RateRuleFilter struct {
	ActiveOnly  bool
	WindowStart *time.Time
	WindowEnd   *time.Time
}

type RoomTypeRepository interface {
	FindAll(ctx context.Context) ([]models.RoomType, error)
	FindByID(ctx context.Context, id uint) (*models.RoomType, error)
	FindByName(ctx context.Context, name string) (*models.RoomType, error)
	FindRateRules(ctx context.Context, roomTypeID uint, filter RateRuleFilter) ([]models.RateRule, error)
	CreateRateRule(ctx context.Context, rule *models.RateRule) error
}

type roomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) RoomTypeRepository {
	return &roomTypeRepository{db: db}
}

func (r *roomTypeRepository) FindAll(ctx context.Context) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&roomTypes).Error; err != nil {
		return nil, err
	}
	return roomTypes, nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := r.db.WithContext(ctx).First(&roomType, id).Error; err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindByName(ctx context.Context, name string) (*models.RoomType, error) {
	var roomType models.RoomType
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&roomType).Error
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) FindRateRules(ctx context.Context, roomTypeID uint, filter RateRuleFilter) ([]models.RateRule, error) {
	q := r.db.WithContext(ctx).Where("room_type_id = ?", roomTypeID)
	if filter.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	if filter.WindowStart != nil && filter.WindowEnd != nil {
		q = q.Where("start_date <= ? AND end_date >= ?", *filter.WindowEnd, *filter.WindowStart)
	}

	var rules []models.RateRule
	if err := q.Order("start_date ASC, name ASC").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *roomTypeRepository) CreateRateRule(ctx context.Context, rule *models.RateRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}
