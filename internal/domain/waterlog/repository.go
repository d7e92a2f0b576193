package waterlog

import (
	"context"
	"errors"
	"time"

	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var ErrLogNotFound = errors.New("water log not found")

type Repository interface {
	Create(ctx context.Context, log *WaterLog) error
	FindByID(ctx context.Context, id, userID uint) (*WaterLog, error)
	FindAll(ctx context.Context, filter LogFilter) ([]WaterLog, int64, error)
	FindByRange(ctx context.Context, userID uint, from, to time.Time) ([]WaterLog, error)
	Update(ctx context.Context, log *WaterLog) error
	Delete(ctx context.Context, id, userID uint) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, log *WaterLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindByID(ctx context.Context, id, userID uint) (*WaterLog, error) {
	var log WaterLog
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, result.Error
	}
	return &log, nil
}

func (r *repository) FindAll(ctx context.Context, filter LogFilter) ([]WaterLog, int64, error) {
	var logs []WaterLog
	var total int64

	query := r.db.WithContext(ctx).Model(&WaterLog{}).
		Where("user_id = ?", filter.UserID)

	if filter.DrinkType != nil {
		query = query.Where("drink_type = ?", *filter.DrinkType)
	}
	if filter.From != nil {
		query = query.Where("consumed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("consumed_at <= ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	err := query.Order("consumed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// FindByRange returns logs with consumed_at in [from, to), oldest first.
func (r *repository) FindByRange(ctx context.Context, userID uint, from, to time.Time) ([]WaterLog, error) {
	var logs []WaterLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, from, to).
		Order("consumed_at ASC").
		Find(&logs).Error
	return logs, err
}

func (r *repository) Update(ctx context.Context, log *WaterLog) error {
	result := r.db.WithContext(ctx).Save(log)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&WaterLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
