package healthmetric

import (
	"context"
	"errors"

	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var ErrMetricNotFound = errors.New("health metric not found")

type Repository interface {
	Create(ctx context.Context, metric *HealthMetric) error
	FindByID(ctx context.Context, id, userID uint) (*HealthMetric, error)
	FindAll(ctx context.Context, filter MetricFilter) ([]HealthMetric, int64, error)
	FindLatest(ctx context.Context, userID uint) (*HealthMetric, error)
	Delete(ctx context.Context, id, userID uint) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, metric *HealthMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *repository) FindByID(ctx context.Context, id, userID uint) (*HealthMetric, error) {
	var metric HealthMetric
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&metric)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMetricNotFound
		}
		return nil, result.Error
	}
	return &metric, nil
}

func (r *repository) FindAll(ctx context.Context, filter MetricFilter) ([]HealthMetric, int64, error) {
	var metrics []HealthMetric
	var total int64

	query := r.db.WithContext(ctx).Model(&HealthMetric{}).
		Where("user_id = ?", filter.UserID)

	if filter.From != nil {
		query = query.Where("recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", *filter.To)
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

	err := query.Order("recorded_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&metrics).Error
	if err != nil {
		return nil, 0, err
	}

	return metrics, total, nil
}

func (r *repository) FindLatest(ctx context.Context, userID uint) (*HealthMetric, error) {
	var metric HealthMetric
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		First(&metric)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrMetricNotFound
		}
		return nil, result.Error
	}
	return &metric, nil
}

func (r *repository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&HealthMetric{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMetricNotFound
	}
	return nil
}
