package exerciselog

import (
	"context"
	"errors"
	"time"

	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var ErrLogNotFound = errors.New("exercise log not found")

type Repository interface {
	Create(ctx context.Context, log *ExerciseLog) error
	FindByID(ctx context.Context, id, userID uint) (*ExerciseLog, error)
	FindAll(ctx context.Context, filter LogFilter) ([]ExerciseLog, int64, error)
	FindByRange(ctx context.Context, userID uint, from, to time.Time) ([]ExerciseLog, error)
	Delete(ctx context.Context, id, userID uint) error
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, log *ExerciseLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *repository) FindByID(ctx context.Context, id, userID uint) (*ExerciseLog, error) {
	var log ExerciseLog
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

func (r *repository) FindAll(ctx context.Context, filter LogFilter) ([]ExerciseLog, int64, error) {
	var logs []ExerciseLog
	var total int64

	query := r.db.WithContext(ctx).Model(&ExerciseLog{}).
		Where("user_id = ?", filter.UserID)

	if filter.ActivityType != nil {
		query = query.Where("activity_type = ?", *filter.ActivityType)
	}
	if filter.Intensity != nil {
		query = query.Where("intensity = ?", *filter.Intensity)
	}
	if filter.From != nil {
		query = query.Where("performed_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("performed_at <= ?", *filter.To)
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

	err := query.Order("performed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *repository) FindByRange(ctx context.Context, userID uint, from, to time.Time) ([]ExerciseLog, error) {
	var logs []ExerciseLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND performed_at >= ? AND performed_at < ?", userID, from, to).
		Order("performed_at ASC").
		Find(&logs).Error
	return logs, err
}

func (r *repository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ExerciseLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
