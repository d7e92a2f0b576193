package healthgoal

import (
	"context"
	"errors"
	"time"

	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound       = errors.New("health goal not found")
	ErrGoalCompleted      = errors.New("goal is already completed")
	ErrGoalNotCompletable = errors.New("goal cannot be completed before reaching its target value")
	ErrInvalidStatus      = errors.New("invalid goal status")
)

type Repository interface {
	Create(ctx context.Context, goal *HealthGoal) error
	FindByID(ctx context.Context, id, userID uint) (*HealthGoal, error)
	FindAll(ctx context.Context, filter GoalFilter) ([]HealthGoal, int64, error)
	FindAllByUser(ctx context.Context, userID uint) ([]HealthGoal, error)
	Update(ctx context.Context, goal *HealthGoal) error
	Delete(ctx context.Context, id, userID uint) error
	GetMonthlyProgress(ctx context.Context, userID uint, from time.Time) ([]MonthlyProgressRow, error)
	FindOverdue(ctx context.Context, now time.Time) ([]HealthGoal, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, goal *HealthGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

// FindByID is scoped to the owning user; a goal belonging to someone else
// is indistinguishable from a missing one.
func (r *repository) FindByID(ctx context.Context, id, userID uint) (*HealthGoal, error) {
	var goal HealthGoal
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goal)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, result.Error
	}
	return &goal, nil
}

func (r *repository) FindAll(ctx context.Context, filter GoalFilter) ([]HealthGoal, int64, error) {
	var goals []HealthGoal
	var total int64

	query := r.db.WithContext(ctx).Model(&HealthGoal{}).
		Where("user_id = ?", filter.UserID)

	if filter.GoalType != nil {
		query = query.Where("goal_type = ?", *filter.GoalType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.StartDateFrom != nil {
		query = query.Where("start_date >= ?", *filter.StartDateFrom)
	}
	if filter.StartDateTo != nil {
		query = query.Where("start_date <= ?", *filter.StartDateTo)
	}
	if filter.TargetDateFrom != nil {
		query = query.Where("target_date >= ?", *filter.TargetDateFrom)
	}
	if filter.TargetDateTo != nil {
		query = query.Where("target_date <= ?", *filter.TargetDateTo)
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

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&goals).Error
	if err != nil {
		return nil, 0, err
	}

	return goals, total, nil
}

func (r *repository) FindAllByUser(ctx context.Context, userID uint) ([]HealthGoal, error) {
	var goals []HealthGoal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&goals).Error
	return goals, err
}

func (r *repository) Update(ctx context.Context, goal *HealthGoal) error {
	result := r.db.WithContext(ctx).Save(goal)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&HealthGoal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// GetMonthlyProgress aggregates goal activity per calendar month since
// from: creations and average clamped progress by created_at month,
// completions by updated_at month.
func (r *repository) GetMonthlyProgress(ctx context.Context, userID uint, from time.Time) ([]MonthlyProgressRow, error) {
	var createdRows []struct {
		Month           string
		GoalsCreated    int
		AverageProgress float64
	}

	createdQuery := `
		SELECT
			TO_CHAR(created_at, 'YYYY-MM') AS month,
			COUNT(*) AS goals_created,
			COALESCE(AVG(
				CASE WHEN target_value > 0
					THEN LEAST(GREATEST(current_value / target_value * 100, 0), 100)
					ELSE 0
				END), 0) AS average_progress
		FROM health_goals
		WHERE user_id = ? AND created_at >= ?
		GROUP BY TO_CHAR(created_at, 'YYYY-MM')
	`
	if err := r.db.WithContext(ctx).Raw(createdQuery, userID, from).Scan(&createdRows).Error; err != nil {
		return nil, err
	}

	var completedRows []struct {
		Month          string
		GoalsCompleted int
	}

	completedQuery := `
		SELECT
			TO_CHAR(updated_at, 'YYYY-MM') AS month,
			COUNT(*) AS goals_completed
		FROM health_goals
		WHERE user_id = ? AND status = 'completed' AND updated_at >= ?
		GROUP BY TO_CHAR(updated_at, 'YYYY-MM')
	`
	if err := r.db.WithContext(ctx).Raw(completedQuery, userID, from).Scan(&completedRows).Error; err != nil {
		return nil, err
	}

	byMonth := make(map[string]*MonthlyProgressRow)
	for _, row := range createdRows {
		byMonth[row.Month] = &MonthlyProgressRow{
			Month:           row.Month,
			GoalsCreated:    row.GoalsCreated,
			AverageProgress: row.AverageProgress,
		}
	}
	for _, row := range completedRows {
		if existing, ok := byMonth[row.Month]; ok {
			existing.GoalsCompleted = row.GoalsCompleted
			continue
		}
		byMonth[row.Month] = &MonthlyProgressRow{
			Month:          row.Month,
			GoalsCompleted: row.GoalsCompleted,
		}
	}

	rows := make([]MonthlyProgressRow, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	return rows, nil
}

// FindOverdue returns active goals across all users whose target date has
// passed. Used by the reminder scheduler.
func (r *repository) FindOverdue(ctx context.Context, now time.Time) ([]HealthGoal, error) {
	var goals []HealthGoal
	err := r.db.WithContext(ctx).
		Where("status = ? AND target_date IS NOT NULL AND target_date < ?", StatusActive, now).
		Find(&goals).Error
	return goals, err
}
