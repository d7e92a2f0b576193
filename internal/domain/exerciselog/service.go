package exerciselog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidLog = errors.New("invalid exercise log")

type Service interface {
	CreateLog(ctx context.Context, input CreateLogInput) (*ExerciseLog, error)
	GetLog(ctx context.Context, id, userID uint) (*ExerciseLog, error)
	ListLogs(ctx context.Context, filter LogFilter) ([]ExerciseLog, int64, error)
	DeleteLog(ctx context.Context, id, userID uint) error
	WeeklySummary(ctx context.Context, userID uint, start, end time.Time) (*WeeklySummary, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *logger.Logger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

func (s *service) CreateLog(ctx context.Context, input CreateLogInput) (*ExerciseLog, error) {
	if !input.ActivityType.Valid() {
		return nil, fmt.Errorf("%w: unknown activity type %q", ErrInvalidLog, input.ActivityType)
	}
	if input.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidLog)
	}
	intensity := input.Intensity
	if intensity == "" {
		intensity = IntensityModerate
	}
	if !intensity.Valid() {
		return nil, fmt.Errorf("%w: unknown intensity %q", ErrInvalidLog, intensity)
	}
	if input.DistanceKM != nil && *input.DistanceKM < 0 {
		return nil, fmt.Errorf("%w: distance cannot be negative", ErrInvalidLog)
	}

	performedAt := input.PerformedAt
	if performedAt.IsZero() {
		performedAt = s.now()
	}

	log := &ExerciseLog{
		UserID:         input.UserID,
		ActivityType:   input.ActivityType,
		DurationMin:    input.DurationMin,
		Intensity:      intensity,
		CaloriesBurned: input.CaloriesBurned,
		DistanceKM:     input.DistanceKM,
		PerformedAt:    performedAt,
		Notes:          input.Notes,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	s.logger.Info("exercise log created",
		zap.Uint("user_id", input.UserID),
		zap.String("activity_type", string(log.ActivityType)),
		zap.Int("duration_min", log.DurationMin))

	return log, nil
}

func (s *service) GetLog(ctx context.Context, id, userID uint) (*ExerciseLog, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListLogs(ctx context.Context, filter LogFilter) ([]ExerciseLog, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) DeleteLog(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// WeeklySummary totals sessions over an inclusive date range and breaks
// minutes down per activity type.
func (s *service) WeeklySummary(ctx context.Context, userID uint, start, end time.Time) (*WeeklySummary, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidLog)
	}

	logs, err := s.repo.FindByRange(ctx, userID, startDay, endDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	summary := &WeeklySummary{
		StartDate:         startDay.Format("2006-01-02"),
		EndDate:           endDay.Format("2006-01-02"),
		MinutesByActivity: make(map[ActivityType]int),
	}

	daysSeen := make(map[string]bool)
	for i := range logs {
		log := &logs[i]
		summary.SessionCount++
		summary.TotalMinutes += log.DurationMin
		summary.MinutesByActivity[log.ActivityType] += log.DurationMin
		if log.CaloriesBurned != nil {
			summary.TotalCalories += *log.CaloriesBurned
		}
		if log.DistanceKM != nil {
			summary.TotalDistanceKM += *log.DistanceKM
		}
		daysSeen[log.PerformedAt.Format("2006-01-02")] = true
	}
	summary.ActiveDays = len(daysSeen)

	return summary, nil
}
