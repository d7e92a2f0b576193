package sleeplog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidLog = errors.New("invalid sleep log")

type Service interface {
	CreateLog(ctx context.Context, input CreateLogInput) (*SleepLog, error)
	GetLog(ctx context.Context, id, userID uint) (*SleepLog, error)
	ListLogs(ctx context.Context, filter LogFilter) ([]SleepLog, int64, error)
	UpdateLog(ctx context.Context, id, userID uint, input UpdateLogInput) (*SleepLog, error)
	DeleteLog(ctx context.Context, id, userID uint) error
	RangeSummary(ctx context.Context, userID uint, start, end time.Time) (*Summary, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *logger.Logger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

func (s *service) CreateLog(ctx context.Context, input CreateLogInput) (*SleepLog, error) {
	if !input.Quality.Valid() {
		return nil, fmt.Errorf("%w: unknown quality %q", ErrInvalidLog, input.Quality)
	}
	if input.DurationHours <= 0 || input.DurationHours > 24 {
		return nil, fmt.Errorf("%w: duration must be between 0 and 24 hours", ErrInvalidLog)
	}
	if !input.WakeTime.After(input.Bedtime) {
		return nil, fmt.Errorf("%w: wake time must be after bedtime", ErrInvalidLog)
	}
	if input.EfficiencyPct != nil && (*input.EfficiencyPct < 0 || *input.EfficiencyPct > 100) {
		return nil, fmt.Errorf("%w: efficiency must be a percentage", ErrInvalidLog)
	}

	log := &SleepLog{
		UserID:              input.UserID,
		Bedtime:             input.Bedtime,
		WakeTime:            input.WakeTime,
		DurationHours:       input.DurationHours,
		Quality:             input.Quality,
		EfficiencyPct:       input.EfficiencyPct,
		TimeToFallAsleepMin: input.TimeToFallAsleepMin,
		AwakeningsCount:     input.AwakeningsCount,
		DeepSleepMinutes:    input.DeepSleepMinutes,
		LightSleepMinutes:   input.LightSleepMinutes,
		RemSleepMinutes:     input.RemSleepMinutes,
		AwakeMinutes:        input.AwakeMinutes,
		Notes:               input.Notes,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	s.logger.Info("sleep log created",
		zap.Uint("user_id", input.UserID),
		zap.Float64("duration_hours", log.DurationHours),
		zap.Int("sleep_score", log.SleepScore()))

	return log, nil
}

func (s *service) GetLog(ctx context.Context, id, userID uint) (*SleepLog, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListLogs(ctx context.Context, filter LogFilter) ([]SleepLog, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateLog(ctx context.Context, id, userID uint, input UpdateLogInput) (*SleepLog, error) {
	log, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Bedtime != nil {
		log.Bedtime = *input.Bedtime
	}
	if input.WakeTime != nil {
		log.WakeTime = *input.WakeTime
	}
	if input.DurationHours != nil {
		if *input.DurationHours <= 0 || *input.DurationHours > 24 {
			return nil, fmt.Errorf("%w: duration must be between 0 and 24 hours", ErrInvalidLog)
		}
		log.DurationHours = *input.DurationHours
	}
	if input.Quality != nil {
		if !input.Quality.Valid() {
			return nil, fmt.Errorf("%w: unknown quality %q", ErrInvalidLog, *input.Quality)
		}
		log.Quality = *input.Quality
	}
	if input.EfficiencyPct != nil {
		if *input.EfficiencyPct < 0 || *input.EfficiencyPct > 100 {
			return nil, fmt.Errorf("%w: efficiency must be a percentage", ErrInvalidLog)
		}
		log.EfficiencyPct = input.EfficiencyPct
	}
	if input.TimeToFallAsleepMin != nil {
		log.TimeToFallAsleepMin = input.TimeToFallAsleepMin
	}
	if input.AwakeningsCount != nil {
		log.AwakeningsCount = input.AwakeningsCount
	}
	if input.Notes != nil {
		log.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *service) DeleteLog(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// RangeSummary scores every night in the inclusive range and aggregates.
func (s *service) RangeSummary(ctx context.Context, userID uint, start, end time.Time) (*Summary, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidLog)
	}

	logs, err := s.repo.FindByRange(ctx, userID, startDay, endDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		StartDate: startDay.Format("2006-01-02"),
		EndDate:   endDay.Format("2006-01-02"),
	}

	var totalScore, bestIdx int
	var totalHours float64
	bestIdx = -1

	for i := range logs {
		log := &logs[i]
		night := NightScore{
			Date:          log.WakeTime.Format("2006-01-02"),
			DurationHours: log.DurationHours,
			Quality:       log.Quality,
			Score:         log.SleepScore(),
		}
		summary.Nights = append(summary.Nights, night)
		totalScore += night.Score
		totalHours += night.DurationHours
		if bestIdx < 0 || night.Score > summary.Nights[bestIdx].Score {
			bestIdx = len(summary.Nights) - 1
		}
	}

	summary.NightCount = len(summary.Nights)
	if summary.NightCount > 0 {
		summary.AverageScore = math.Round(float64(totalScore)/float64(summary.NightCount)*10) / 10
		summary.AverageDurationHours = math.Round(totalHours/float64(summary.NightCount)*10) / 10
		best := summary.Nights[bestIdx]
		summary.BestNight = &best
	}

	return summary, nil
}
