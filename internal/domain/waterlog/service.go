package waterlog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("amount must be a positive number of millilitres")

// GoalResolver supplies the per-user daily hydration goal. Implemented by
// the user domain's preference service.
type GoalResolver interface {
	DailyWaterGoalML(ctx context.Context, userID uint) (int, error)
}

type Service interface {
	CreateLog(ctx context.Context, input CreateLogInput) (*WaterLog, error)
	GetLog(ctx context.Context, id, userID uint) (*WaterLog, error)
	ListLogs(ctx context.Context, filter LogFilter) ([]WaterLog, int64, error)
	UpdateLog(ctx context.Context, id, userID uint, input UpdateLogInput) (*WaterLog, error)
	DeleteLog(ctx context.Context, id, userID uint) error
	DailyStats(ctx context.Context, userID uint, date time.Time) (*DailyStats, error)
	WeeklyStats(ctx context.Context, userID uint, start, end time.Time) (*WeeklyStats, error)
}

type service struct {
	repo   Repository
	goals  GoalResolver
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, goals GoalResolver, logger *logger.Logger) Service {
	return &service{
		repo:   repo,
		goals:  goals,
		logger: logger,
		now:    time.Now,
	}
}

func (s *service) CreateLog(ctx context.Context, input CreateLogInput) (*WaterLog, error) {
	if input.AmountML <= 0 {
		return nil, ErrInvalidAmount
	}
	drinkType := input.DrinkType
	if drinkType == "" {
		drinkType = DrinkWater
	}
	if !drinkType.Valid() {
		return nil, fmt.Errorf("%w: unknown drink type %q", ErrInvalidAmount, drinkType)
	}

	consumedAt := input.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = s.now()
	}

	log := &WaterLog{
		UserID:     input.UserID,
		AmountML:   input.AmountML,
		DrinkType:  drinkType,
		ConsumedAt: consumedAt,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	s.logger.Info("water log created",
		zap.Uint("user_id", input.UserID),
		zap.Int("amount_ml", log.AmountML),
		zap.String("drink_type", string(log.DrinkType)))

	return log, nil
}

func (s *service) GetLog(ctx context.Context, id, userID uint) (*WaterLog, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListLogs(ctx context.Context, filter LogFilter) ([]WaterLog, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateLog(ctx context.Context, id, userID uint, input UpdateLogInput) (*WaterLog, error) {
	log, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.AmountML != nil {
		if *input.AmountML <= 0 {
			return nil, ErrInvalidAmount
		}
		log.AmountML = *input.AmountML
	}
	if input.DrinkType != nil {
		if !input.DrinkType.Valid() {
			return nil, fmt.Errorf("%w: unknown drink type %q", ErrInvalidAmount, *input.DrinkType)
		}
		log.DrinkType = *input.DrinkType
	}
	if input.ConsumedAt != nil {
		log.ConsumedAt = *input.ConsumedAt
	}

	if err := s.repo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *service) DeleteLog(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// DailyStats sums one calendar day's logs against the user's goal. The
// percentage is clamped to [0,100] and a zero goal yields 0, never a
// division error.
func (s *service) DailyStats(ctx context.Context, userID uint, date time.Time) (*DailyStats, error) {
	goalML, err := s.goals.DailyWaterGoalML(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	logs, err := s.repo.FindByRange(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	stats := &DailyStats{
		Date:   dayStart.Format("2006-01-02"),
		GoalML: goalML,
		ByType: make(map[DrinkType]int),
	}

	for i := range logs {
		log := &logs[i]
		stats.TotalConsumedML += log.AmountML
		stats.EffectiveHydrationML += log.EffectiveHydrationML()
		stats.ByType[log.DrinkType] += log.AmountML
		stats.LogCount++
	}

	if goalML > 0 {
		pct := float64(stats.TotalConsumedML) / float64(goalML) * 100
		stats.Percentage = math.Min(math.Max(pct, 0), 100)
	}

	remaining := goalML - stats.TotalConsumedML
	if remaining < 0 {
		remaining = 0
	}
	stats.RemainingML = remaining

	return stats, nil
}

// WeeklyStats aggregates per-day totals over an inclusive date range. The
// average divides by the number of days in the range, logged or not.
func (s *service) WeeklyStats(ctx context.Context, userID uint, start, end time.Time) (*WeeklyStats, error) {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidAmount)
	}

	goalML, err := s.goals.DailyWaterGoalML(ctx, userID)
	if err != nil {
		return nil, err
	}

	logs, err := s.repo.FindByRange(ctx, userID, startDay, endDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	totalsByDate := make(map[string]int)
	for i := range logs {
		key := logs[i].ConsumedAt.Format("2006-01-02")
		totalsByDate[key] += logs[i].AmountML
	}

	stats := &WeeklyStats{
		StartDate: startDay.Format("2006-01-02"),
		EndDate:   endDay.Format("2006-01-02"),
	}

	var bestIdx = -1
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		total := totalsByDate[key]
		entry := DayTotal{
			Date:    key,
			TotalML: total,
			GoalMet: goalML > 0 && total >= goalML,
		}
		stats.Days = append(stats.Days, entry)
		stats.WeeklyTotalML += total
		if entry.GoalMet {
			stats.DaysGoalMet++
		}
		if total > 0 && (bestIdx < 0 || total > stats.Days[bestIdx].TotalML) {
			bestIdx = len(stats.Days) - 1
		}
	}

	stats.AverageDailyML = float64(stats.WeeklyTotalML) / float64(len(stats.Days))
	if bestIdx >= 0 {
		best := stats.Days[bestIdx]
		stats.BestDay = &best
	}

	return stats, nil
}
