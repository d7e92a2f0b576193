package foodlog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidLog = errors.New("invalid food log")

// GoalResolver supplies the per-user daily calorie goal. Implemented by
// the user domain's preference service.
type GoalResolver interface {
	DailyCalorieGoal(ctx context.Context, userID uint) (int, error)
}

type Service interface {
	CreateLog(ctx context.Context, input CreateLogInput) (*FoodLog, error)
	GetLog(ctx context.Context, id, userID uint) (*FoodLog, error)
	ListLogs(ctx context.Context, filter LogFilter) ([]FoodLog, int64, error)
	DeleteLog(ctx context.Context, id, userID uint) error
	DailyNutrition(ctx context.Context, userID uint, date time.Time) (*DailyNutrition, error)
}

type service struct {
	repo   Repository
	goals  GoalResolver
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, goals GoalResolver, logger *logger.Logger) Service {
	return &service{repo: repo, goals: goals, logger: logger, now: time.Now}
}

func (s *service) CreateLog(ctx context.Context, input CreateLogInput) (*FoodLog, error) {
	if !input.MealType.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidLog, input.MealType)
	}
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidLog)
	}
	if input.Calories < 0 {
		return nil, fmt.Errorf("%w: calories cannot be negative", ErrInvalidLog)
	}

	consumedAt := input.ConsumedAt
	if consumedAt.IsZero() {
		consumedAt = s.now()
	}

	log := &FoodLog{
		UserID:       input.UserID,
		MealType:     input.MealType,
		Description:  input.Description,
		Calories:     input.Calories,
		ProteinGrams: input.ProteinGrams,
		CarbsGrams:   input.CarbsGrams,
		FatGrams:     input.FatGrams,
		ConsumedAt:   consumedAt,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	s.logger.Info("food log created",
		zap.Uint("user_id", input.UserID),
		zap.String("meal_type", string(log.MealType)),
		zap.Int("calories", log.Calories))

	return log, nil
}

func (s *service) GetLog(ctx context.Context, id, userID uint) (*FoodLog, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListLogs(ctx context.Context, filter LogFilter) ([]FoodLog, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) DeleteLog(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// DailyNutrition totals one calendar day's intake against the calorie
// goal. The goal percentage is clamped to [0,100] and a zero goal yields
// 0.
func (s *service) DailyNutrition(ctx context.Context, userID uint, date time.Time) (*DailyNutrition, error) {
	goal, err := s.goals.DailyCalorieGoal(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	logs, err := s.repo.FindByRange(ctx, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	nutrition := &DailyNutrition{
		Date:           dayStart.Format("2006-01-02"),
		CalorieGoal:    goal,
		CaloriesByMeal: make(map[MealType]int),
	}

	for i := range logs {
		log := &logs[i]
		nutrition.TotalCalories += log.Calories
		nutrition.CaloriesByMeal[log.MealType] += log.Calories
		nutrition.MealCount++
		if log.ProteinGrams != nil {
			nutrition.TotalProteinGrams += *log.ProteinGrams
		}
		if log.CarbsGrams != nil {
			nutrition.TotalCarbsGrams += *log.CarbsGrams
		}
		if log.FatGrams != nil {
			nutrition.TotalFatGrams += *log.FatGrams
		}
	}

	if goal > 0 {
		pct := float64(nutrition.TotalCalories) / float64(goal) * 100
		nutrition.GoalPercentage = math.Min(math.Max(pct, 0), 100)
	}

	remaining := goal - nutrition.TotalCalories
	if remaining < 0 {
		remaining = 0
	}
	nutrition.RemainingCalories = remaining

	return nutrition, nil
}
