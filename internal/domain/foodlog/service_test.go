package foodlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/backend/pkg/logger"
)

type mockRepository struct {
	logs   map[uint]*FoodLog
	nextID uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{logs: make(map[uint]*FoodLog), nextID: 1}
}

func (m *mockRepository) Create(_ context.Context, log *FoodLog) error {
	log.ID = m.nextID
	m.nextID++
	stored := *log
	m.logs[log.ID] = &stored
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id, userID uint) (*FoodLog, error) {
	log, ok := m.logs[id]
	if !ok || log.UserID != userID {
		return nil, ErrLogNotFound
	}
	copied := *log
	return &copied, nil
}

func (m *mockRepository) FindAll(_ context.Context, filter LogFilter) ([]FoodLog, int64, error) {
	var logs []FoodLog
	for _, l := range m.logs {
		if l.UserID == filter.UserID {
			logs = append(logs, *l)
		}
	}
	return logs, int64(len(logs)), nil
}

func (m *mockRepository) FindByRange(_ context.Context, userID uint, from, to time.Time) ([]FoodLog, error) {
	var logs []FoodLog
	for _, l := range m.logs {
		if l.UserID == userID && !l.ConsumedAt.Before(from) && l.ConsumedAt.Before(to) {
			logs = append(logs, *l)
		}
	}
	return logs, nil
}

func (m *mockRepository) Delete(_ context.Context, id, userID uint) error {
	log, ok := m.logs[id]
	if !ok || log.UserID != userID {
		return ErrLogNotFound
	}
	delete(m.logs, id)
	return nil
}

type fixedGoal int

func (g fixedGoal) DailyCalorieGoal(context.Context, uint) (int, error) {
	return int(g), nil
}

func f64(v float64) *float64 { return &v }

func TestMacroCalorieSplit(t *testing.T) {
	log := &FoodLog{}
	assert.Nil(t, log.MacroCalorieSplit())

	// 30g protein = 120 kcal, 50g carbs = 200 kcal, 20g fat = 180 kcal.
	log = &FoodLog{ProteinGrams: f64(30), CarbsGrams: f64(50), FatGrams: f64(20)}
	split := log.MacroCalorieSplit()
	require.NotNil(t, split)
	assert.InDelta(t, 24.0, split.ProteinPct, 0.1)
	assert.InDelta(t, 40.0, split.CarbsPct, 0.1)
	assert.InDelta(t, 36.0, split.FatPct, 0.1)

	// Recorded but all-zero macros: defined, zero shares, no division.
	log = &FoodLog{ProteinGrams: f64(0)}
	split = log.MacroCalorieSplit()
	require.NotNil(t, split)
	assert.Equal(t, 0.0, split.ProteinPct)
	assert.Equal(t, 0.0, split.CarbsPct)
	assert.Equal(t, 0.0, split.FatPct)
}

func TestCreateLogValidation(t *testing.T) {
	svc := NewService(newMockRepository(), fixedGoal(2200), logger.NewNop())

	_, err := svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, MealType: MealType("brunch"), Description: "eggs", Calories: 300,
	})
	assert.ErrorIs(t, err, ErrInvalidLog)

	_, err = svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, MealType: MealBreakfast, Calories: 300,
	})
	assert.ErrorIs(t, err, ErrInvalidLog)

	_, err = svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, MealType: MealBreakfast, Description: "eggs", Calories: -10,
	})
	assert.ErrorIs(t, err, ErrInvalidLog)

	log, err := svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, MealType: MealBreakfast, Description: "eggs", Calories: 300,
	})
	require.NoError(t, err)
	assert.False(t, log.ConsumedAt.IsZero())
}

func TestDailyNutrition(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, fixedGoal(2200), logger.NewNop())

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	meal := func(mealType MealType, calories int, protein *float64, hour int) {
		_ = repo.Create(context.Background(), &FoodLog{
			UserID:       1,
			MealType:     mealType,
			Description:  "meal",
			Calories:     calories,
			ProteinGrams: protein,
			ConsumedAt:   day.Add(time.Duration(hour) * time.Hour),
		})
	}

	meal(MealBreakfast, 400, f64(20), 8)
	meal(MealLunch, 700, f64(35), 13)
	meal(MealSnack, 200, nil, 16)
	meal(MealDinner, 999, nil, 30) // next day, excluded

	nutrition, err := svc.DailyNutrition(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 2200, nutrition.CalorieGoal)
	assert.Equal(t, 1300, nutrition.TotalCalories)
	assert.Equal(t, 900, nutrition.RemainingCalories)
	assert.InDelta(t, 1300.0/2200.0*100, nutrition.GoalPercentage, 0.0001)
	assert.InDelta(t, 55.0, nutrition.TotalProteinGrams, 0.0001)
	assert.Equal(t, 3, nutrition.MealCount)
	assert.Equal(t, 400, nutrition.CaloriesByMeal[MealBreakfast])
	assert.Equal(t, 700, nutrition.CaloriesByMeal[MealLunch])
	assert.Equal(t, 200, nutrition.CaloriesByMeal[MealSnack])
}

func TestDailyNutritionClampAndZeroGoal(t *testing.T) {
	repo := newMockRepository()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	_ = repo.Create(context.Background(), &FoodLog{
		UserID: 1, MealType: MealDinner, Description: "feast",
		Calories: 3000, ConsumedAt: day.Add(19 * time.Hour),
	})

	svc := NewService(repo, fixedGoal(2200), logger.NewNop())
	nutrition, err := svc.DailyNutrition(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, 100.0, nutrition.GoalPercentage)
	assert.Equal(t, 0, nutrition.RemainingCalories)

	svc = NewService(repo, fixedGoal(0), logger.NewNop())
	nutrition, err = svc.DailyNutrition(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, 0.0, nutrition.GoalPercentage)
}
