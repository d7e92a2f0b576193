package waterlog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/backend/pkg/logger"
)

type mockRepository struct {
	logs   map[uint]*WaterLog
	nextID uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{logs: make(map[uint]*WaterLog), nextID: 1}
}

func (m *mockRepository) Create(_ context.Context, log *WaterLog) error {
	log.ID = m.nextID
	m.nextID++
	stored := *log
	m.logs[log.ID] = &stored
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id, userID uint) (*WaterLog, error) {
	log, ok := m.logs[id]
	if !ok || log.UserID != userID {
		return nil, ErrLogNotFound
	}
	copied := *log
	return &copied, nil
}

func (m *mockRepository) FindAll(_ context.Context, filter LogFilter) ([]WaterLog, int64, error) {
	var logs []WaterLog
	for _, l := range m.logs {
		if l.UserID == filter.UserID {
			logs = append(logs, *l)
		}
	}
	return logs, int64(len(logs)), nil
}

func (m *mockRepository) FindByRange(_ context.Context, userID uint, from, to time.Time) ([]WaterLog, error) {
	var logs []WaterLog
	for _, l := range m.logs {
		if l.UserID == userID && !l.ConsumedAt.Before(from) && l.ConsumedAt.Before(to) {
			logs = append(logs, *l)
		}
	}
	return logs, nil
}

func (m *mockRepository) Update(_ context.Context, log *WaterLog) error {
	if _, ok := m.logs[log.ID]; !ok {
		return ErrLogNotFound
	}
	stored := *log
	m.logs[log.ID] = &stored
	return nil
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

func (g fixedGoal) DailyWaterGoalML(context.Context, uint) (int, error) {
	return int(g), nil
}

func newTestService(repo Repository, goalML int) Service {
	return NewService(repo, fixedGoal(goalML), logger.NewNop())
}

func seedLog(repo *mockRepository, userID uint, amountML int, drinkType DrinkType, consumedAt time.Time) {
	_ = repo.Create(context.Background(), &WaterLog{
		UserID:     userID,
		AmountML:   amountML,
		DrinkType:  drinkType,
		ConsumedAt: consumedAt,
	})
}

func TestEffectiveHydrationML(t *testing.T) {
	tests := []struct {
		drinkType DrinkType
		amountML  int
		expected  int
	}{
		{DrinkWater, 500, 500},
		{DrinkCoffee, 500, 400},
		{DrinkTea, 300, 270},
		{DrinkJuice, 200, 170},
		{DrinkType("mystery"), 100, 80},
	}

	for _, tt := range tests {
		log := &WaterLog{AmountML: tt.amountML, DrinkType: tt.drinkType}
		assert.Equal(t, tt.expected, log.EffectiveHydrationML(), "%s %dml", tt.drinkType, tt.amountML)
	}
}

func TestHydrationFactorsExhaustive(t *testing.T) {
	for _, dt := range DrinkTypes {
		_, ok := hydrationFactors[dt]
		assert.True(t, ok, "missing hydration factor for %q", dt)
	}
	assert.Len(t, hydrationFactors, len(DrinkTypes))
}

func TestCreateLogValidation(t *testing.T) {
	svc := newTestService(newMockRepository(), 2000)

	_, err := svc.CreateLog(context.Background(), CreateLogInput{UserID: 1, AmountML: 0})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreateLog(context.Background(), CreateLogInput{UserID: 1, AmountML: -50})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	log, err := svc.CreateLog(context.Background(), CreateLogInput{UserID: 1, AmountML: 250})
	require.NoError(t, err)
	assert.Equal(t, DrinkWater, log.DrinkType)
	assert.False(t, log.ConsumedAt.IsZero())
}

func TestDailyStats(t *testing.T) {
	repo := newMockRepository()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	seedLog(repo, 1, 250, DrinkWater, day.Add(8*time.Hour))
	seedLog(repo, 1, 200, DrinkWater, day.Add(12*time.Hour))
	seedLog(repo, 1, 300, DrinkWater, day.Add(18*time.Hour))
	// Outside the day and another user: both excluded.
	seedLog(repo, 1, 999, DrinkWater, day.AddDate(0, 0, 1).Add(time.Hour))
	seedLog(repo, 2, 500, DrinkWater, day.Add(9*time.Hour))

	svc := newTestService(repo, 2000)
	stats, err := svc.DailyStats(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15", stats.Date)
	assert.Equal(t, 2000, stats.GoalML)
	assert.Equal(t, 750, stats.TotalConsumedML)
	assert.InDelta(t, 37.5, stats.Percentage, 0.0001)
	assert.Equal(t, 3, stats.LogCount)
	assert.Equal(t, 1250, stats.RemainingML)
	assert.Equal(t, 750, stats.ByType[DrinkWater])
}

func TestDailyStatsClampAndZeroGoal(t *testing.T) {
	repo := newMockRepository()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	seedLog(repo, 1, 3000, DrinkWater, day.Add(10*time.Hour))

	svc := newTestService(repo, 2000)
	stats, err := svc.DailyStats(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stats.Percentage)
	assert.Equal(t, 0, stats.RemainingML)

	// A zero goal never divides: percentage stays 0.
	svc = newTestService(repo, 0)
	stats, err = svc.DailyStats(context.Background(), 1, day)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.Percentage)
	assert.Equal(t, 0, stats.RemainingML)
}

func TestDailyStatsMixedDrinkTypes(t *testing.T) {
	repo := newMockRepository()
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	seedLog(repo, 1, 500, DrinkWater, day.Add(8*time.Hour))
	seedLog(repo, 1, 500, DrinkCoffee, day.Add(9*time.Hour))

	svc := newTestService(repo, 2000)
	stats, err := svc.DailyStats(context.Background(), 1, day)
	require.NoError(t, err)

	assert.Equal(t, 1000, stats.TotalConsumedML)
	assert.Equal(t, 900, stats.EffectiveHydrationML)
	assert.Equal(t, 500, stats.ByType[DrinkWater])
	assert.Equal(t, 500, stats.ByType[DrinkCoffee])
}

func TestWeeklyStats(t *testing.T) {
	repo := newMockRepository()
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	seedLog(repo, 1, 2100, DrinkWater, start.Add(10*time.Hour))
	seedLog(repo, 1, 1000, DrinkWater, start.AddDate(0, 0, 1).Add(10*time.Hour))
	seedLog(repo, 1, 500, DrinkWater, start.AddDate(0, 0, 1).Add(15*time.Hour))
	seedLog(repo, 1, 2500, DrinkWater, start.AddDate(0, 0, 4).Add(12*time.Hour))

	svc := newTestService(repo, 2000)
	stats, err := svc.WeeklyStats(context.Background(), 1, start, end)
	require.NoError(t, err)

	require.Len(t, stats.Days, 7)
	assert.Equal(t, "2025-06-09", stats.Days[0].Date)
	assert.Equal(t, "2025-06-15", stats.Days[6].Date)

	assert.Equal(t, 6100, stats.WeeklyTotalML)
	// Average divides by all 7 days in the inclusive range.
	assert.InDelta(t, 6100.0/7.0, stats.AverageDailyML, 0.0001)
	assert.Equal(t, 2, stats.DaysGoalMet)

	require.NotNil(t, stats.BestDay)
	assert.Equal(t, "2025-06-13", stats.BestDay.Date)
	assert.Equal(t, 2500, stats.BestDay.TotalML)
}

func TestWeeklyStatsEmptyRange(t *testing.T) {
	svc := newTestService(newMockRepository(), 2000)
	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	stats, err := svc.WeeklyStats(context.Background(), 1, start, start)
	require.NoError(t, err)
	require.Len(t, stats.Days, 1)
	assert.Equal(t, 0, stats.WeeklyTotalML)
	assert.Equal(t, 0.0, stats.AverageDailyML)
	assert.Nil(t, stats.BestDay)

	_, err = svc.WeeklyStats(context.Background(), 1, start, start.AddDate(0, 0, -1))
	assert.Error(t, err)
}

func TestUpdateAndDeleteScoping(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, 2000)

	log, err := svc.CreateLog(context.Background(), CreateLogInput{UserID: 1, AmountML: 250})
	require.NoError(t, err)

	amount := 400
	updated, err := svc.UpdateLog(context.Background(), log.ID, 1, UpdateLogInput{AmountML: &amount})
	require.NoError(t, err)
	assert.Equal(t, 400, updated.AmountML)

	_, err = svc.UpdateLog(context.Background(), log.ID, 2, UpdateLogInput{AmountML: &amount})
	assert.ErrorIs(t, err, ErrLogNotFound)

	err = svc.DeleteLog(context.Background(), log.ID, 2)
	assert.ErrorIs(t, err, ErrLogNotFound)

	err = svc.DeleteLog(context.Background(), log.ID, 1)
	assert.NoError(t, err)
}
