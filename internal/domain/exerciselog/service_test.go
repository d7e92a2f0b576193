package exerciselog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/backend/pkg/logger"
)

type mockRepository struct {
	logs   map[uint]*ExerciseLog
	nextID uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{logs: make(map[uint]*ExerciseLog), nextID: 1}
}

func (m *mockRepository) Create(_ context.Context, log *ExerciseLog) error {
	log.ID = m.nextID
	m.nextID++
	stored := *log
	m.logs[log.ID] = &stored
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id, userID uint) (*ExerciseLog, error) {
	log, ok := m.logs[id]
	if !ok || log.UserID != userID {
		return nil, ErrLogNotFound
	}
	copied := *log
	return &copied, nil
}

func (m *mockRepository) FindAll(_ context.Context, filter LogFilter) ([]ExerciseLog, int64, error) {
	var logs []ExerciseLog
	for _, l := range m.logs {
		if l.UserID == filter.UserID {
			logs = append(logs, *l)
		}
	}
	return logs, int64(len(logs)), nil
}

func (m *mockRepository) FindByRange(_ context.Context, userID uint, from, to time.Time) ([]ExerciseLog, error) {
	var logs []ExerciseLog
	for _, l := range m.logs {
		if l.UserID == userID && !l.PerformedAt.Before(from) && l.PerformedAt.Before(to) {
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

func intPtr(v int) *int         { return &v }
func f64(v float64) *float64    { return &v }

func TestPaceMinPerKM(t *testing.T) {
	log := &ExerciseLog{DurationMin: 30, DistanceKM: f64(5)}
	pace := log.PaceMinPerKM()
	require.NotNil(t, pace)
	assert.InDelta(t, 6.0, *pace, 0.0001)

	log.DistanceKM = nil
	assert.Nil(t, log.PaceMinPerKM())

	log.DistanceKM = f64(0)
	assert.Nil(t, log.PaceMinPerKM())
}

func TestCreateLogValidation(t *testing.T) {
	svc := NewService(newMockRepository(), logger.NewNop())

	_, err := svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, ActivityType: ActivityType("parkour"), DurationMin: 30,
	})
	assert.ErrorIs(t, err, ErrInvalidLog)

	_, err = svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, ActivityType: ActivityRunning, DurationMin: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidLog)

	log, err := svc.CreateLog(context.Background(), CreateLogInput{
		UserID: 1, ActivityType: ActivityRunning, DurationMin: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, IntensityModerate, log.Intensity)
	assert.False(t, log.PerformedAt.IsZero())
}

func TestWeeklySummary(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, logger.NewNop())

	start := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	session := func(day int, activity ActivityType, minutes int, calories *int, distance *float64) {
		_ = repo.Create(context.Background(), &ExerciseLog{
			UserID:         1,
			ActivityType:   activity,
			DurationMin:    minutes,
			Intensity:      IntensityModerate,
			CaloriesBurned: calories,
			DistanceKM:     distance,
			PerformedAt:    start.AddDate(0, 0, day).Add(8 * time.Hour),
		})
	}

	session(0, ActivityRunning, 30, intPtr(300), f64(5))
	session(0, ActivityYoga, 45, nil, nil)
	session(2, ActivityCycling, 60, intPtr(450), f64(20))
	session(8, ActivityRunning, 30, intPtr(300), f64(5)) // outside range

	summary, err := svc.WeeklySummary(context.Background(), 1, start, start.AddDate(0, 0, 6))
	require.NoError(t, err)

	assert.Equal(t, 3, summary.SessionCount)
	assert.Equal(t, 135, summary.TotalMinutes)
	assert.Equal(t, 750, summary.TotalCalories)
	assert.InDelta(t, 25.0, summary.TotalDistanceKM, 0.0001)
	assert.Equal(t, 2, summary.ActiveDays)
	assert.Equal(t, 30, summary.MinutesByActivity[ActivityRunning])
	assert.Equal(t, 45, summary.MinutesByActivity[ActivityYoga])
	assert.Equal(t, 60, summary.MinutesByActivity[ActivityCycling])
}
