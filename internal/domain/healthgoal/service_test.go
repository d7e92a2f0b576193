package healthgoal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/backend/pkg/logger"
)

type mockRepository struct {
	goals      map[uint]*HealthGoal
	nextID     uint
	monthly    []MonthlyProgressRow
	monthlyErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{goals: make(map[uint]*HealthGoal), nextID: 1}
}

func (m *mockRepository) Create(_ context.Context, goal *HealthGoal) error {
	goal.ID = m.nextID
	m.nextID++
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt
	stored := *goal
	m.goals[goal.ID] = &stored
	return nil
}

func (m *mockRepository) FindByID(_ context.Context, id, userID uint) (*HealthGoal, error) {
	goal, ok := m.goals[id]
	if !ok || goal.UserID != userID {
		return nil, ErrGoalNotFound
	}
	copied := *goal
	return &copied, nil
}

func (m *mockRepository) FindAll(_ context.Context, filter GoalFilter) ([]HealthGoal, int64, error) {
	goals, err := m.FindAllByUser(context.Background(), filter.UserID)
	return goals, int64(len(goals)), err
}

func (m *mockRepository) FindAllByUser(_ context.Context, userID uint) ([]HealthGoal, error) {
	var goals []HealthGoal
	for _, g := range m.goals {
		if g.UserID == userID {
			goals = append(goals, *g)
		}
	}
	return goals, nil
}

func (m *mockRepository) Update(_ context.Context, goal *HealthGoal) error {
	if _, ok := m.goals[goal.ID]; !ok {
		return ErrGoalNotFound
	}
	goal.UpdatedAt = time.Now()
	stored := *goal
	m.goals[goal.ID] = &stored
	return nil
}

func (m *mockRepository) Delete(_ context.Context, id, userID uint) error {
	goal, ok := m.goals[id]
	if !ok || goal.UserID != userID {
		return ErrGoalNotFound
	}
	delete(m.goals, id)
	return nil
}

func (m *mockRepository) GetMonthlyProgress(_ context.Context, _ uint, _ time.Time) ([]MonthlyProgressRow, error) {
	return m.monthly, m.monthlyErr
}

func (m *mockRepository) FindOverdue(_ context.Context, now time.Time) ([]HealthGoal, error) {
	var goals []HealthGoal
	for _, g := range m.goals {
		if g.IsOverdueAt(now) {
			goals = append(goals, *g)
		}
	}
	return goals, nil
}

type mockNotifier struct {
	completed []uint
	overdue   []uint
	err       error
}

func (m *mockNotifier) NotifyGoalCompleted(_ context.Context, _ uint, goal *HealthGoal) error {
	if m.err != nil {
		return m.err
	}
	m.completed = append(m.completed, goal.ID)
	return nil
}

func (m *mockNotifier) NotifyGoalOverdue(_ context.Context, _ uint, goal *HealthGoal) error {
	if m.err != nil {
		return m.err
	}
	m.overdue = append(m.overdue, goal.ID)
	return nil
}

func newTestService(repo Repository, notifier Notifier) *service {
	return &service{
		repo:     repo,
		notifier: notifier,
		logger:   logger.NewNop(),
		now:      time.Now,
	}
}

func TestCreateGoalDefaults(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)

	goal, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:      1,
		Title:       "Run 100 km",
		GoalType:    TypeEndurance,
		TargetValue: 100,
		Unit:        "km",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusActive, goal.Status)
	assert.Equal(t, PriorityMedium, goal.Priority)
	assert.Equal(t, 0.0, goal.CurrentValue)
	assert.False(t, goal.StartDate.IsZero())
}

func TestCreateGoalInvalidType(t *testing.T) {
	svc := newTestService(newMockRepository(), nil)

	_, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:   1,
		Title:    "Bad",
		GoalType: GoalType("jogging"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateProgress(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)

	goal, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:      1,
		Title:       "Lose weight",
		GoalType:    TypeWeightLoss,
		TargetValue: 10,
		Unit:        "kg",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(context.Background(), goal.ID, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.CurrentValue)
	assert.InDelta(t, 40.0, updated.ProgressPercentage(), 0.0001)

	// Reaching the target does not flip the status on its own.
	updated, err = svc.UpdateProgress(context.Background(), goal.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, updated.Status)
	assert.True(t, updated.IsCompleted())
}

func TestUpdateProgressOnCompletedGoal(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)

	goal, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:      1,
		Title:       "Done deal",
		GoalType:    TypeOther,
		TargetValue: 5,
	})
	require.NoError(t, err)

	_, err = svc.UpdateProgress(context.Background(), goal.ID, 1, 5)
	require.NoError(t, err)
	_, err = svc.TransitionStatus(context.Background(), goal.ID, 1, StatusCompleted)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(context.Background(), goal.ID, 1, 7)
	assert.ErrorIs(t, err, ErrGoalCompleted)

	stored, err := repo.FindByID(context.Background(), goal.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.CurrentValue)
}

func TestTransitionStatusCompletionGuard(t *testing.T) {
	repo := newMockRepository()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	goal, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:      1,
		Title:       "Run 100 km",
		GoalType:    TypeEndurance,
		TargetValue: 100,
		Unit:        "km",
	})
	require.NoError(t, err)

	_, err = svc.UpdateProgress(context.Background(), goal.ID, 1, 60)
	require.NoError(t, err)

	// Completing short of the target is rejected and the stored status
	// stays untouched.
	_, err = svc.TransitionStatus(context.Background(), goal.ID, 1, StatusCompleted)
	assert.ErrorIs(t, err, ErrGoalNotCompletable)

	stored, err := repo.FindByID(context.Background(), goal.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, stored.Status)
	assert.Empty(t, notifier.completed)

	_, err = svc.UpdateProgress(context.Background(), goal.ID, 1, 100)
	require.NoError(t, err)

	completed, err := svc.TransitionStatus(context.Background(), goal.ID, 1, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	assert.Equal(t, []uint{goal.ID}, notifier.completed)
}

func TestTransitionStatusWithoutTarget(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)

	goal, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:   1,
		Title:    "Feel better",
		GoalType: TypeStressReduction,
	})
	require.NoError(t, err)

	// Without a target value, completion is always allowed.
	completed, err := svc.TransitionStatus(context.Background(), goal.ID, 1, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
}

func TestTransitionStatusInvalid(t *testing.T) {
	svc := newTestService(newMockRepository(), nil)
	_, err := svc.TransitionStatus(context.Background(), 1, 1, GoalStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGoalUserScoping(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)

	goal, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		UserID:   1,
		Title:    "Private goal",
		GoalType: TypeOther,
	})
	require.NoError(t, err)

	_, err = svc.GetGoal(context.Background(), goal.ID, 2)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	err = svc.DeleteGoal(context.Background(), goal.ID, 2)
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	goals := []HealthGoal{
		{Status: StatusActive, GoalType: TypeEndurance, Priority: PriorityHigh, TargetDate: &future},
		{Status: StatusActive, GoalType: TypeEndurance, Priority: PriorityLow, TargetDate: &past},
		{
			Status:    StatusCompleted,
			GoalType:  TypeWeightLoss,
			Priority:  PriorityHigh,
			StartDate: now.AddDate(0, 0, -20),
			UpdatedAt: now.AddDate(0, 0, -10),
		},
		{Status: StatusPaused, GoalType: TypeNutrition, Priority: PriorityMedium},
		{Status: StatusCancelled, GoalType: TypeOther, Priority: PriorityLow},
		{
			Status:    StatusCompleted,
			GoalType:  TypeWeightLoss,
			Priority:  PriorityUrgent,
			StartDate: now.AddDate(0, 0, -30),
			UpdatedAt: now.AddDate(0, 0, -10),
		},
	}

	stats := ComputeStats(goals, now)

	assert.Equal(t, 6, stats.TotalGoals)
	assert.Equal(t, 2, stats.ActiveGoals)
	assert.Equal(t, 2, stats.CompletedGoals)
	assert.Equal(t, 1, stats.PausedGoals)
	assert.Equal(t, 1, stats.CancelledGoals)
	assert.Equal(t, 1, stats.OverdueGoals)

	assert.Equal(t, 2, stats.GoalsByType[TypeEndurance])
	assert.Equal(t, 2, stats.GoalsByType[TypeWeightLoss])
	assert.Equal(t, 1, stats.GoalsByType[TypeNutrition])
	assert.NotContains(t, stats.GoalsByType, TypeMuscleGain)

	assert.Equal(t, 2, stats.GoalsByPriority[PriorityHigh])
	assert.Equal(t, 2, stats.GoalsByPriority[PriorityLow])

	// Completion days: 10 and 20 whole days, mean 15.
	assert.InDelta(t, 15.0, stats.AverageCompletionDays, 0.0001)

	// 2 of 6 completed: round(33.33) = 33.
	assert.Equal(t, 33, stats.SuccessRatePercentage)
}

func TestComputeStatsIgnoresBackdatedCompletion(t *testing.T) {
	now := time.Now()
	goals := []HealthGoal{
		{
			Status:    StatusCompleted,
			GoalType:  TypeEndurance,
			Priority:  PriorityHigh,
			StartDate: now.AddDate(0, 0, -10),
			UpdatedAt: now,
		},
		{
			// Start date edited to the future after completion; a negative
			// duration would drag the mean below zero.
			Status:    StatusCompleted,
			GoalType:  TypeEndurance,
			Priority:  PriorityHigh,
			StartDate: now.AddDate(0, 0, 5),
			UpdatedAt: now,
		},
	}

	stats := ComputeStats(goals, now)

	assert.Equal(t, 2, stats.CompletedGoals)
	assert.InDelta(t, 10.0, stats.AverageCompletionDays, 0.0001)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalGoals)
	assert.Equal(t, 0, stats.SuccessRatePercentage)
	assert.Equal(t, 0.0, stats.AverageCompletionDays)
	assert.NotNil(t, stats.GoalsByType)
	assert.NotNil(t, stats.GoalsByPriority)
}

func TestComputeStatsSuccessRateRounding(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		expected  int
	}{
		{"one of three", 1, 3, 33},
		{"two of three", 2, 3, 67},
		{"one of eight", 1, 8, 13},
		{"all completed", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var goals []HealthGoal
			for i := 0; i < tt.completed; i++ {
				goals = append(goals, HealthGoal{Status: StatusCompleted, GoalType: TypeOther, Priority: PriorityLow})
			}
			for i := tt.completed; i < tt.total; i++ {
				goals = append(goals, HealthGoal{Status: StatusActive, GoalType: TypeOther, Priority: PriorityLow})
			}
			stats := ComputeStats(goals, time.Now())
			assert.Equal(t, tt.expected, stats.SuccessRatePercentage)
		})
	}
}

func TestMonthlyProgressZeroFill(t *testing.T) {
	repo := newMockRepository()
	repo.monthly = []MonthlyProgressRow{
		{Month: "2025-04", GoalsCreated: 2, GoalsCompleted: 1, AverageProgress: 62.54},
	}

	svc := newTestService(repo, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}

	entries, err := svc.MonthlyProgress(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	expectedMonths := []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06"}
	for i, entry := range entries {
		assert.Equal(t, expectedMonths[i], entry.Month)
	}

	assert.Equal(t, 2, entries[3].GoalsCreated)
	assert.Equal(t, 1, entries[3].GoalsCompleted)
	assert.InDelta(t, 62.5, entries[3].AverageProgress, 0.0001)

	for _, i := range []int{0, 1, 2, 4, 5} {
		assert.Zero(t, entries[i].GoalsCreated, "month %s", entries[i].Month)
		assert.Zero(t, entries[i].GoalsCompleted, "month %s", entries[i].Month)
		assert.Zero(t, entries[i].AverageProgress, "month %s", entries[i].Month)
	}
}

func TestMonthlyProgressAcrossYearBoundary(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	}

	entries, err := svc.MonthlyProgress(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, entries, 6)

	expectedMonths := []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"}
	for i, entry := range entries {
		assert.Equal(t, expectedMonths[i], entry.Month)
	}
}

func TestMonthlyProgressRepositoryError(t *testing.T) {
	repo := newMockRepository()
	repo.monthlyErr = errors.New("db down")
	svc := newTestService(repo, nil)

	_, err := svc.MonthlyProgress(context.Background(), 1)
	assert.Error(t, err)
}

func TestTemplates(t *testing.T) {
	svc := newTestService(newMockRepository(), nil)

	templates := svc.Templates()
	require.NotEmpty(t, templates)
	for _, tmpl := range templates {
		assert.True(t, tmpl.GoalType.Valid(), "template %q", tmpl.Title)
		assert.True(t, tmpl.Priority.Valid(), "template %q", tmpl.Title)
		assert.Greater(t, tmpl.TargetValue, 0.0, "template %q", tmpl.Title)
		assert.Greater(t, tmpl.DurationDays, 0, "template %q", tmpl.Title)
	}

	// Mutating the returned slice must not leak into the catalogue.
	templates[0].Title = "mutated"
	assert.NotEqual(t, "mutated", svc.Templates()[0].Title)
}

func TestRecommendations(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo, nil)

	recs, err := svc.Recommendations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "get_started", recs[0].Kind)

	past := time.Now().AddDate(0, 0, -2)
	repo.goals[10] = &HealthGoal{
		ID: 10, UserID: 1, Title: "Overdue", Status: StatusActive,
		GoalType: TypeOther, Priority: PriorityLow, TargetDate: &past,
	}
	repo.goals[11] = &HealthGoal{
		ID: 11, UserID: 1, Title: "Nearly done", Status: StatusActive,
		GoalType: TypeEndurance, Priority: PriorityMedium,
		TargetValue: 100, CurrentValue: 85,
	}

	recs, err = svc.Recommendations(context.Background(), 1)
	require.NoError(t, err)

	kinds := make(map[string]bool)
	for _, rec := range recs {
		kinds[rec.Kind] = true
	}
	assert.True(t, kinds["overdue"])
	assert.True(t, kinds["almost_there"])
	assert.False(t, kinds["get_started"])
}

func TestNotifyOverdueGoals(t *testing.T) {
	repo := newMockRepository()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	past := time.Now().AddDate(0, 0, -5)
	future := time.Now().AddDate(0, 0, 5)
	repo.goals[1] = &HealthGoal{ID: 1, UserID: 1, Status: StatusActive, TargetDate: &past}
	repo.goals[2] = &HealthGoal{ID: 2, UserID: 2, Status: StatusActive, TargetDate: &future}
	repo.goals[3] = &HealthGoal{ID: 3, UserID: 3, Status: StatusPaused, TargetDate: &past}

	sent, err := svc.NotifyOverdueGoals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []uint{1}, notifier.overdue)
}
