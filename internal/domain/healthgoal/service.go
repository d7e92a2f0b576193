package healthgoal

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

// Notifier receives goal lifecycle events. Implemented by the
// notification domain; nil disables notifications.
type Notifier interface {
	NotifyGoalCompleted(ctx context.Context, userID uint, goal *HealthGoal) error
	NotifyGoalOverdue(ctx context.Context, userID uint, goal *HealthGoal) error
}

type Service interface {
	CreateGoal(ctx context.Context, input CreateGoalInput) (*HealthGoal, error)
	GetGoal(ctx context.Context, id, userID uint) (*HealthGoal, error)
	ListGoals(ctx context.Context, filter GoalFilter) ([]HealthGoal, int64, error)
	UpdateGoal(ctx context.Context, id, userID uint, input UpdateGoalInput) (*HealthGoal, error)
	DeleteGoal(ctx context.Context, id, userID uint) error
	UpdateProgress(ctx context.Context, id, userID uint, value float64) (*HealthGoal, error)
	TransitionStatus(ctx context.Context, id, userID uint, status GoalStatus) (*HealthGoal, error)
	StatsOverview(ctx context.Context, userID uint) (*GoalStats, error)
	MonthlyProgress(ctx context.Context, userID uint) ([]MonthlyProgressEntry, error)
	Templates() []GoalTemplate
	Recommendations(ctx context.Context, userID uint) ([]Recommendation, error)
	NotifyOverdueGoals(ctx context.Context) (int, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	logger   *logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier, logger *logger.Logger) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *service) CreateGoal(ctx context.Context, input CreateGoalInput) (*HealthGoal, error) {
	if !input.GoalType.Valid() {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrInvalidStatus, input.GoalType)
	}
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidStatus, priority)
	}

	startDate := input.StartDate
	if startDate.IsZero() {
		startDate = s.now()
	}

	goal := &HealthGoal{
		UserID:       input.UserID,
		Title:        input.Title,
		Description:  input.Description,
		GoalType:     input.GoalType,
		Status:       StatusActive,
		Priority:     priority,
		TargetValue:  input.TargetValue,
		CurrentValue: 0,
		Unit:         input.Unit,
		StartDate:    startDate,
		TargetDate:   input.TargetDate,
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal created",
		zap.Uint("user_id", input.UserID),
		zap.Uint("goal_id", goal.ID),
		zap.String("goal_type", string(goal.GoalType)))

	return goal, nil
}

func (s *service) GetGoal(ctx context.Context, id, userID uint) (*HealthGoal, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListGoals(ctx context.Context, filter GoalFilter) ([]HealthGoal, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UpdateGoal(ctx context.Context, id, userID uint, input UpdateGoalInput) (*HealthGoal, error) {
	goal, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.GoalType != nil {
		if !input.GoalType.Valid() {
			return nil, fmt.Errorf("%w: unknown goal type %q", ErrInvalidStatus, *input.GoalType)
		}
		goal.GoalType = *input.GoalType
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidStatus, *input.Priority)
		}
		goal.Priority = *input.Priority
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.Unit != nil {
		goal.Unit = *input.Unit
	}
	if input.StartDate != nil {
		goal.StartDate = *input.StartDate
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *service) DeleteGoal(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// UpdateProgress sets the goal's current value. Progress on an already
// completed goal is a validation error; the stored row is untouched.
func (s *service) UpdateProgress(ctx context.Context, id, userID uint, value float64) (*HealthGoal, error) {
	goal, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if goal.Status == StatusCompleted {
		return nil, ErrGoalCompleted
	}

	goal.CurrentValue = value
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("goal progress updated",
		zap.Uint("goal_id", goal.ID),
		zap.Float64("current_value", goal.CurrentValue),
		zap.Float64("progress_pct", goal.ProgressPercentage()))

	return goal, nil
}

// TransitionStatus moves a goal to a new lifecycle state. Completing a
// goal whose current value has not reached a set target fails with a
// validation error and leaves the stored status unchanged.
func (s *service) TransitionStatus(ctx context.Context, id, userID uint, status GoalStatus) (*HealthGoal, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	goal, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if status == StatusCompleted && goal.TargetValue > 0 && goal.CurrentValue < goal.TargetValue {
		return nil, ErrGoalNotCompletable
	}

	goal.Status = status
	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}

	if status == StatusCompleted && s.notifier != nil {
		if err := s.notifier.NotifyGoalCompleted(ctx, userID, goal); err != nil {
			s.logger.Error("failed to send goal completion notification", zap.Error(err))
		}
	}

	return goal, nil
}

// ComputeStats aggregates a goal collection into the summary view. Pure
// over its inputs; the reference instant parameterizes overdue checks.
func ComputeStats(goals []HealthGoal, now time.Time) *GoalStats {
	stats := &GoalStats{
		TotalGoals:      len(goals),
		GoalsByType:     make(map[GoalType]int),
		GoalsByPriority: make(map[GoalPriority]int),
	}

	var completionDays float64
	var completedWithDates int

	for i := range goals {
		g := &goals[i]
		switch g.Status {
		case StatusActive:
			stats.ActiveGoals++
		case StatusCompleted:
			stats.CompletedGoals++
		case StatusPaused:
			stats.PausedGoals++
		case StatusCancelled:
			stats.CancelledGoals++
		}
		if g.IsOverdueAt(now) {
			stats.OverdueGoals++
		}
		stats.GoalsByType[g.GoalType]++
		stats.GoalsByPriority[g.Priority]++

		if g.Status == StatusCompleted && !g.StartDate.IsZero() && !g.UpdatedAt.IsZero() {
			days := math.Floor(g.UpdatedAt.Sub(g.StartDate).Hours() / 24)
			if days >= 0 {
				completionDays += days
				completedWithDates++
			}
		}
	}

	if completedWithDates > 0 {
		stats.AverageCompletionDays = completionDays / float64(completedWithDates)
	}
	if stats.TotalGoals > 0 {
		stats.SuccessRatePercentage = int(math.Round(float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100))
	}

	return stats
}

func (s *service) StatsOverview(ctx context.Context, userID uint) (*GoalStats, error) {
	goals, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ComputeStats(goals, s.now()), nil
}

// MonthlyProgress returns exactly six month buckets ending at the current
// month, oldest first, zero-filled where the user had no activity.
func (s *service) MonthlyProgress(ctx context.Context, userID uint) ([]MonthlyProgressEntry, error) {
	now := s.now()
	firstMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)

	rows, err := s.repo.GetMonthlyProgress(ctx, userID, firstMonth)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]MonthlyProgressRow, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	entries := make([]MonthlyProgressEntry, 0, 6)
	for i := 0; i < 6; i++ {
		month := firstMonth.AddDate(0, i, 0).Format("2006-01")
		entry := MonthlyProgressEntry{Month: month}
		if row, ok := byMonth[month]; ok {
			entry.GoalsCreated = row.GoalsCreated
			entry.GoalsCompleted = row.GoalsCompleted
			entry.AverageProgress = math.Round(row.AverageProgress*10) / 10
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// goalTemplates is the static catalogue offered as starting points.
var goalTemplates = []GoalTemplate{
	{
		GoalType:     TypeWeightLoss,
		Title:        "Lose 5 kg",
		Description:  "Steady weight loss through diet and regular exercise.",
		TargetValue:  5,
		Unit:         "kg",
		Priority:     PriorityHigh,
		DurationDays: 90,
	},
	{
		GoalType:     TypeMuscleGain,
		Title:        "Gain 3 kg of muscle",
		Description:  "Strength training three times a week with a protein-focused diet.",
		TargetValue:  3,
		Unit:         "kg",
		Priority:     PriorityMedium,
		DurationDays: 120,
	},
	{
		GoalType:     TypeEndurance,
		Title:        "Run 100 km",
		Description:  "Accumulate running distance at your own pace.",
		TargetValue:  100,
		Unit:         "km",
		Priority:     PriorityMedium,
		DurationDays: 60,
	},
	{
		GoalType:     TypeSleepImprovement,
		Title:        "Sleep 8 hours for 30 nights",
		Description:  "Log thirty nights with at least eight hours of sleep.",
		TargetValue:  30,
		Unit:         "nights",
		Priority:     PriorityMedium,
		DurationDays: 45,
	},
	{
		GoalType:     TypeNutrition,
		Title:        "Hit your calorie goal for 21 days",
		Description:  "Stay within your daily calorie budget for three weeks.",
		TargetValue:  21,
		Unit:         "days",
		Priority:     PriorityMedium,
		DurationDays: 30,
	},
	{
		GoalType:     TypeStressReduction,
		Title:        "Meditate 20 sessions",
		Description:  "Short daily meditation or breathing exercises.",
		TargetValue:  20,
		Unit:         "sessions",
		Priority:     PriorityLow,
		DurationDays: 30,
	},
	{
		GoalType:     TypeFlexibility,
		Title:        "Stretch 15 sessions",
		Description:  "Regular stretching or yoga sessions.",
		TargetValue:  15,
		Unit:         "sessions",
		Priority:     PriorityLow,
		DurationDays: 30,
	},
}

// Templates returns the built-in goal templates. The slice is copied so
// callers cannot mutate the catalogue.
func (s *service) Templates() []GoalTemplate {
	templates := make([]GoalTemplate, len(goalTemplates))
	copy(templates, goalTemplates)
	return templates
}

// Recommendations derives suggestions from the user's current goal
// collection: overdue nudges, encouragement near completion, and a hint
// when nothing is being tracked.
func (s *service) Recommendations(ctx context.Context, userID uint) ([]Recommendation, error) {
	goals, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	recommendations := []Recommendation{}

	if len(goals) == 0 {
		goalType := TypeOther
		recommendations = append(recommendations, Recommendation{
			Kind:     "get_started",
			Message:  "You have no goals yet. Pick a template to start tracking.",
			GoalType: &goalType,
		})
		return recommendations, nil
	}

	active := 0
	for i := range goals {
		g := &goals[i]
		if g.Status == StatusActive {
			active++
		}
		if g.IsOverdueAt(now) {
			id := g.ID
			recommendations = append(recommendations, Recommendation{
				Kind:    "overdue",
				Message: fmt.Sprintf("%q is past its target date. Update the target date or log some progress.", g.Title),
				GoalID:  &id,
			})
			continue
		}
		if g.Status == StatusActive && g.TargetValue > 0 {
			pct := g.ProgressPercentage()
			if pct >= 80 && pct < 100 {
				id := g.ID
				recommendations = append(recommendations, Recommendation{
					Kind:    "almost_there",
					Message: fmt.Sprintf("%q is %.0f%% done. One more push.", g.Title, pct),
					GoalID:  &id,
				})
			}
		}
	}

	if active == 0 {
		recommendations = append(recommendations, Recommendation{
			Kind:    "reactivate",
			Message: "All your goals are paused, cancelled or completed. Resume one or create a new goal.",
		})
	}

	return recommendations, nil
}

// NotifyOverdueGoals emits a notification for every overdue active goal.
// Called by the scheduler; returns how many notifications were sent.
func (s *service) NotifyOverdueGoals(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, nil
	}

	goals, err := s.repo.FindOverdue(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to fetch overdue goals: %w", err)
	}

	sent := 0
	for i := range goals {
		g := &goals[i]
		if err := s.notifier.NotifyGoalOverdue(ctx, g.UserID, g); err != nil {
			s.logger.Error("failed to send overdue notification",
				zap.Uint("goal_id", g.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}
