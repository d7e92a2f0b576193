package healthgoal

import (
	"math"
	"time"
)

// GoalType classifies what a goal is tracking.
type GoalType string

const (
	TypeWeightLoss       GoalType = "weight_loss"
	TypeWeightGain       GoalType = "weight_gain"
	TypeMuscleGain       GoalType = "muscle_gain"
	TypeEndurance        GoalType = "endurance"
	TypeFlexibility      GoalType = "flexibility"
	TypeStressReduction  GoalType = "stress_reduction"
	TypeSleepImprovement GoalType = "sleep_improvement"
	TypeNutrition        GoalType = "nutrition"
	TypeOther            GoalType = "other"
)

// GoalTypes lists every valid goal type.
var GoalTypes = []GoalType{
	TypeWeightLoss,
	TypeWeightGain,
	TypeMuscleGain,
	TypeEndurance,
	TypeFlexibility,
	TypeStressReduction,
	TypeSleepImprovement,
	TypeNutrition,
	TypeOther,
}

func (t GoalType) Valid() bool {
	for _, v := range GoalTypes {
		if t == v {
			return true
		}
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusCompleted GoalStatus = "completed"
	StatusPaused    GoalStatus = "paused"
	StatusCancelled GoalStatus = "cancelled"
)

var GoalStatuses = []GoalStatus{StatusActive, StatusCompleted, StatusPaused, StatusCancelled}

func (s GoalStatus) Valid() bool {
	for _, v := range GoalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// GoalPriority orders goals by urgency.
type GoalPriority string

const (
	PriorityLow    GoalPriority = "low"
	PriorityMedium GoalPriority = "medium"
	PriorityHigh   GoalPriority = "high"
	PriorityUrgent GoalPriority = "urgent"
)

var GoalPriorities = []GoalPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p GoalPriority) Valid() bool {
	for _, v := range GoalPriorities {
		if p == v {
			return true
		}
	}
	return false
}

type HealthGoal struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;index" json:"user_id"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	GoalType     GoalType     `gorm:"size:32;not null;index" json:"goal_type"`
	Status       GoalStatus   `gorm:"size:32;not null;default:active;index" json:"status"`
	Priority     GoalPriority `gorm:"size:32;not null;default:medium" json:"priority"`
	TargetValue  float64      `gorm:"not null;default:0" json:"target_value"`
	CurrentValue float64      `gorm:"not null;default:0" json:"current_value"`
	Unit         string       `gorm:"size:32" json:"unit"`
	StartDate    time.Time    `gorm:"not null" json:"start_date"`
	TargetDate   *time.Time   `json:"target_date,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (HealthGoal) TableName() string {
	return "health_goals"
}

// ProgressPercentage is current_value over target_value clamped to
// [0,100]; a missing or zero target yields 0, never a division error.
func (g *HealthGoal) ProgressPercentage() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	pct := g.CurrentValue / g.TargetValue * 100
	return math.Min(math.Max(pct, 0), 100)
}

// IsOverdue holds only for active goals whose target date has passed.
func (g *HealthGoal) IsOverdue() bool {
	return g.IsOverdueAt(time.Now())
}

func (g *HealthGoal) IsOverdueAt(now time.Time) bool {
	if g.Status != StatusActive || g.TargetDate == nil {
		return false
	}
	return g.TargetDate.Before(now)
}

// IsCompleted holds when the goal was explicitly completed or the current
// value has reached a set target.
func (g *HealthGoal) IsCompleted() bool {
	if g.Status == StatusCompleted {
		return true
	}
	return g.TargetValue > 0 && g.CurrentValue >= g.TargetValue
}

// RemainingValue is how far the current value is from the target, never
// negative.
func (g *HealthGoal) RemainingValue() float64 {
	remaining := g.TargetValue - g.CurrentValue
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DaysRemaining is the number of whole days until the target date, nil
// without one, negative when overdue.
func (g *HealthGoal) DaysRemaining() *int {
	return g.DaysRemainingAt(time.Now())
}

func (g *HealthGoal) DaysRemainingAt(now time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}
	days := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
	return &days
}

// CreateGoalInput carries the fields for creating a goal. CurrentValue
// always starts at zero.
type CreateGoalInput struct {
	UserID      uint
	Title       string
	Description string
	GoalType    GoalType
	Priority    GoalPriority
	TargetValue float64
	Unit        string
	StartDate   time.Time
	TargetDate  *time.Time
}

// UpdateGoalInput carries optional field updates; nil means unchanged.
type UpdateGoalInput struct {
	Title       *string
	Description *string
	GoalType    *GoalType
	Priority    *GoalPriority
	TargetValue *float64
	Unit        *string
	StartDate   *time.Time
	TargetDate  *time.Time
}

// GoalFilter shapes the list/search query passed to the repository.
type GoalFilter struct {
	UserID         uint
	GoalType       *GoalType
	Status         *GoalStatus
	Priority       *GoalPriority
	Search         *string
	StartDateFrom  *time.Time
	StartDateTo    *time.Time
	TargetDateFrom *time.Time
	TargetDateTo   *time.Time
	Page           int
	Limit          int
}

// GoalStats is the aggregate view over a user's goal collection.
type GoalStats struct {
	TotalGoals            int                  `json:"total_goals"`
	ActiveGoals           int                  `json:"active_goals"`
	CompletedGoals        int                  `json:"completed_goals"`
	PausedGoals           int                  `json:"paused_goals"`
	CancelledGoals        int                  `json:"cancelled_goals"`
	OverdueGoals          int                  `json:"overdue_goals"`
	GoalsByType           map[GoalType]int     `json:"goals_by_type"`
	GoalsByPriority       map[GoalPriority]int `json:"goals_by_priority"`
	AverageCompletionDays float64              `json:"average_completion_days"`
	SuccessRatePercentage int                  `json:"success_rate_percentage"`
}

// MonthlyProgressEntry is one calendar-month bucket of goal activity.
type MonthlyProgressEntry struct {
	Month           string  `json:"month"`
	GoalsCreated    int     `json:"goals_created"`
	GoalsCompleted  int     `json:"goals_completed"`
	AverageProgress float64 `json:"average_progress"`
}

// MonthlyProgressRow is the repository-level aggregate for one month.
type MonthlyProgressRow struct {
	Month           string
	GoalsCreated    int
	GoalsCompleted  int
	AverageProgress float64
}

// GoalTemplate is a static starting point offered to clients.
type GoalTemplate struct {
	GoalType     GoalType     `json:"goal_type"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	TargetValue  float64      `json:"target_value"`
	Unit         string       `json:"unit"`
	Priority     GoalPriority `json:"priority"`
	DurationDays int          `json:"duration_days"`
}

// Recommendation is a derived suggestion based on the user's goals.
type Recommendation struct {
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
	GoalID   *uint     `json:"goal_id,omitempty"`
	GoalType *GoalType `json:"goal_type,omitempty"`
}
