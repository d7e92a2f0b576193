package dto

import (
	"time"

	"github.com/vitalis-health/backend/internal/domain/healthgoal"
)

// CreateHealthGoalRequest represents the request to create a goal.
type CreateHealthGoalRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	GoalType    string     `json:"goal_type" binding:"required,goaltype"`
	Priority    string     `json:"priority" binding:"omitempty,goalpriority"`
	TargetValue float64    `json:"target_value" binding:"gte=0"`
	Unit        string     `json:"unit"`
	StartDate   *time.Time `json:"start_date"`
	TargetDate  *time.Time `json:"target_date"`
}

// UpdateHealthGoalRequest represents a partial goal update.
type UpdateHealthGoalRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	GoalType    *string    `json:"goal_type,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	TargetValue *float64   `json:"target_value,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

// UpdateGoalProgressRequest sets the goal's current value.
type UpdateGoalProgressRequest struct {
	CurrentValue float64 `json:"current_value" binding:"gte=0"`
}

// ListHealthGoalsQuery binds the list/search query parameters.
type ListHealthGoalsQuery struct {
	GoalType       *string    `form:"goal_type"`
	Status         *string    `form:"status"`
	Priority       *string    `form:"priority"`
	Search         *string    `form:"search"`
	StartDateFrom  *time.Time `form:"start_date_from" time_format:"2006-01-02"`
	StartDateTo    *time.Time `form:"start_date_to" time_format:"2006-01-02"`
	TargetDateFrom *time.Time `form:"target_date_from" time_format:"2006-01-02"`
	TargetDateTo   *time.Time `form:"target_date_to" time_format:"2006-01-02"`
	Page           int        `form:"page,default=1"`
	Limit          int        `form:"limit,default=20"`
}

// HealthGoalResponse is a goal in API responses, stored fields plus the
// derived properties computed fresh at serialization time.
type HealthGoalResponse struct {
	ID                 uint       `json:"id"`
	UserID             uint       `json:"user_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	GoalType           string     `json:"goal_type"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	TargetValue        float64    `json:"target_value"`
	CurrentValue       float64    `json:"current_value"`
	Unit               string     `json:"unit"`
	StartDate          time.Time  `json:"start_date"`
	TargetDate         *time.Time `json:"target_date,omitempty"`
	ProgressPercentage float64    `json:"progress_percentage"`
	IsOverdue          bool       `json:"is_overdue"`
	IsCompleted        bool       `json:"is_completed"`
	RemainingValue     float64    `json:"remaining_value"`
	DaysRemaining      *int       `json:"days_remaining,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToHealthGoalResponse(g *healthgoal.HealthGoal) HealthGoalResponse {
	return HealthGoalResponse{
		ID:                 g.ID,
		UserID:             g.UserID,
		Title:              g.Title,
		Description:        g.Description,
		GoalType:           string(g.GoalType),
		Status:             string(g.Status),
		Priority:           string(g.Priority),
		TargetValue:        g.TargetValue,
		CurrentValue:       g.CurrentValue,
		Unit:               g.Unit,
		StartDate:          g.StartDate,
		TargetDate:         g.TargetDate,
		ProgressPercentage: g.ProgressPercentage(),
		IsOverdue:          g.IsOverdue(),
		IsCompleted:        g.IsCompleted(),
		RemainingValue:     g.RemainingValue(),
		DaysRemaining:      g.DaysRemaining(),
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func ToHealthGoalResponses(goals []healthgoal.HealthGoal) []HealthGoalResponse {
	responses := make([]HealthGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, ToHealthGoalResponse(&goals[i]))
	}
	return responses
}

// HealthGoalListResponse pairs the paginated items with the stats summary.
type HealthGoalListResponse struct {
	Items      []HealthGoalResponse  `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
	Stats      *healthgoal.GoalStats `json:"stats,omitempty"`
}
