package dto

import (
	"time"

	"github.com/vitalis-health/backend/internal/domain/exerciselog"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
)

// CreateWaterLogRequest represents the request to log a drink.
type CreateWaterLogRequest struct {
	AmountML   int        `json:"amount_ml" binding:"required,gt=0"`
	DrinkType  string     `json:"drink_type" binding:"omitempty,drinktype"`
	ConsumedAt *time.Time `json:"consumed_at"`
}

// UpdateWaterLogRequest represents a partial water log update.
type UpdateWaterLogRequest struct {
	AmountML   *int       `json:"amount_ml,omitempty"`
	DrinkType  *string    `json:"drink_type,omitempty"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
}

// ListWaterLogsQuery binds the water log list parameters.
type ListWaterLogsQuery struct {
	DrinkType *string    `form:"drink_type"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Page      int        `form:"page,default=1"`
	Limit     int        `form:"limit,default=20"`
}

// WaterLogResponse is a water log with its derived hydration value.
type WaterLogResponse struct {
	ID                   uint      `json:"id"`
	UserID               uint      `json:"user_id"`
	AmountML             int       `json:"amount_ml"`
	DrinkType            string    `json:"drink_type"`
	EffectiveHydrationML int       `json:"effective_hydration_ml"`
	ConsumedAt           time.Time `json:"consumed_at"`
	CreatedAt            time.Time `json:"created_at"`
}

func ToWaterLogResponse(w *waterlog.WaterLog) WaterLogResponse {
	return WaterLogResponse{
		ID:                   w.ID,
		UserID:               w.UserID,
		AmountML:             w.AmountML,
		DrinkType:            string(w.DrinkType),
		EffectiveHydrationML: w.EffectiveHydrationML(),
		ConsumedAt:           w.ConsumedAt,
		CreatedAt:            w.CreatedAt,
	}
}

func ToWaterLogResponses(logs []waterlog.WaterLog) []WaterLogResponse {
	responses := make([]WaterLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, ToWaterLogResponse(&logs[i]))
	}
	return responses
}

// CreateSleepLogRequest represents the request to log a night.
type CreateSleepLogRequest struct {
	Bedtime             time.Time `json:"bedtime" binding:"required"`
	WakeTime            time.Time `json:"wake_time" binding:"required"`
	DurationHours       float64   `json:"duration_hours" binding:"required,gt=0"`
	Quality             string    `json:"quality" binding:"required,sleepquality"`
	EfficiencyPct       *float64  `json:"efficiency_pct,omitempty"`
	TimeToFallAsleepMin *int      `json:"time_to_fall_asleep_min,omitempty"`
	AwakeningsCount     *int      `json:"awakenings_count,omitempty"`
	DeepSleepMinutes    *int      `json:"deep_sleep_minutes,omitempty"`
	LightSleepMinutes   *int      `json:"light_sleep_minutes,omitempty"`
	RemSleepMinutes     *int      `json:"rem_sleep_minutes,omitempty"`
	AwakeMinutes        *int      `json:"awake_minutes,omitempty"`
	Notes               string    `json:"notes"`
}

// UpdateSleepLogRequest represents a partial sleep log update.
type UpdateSleepLogRequest struct {
	Bedtime             *time.Time `json:"bedtime,omitempty"`
	WakeTime            *time.Time `json:"wake_time,omitempty"`
	DurationHours       *float64   `json:"duration_hours,omitempty"`
	Quality             *string    `json:"quality,omitempty"`
	EfficiencyPct       *float64   `json:"efficiency_pct,omitempty"`
	TimeToFallAsleepMin *int       `json:"time_to_fall_asleep_min,omitempty"`
	AwakeningsCount     *int       `json:"awakenings_count,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
}

// SleepLogResponse is a sleep log with its derived score.
type SleepLogResponse struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"user_id"`
	Bedtime             time.Time `json:"bedtime"`
	WakeTime            time.Time `json:"wake_time"`
	DurationHours       float64   `json:"duration_hours"`
	Quality             string    `json:"quality"`
	EfficiencyPct       *float64  `json:"efficiency_pct,omitempty"`
	TimeToFallAsleepMin *int      `json:"time_to_fall_asleep_min,omitempty"`
	AwakeningsCount     *int      `json:"awakenings_count,omitempty"`
	SleepScore          int       `json:"sleep_score"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func ToSleepLogResponse(s *sleeplog.SleepLog) SleepLogResponse {
	return SleepLogResponse{
		ID:                  s.ID,
		UserID:              s.UserID,
		Bedtime:             s.Bedtime,
		WakeTime:            s.WakeTime,
		DurationHours:       s.DurationHours,
		Quality:             string(s.Quality),
		EfficiencyPct:       s.EfficiencyPct,
		TimeToFallAsleepMin: s.TimeToFallAsleepMin,
		AwakeningsCount:     s.AwakeningsCount,
		SleepScore:          s.SleepScore(),
		Notes:               s.Notes,
		CreatedAt:           s.CreatedAt,
	}
}

func ToSleepLogResponses(logs []sleeplog.SleepLog) []SleepLogResponse {
	responses := make([]SleepLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, ToSleepLogResponse(&logs[i]))
	}
	return responses
}

// CreateExerciseLogRequest represents the request to log a session.
type CreateExerciseLogRequest struct {
	ActivityType   string     `json:"activity_type" binding:"required,activitytype"`
	DurationMin    int        `json:"duration_min" binding:"required,gt=0"`
	Intensity      string     `json:"intensity"`
	CaloriesBurned *int       `json:"calories_burned,omitempty"`
	DistanceKM     *float64   `json:"distance_km,omitempty"`
	PerformedAt    *time.Time `json:"performed_at,omitempty"`
	Notes          string     `json:"notes"`
}

// ExerciseLogResponse is an exercise log with its derived pace.
type ExerciseLogResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	ActivityType   string    `json:"activity_type"`
	DurationMin    int       `json:"duration_min"`
	Intensity      string    `json:"intensity"`
	CaloriesBurned *int      `json:"calories_burned,omitempty"`
	DistanceKM     *float64  `json:"distance_km,omitempty"`
	PaceMinPerKM   *float64  `json:"pace_min_per_km,omitempty"`
	PerformedAt    time.Time `json:"performed_at"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToExerciseLogResponse(e *exerciselog.ExerciseLog) ExerciseLogResponse {
	return ExerciseLogResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		ActivityType:   string(e.ActivityType),
		DurationMin:    e.DurationMin,
		Intensity:      string(e.Intensity),
		CaloriesBurned: e.CaloriesBurned,
		DistanceKM:     e.DistanceKM,
		PaceMinPerKM:   e.PaceMinPerKM(),
		PerformedAt:    e.PerformedAt,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
	}
}

func ToExerciseLogResponses(logs []exerciselog.ExerciseLog) []ExerciseLogResponse {
	responses := make([]ExerciseLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, ToExerciseLogResponse(&logs[i]))
	}
	return responses
}
