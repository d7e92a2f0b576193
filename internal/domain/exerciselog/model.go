package exerciselog

import (
	"math"
	"time"
)

// ActivityType classifies the exercise performed.
type ActivityType string

const (
	ActivityRunning  ActivityType = "running"
	ActivityWalking  ActivityType = "walking"
	ActivityCycling  ActivityType = "cycling"
	ActivitySwimming ActivityType = "swimming"
	ActivityStrength ActivityType = "strength"
	ActivityYoga     ActivityType = "yoga"
	ActivitySports   ActivityType = "sports"
	ActivityOther    ActivityType = "other"
)

var ActivityTypes = []ActivityType{
	ActivityRunning,
	ActivityWalking,
	ActivityCycling,
	ActivitySwimming,
	ActivityStrength,
	ActivityYoga,
	ActivitySports,
	ActivityOther,
}

func (a ActivityType) Valid() bool {
	for _, v := range ActivityTypes {
		if a == v {
			return true
		}
	}
	return false
}

// Intensity grades the perceived effort of a session.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

var Intensities = []Intensity{IntensityLow, IntensityModerate, IntensityHigh}

func (i Intensity) Valid() bool {
	for _, v := range Intensities {
		if i == v {
			return true
		}
	}
	return false
}

type ExerciseLog struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"not null;index" json:"user_id"`
	ActivityType   ActivityType `gorm:"size:32;not null;index" json:"activity_type"`
	DurationMin    int          `gorm:"not null" json:"duration_min"`
	Intensity      Intensity    `gorm:"size:32;not null;default:moderate" json:"intensity"`
	CaloriesBurned *int         `json:"calories_burned,omitempty"`
	DistanceKM     *float64     `json:"distance_km,omitempty"`
	PerformedAt    time.Time    `gorm:"not null;index" json:"performed_at"`
	Notes          string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (ExerciseLog) TableName() string {
	return "exercise_logs"
}

// PaceMinPerKM is minutes per kilometre, nil when no positive distance was
// recorded. Rounded to two decimals.
func (e *ExerciseLog) PaceMinPerKM() *float64 {
	if e.DistanceKM == nil || *e.DistanceKM <= 0 || e.DurationMin <= 0 {
		return nil
	}
	pace := math.Round(float64(e.DurationMin)/(*e.DistanceKM)*100) / 100
	return &pace
}

type CreateLogInput struct {
	UserID         uint
	ActivityType   ActivityType
	DurationMin    int
	Intensity      Intensity
	CaloriesBurned *int
	DistanceKM     *float64
	PerformedAt    time.Time
	Notes          string
}

// LogFilter shapes the list query.
type LogFilter struct {
	UserID       uint
	ActivityType *ActivityType
	Intensity    *Intensity
	From         *time.Time
	To           *time.Time
	Page         int
	Limit        int
}

// WeeklySummary aggregates sessions over an inclusive date range.
type WeeklySummary struct {
	StartDate         string               `json:"start_date"`
	EndDate           string               `json:"end_date"`
	SessionCount      int                  `json:"session_count"`
	TotalMinutes      int                  `json:"total_minutes"`
	TotalCalories     int                  `json:"total_calories"`
	TotalDistanceKM   float64              `json:"total_distance_km"`
	MinutesByActivity map[ActivityType]int `json:"minutes_by_activity"`
	ActiveDays        int                  `json:"active_days"`
}
