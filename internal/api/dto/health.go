package dto

import (
	"time"

	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/internal/domain/healthmetric"
	"github.com/vitalis-health/backend/internal/domain/notification"
	"github.com/vitalis-health/backend/internal/domain/user"
)

// CreateFoodLogRequest represents the request to log a meal.
type CreateFoodLogRequest struct {
	MealType     string     `json:"meal_type" binding:"required,mealtype"`
	Description  string     `json:"description" binding:"required,max=512"`
	Calories     int        `json:"calories" binding:"gte=0"`
	ProteinGrams *float64   `json:"protein_grams,omitempty"`
	CarbsGrams   *float64   `json:"carbs_grams,omitempty"`
	FatGrams     *float64   `json:"fat_grams,omitempty"`
	ConsumedAt   *time.Time `json:"consumed_at,omitempty"`
}

// FoodLogResponse is a food log with its derived macro split.
type FoodLogResponse struct {
	ID           uint                `json:"id"`
	UserID       uint                `json:"user_id"`
	MealType     string              `json:"meal_type"`
	Description  string              `json:"description"`
	Calories     int                 `json:"calories"`
	ProteinGrams *float64            `json:"protein_grams,omitempty"`
	CarbsGrams   *float64            `json:"carbs_grams,omitempty"`
	FatGrams     *float64            `json:"fat_grams,omitempty"`
	MacroSplit   *foodlog.MacroSplit `json:"macro_split,omitempty"`
	ConsumedAt   time.Time           `json:"consumed_at"`
	CreatedAt    time.Time           `json:"created_at"`
}

func ToFoodLogResponse(f *foodlog.FoodLog) FoodLogResponse {
	return FoodLogResponse{
		ID:           f.ID,
		UserID:       f.UserID,
		MealType:     string(f.MealType),
		Description:  f.Description,
		Calories:     f.Calories,
		ProteinGrams: f.ProteinGrams,
		CarbsGrams:   f.CarbsGrams,
		FatGrams:     f.FatGrams,
		MacroSplit:   f.MacroCalorieSplit(),
		ConsumedAt:   f.ConsumedAt,
		CreatedAt:    f.CreatedAt,
	}
}

func ToFoodLogResponses(logs []foodlog.FoodLog) []FoodLogResponse {
	responses := make([]FoodLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, ToFoodLogResponse(&logs[i]))
	}
	return responses
}

// CreateHealthMetricRequest represents the request to record a reading.
type CreateHealthMetricRequest struct {
	RecordedAt   *time.Time `json:"recorded_at,omitempty"`
	WeightKG     *float64   `json:"weight_kg,omitempty"`
	SystolicBP   *int       `json:"systolic_bp,omitempty"`
	DiastolicBP  *int       `json:"diastolic_bp,omitempty"`
	RestingHR    *int       `json:"resting_hr,omitempty"`
	BloodGlucose *float64   `json:"blood_glucose,omitempty"`
	BodyTempC    *float64   `json:"body_temp_c,omitempty"`
	Notes        string     `json:"notes"`
}

// HealthMetricResponse is a reading with its derived categories.
type HealthMetricResponse struct {
	ID                    uint      `json:"id"`
	UserID                uint      `json:"user_id"`
	RecordedAt            time.Time `json:"recorded_at"`
	WeightKG              *float64  `json:"weight_kg,omitempty"`
	SystolicBP            *int      `json:"systolic_bp,omitempty"`
	DiastolicBP           *int      `json:"diastolic_bp,omitempty"`
	RestingHR             *int      `json:"resting_hr,omitempty"`
	BloodGlucose          *float64  `json:"blood_glucose,omitempty"`
	BodyTempC             *float64  `json:"body_temp_c,omitempty"`
	BloodPressureCategory *string   `json:"blood_pressure_category,omitempty"`
	HeartRateCategory     *string   `json:"heart_rate_category,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

func ToHealthMetricResponse(m *healthmetric.HealthMetric) HealthMetricResponse {
	return HealthMetricResponse{
		ID:                    m.ID,
		UserID:                m.UserID,
		RecordedAt:            m.RecordedAt,
		WeightKG:              m.WeightKG,
		SystolicBP:            m.SystolicBP,
		DiastolicBP:           m.DiastolicBP,
		RestingHR:             m.RestingHR,
		BloodGlucose:          m.BloodGlucose,
		BodyTempC:             m.BodyTempC,
		BloodPressureCategory: m.BloodPressureCategory(),
		HeartRateCategory:     m.HeartRateCategory(),
		Notes:                 m.Notes,
		CreatedAt:             m.CreatedAt,
	}
}

func ToHealthMetricResponses(metrics []healthmetric.HealthMetric) []HealthMetricResponse {
	responses := make([]HealthMetricResponse, 0, len(metrics))
	for i := range metrics {
		responses = append(responses, ToHealthMetricResponse(&metrics[i]))
	}
	return responses
}

// UpdateUserRequest represents a profile update.
type UpdateUserRequest struct {
	Name        *string    `json:"name,omitempty"`
	HeightCM    *float64   `json:"height_cm,omitempty"`
	WeightKG    *float64   `json:"weight_kg,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
}

// UpdatePreferencesRequest represents a preference update.
type UpdatePreferencesRequest struct {
	DailyWaterGoalML   *int     `json:"daily_water_goal_ml,omitempty"`
	DailyCalorieGoal   *int     `json:"daily_calorie_goal,omitempty"`
	SleepGoalHours     *float64 `json:"sleep_goal_hours,omitempty"`
	GoalReminders      *bool    `json:"goal_reminders,omitempty"`
	HydrationReminders *bool    `json:"hydration_reminders,omitempty"`
}

// UserResponse is a profile with its derived biometrics.
type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	HeightCM    *float64   `json:"height_cm,omitempty"`
	WeightKG    *float64   `json:"weight_kg,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
	BMI         *float64   `json:"bmi,omitempty"`
	BMICategory *string    `json:"bmi_category,omitempty"`
	Age         *int       `json:"age,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		HeightCM:    u.HeightCM,
		WeightKG:    u.WeightKG,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
		BMI:         u.BMI(),
		BMICategory: u.BMICategory(),
		Age:         u.Age(),
		CreatedAt:   u.CreatedAt,
	}
}

// NotificationResponse is a notification with its display attributes.
type NotificationResponse struct {
	ID        uint                 `json:"id"`
	Type      string               `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Read      bool                 `json:"read"`
	Display   notification.Display `json:"display"`
	Data      interface{}          `json:"data,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
}

func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		Display:   n.Display(),
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		resp.Data = n.Data
	}
	return resp
}

func ToNotificationResponses(list []notification.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(list))
	for i := range list {
		responses = append(responses, ToNotificationResponse(&list[i]))
	}
	return responses
}
