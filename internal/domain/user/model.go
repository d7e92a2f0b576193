package user

import (
	"math"
	"time"
)

// BMI categories use the WHO thresholds. Boundaries are closed on the
// lower edge: 18.5 is normal, 25.0 is overweight, 30.0 is obese.
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name        string     `gorm:"size:255" json:"name"`
	HeightCM    *float64   `json:"height_cm,omitempty"`
	WeightKG    *float64   `json:"weight_kg,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `gorm:"size:32" json:"gender,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// BMI returns weight_kg / height_m^2 rounded to one decimal, or nil when
// either biometric is missing or the height is zero.
func (u *User) BMI() *float64 {
	if u.HeightCM == nil || u.WeightKG == nil || *u.HeightCM <= 0 {
		return nil
	}
	heightM := *u.HeightCM / 100
	bmi := *u.WeightKG / (heightM * heightM)
	bmi = math.Round(bmi*10) / 10
	return &bmi
}

// BMICategory classifies the BMI, or nil when BMI is undefined.
func (u *User) BMICategory() *string {
	bmi := u.BMI()
	if bmi == nil {
		return nil
	}
	var category string
	switch {
	case *bmi < 18.5:
		category = BMIUnderweight
	case *bmi < 25.0:
		category = BMINormal
	case *bmi < 30.0:
		category = BMIOverweight
	default:
		category = BMIObese
	}
	return &category
}

// Age returns the user's age in whole years, or nil without a birth date.
func (u *User) Age() *int {
	return u.AgeAt(time.Now())
}

// AgeAt computes the age at a reference instant with correct month and
// day boundary handling (a birthday later in the year has not happened
// yet).
func (u *User) AgeAt(now time.Time) *int {
	if u.DateOfBirth == nil {
		return nil
	}
	dob := *u.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return &age
}

// Preference holds per-user tracker settings, one row per user.
type Preference struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	DailyWaterGoalML   int       `gorm:"default:2000;not null" json:"daily_water_goal_ml"`
	DailyCalorieGoal   int       `gorm:"default:2000;not null" json:"daily_calorie_goal"`
	SleepGoalHours     float64   `gorm:"default:8;not null" json:"sleep_goal_hours"`
	GoalReminders      bool      `gorm:"default:true;not null" json:"goal_reminders"`
	HydrationReminders bool      `gorm:"default:true;not null" json:"hydration_reminders"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Preference) TableName() string {
	return "user_preferences"
}

// UpdateUserInput carries optional profile fields; nil means unchanged.
type UpdateUserInput struct {
	Name        *string    `json:"name,omitempty"`
	HeightCM    *float64   `json:"height_cm,omitempty"`
	WeightKG    *float64   `json:"weight_kg,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`
}

// UpdatePreferenceInput carries optional preference fields.
type UpdatePreferenceInput struct {
	DailyWaterGoalML   *int     `json:"daily_water_goal_ml,omitempty"`
	DailyCalorieGoal   *int     `json:"daily_calorie_goal,omitempty"`
	SleepGoalHours     *float64 `json:"sleep_goal_hours,omitempty"`
	GoalReminders      *bool    `json:"goal_reminders,omitempty"`
	HydrationReminders *bool    `json:"hydration_reminders,omitempty"`
}
