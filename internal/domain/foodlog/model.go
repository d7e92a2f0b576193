package foodlog

import (
	"math"
	"time"
)

// MealType slots a food log into the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool {
	for _, v := range MealTypes {
		if m == v {
			return true
		}
	}
	return false
}

type FoodLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	MealType     MealType  `gorm:"size:32;not null;index" json:"meal_type"`
	Description  string    `gorm:"size:512;not null" json:"description"`
	Calories     int       `gorm:"not null" json:"calories"`
	ProteinGrams *float64  `json:"protein_grams,omitempty"`
	CarbsGrams   *float64  `json:"carbs_grams,omitempty"`
	FatGrams     *float64  `json:"fat_grams,omitempty"`
	ConsumedAt   time.Time `gorm:"not null;index" json:"consumed_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FoodLog) TableName() string {
	return "food_logs"
}

// MacroSplit is the calorie share per macronutrient, each clamped to
// [0,100].
type MacroSplit struct {
	ProteinPct float64 `json:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct"`
	FatPct     float64 `json:"fat_pct"`
}

// MacroCalorieSplit derives the macronutrient calorie distribution using
// 4/4/9 kcal per gram. Nil when no macro was recorded; a zero macro total
// yields all-zero shares, never a division error.
func (f *FoodLog) MacroCalorieSplit() *MacroSplit {
	if f.ProteinGrams == nil && f.CarbsGrams == nil && f.FatGrams == nil {
		return nil
	}

	grams := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}

	proteinCal := grams(f.ProteinGrams) * 4
	carbsCal := grams(f.CarbsGrams) * 4
	fatCal := grams(f.FatGrams) * 9
	total := proteinCal + carbsCal + fatCal

	split := &MacroSplit{}
	if total <= 0 {
		return split
	}

	pct := func(cal float64) float64 {
		p := math.Round(cal/total*1000) / 10
		return math.Min(math.Max(p, 0), 100)
	}
	split.ProteinPct = pct(proteinCal)
	split.CarbsPct = pct(carbsCal)
	split.FatPct = pct(fatCal)
	return split
}

type CreateLogInput struct {
	UserID       uint
	MealType     MealType
	Description  string
	Calories     int
	ProteinGrams *float64
	CarbsGrams   *float64
	FatGrams     *float64
	ConsumedAt   time.Time
}

// LogFilter shapes the list query.
type LogFilter struct {
	UserID   uint
	MealType *MealType
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

// DailyNutrition sums one day's intake against the calorie goal.
type DailyNutrition struct {
	Date              string           `json:"date"`
	CalorieGoal       int              `json:"calorie_goal"`
	TotalCalories     int              `json:"total_calories"`
	RemainingCalories int              `json:"remaining_calories"`
	GoalPercentage    float64          `json:"goal_percentage"`
	TotalProteinGrams float64          `json:"total_protein_grams"`
	TotalCarbsGrams   float64          `json:"total_carbs_grams"`
	TotalFatGrams     float64          `json:"total_fat_grams"`
	MealCount         int              `json:"meal_count"`
	CaloriesByMeal    map[MealType]int `json:"calories_by_meal"`
}
