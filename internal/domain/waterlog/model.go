package waterlog

import (
	"math"
	"time"
)

// DrinkType classifies what was consumed.
type DrinkType string

const (
	DrinkWater          DrinkType = "water"
	DrinkSparklingWater DrinkType = "sparkling_water"
	DrinkTea            DrinkType = "tea"
	DrinkCoffee         DrinkType = "coffee"
	DrinkJuice          DrinkType = "juice"
	DrinkSportsDrink    DrinkType = "sports_drink"
	DrinkOther          DrinkType = "other"
)

var DrinkTypes = []DrinkType{
	DrinkWater,
	DrinkSparklingWater,
	DrinkTea,
	DrinkCoffee,
	DrinkJuice,
	DrinkSportsDrink,
	DrinkOther,
}

func (d DrinkType) Valid() bool {
	for _, v := range DrinkTypes {
		if d == v {
			return true
		}
	}
	return false
}

// hydrationFactors weight each drink type's contribution to effective
// hydration. The table is exhaustive over DrinkTypes.
var hydrationFactors = map[DrinkType]float64{
	DrinkWater:          1.0,
	DrinkSparklingWater: 1.0,
	DrinkTea:            0.9,
	DrinkCoffee:         0.8,
	DrinkJuice:          0.85,
	DrinkSportsDrink:    0.95,
	DrinkOther:          0.8,
}

// HydrationFactor returns the drink's hydration weight; unknown types fall
// back to the "other" factor.
func (d DrinkType) HydrationFactor() float64 {
	if f, ok := hydrationFactors[d]; ok {
		return f
	}
	return hydrationFactors[DrinkOther]
}

type WaterLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	AmountML   int       `gorm:"not null" json:"amount_ml"`
	DrinkType  DrinkType `gorm:"size:32;not null;default:water" json:"drink_type"`
	ConsumedAt time.Time `gorm:"not null;index" json:"consumed_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (WaterLog) TableName() string {
	return "water_logs"
}

// EffectiveHydrationML is the amount weighted by the drink's hydration
// factor, rounded to the nearest millilitre.
func (w *WaterLog) EffectiveHydrationML() int {
	return int(math.Round(float64(w.AmountML) * w.DrinkType.HydrationFactor()))
}

type CreateLogInput struct {
	UserID     uint
	AmountML   int
	DrinkType  DrinkType
	ConsumedAt time.Time
}

type UpdateLogInput struct {
	AmountML   *int
	DrinkType  *DrinkType
	ConsumedAt *time.Time
}

// LogFilter shapes the list query.
type LogFilter struct {
	UserID    uint
	DrinkType *DrinkType
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

// DailyStats is one day's consumption measured against the user's goal.
type DailyStats struct {
	Date                 string            `json:"date"`
	GoalML               int               `json:"goal_ml"`
	TotalConsumedML      int               `json:"total_consumed_ml"`
	EffectiveHydrationML int               `json:"effective_hydration_ml"`
	Percentage           float64           `json:"percentage"`
	RemainingML          int               `json:"remaining_ml"`
	LogCount             int               `json:"log_count"`
	ByType               map[DrinkType]int `json:"by_type"`
}

// DayTotal is one day's total within a weekly range.
type DayTotal struct {
	Date    string `json:"date"`
	TotalML int    `json:"total_ml"`
	GoalMet bool   `json:"goal_met"`
}

// WeeklyStats aggregates an inclusive date range.
type WeeklyStats struct {
	StartDate      string     `json:"start_date"`
	EndDate        string     `json:"end_date"`
	Days           []DayTotal `json:"days"`
	WeeklyTotalML  int        `json:"weekly_total_ml"`
	AverageDailyML float64    `json:"average_daily_ml"`
	DaysGoalMet    int        `json:"days_goal_met"`
	BestDay        *DayTotal  `json:"best_day,omitempty"`
}
