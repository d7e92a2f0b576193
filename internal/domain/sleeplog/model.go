package sleeplog

import (
	"time"
)

// SleepQuality is the user's subjective rating of a night.
type SleepQuality string

const (
	QualityExcellent SleepQuality = "excellent"
	QualityGood      SleepQuality = "good"
	QualityFair      SleepQuality = "fair"
	QualityPoor      SleepQuality = "poor"
	QualityVeryPoor  SleepQuality = "very_poor"
)

var SleepQualities = []SleepQuality{
	QualityExcellent,
	QualityGood,
	QualityFair,
	QualityPoor,
	QualityVeryPoor,
}

func (q SleepQuality) Valid() bool {
	for _, v := range SleepQualities {
		if q == v {
			return true
		}
	}
	return false
}

// qualityPoints is the fixed score contribution per quality rating. The
// table is exhaustive over SleepQualities.
var qualityPoints = map[SleepQuality]int{
	QualityExcellent: 15,
	QualityGood:      12,
	QualityFair:      8,
	QualityPoor:      4,
	QualityVeryPoor:  0,
}

type SleepLog struct {
	ID                     uint         `gorm:"primaryKey" json:"id"`
	UserID                 uint         `gorm:"not null;index" json:"user_id"`
	Bedtime                time.Time    `gorm:"not null" json:"bedtime"`
	WakeTime               time.Time    `gorm:"not null" json:"wake_time"`
	DurationHours          float64      `gorm:"not null" json:"duration_hours"`
	Quality                SleepQuality `gorm:"size:32;not null" json:"quality"`
	EfficiencyPct          *float64     `json:"efficiency_pct,omitempty"`
	TimeToFallAsleepMin    *int         `json:"time_to_fall_asleep_min,omitempty"`
	AwakeningsCount        *int         `json:"awakenings_count,omitempty"`
	DeepSleepMinutes       *int         `json:"deep_sleep_minutes,omitempty"`
	LightSleepMinutes      *int         `json:"light_sleep_minutes,omitempty"`
	RemSleepMinutes        *int         `json:"rem_sleep_minutes,omitempty"`
	AwakeMinutes           *int         `json:"awake_minutes,omitempty"`
	Notes                  string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// SleepScore composes a 0-100 score from five tiered components:
// duration up to 30, efficiency up to 25, sleep-onset latency up to 20,
// subjective quality up to 15 and awakenings up to 10, capped at 100.
// Missing optional components contribute nothing.
func (s *SleepLog) SleepScore() int {
	score := durationPoints(s.DurationHours)
	score += qualityPoints[s.Quality]

	if s.EfficiencyPct != nil {
		score += efficiencyPoints(*s.EfficiencyPct)
	}
	if s.TimeToFallAsleepMin != nil {
		score += latencyPoints(*s.TimeToFallAsleepMin)
	}
	if s.AwakeningsCount != nil {
		score += awakeningsPoints(*s.AwakeningsCount)
	}

	if score > 100 {
		score = 100
	}
	return score
}

func durationPoints(hours float64) int {
	switch {
	case hours >= 7 && hours <= 9:
		return 30
	case (hours >= 6 && hours < 7) || (hours > 9 && hours <= 10):
		return 22
	case (hours >= 5 && hours < 6) || (hours > 10 && hours <= 11):
		return 15
	default:
		return 5
	}
}

func efficiencyPoints(pct float64) int {
	switch {
	case pct >= 90:
		return 25
	case pct >= 80:
		return 20
	case pct >= 70:
		return 15
	case pct >= 60:
		return 10
	default:
		return 5
	}
}

func latencyPoints(minutes int) int {
	switch {
	case minutes <= 15:
		return 20
	case minutes <= 30:
		return 15
	case minutes <= 45:
		return 10
	case minutes <= 60:
		return 5
	default:
		return 0
	}
}

func awakeningsPoints(count int) int {
	switch {
	case count == 0:
		return 10
	case count == 1:
		return 8
	case count == 2:
		return 6
	case count <= 4:
		return 3
	default:
		return 0
	}
}

// StageBreakdownMinutes sums the recorded sleep-stage minutes, nil when no
// stage was recorded.
func (s *SleepLog) StageBreakdownMinutes() *int {
	if s.DeepSleepMinutes == nil && s.LightSleepMinutes == nil && s.RemSleepMinutes == nil {
		return nil
	}
	total := 0
	for _, m := range []*int{s.DeepSleepMinutes, s.LightSleepMinutes, s.RemSleepMinutes} {
		if m != nil {
			total += *m
		}
	}
	return &total
}

type CreateLogInput struct {
	UserID              uint
	Bedtime             time.Time
	WakeTime            time.Time
	DurationHours       float64
	Quality             SleepQuality
	EfficiencyPct       *float64
	TimeToFallAsleepMin *int
	AwakeningsCount     *int
	DeepSleepMinutes    *int
	LightSleepMinutes   *int
	RemSleepMinutes     *int
	AwakeMinutes        *int
	Notes               string
}

type UpdateLogInput struct {
	Bedtime             *time.Time
	WakeTime            *time.Time
	DurationHours       *float64
	Quality             *SleepQuality
	EfficiencyPct       *float64
	TimeToFallAsleepMin *int
	AwakeningsCount     *int
	Notes               *string
}

// LogFilter shapes the list query.
type LogFilter struct {
	UserID  uint
	Quality *SleepQuality
	From    *time.Time
	To      *time.Time
	Page    int
	Limit   int
}

// NightScore pairs one night with its computed score.
type NightScore struct {
	Date          string       `json:"date"`
	DurationHours float64      `json:"duration_hours"`
	Quality       SleepQuality `json:"quality"`
	Score         int          `json:"score"`
}

// Summary aggregates a range of nights.
type Summary struct {
	StartDate            string       `json:"start_date"`
	EndDate              string       `json:"end_date"`
	Nights               []NightScore `json:"nights"`
	NightCount           int          `json:"night_count"`
	AverageScore         float64      `json:"average_score"`
	AverageDurationHours float64      `json:"average_duration_hours"`
	BestNight            *NightScore  `json:"best_night,omitempty"`
}
