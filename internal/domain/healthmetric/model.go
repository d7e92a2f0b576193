package healthmetric

import (
	"time"
)

// Blood pressure categories per the standard AHA thresholds.
const (
	BPNormal             = "normal"
	BPElevated           = "elevated"
	BPHypertensionStage1 = "hypertension_stage_1"
	BPHypertensionStage2 = "hypertension_stage_2"
	BPHypertensiveCrisis = "hypertensive_crisis"
)

// Heart rate categories for resting heart rate.
const (
	HRBradycardia = "bradycardia"
	HRNormal      = "normal"
	HRTachycardia = "tachycardia"
)

type HealthMetric struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	RecordedAt    time.Time `gorm:"not null;index" json:"recorded_at"`
	WeightKG      *float64  `json:"weight_kg,omitempty"`
	SystolicBP    *int      `json:"systolic_bp,omitempty"`
	DiastolicBP   *int      `json:"diastolic_bp,omitempty"`
	RestingHR     *int      `json:"resting_hr,omitempty"`
	BloodGlucose  *float64  `json:"blood_glucose,omitempty"`
	BodyTempC     *float64  `json:"body_temp_c,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (HealthMetric) TableName() string {
	return "health_metrics"
}

// BloodPressureCategory classifies the reading, nil unless both systolic
// and diastolic are present. The worse of the two components wins.
func (m *HealthMetric) BloodPressureCategory() *string {
	if m.SystolicBP == nil || m.DiastolicBP == nil {
		return nil
	}
	sys, dia := *m.SystolicBP, *m.DiastolicBP

	var category string
	switch {
	case sys >= 180 || dia >= 120:
		category = BPHypertensiveCrisis
	case sys >= 140 || dia >= 90:
		category = BPHypertensionStage2
	case sys >= 130 || dia >= 80:
		category = BPHypertensionStage1
	case sys >= 120:
		category = BPElevated
	default:
		category = BPNormal
	}
	return &category
}

// HeartRateCategory classifies resting heart rate: under 60 bradycardia,
// 60-100 normal, over 100 tachycardia. Nil when not recorded.
func (m *HealthMetric) HeartRateCategory() *string {
	if m.RestingHR == nil {
		return nil
	}

	var category string
	switch {
	case *m.RestingHR < 60:
		category = HRBradycardia
	case *m.RestingHR <= 100:
		category = HRNormal
	default:
		category = HRTachycardia
	}
	return &category
}

type CreateMetricInput struct {
	UserID       uint
	RecordedAt   time.Time
	WeightKG     *float64
	SystolicBP   *int
	DiastolicBP  *int
	RestingHR    *int
	BloodGlucose *float64
	BodyTempC    *float64
	Notes        string
}

// MetricFilter shapes the list query.
type MetricFilter struct {
	UserID uint
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Snapshot is the latest reading with its derived categories.
type Snapshot struct {
	Metric                *HealthMetric `json:"metric"`
	BloodPressureCategory *string       `json:"blood_pressure_category,omitempty"`
	HeartRateCategory     *string       `json:"heart_rate_category,omitempty"`
}
