package healthmetric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBloodPressureCategory(t *testing.T) {
	tests := []struct {
		name     string
		systolic int
		diastolic int
		expected string
	}{
		{"normal", 115, 75, BPNormal},
		{"elevated boundary", 120, 75, BPElevated},
		{"elevated upper", 129, 79, BPElevated},
		{"stage 1 by systolic", 130, 75, BPHypertensionStage1},
		{"stage 1 by diastolic", 115, 80, BPHypertensionStage1},
		{"stage 1 upper", 139, 89, BPHypertensionStage1},
		{"stage 2 by systolic", 140, 85, BPHypertensionStage2},
		{"stage 2 by diastolic", 125, 90, BPHypertensionStage2},
		{"crisis by systolic", 180, 100, BPHypertensiveCrisis},
		{"crisis by diastolic", 150, 120, BPHypertensiveCrisis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &HealthMetric{SystolicBP: intPtr(tt.systolic), DiastolicBP: intPtr(tt.diastolic)}
			got := m.BloodPressureCategory()
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestBloodPressureCategoryMissing(t *testing.T) {
	m := &HealthMetric{}
	assert.Nil(t, m.BloodPressureCategory())

	m.SystolicBP = intPtr(120)
	assert.Nil(t, m.BloodPressureCategory())
}

func TestHeartRateCategory(t *testing.T) {
	tests := []struct {
		hr       int
		expected string
	}{
		{45, HRBradycardia},
		{59, HRBradycardia},
		{60, HRNormal},
		{80, HRNormal},
		{100, HRNormal},
		{101, HRTachycardia},
		{140, HRTachycardia},
	}

	for _, tt := range tests {
		m := &HealthMetric{RestingHR: intPtr(tt.hr)}
		got := m.HeartRateCategory()
		require.NotNil(t, got)
		assert.Equal(t, tt.expected, *got, "hr %d", tt.hr)
	}

	assert.Nil(t, (&HealthMetric{}).HeartRateCategory())
}
