package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		confidence float64
		expected   string
	}{
		{0.95, "high"},
		{0.8, "high"},
		{0.79, "medium"},
		{0.5, "medium"},
		{0.49, "low"},
		{0, "low"},
	}

	for _, tt := range tests {
		i := &AIInsight{Confidence: tt.confidence}
		assert.Equal(t, tt.expected, i.ConfidenceLabel(), "confidence %.2f", tt.confidence)
	}
}

func TestHeadline(t *testing.T) {
	i := &AIInsight{Category: CategorySleep, Title: "You sleep better on weekdays"}
	assert.Equal(t, "[sleep] You sleep better on weekdays", i.Headline())
}
