package healthgoal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name     string
		target   float64
		current  float64
		expected float64
	}{
		{"zero target", 0, 50, 0},
		{"negative target", -10, 50, 0},
		{"halfway", 100, 50, 50},
		{"exactly complete", 100, 100, 100},
		{"overshoot clamps to 100", 100, 150, 100},
		{"negative current clamps to 0", 100, -5, 0},
		{"fractional", 3, 1, 33.333333333333336},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &HealthGoal{TargetValue: tt.target, CurrentValue: tt.current}
			assert.InDelta(t, tt.expected, g.ProgressPercentage(), 0.0001)
		})
	}
}

func TestIsOverdueAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	tests := []struct {
		name     string
		status   GoalStatus
		target   *time.Time
		expected bool
	}{
		{"active past target", StatusActive, &past, true},
		{"active future target", StatusActive, &future, false},
		{"active no target date", StatusActive, nil, false},
		{"completed past target", StatusCompleted, &past, false},
		{"paused past target", StatusPaused, &past, false},
		{"cancelled past target", StatusCancelled, &past, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &HealthGoal{Status: tt.status, TargetDate: tt.target}
			assert.Equal(t, tt.expected, g.IsOverdueAt(now))
		})
	}
}

func TestIsCompleted(t *testing.T) {
	tests := []struct {
		name     string
		status   GoalStatus
		target   float64
		current  float64
		expected bool
	}{
		{"completed status wins", StatusCompleted, 100, 0, true},
		{"target reached while active", StatusActive, 100, 100, true},
		{"target exceeded", StatusActive, 100, 120, true},
		{"below target", StatusActive, 100, 99, false},
		{"no target not completed", StatusActive, 0, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &HealthGoal{Status: tt.status, TargetValue: tt.target, CurrentValue: tt.current}
			assert.Equal(t, tt.expected, g.IsCompleted())
		})
	}
}

func TestRemainingValue(t *testing.T) {
	g := &HealthGoal{TargetValue: 100, CurrentValue: 30}
	assert.Equal(t, 70.0, g.RemainingValue())

	g.CurrentValue = 150
	assert.Equal(t, 0.0, g.RemainingValue())
}

func TestDaysRemainingAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	g := &HealthGoal{}
	assert.Nil(t, g.DaysRemainingAt(now))

	target := now.AddDate(0, 0, 10)
	g.TargetDate = &target
	days := g.DaysRemainingAt(now)
	require.NotNil(t, days)
	assert.Equal(t, 10, *days)

	past := now.AddDate(0, 0, -3)
	g.TargetDate = &past
	days = g.DaysRemainingAt(now)
	require.NotNil(t, days)
	assert.Equal(t, -3, *days)
}

func TestEnumValidity(t *testing.T) {
	for _, v := range GoalTypes {
		assert.True(t, v.Valid(), "goal type %q", v)
	}
	for _, v := range GoalStatuses {
		assert.True(t, v.Valid(), "status %q", v)
	}
	for _, v := range GoalPriorities {
		assert.True(t, v.Valid(), "priority %q", v)
	}

	assert.False(t, GoalType("jogging").Valid())
	assert.False(t, GoalStatus("archived").Valid())
	assert.False(t, GoalPriority("critical").Valid())
}
