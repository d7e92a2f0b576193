package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalis-health/backend/internal/api/middleware"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/pkg/logger"
)

// stubGoalService returns canned values so handler tests exercise only
// binding, status codes and the response envelope.
type stubGoalService struct {
	goal  *healthgoal.HealthGoal
	goals []healthgoal.HealthGoal
	stats *healthgoal.GoalStats
	err   error
}

func (s *stubGoalService) CreateGoal(ctx context.Context, input healthgoal.CreateGoalInput) (*healthgoal.HealthGoal, error) {
	return s.goal, s.err
}

func (s *stubGoalService) GetGoal(ctx context.Context, id, userID uint) (*healthgoal.HealthGoal, error) {
	return s.goal, s.err
}

func (s *stubGoalService) ListGoals(ctx context.Context, filter healthgoal.GoalFilter) ([]healthgoal.HealthGoal, int64, error) {
	return s.goals, int64(len(s.goals)), s.err
}

func (s *stubGoalService) UpdateGoal(ctx context.Context, id, userID uint, input healthgoal.UpdateGoalInput) (*healthgoal.HealthGoal, error) {
	return s.goal, s.err
}

func (s *stubGoalService) DeleteGoal(ctx context.Context, id, userID uint) error {
	return s.err
}

func (s *stubGoalService) UpdateProgress(ctx context.Context, id, userID uint, value float64) (*healthgoal.HealthGoal, error) {
	return s.goal, s.err
}

func (s *stubGoalService) TransitionStatus(ctx context.Context, id, userID uint, status healthgoal.GoalStatus) (*healthgoal.HealthGoal, error) {
	return s.goal, s.err
}

func (s *stubGoalService) StatsOverview(ctx context.Context, userID uint) (*healthgoal.GoalStats, error) {
	return s.stats, s.err
}

func (s *stubGoalService) MonthlyProgress(ctx context.Context, userID uint) ([]healthgoal.MonthlyProgressEntry, error) {
	return nil, s.err
}

func (s *stubGoalService) Templates() []healthgoal.GoalTemplate {
	return nil
}

func (s *stubGoalService) Recommendations(ctx context.Context, userID uint) ([]healthgoal.Recommendation, error) {
	return nil, s.err
}

func (s *stubGoalService) NotifyOverdueGoals(ctx context.Context) (int, error) {
	return 0, s.err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newGoalRouter(svc healthgoal.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()
	handler := NewHealthGoalHandler(svc, logger.NewNop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
	})
	router.POST("/api/health-goals", handler.Create)
	router.GET("/api/health-goals/:id", handler.Get)
	router.PUT("/api/health-goals/:id/progress", handler.UpdateProgress)
	router.PUT("/api/health-goals/:id/complete", handler.Complete)
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestGetGoalReturnsDerivedFields(t *testing.T) {
	targetDate := time.Now().AddDate(0, 0, 10)
	svc := &stubGoalService{
		goal: &healthgoal.HealthGoal{
			ID:           42,
			UserID:       1,
			Title:        "Run a 10k",
			GoalType:     healthgoal.TypeEndurance,
			Status:       healthgoal.StatusActive,
			Priority:     healthgoal.PriorityHigh,
			TargetValue:  10,
			CurrentValue: 4,
			Unit:         "km",
			StartDate:    time.Now().AddDate(0, 0, -5),
			TargetDate:   &targetDate,
		},
	}
	router := newGoalRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health-goals/42", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, float64(40), data["progress_percentage"])
	assert.Equal(t, float64(6), data["remaining_value"])
	assert.Equal(t, false, data["is_overdue"])
	assert.Equal(t, false, data["is_completed"])
}

func TestGetGoalNotFound(t *testing.T) {
	router := newGoalRouter(&stubGoalService{err: healthgoal.ErrGoalNotFound})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health-goals/7", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "health goal not found", env.Message)
}

func TestGetGoalInvalidID(t *testing.T) {
	router := newGoalRouter(&stubGoalService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health-goals/abc", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestCreateGoalRejectsMissingTitle(t *testing.T) {
	router := newGoalRouter(&stubGoalService{})

	body := bytes.NewBufferString(`{"goal_type":"endurance"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/health-goals", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestUpdateProgressOnCompletedGoal(t *testing.T) {
	router := newGoalRouter(&stubGoalService{err: healthgoal.ErrGoalCompleted})

	body := bytes.NewBufferString(`{"current_value":5}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/health-goals/3/progress", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "goal is already completed", env.Message)
}

func TestCompleteGoalBelowTarget(t *testing.T) {
	router := newGoalRouter(&stubGoalService{err: healthgoal.ErrGoalNotCompletable})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/health-goals/3/complete", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestInternalErrorIsGeneric(t *testing.T) {
	router := newGoalRouter(&stubGoalService{err: context.DeadlineExceeded})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health-goals/1", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "an internal error occurred", env.Message)
}
