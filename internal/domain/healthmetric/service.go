package healthmetric

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidMetric = errors.New("invalid health metric")

type Service interface {
	CreateMetric(ctx context.Context, input CreateMetricInput) (*HealthMetric, error)
	GetMetric(ctx context.Context, id, userID uint) (*HealthMetric, error)
	ListMetrics(ctx context.Context, filter MetricFilter) ([]HealthMetric, int64, error)
	DeleteMetric(ctx context.Context, id, userID uint) error
	LatestSnapshot(ctx context.Context, userID uint) (*Snapshot, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *logger.Logger) Service {
	return &service{repo: repo, logger: logger, now: time.Now}
}

func (s *service) CreateMetric(ctx context.Context, input CreateMetricInput) (*HealthMetric, error) {
	if input.WeightKG == nil && input.SystolicBP == nil && input.DiastolicBP == nil &&
		input.RestingHR == nil && input.BloodGlucose == nil && input.BodyTempC == nil {
		return nil, fmt.Errorf("%w: at least one measurement is required", ErrInvalidMetric)
	}
	if (input.SystolicBP == nil) != (input.DiastolicBP == nil) {
		return nil, fmt.Errorf("%w: blood pressure needs both systolic and diastolic", ErrInvalidMetric)
	}
	if input.SystolicBP != nil && (*input.SystolicBP <= 0 || *input.DiastolicBP <= 0) {
		return nil, fmt.Errorf("%w: blood pressure values must be positive", ErrInvalidMetric)
	}
	if input.RestingHR != nil && *input.RestingHR <= 0 {
		return nil, fmt.Errorf("%w: resting heart rate must be positive", ErrInvalidMetric)
	}
	if input.WeightKG != nil && *input.WeightKG <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidMetric)
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}

	metric := &HealthMetric{
		UserID:       input.UserID,
		RecordedAt:   recordedAt,
		WeightKG:     input.WeightKG,
		SystolicBP:   input.SystolicBP,
		DiastolicBP:  input.DiastolicBP,
		RestingHR:    input.RestingHR,
		BloodGlucose: input.BloodGlucose,
		BodyTempC:    input.BodyTempC,
		Notes:        input.Notes,
	}

	if err := s.repo.Create(ctx, metric); err != nil {
		return nil, err
	}

	s.logger.Info("health metric recorded",
		zap.Uint("user_id", input.UserID),
		zap.Time("recorded_at", metric.RecordedAt))

	return metric, nil
}

func (s *service) GetMetric(ctx context.Context, id, userID uint) (*HealthMetric, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *service) ListMetrics(ctx context.Context, filter MetricFilter) ([]HealthMetric, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) DeleteMetric(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}

// LatestSnapshot fetches the most recent reading with its derived
// categories.
func (s *service) LatestSnapshot(ctx context.Context, userID uint) (*Snapshot, error) {
	metric, err := s.repo.FindLatest(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Metric:                metric,
		BloodPressureCategory: metric.BloodPressureCategory(),
		HeartRateCategory:     metric.HeartRateCategory(),
	}, nil
}
