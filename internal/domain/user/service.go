package user

import (
	"context"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

type Service interface {
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateUserInput) (*User, error)
	GetPreferences(ctx context.Context, userID uint) (*Preference, error)
	UpdatePreferences(ctx context.Context, userID uint, input UpdatePreferenceInput) (*Preference, error)
	DailyWaterGoalML(ctx context.Context, userID uint) (int, error)
	DailyCalorieGoal(ctx context.Context, userID uint) (int, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, logger *logger.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uint, input UpdateUserInput) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.HeightCM != nil {
		user.HeightCM = input.HeightCM
	}
	if input.WeightKG != nil {
		user.WeightKG = input.WeightKG
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		user.Gender = input.Gender
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user profile updated", zap.Uint("user_id", userID))
	return user, nil
}

func (s *service) GetPreferences(ctx context.Context, userID uint) (*Preference, error) {
	return s.repo.GetPreference(ctx, userID)
}

func (s *service) UpdatePreferences(ctx context.Context, userID uint, input UpdatePreferenceInput) (*Preference, error) {
	pref, err := s.repo.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DailyWaterGoalML != nil {
		pref.DailyWaterGoalML = *input.DailyWaterGoalML
	}
	if input.DailyCalorieGoal != nil {
		pref.DailyCalorieGoal = *input.DailyCalorieGoal
	}
	if input.SleepGoalHours != nil {
		pref.SleepGoalHours = *input.SleepGoalHours
	}
	if input.GoalReminders != nil {
		pref.GoalReminders = *input.GoalReminders
	}
	if input.HydrationReminders != nil {
		pref.HydrationReminders = *input.HydrationReminders
	}

	if err := s.repo.SavePreference(ctx, pref); err != nil {
		return nil, err
	}

	return pref, nil
}

// DailyWaterGoalML resolves the hydration goal consumed by the water-log
// statistics.
func (s *service) DailyWaterGoalML(ctx context.Context, userID uint) (int, error) {
	pref, err := s.repo.GetPreference(ctx, userID)
	if err != nil {
		return 0, err
	}
	return pref.DailyWaterGoalML, nil
}

// DailyCalorieGoal resolves the calorie goal consumed by the food-log
// statistics.
func (s *service) DailyCalorieGoal(ctx context.Context, userID uint) (int, error) {
	pref, err := s.repo.GetPreference(ctx, userID)
	if err != nil {
		return 0, err
	}
	return pref.DailyCalorieGoal, nil
}
