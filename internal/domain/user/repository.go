package user

import (
	"context"
	"errors"

	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	GetPreference(ctx context.Context, userID uint) (*Preference, error)
	SavePreference(ctx context.Context, pref *Preference) error
	FindHydrationReminderUsers(ctx context.Context) ([]Preference, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var user User
	result := r.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetPreference returns the user's preference row, creating the defaults
// row on first access.
func (r *repository) GetPreference(ctx context.Context, userID uint) (*Preference, error) {
	var pref Preference
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			pref = Preference{
				UserID:             userID,
				DailyWaterGoalML:   2000,
				DailyCalorieGoal:   2000,
				SleepGoalHours:     8,
				GoalReminders:      true,
				HydrationReminders: true,
			}
			if err := r.db.WithContext(ctx).Create(&pref).Error; err != nil {
				return nil, err
			}
			return &pref, nil
		}
		return nil, result.Error
	}
	return &pref, nil
}

func (r *repository) SavePreference(ctx context.Context, pref *Preference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}

// FindHydrationReminderUsers returns the preferences of every user who
// opted into hydration reminders. Consumed by the scheduler.
func (r *repository) FindHydrationReminderUsers(ctx context.Context) ([]Preference, error) {
	var prefs []Preference
	err := r.db.WithContext(ctx).
		Where("hydration_reminders = ?", true).
		Find(&prefs).Error
	return prefs, err
}
