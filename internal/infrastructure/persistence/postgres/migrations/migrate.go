package migrations

import (
	"fmt"

	"github.com/vitalis-health/backend/internal/domain/exerciselog"
	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/internal/domain/healthmetric"
	"github.com/vitalis-health/backend/internal/domain/insight"
	"github.com/vitalis-health/backend/internal/domain/notification"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/internal/domain/user"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
)

// Run applies schema migrations for every domain model. Ordering matters:
// owning entities first so foreign keys resolve.
func Run(db *connection.Database) error {
	models := []interface{}{
		&user.User{},
		&user.Preference{},
		&healthgoal.HealthGoal{},
		&waterlog.WaterLog{},
		&sleeplog.SleepLog{},
		&exerciselog.ExerciseLog{},
		&foodlog.FoodLog{},
		&healthmetric.HealthMetric{},
		&notification.Notification{},
		&insight.AIInsight{},
		&insight.ChatSession{},
		&insight.ChatMessage{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
