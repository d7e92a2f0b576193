package notification

import (
	"context"
	"fmt"

	"github.com/vitalis-health/backend/internal/domain/healthgoal"
)

// GoalNotifier adapts the notification service to the goal domain's
// notifier interface.
type GoalNotifier struct {
	svc Service
}

func NewGoalNotifier(svc Service) *GoalNotifier {
	return &GoalNotifier{svc: svc}
}

func (g *GoalNotifier) NotifyGoalCompleted(ctx context.Context, userID uint, goal *healthgoal.HealthGoal) error {
	_, err := g.svc.Dispatch(ctx, userID, TypeGoalCompleted,
		goal.Title,
		fmt.Sprintf("You completed %q. Nice work!", goal.Title),
		map[string]interface{}{"goal_id": goal.ID, "goal_type": goal.GoalType})
	return err
}

func (g *GoalNotifier) NotifyGoalOverdue(ctx context.Context, userID uint, goal *healthgoal.HealthGoal) error {
	_, err := g.svc.Dispatch(ctx, userID, TypeGoalOverdue,
		goal.Title,
		fmt.Sprintf("%q is past its target date. Update it or log some progress.", goal.Title),
		map[string]interface{}{"goal_id": goal.ID, "goal_type": goal.GoalType})
	return err
}
