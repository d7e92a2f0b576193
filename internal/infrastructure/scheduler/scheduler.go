package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/internal/domain/notification"
	"github.com/vitalis-health/backend/internal/domain/user"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

// hydrationReminderInterval spaces the intra-day hydration checks.
const hydrationReminderInterval = 4 * time.Hour

type Scheduler struct {
	goalService     healthgoal.Service
	waterService    waterlog.Service
	userRepo        user.Repository
	notificationSvc notification.Service
	logger          *logger.Logger
	stop            chan struct{}
}

func NewScheduler(
	goalService healthgoal.Service,
	waterService waterlog.Service,
	userRepo user.Repository,
	notificationSvc notification.Service,
	logger *logger.Logger,
) *Scheduler {
	return &Scheduler{
		goalService:     goalService,
		waterService:    waterService,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
		stop:            make(chan struct{}),
	}
}

// Start launches the background jobs: an overdue-goal sweep at midnight
// plus once at startup, and hydration reminders every few hours.
func (s *Scheduler) Start() {
	s.runOverdueSweep()

	go s.hydrationReminderLoop()

	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	untilMidnight := nextMidnight.Sub(now)

	s.logger.Info("scheduler initialized",
		zap.Time("next_overdue_sweep", nextMidnight),
		zap.Duration("time_until_next_sweep", untilMidnight))

	go func() {
		timer := time.NewTimer(untilMidnight)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-s.stop:
			return
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		s.runOverdueSweep()
		for {
			select {
			case <-ticker.C:
				s.runOverdueSweep()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop terminates the background loops. Safe to call once.
func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) runOverdueSweep() {
	ctx := context.Background()
	start := time.Now()

	sent, err := s.goalService.NotifyOverdueGoals(ctx)
	if err != nil {
		s.logger.Error("overdue goal sweep failed", zap.Error(err))
		return
	}

	s.logger.Info("overdue goal sweep finished",
		zap.Int("notifications_sent", sent),
		zap.Duration("elapsed", time.Since(start)))
}

func (s *Scheduler) hydrationReminderLoop() {
	ticker := time.NewTicker(hydrationReminderInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.runHydrationReminders()
		case <-s.stop:
			return
		}
	}
}

// runHydrationReminders nudges opted-in users who are under half their
// daily goal.
func (s *Scheduler) runHydrationReminders() {
	ctx := context.Background()

	prefs, err := s.userRepo.FindHydrationReminderUsers(ctx)
	if err != nil {
		s.logger.Error("failed to load hydration reminder users", zap.Error(err))
		return
	}

	sent := 0
	for _, pref := range prefs {
		stats, err := s.waterService.DailyStats(ctx, pref.UserID, time.Now())
		if err != nil {
			s.logger.Error("failed to compute daily water stats",
				zap.Uint("user_id", pref.UserID), zap.Error(err))
			continue
		}
		if stats.Percentage >= 50 {
			continue
		}

		_, err = s.notificationSvc.Dispatch(ctx, pref.UserID,
			notification.TypeHydrationReminder,
			"Time to hydrate",
			fmt.Sprintf("You are at %.0f%% of your %dml goal today.", stats.Percentage, stats.GoalML),
			map[string]interface{}{
				"total_consumed_ml": stats.TotalConsumedML,
				"goal_ml":           stats.GoalML,
			})
		if err != nil {
			s.logger.Error("failed to dispatch hydration reminder",
				zap.Uint("user_id", pref.UserID), zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Info("hydration reminders dispatched", zap.Int("count", sent))
	}
}
