package insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitalis-health/backend/pkg/logger"
	"go.uber.org/zap"
)

var ErrInvalidInput = errors.New("invalid insight input")

type Service interface {
	ListInsights(ctx context.Context, filter InsightFilter) ([]AIInsight, int64, error)
	RecordInsight(ctx context.Context, insight *AIInsight) error
	CreateSession(ctx context.Context, userID uint, title string) (*ChatSession, error)
	ListSessions(ctx context.Context, userID uint) ([]ChatSession, error)
	DeleteSession(ctx context.Context, id, userID uint) error
	AddMessage(ctx context.Context, sessionID, userID uint, role MessageRole, content string) (*ChatMessage, error)
	ListMessages(ctx context.Context, sessionID, userID uint) ([]ChatMessage, error)
}

type service struct {
	repo   Repository
	logger *logger.Logger
}

func NewService(repo Repository, logger *logger.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) ListInsights(ctx context.Context, filter InsightFilter) ([]AIInsight, int64, error) {
	return s.repo.FindInsights(ctx, filter)
}

// RecordInsight stores a pre-computed insight. Generation is external.
func (s *service) RecordInsight(ctx context.Context, insight *AIInsight) error {
	if !insight.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, insight.Category)
	}
	if insight.Confidence < 0 || insight.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be within [0,1]", ErrInvalidInput)
	}
	if err := s.repo.CreateInsight(ctx, insight); err != nil {
		return err
	}
	s.logger.Info("insight recorded",
		zap.Uint("user_id", insight.UserID),
		zap.String("category", string(insight.Category)))
	return nil
}

func (s *service) CreateSession(ctx context.Context, userID uint, title string) (*ChatSession, error) {
	if title == "" {
		title = "New conversation"
	}
	session := &ChatSession{UserID: userID, Title: title}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) ListSessions(ctx context.Context, userID uint) ([]ChatSession, error) {
	return s.repo.FindSessions(ctx, userID)
}

func (s *service) DeleteSession(ctx context.Context, id, userID uint) error {
	return s.repo.DeleteSession(ctx, id, userID)
}

// AddMessage appends to a session after verifying ownership.
func (s *service) AddMessage(ctx context.Context, sessionID, userID uint, role MessageRole, content string) (*ChatMessage, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	if _, err := s.repo.FindSessionByID(ctx, sessionID, userID); err != nil {
		return nil, err
	}

	message := &ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *service) ListMessages(ctx context.Context, sessionID, userID uint) ([]ChatMessage, error) {
	if _, err := s.repo.FindSessionByID(ctx, sessionID, userID); err != nil {
		return nil, err
	}
	return s.repo.FindMessages(ctx, sessionID)
}
