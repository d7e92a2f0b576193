package insight

import (
	"context"
	"errors"

	"github.com/vitalis-health/backend/internal/infrastructure/persistence/postgres/connection"
	"gorm.io/gorm"
)

var (
	ErrInsightNotFound = errors.New("insight not found")
	ErrSessionNotFound = errors.New("chat session not found")
)

type Repository interface {
	CreateInsight(ctx context.Context, insight *AIInsight) error
	FindInsights(ctx context.Context, filter InsightFilter) ([]AIInsight, int64, error)
	CreateSession(ctx context.Context, session *ChatSession) error
	FindSessions(ctx context.Context, userID uint) ([]ChatSession, error)
	FindSessionByID(ctx context.Context, id, userID uint) (*ChatSession, error)
	DeleteSession(ctx context.Context, id, userID uint) error
	CreateMessage(ctx context.Context, message *ChatMessage) error
	FindMessages(ctx context.Context, sessionID uint) ([]ChatMessage, error)
}

type repository struct {
	db *connection.Database
}

func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

func (r *repository) CreateInsight(ctx context.Context, insight *AIInsight) error {
	return r.db.WithContext(ctx).Create(insight).Error
}

func (r *repository) FindInsights(ctx context.Context, filter InsightFilter) ([]AIInsight, int64, error) {
	var insights []AIInsight
	var total int64

	query := r.db.WithContext(ctx).Model(&AIInsight{}).
		Where("user_id = ?", filter.UserID)

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&insights).Error
	if err != nil {
		return nil, 0, err
	}

	return insights, total, nil
}

func (r *repository) CreateSession(ctx context.Context, session *ChatSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *repository) FindSessions(ctx context.Context, userID uint) ([]ChatSession, error) {
	var sessions []ChatSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *repository) FindSessionByID(ctx context.Context, id, userID uint) (*ChatSession, error) {
	var session ChatSession
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, result.Error
	}
	return &session, nil
}

func (r *repository) DeleteSession(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ChatSession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *repository) CreateMessage(ctx context.Context, message *ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *repository) FindMessages(ctx context.Context, sessionID uint) ([]ChatMessage, error) {
	var messages []ChatMessage
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
