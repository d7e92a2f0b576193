package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type Service interface {
	Dispatch(ctx context.Context, userID uint, typ Type, title, message string, data map[string]interface{}) (*Notification, error)
	List(ctx context.Context, filter ListFilter) ([]Notification, int64, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, id, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, id, userID uint) error
}

type service struct {
	repo Repository
	log  *logrus.Logger
}

func NewService(repo Repository, log *logrus.Logger) Service {
	if log == nil {
		log = logrus.New()
	}
	return &service{repo: repo, log: log}
}

// Dispatch persists a notification and logs the delivery. Delivery to
// external channels (push, email) is out of scope; clients poll the list
// endpoint.
func (s *service) Dispatch(ctx context.Context, userID uint, typ Type, title, message string, data map[string]interface{}) (*Notification, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown notification type %q", typ)
	}

	n := &Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
	}

	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode notification data: %w", err)
		}
		n.Data = datatypes.JSON(payload)
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	display := n.Display()
	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"type":    typ,
		"icon":    display.Icon,
		"title":   title,
	}).Info("notification dispatched")

	return n, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Notification, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *service) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id, userID uint) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uint) error {
	return s.repo.Delete(ctx, id, userID)
}
