package notification

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Adding a notification type without a display entry must fail here.
func TestDisplayTableExhaustive(t *testing.T) {
	for _, typ := range Types {
		d, ok := displayTable[typ]
		require.True(t, ok, "missing display entry for %q", typ)
		assert.NotEmpty(t, d.Icon, "type %q", typ)
		assert.NotEmpty(t, d.Color, "type %q", typ)
		assert.NotEmpty(t, d.TitlePrefix, "type %q", typ)
	}
	assert.Len(t, displayTable, len(Types))
}

func TestDisplayForUnknownType(t *testing.T) {
	d := DisplayFor(Type("carrier_pigeon"))
	assert.Equal(t, displayTable[TypeSystem], d)
}

type mockRepository struct {
	notifications map[uint]*Notification
	nextID        uint
}

func newMockRepository() *mockRepository {
	return &mockRepository{notifications: make(map[uint]*Notification), nextID: 1}
}

func (m *mockRepository) Create(_ context.Context, n *Notification) error {
	n.ID = m.nextID
	m.nextID++
	stored := *n
	m.notifications[n.ID] = &stored
	return nil
}

func (m *mockRepository) FindAll(_ context.Context, filter ListFilter) ([]Notification, int64, error) {
	var list []Notification
	for _, n := range m.notifications {
		if n.UserID != filter.UserID {
			continue
		}
		if filter.UnreadOnly && n.Read {
			continue
		}
		list = append(list, *n)
	}
	return list, int64(len(list)), nil
}

func (m *mockRepository) CountUnread(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *mockRepository) MarkRead(_ context.Context, id, userID uint) error {
	n, ok := m.notifications[id]
	if !ok || n.UserID != userID {
		return ErrNotificationNotFound
	}
	n.Read = true
	return nil
}

func (m *mockRepository) MarkAllRead(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, n := range m.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (m *mockRepository) Delete(_ context.Context, id, userID uint) error {
	n, ok := m.notifications[id]
	if !ok || n.UserID != userID {
		return ErrNotificationNotFound
	}
	delete(m.notifications, id)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDispatch(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, quietLogger())

	n, err := svc.Dispatch(context.Background(), 1, TypeHydrationReminder,
		"Drink up", "You are behind on your water goal.",
		map[string]interface{}{"goal_ml": 2000})
	require.NoError(t, err)
	assert.NotZero(t, n.ID)
	assert.False(t, n.Read)
	assert.JSONEq(t, `{"goal_ml":2000}`, string(n.Data))

	_, err = svc.Dispatch(context.Background(), 1, Type("smoke_signal"), "x", "y", nil)
	assert.Error(t, err)
}

func TestReadLifecycle(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, quietLogger())

	for i := 0; i < 3; i++ {
		_, err := svc.Dispatch(context.Background(), 1, TypeSystem, "notice", "msg", nil)
		require.NoError(t, err)
	}
	_, err := svc.Dispatch(context.Background(), 2, TypeSystem, "other user", "msg", nil)
	require.NoError(t, err)

	count, err := svc.UnreadCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, svc.MarkRead(context.Background(), 1, 1))
	count, _ = svc.UnreadCount(context.Background(), 1)
	assert.Equal(t, int64(2), count)

	// Another user cannot mark someone else's notification.
	assert.ErrorIs(t, svc.MarkRead(context.Background(), 2, 2), ErrNotificationNotFound)

	marked, err := svc.MarkAllRead(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	count, _ = svc.UnreadCount(context.Background(), 1)
	assert.Equal(t, int64(0), count)
}
