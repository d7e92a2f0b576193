package notification

import (
	"time"

	"gorm.io/datatypes"
)

// Type classifies a notification.
type Type string

const (
	TypeGoalReminder      Type = "goal_reminder"
	TypeGoalCompleted     Type = "goal_completed"
	TypeGoalOverdue       Type = "goal_overdue"
	TypeHydrationReminder Type = "hydration_reminder"
	TypeSleepSummary      Type = "sleep_summary"
	TypeSystem            Type = "system"
)

var Types = []Type{
	TypeGoalReminder,
	TypeGoalCompleted,
	TypeGoalOverdue,
	TypeHydrationReminder,
	TypeSleepSummary,
	TypeSystem,
}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// Display carries the presentation attributes for one notification type.
type Display struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	TitlePrefix string `json:"title_prefix"`
}

// displayTable maps every notification type to its presentation. The
// table is exhaustive over Types; TestDisplayTableExhaustive enforces
// that adding a type forces an entry here.
var displayTable = map[Type]Display{
	TypeGoalReminder:      {Icon: "target", Color: "#3B82F6", TitlePrefix: "Goal reminder"},
	TypeGoalCompleted:     {Icon: "trophy", Color: "#22C55E", TitlePrefix: "Goal completed"},
	TypeGoalOverdue:       {Icon: "alert-triangle", Color: "#EF4444", TitlePrefix: "Goal overdue"},
	TypeHydrationReminder: {Icon: "droplet", Color: "#06B6D4", TitlePrefix: "Time to hydrate"},
	TypeSleepSummary:      {Icon: "moon", Color: "#8B5CF6", TitlePrefix: "Sleep summary"},
	TypeSystem:            {Icon: "info", Color: "#6B7280", TitlePrefix: "Notice"},
}

// DisplayFor returns the presentation attributes for a type; unknown
// types fall back to the system display.
func DisplayFor(t Type) Display {
	if d, ok := displayTable[t]; ok {
		return d
	}
	return displayTable[TypeSystem]
}

type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Type      Type           `gorm:"size:32;not null;index" json:"type"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	Read      bool           `gorm:"not null;default:false;index" json:"read"`
	Data      datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// Display resolves the presentation attributes for this notification.
func (n *Notification) Display() Display {
	return DisplayFor(n.Type)
}

// ListFilter shapes the notification list query.
type ListFilter struct {
	UserID     uint
	Type       *Type
	UnreadOnly bool
	Page       int
	Limit      int
}
