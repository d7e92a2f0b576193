package insight

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Category classifies what an insight is about.
type Category string

const (
	CategoryHydration Category = "hydration"
	CategorySleep     Category = "sleep"
	CategoryActivity  Category = "activity"
	CategoryNutrition Category = "nutrition"
	CategoryGoals     Category = "goals"
	CategoryGeneral   Category = "general"
)

var Categories = []Category{
	CategoryHydration,
	CategorySleep,
	CategoryActivity,
	CategoryNutrition,
	CategoryGoals,
	CategoryGeneral,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// AIInsight is a generated observation stored for later display.
// Generation happens outside this service; rows arrive pre-computed.
type AIInsight struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	Category   Category       `gorm:"size:32;not null;index" json:"category"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Summary    string         `gorm:"type:text;not null" json:"summary"`
	Payload    datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	Confidence float64        `gorm:"not null;default:0" json:"confidence"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (AIInsight) TableName() string {
	return "ai_insights"
}

// ConfidenceLabel buckets the confidence score for display.
func (i *AIInsight) ConfidenceLabel() string {
	switch {
	case i.Confidence >= 0.8:
		return "high"
	case i.Confidence >= 0.5:
		return "medium"
	default:
		return "low"
	}
}

// Headline formats the insight for compact display.
func (i *AIInsight) Headline() string {
	return fmt.Sprintf("[%s] %s", i.Category, i.Title)
}

// MessageRole identifies who authored a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

var MessageRoles = []MessageRole{RoleUser, RoleAssistant}

func (r MessageRole) Valid() bool {
	for _, v := range MessageRoles {
		if r == v {
			return true
		}
	}
	return false
}

// ChatSession groups a conversation thread.
type ChatSession struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	Title     string        `gorm:"size:255;not null" json:"title"`
	Messages  []ChatMessage `gorm:"foreignKey:SessionID" json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}

type ChatMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID uint           `gorm:"not null;index" json:"session_id"`
	Role      MessageRole    `gorm:"size:16;not null" json:"role"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// InsightFilter shapes the insight list query.
type InsightFilter struct {
	UserID   uint
	Category *Category
	Page     int
	Limit    int
}
