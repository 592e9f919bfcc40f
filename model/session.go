package model

import "time"

const DefaultSessionTitle = "New Conversation"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session is one persisted conversation thread. ConversationID links the
// session to a Dify-side conversation; it is set on the first successful
// exchange and never overwritten afterwards.
type Session struct {
	ID             string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	ConversationID string    `json:"conversation_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Session) TableName() string {
	return "chat_sessions"
}

// Message 建立联合索引 (session_id, created_at)
type Message struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	SessionID string    `gorm:"not null;index:idx_session_created" json:"session_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Role      string    `gorm:"not null" json:"role"`
	CreatedAt time.Time `gorm:"index:idx_session_created" json:"created_at"`
}

func (Message) TableName() string {
	return "chat_messages"
}
