package request

type CreateSessionRequest struct {
	Title          string `json:"title"`
	ConversationID string `json:"conversation_id"`
}

// UpdateSessionRequest carries a partial field merge; only non-nil fields
// are applied.
type UpdateSessionRequest struct {
	Title          *string `json:"title"`
	ConversationID *string `json:"conversation_id"`
}

type CreateMessageRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}
