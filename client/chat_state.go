package client

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lawchat-backend/model"
	"lawchat-backend/service/dify"
)

// ChatMessage is one rendered turn. Pending marks an optimistically
// appended user turn that the server has not confirmed yet.
type ChatMessage struct {
	Content   string
	Role      string
	Timestamp time.Time
	Pending   bool
}

// ChatState is the client-side state container behind a chat view: the
// ordered message list, a loading flag, the current session and the last
// error. It is owned by a single view and is not safe for concurrent use;
// overlapping operations are expected to be prevented by the frontend
// (e.g. disabling the input while loading).
type ChatState struct {
	api *Client

	messages  []ChatMessage
	loading   bool
	session   *model.Session
	lastError string
}

func NewChatState(api *Client) *ChatState {
	return &ChatState{api: api}
}

func (s *ChatState) Messages() []ChatMessage { return s.messages }
func (s *ChatState) Loading() bool           { return s.loading }
func (s *ChatState) Session() *model.Session { return s.session }
func (s *ChatState) Err() string             { return s.lastError }

// LoadSession replaces local state with the session's metadata and message
// history. Partial failures set the error string and keep whatever loaded.
func (s *ChatState) LoadSession(ctx context.Context, sessionID string) {
	s.loading = true
	s.lastError = ""
	defer func() { s.loading = false }()

	session, err := s.api.GetSession(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to load session", "session_id", sessionID, "err", err)
		s.lastError = "Failed to load session"
	} else {
		s.session = session
	}

	history, err := s.api.SessionMessages(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to load session messages", "session_id", sessionID, "err", err)
		s.lastError = "Failed to load session"
		return
	}

	messages := make([]ChatMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, ChatMessage{
			Content:   m.Content,
			Role:      m.Role,
			Timestamp: m.CreatedAt,
		})
	}
	s.messages = messages
}

// SendMessage optimistically appends the user turn, then awaits the chat
// endpoint. On failure the optimistic turn stays pending and a fixed
// apology is appended as the assistant turn.
func (s *ChatState) SendMessage(ctx context.Context, content, sessionID string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}

	userIdx := len(s.messages)
	s.messages = append(s.messages, ChatMessage{
		Content:   content,
		Role:      model.RoleUser,
		Timestamp: time.Now(),
		Pending:   true,
	})
	s.loading = true
	s.lastError = ""
	defer func() { s.loading = false }()

	result, err := s.api.SendChat(ctx, content, sessionID)
	if err != nil {
		slog.Error("Failed to send message", "session_id", sessionID, "err", err)
		s.lastError = "Failed to send message"
		s.messages = append(s.messages, ChatMessage{
			Content:   dify.FallbackAnswer,
			Role:      model.RoleAssistant,
			Timestamp: time.Now(),
		})
		return
	}

	s.messages[userIdx].Pending = false
	s.messages = append(s.messages, ChatMessage{
		Content:   result.Response,
		Role:      model.RoleAssistant,
		Timestamp: time.Now(),
	})
}

// CreateSession starts a fresh session and resets the message list.
// Returns the new session id, or "" on failure.
func (s *ChatState) CreateSession(ctx context.Context, title string) string {
	s.loading = true
	s.lastError = ""
	defer func() { s.loading = false }()

	session, err := s.api.CreateSession(ctx, title)
	if err != nil {
		slog.Error("Failed to create session", "err", err)
		s.lastError = "Failed to create session"
		return ""
	}

	s.session = session
	s.messages = nil
	return session.ID
}

// Clear resets all local state.
func (s *ChatState) Clear() {
	s.messages = nil
	s.session = nil
	s.lastError = ""
}
