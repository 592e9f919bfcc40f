package chat

import (
	"context"
	"errors"
	"time"

	"lawchat-backend/dao"
	"lawchat-backend/model"
	"lawchat-backend/service/dify"
)

var ErrSessionNotFound = errors.New("session not found")

// Gateway is the outbound AI call. Implementations never fail; a degraded
// exchange is reported through Response.Fallback.
type Gateway interface {
	Send(ctx context.Context, query, conversationID string) *dify.Response
}

// TitleQueue receives sessions that earned a generated title.
type TitleQueue interface {
	Enqueue(sessionID string)
}

type Service struct {
	sessions *dao.SessionDAO
	messages *dao.MessageDAO
	gateway  Gateway
	titles   TitleQueue
}

// NewService wires the chat orchestrator. titles may be nil, in which case
// sessions keep their default title until renamed by the user.
func NewService(sessions *dao.SessionDAO, messages *dao.MessageDAO, gateway Gateway, titles TitleQueue) *Service {
	return &Service{
		sessions: sessions,
		messages: messages,
		gateway:  gateway,
		titles:   titles,
	}
}

// Result is the combined outcome of one chat round trip.
type Result struct {
	UserMessage    model.Message `json:"userMessage"`
	AIMessage      model.Message `json:"aiMessage"`
	Response       string        `json:"response"`
	SessionID      string        `json:"sessionId"`
	ConversationID string        `json:"conversationId"`
	Fallback       bool          `json:"fallback,omitempty"`
}

// Handle runs one request/response cycle: persist the user turn, call the
// gateway, bind the Dify conversation id on first contact, persist the
// assistant turn. The steps are not transactional; a failure mid-way can
// leave a user turn without a paired reply.
func (s *Service) Handle(ctx context.Context, message, sessionID string) (*Result, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	userMsg := &model.Message{
		SessionID: sessionID,
		Content:   message,
		Role:      model.RoleUser,
	}
	if err := s.messages.Create(ctx, userMsg); err != nil {
		return nil, err
	}

	resp := s.gateway.Send(ctx, message, session.ConversationID)

	// Bind the Dify conversation on first contact only; an already-set id
	// is never overwritten.
	if resp.ConversationID != "" && session.ConversationID == "" {
		if _, err := s.sessions.Update(ctx, sessionID, map[string]any{
			"conversation_id": resp.ConversationID,
			"updated_at":      time.Now(),
		}); err != nil {
			return nil, err
		}
	}

	aiMsg := &model.Message{
		SessionID: sessionID,
		Content:   resp.Answer,
		Role:      model.RoleAssistant,
	}
	if err := s.messages.Create(ctx, aiMsg); err != nil {
		return nil, err
	}

	if s.titles != nil && !resp.Fallback && session.Title == model.DefaultSessionTitle {
		s.titles.Enqueue(sessionID)
	}

	return &Result{
		UserMessage:    *userMsg,
		AIMessage:      *aiMsg,
		Response:       resp.Answer,
		SessionID:      sessionID,
		ConversationID: resp.ConversationID,
		Fallback:       resp.Fallback,
	}, nil
}
