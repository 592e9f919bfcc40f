package controller

import (
	"context"
	"time"

	"lawchat-backend/dao"
	"lawchat-backend/service/chat"
)

// ChatGateway is the subset of the Dify client the controllers need
// directly; the chat round trip itself goes through chat.Service.
type ChatGateway interface {
	TestConnection(ctx context.Context) bool
}

type Controller struct {
	sessions  *dao.SessionDAO
	messages  *dao.MessageDAO
	chatSvc   *chat.Service
	gateway   ChatGateway
	startedAt time.Time
}

func New(sessions *dao.SessionDAO, messages *dao.MessageDAO, chatSvc *chat.Service, gateway ChatGateway) *Controller {
	return &Controller{
		sessions:  sessions,
		messages:  messages,
		chatSvc:   chatSvc,
		gateway:   gateway,
		startedAt: time.Now(),
	}
}
