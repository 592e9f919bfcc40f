package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawchat-backend/request"
	"lawchat-backend/response"
	"lawchat-backend/service/chat"
)

func (ctrl *Controller) Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Err("message and sessionId are required", err.Error()))
		return
	}

	result, err := ctrl.chatSvc.Handle(c.Request.Context(), req.Message, req.SessionID)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Err("Session not found", ""))
			return
		}
		slog.Error(ErrChat.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrChat.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(result))
}

func (ctrl *Controller) TestChatConnection(c *gin.Context) {
	connected := ctrl.gateway.TestConnection(c.Request.Context())

	msg := "Dify connection failed"
	if connected {
		msg = "Dify connection successful"
	}

	c.JSON(http.StatusOK, response.OK(response.ChatTestResponse{
		Connected: connected,
		Message:   msg,
	}))
}
