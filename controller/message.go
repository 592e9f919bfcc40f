package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawchat-backend/model"
	"lawchat-backend/request"
	"lawchat-backend/response"
)

func (ctrl *Controller) GetMessages(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Err("session_id is required", ""))
		return
	}

	messages, err := ctrl.messages.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		slog.Error(ErrGetMessages.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrGetMessages.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(messages))
}

func (ctrl *Controller) CreateMessage(c *gin.Context) {
	var req request.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Err("session_id, content, and role are required", err.Error()))
		return
	}

	message := &model.Message{
		SessionID: req.SessionID,
		Content:   req.Content,
		Role:      req.Role,
	}
	if err := ctrl.messages.Create(c.Request.Context(), message); err != nil {
		slog.Error(ErrCreateMessage.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrCreateMessage.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.OK(message))
}

func (ctrl *Controller) DeleteMessage(c *gin.Context) {
	if err := ctrl.messages.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		slog.Error(ErrDeleteMessage.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrDeleteMessage.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Response{Success: true, Message: "Message deleted successfully"})
}
