package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lawchat-backend/model"
	"lawchat-backend/request"
	"lawchat-backend/response"
)

func (ctrl *Controller) GetSessions(c *gin.Context) {
	sessions, err := ctrl.sessions.List(c.Request.Context())
	if err != nil {
		slog.Error(ErrGetSessions.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrGetSessions.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(sessions))
}

func (ctrl *Controller) CreateSession(c *gin.Context) {
	// An empty body is a valid "new chat" request.
	var req request.CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			slog.Error(ErrParseRequest.Error(), "err", err)
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Err(ErrParseRequest.Error(), err.Error()))
			return
		}
	}

	session := &model.Session{
		Title:          req.Title,
		ConversationID: req.ConversationID,
	}
	if err := ctrl.sessions.Create(c.Request.Context(), session); err != nil {
		slog.Error(ErrCreateSession.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrCreateSession.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.OK(session))
}

func (ctrl *Controller) GetSession(c *gin.Context) {
	session, err := ctrl.sessions.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error(ErrGetSession.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrGetSession.Error(), err.Error()))
		return
	}
	if session == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, response.Err("Session not found", ""))
		return
	}

	c.JSON(http.StatusOK, response.OK(session))
}

func (ctrl *Controller) UpdateSession(c *gin.Context) {
	var req request.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.Err(ErrParseRequest.Error(), err.Error()))
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.ConversationID != nil {
		fields["conversation_id"] = *req.ConversationID
	}

	session, err := ctrl.sessions.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		slog.Error(ErrUpdateSession.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrUpdateSession.Error(), err.Error()))
		return
	}
	if session == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrUpdateSession.Error(), "session not found"))
		return
	}

	c.JSON(http.StatusOK, response.OK(session))
}

// DeleteSession removes the session's messages first, then the session
// itself; the storage layer has no cascade.
func (ctrl *Controller) DeleteSession(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.messages.DeleteBySession(c.Request.Context(), id); err != nil {
		slog.Error(ErrDeleteSession.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrDeleteSession.Error(), err.Error()))
		return
	}
	if err := ctrl.sessions.Delete(c.Request.Context(), id); err != nil {
		slog.Error(ErrDeleteSession.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrDeleteSession.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Response{Success: true, Message: "Session deleted successfully"})
}

func (ctrl *Controller) GetSessionMessages(c *gin.Context) {
	messages, err := ctrl.messages.ListBySession(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error(ErrGetSessionMessages.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Err(ErrGetSessionMessages.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(messages))
}
