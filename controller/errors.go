package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")

	ErrGetSessions        = errors.New("failed to get sessions")
	ErrCreateSession      = errors.New("failed to create session")
	ErrGetSession         = errors.New("failed to get session")
	ErrUpdateSession      = errors.New("failed to update session")
	ErrDeleteSession      = errors.New("failed to delete session")
	ErrGetSessionMessages = errors.New("failed to get session messages")

	ErrGetMessages   = errors.New("failed to get messages")
	ErrCreateMessage = errors.New("failed to create message")
	ErrDeleteMessage = errors.New("failed to delete message")

	ErrChat = errors.New("failed to process chat message")
)
