package chatbot

import "GlamoraBackend/pkg/response"

var (
	ErrInvalidInput    = response.NewError(400, "invalid chat input")
	ErrSessionNotFound = response.NewError(404, "session not found")
	ErrSessionBusy     = response.NewError(503, "session is busy, try again")
	ErrSessionStore    = response.NewError(500, "session store unavailable")
)
