package store

import "github.com/ayoisaiah/stillpoint/internal/apperr"

var (
	// ErrSessionNotFound is returned when a session lookup by identifier
	// finds nothing.
	ErrSessionNotFound = &apperr.Error{
		Message: "session not found: please start a new session",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is Stillpoint already running? Only one instance can be active at a time",
	}

	errUnknownStatus = &apperr.Error{
		Message: "unknown session status: %q",
	}
)
