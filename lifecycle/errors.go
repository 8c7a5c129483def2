package lifecycle

import "github.com/ayoisaiah/stillpoint/internal/apperr"

var (
	// ErrInvalidTransition is returned when an operation is attempted on a
	// session whose state does not permit it. The check happens before any
	// write is issued.
	ErrInvalidTransition = &apperr.Error{
		Message: "invalid transition: session is already %s",
	}

	// ErrReflectIncomplete signals that only one of the reflection writes
	// succeeded. The session state is indeterminate and must be re-fetched.
	ErrReflectIncomplete = &apperr.Error{
		Message: "reflection was not fully recorded: session state is indeterminate",
	}

	errUnknownTechnique = &apperr.Error{
		Message: "unknown technique: %q",
	}

	errInvalidClarity = &apperr.Error{
		Message: "clarity must be between %d and %d",
	}

	errEmptyMood = &apperr.Error{
		Message: "reflection mood cannot be empty",
	}
)
