package config

import "github.com/ayoisaiah/stillpoint/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errUnknownTechnique = &apperr.Error{
		Message: "unknown default technique: %s",
	}

	errCueIntervalTooShort = &apperr.Error{
		Message: "cue interval must be at least one second",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidStartDate = &apperr.Error{
		Message: "please provide a valid start date",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end date must not be earlier than the start date",
	}
)
