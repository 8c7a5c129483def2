// Package session defines meditation session records and their event log
package session

import (
	"time"
)

// Status represents the lifecycle state of a session. Transitions are
// monotonic: a live session may become completed or abandoned, and neither
// terminal state may be left.
type Status string

const (
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Valid reports whether the value is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusLive, StatusCompleted, StatusAbandoned:
		return true
	}

	return false
}

// Decision records how the technique for a session was chosen: by the guru
// recommendation or picked directly by the user.
type Decision string

const (
	DecidedByGuru Decision = "guru"
	DecidedByUser Decision = "user"
)

// EventKind identifies an entry in a session's event log.
type EventKind string

const (
	EventPause      EventKind = "pause"
	EventResume     EventKind = "resume"
	EventAbandoned  EventKind = "abandoned"
	EventReflection EventKind = "reflection"
)

// Record is a single meditation session. TechniqueKey is set at creation and
// immutable thereafter. EndedAt is the zero time if and only if the session
// is still live.
type Record struct {
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	TechniqueKey string    `json:"technique"`
	Goal         string    `json:"goal,omitempty"`
	DecidedBy    Decision  `json:"decided_by"`
	Status       Status    `json:"status"`
}

// Live reports whether the session is still in progress.
func (r *Record) Live() bool {
	return r.Status == StatusLive
}

// Duration returns the wall-clock length of the session. A live session
// reports its elapsed time relative to now.
func (r *Record) Duration(now time.Time) time.Duration {
	end := r.EndedAt
	if end.IsZero() {
		end = now
	}

	d := end.Sub(r.StartedAt)
	if d < 0 {
		return 0
	}

	return d
}

// Event is an append-only log entry attached to a session. Events are never
// mutated or deleted once recorded.
type Event struct {
	RecordedAt time.Time      `json:"recorded_at"`
	Payload    map[string]any `json:"payload,omitempty"`
	SessionID  string         `json:"session_id"`
	Kind       EventKind      `json:"kind"`
}

// Reflection is the post-session record a user submits to complete a
// session.
type Reflection struct {
	Mood    string `json:"mood"`
	Notes   string `json:"notes"`
	Clarity int    `json:"clarity"`
}

// Payload renders the reflection as an event payload.
func (r Reflection) Payload(recordedAt time.Time) map[string]any {
	return map[string]any{
		"mood":        r.Mood,
		"clarity":     r.Clarity,
		"notes":       r.Notes,
		"recorded_at": recordedAt.Format(time.RFC3339),
	}
}
