package store

import (
	"time"

	"github.com/ayoisaiah/stillpoint/internal/session"
)

// DB is the session storage interface. It is the sole writer of persisted
// state; the lifecycle engine and the summary aggregator only ever operate
// on the snapshots it returns.
type DB interface {
	// CreateSession persists a new session record, assigning an identifier
	// if the record does not carry one.
	CreateSession(sess *session.Record) error
	// GetSession returns the session with the given identifier, or
	// ErrSessionNotFound.
	GetSession(id string) (*session.Record, error)
	// ListSessions returns a snapshot of the user's sessions ordered by
	// start time, most recent first.
	ListSessions(userID string) ([]session.Record, error)
	// RecordEvent appends an entry to a session's event log. Events are
	// never mutated or deleted.
	RecordEvent(ev *session.Event) error
	// SetStatus updates a session's status and end time. A zero endedAt
	// clears the end time. Statuses outside the known set are rejected.
	SetStatus(id string, status session.Status, endedAt time.Time) error
	// ListEvents returns a session's event log in recording order.
	ListEvents(sessionID string) ([]session.Event, error)
	// DeleteSessions removes the given sessions and their event logs.
	// Unknown identifiers are ignored.
	DeleteSessions(ids []string) error
	// Subscribe registers a callback invoked after each successful write.
	// The returned function removes the registration. Delivery is best
	// effort with no ordering guarantees.
	Subscribe(fn func()) (cancel func())
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
