// Package lifecycle governs how a meditation session moves between its
// live, completed, and abandoned states and records the event log each
// transition produces. The state machine here is authoritative: callers
// may disable controls in terminal states, but every transition is checked
// again before a write is issued.
package lifecycle

import (
	"errors"
	"time"

	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/store"
)

const (
	minClarity = 1
	maxClarity = 5
)

// Engine drives session state transitions against a storage backend. It
// holds no session state of its own and never retries failed writes.
type Engine struct {
	db  store.DB
	now func() time.Time
}

// New returns an engine backed by the given store.
func New(db store.DB) *Engine {
	return &Engine{
		db:  db,
		now: time.Now,
	}
}

// CreateInput describes a new session.
type CreateInput struct {
	UserID       string
	TechniqueKey technique.Key
	DecidedBy    session.Decision
	Goal         string
}

// Create allocates a new live session. The technique key is validated
// against the catalog and is immutable after this point.
func (e *Engine) Create(input CreateInput) (*session.Record, error) {
	if _, ok := technique.GetByKey(input.TechniqueKey); !ok {
		return nil, errUnknownTechnique.Fmt(input.TechniqueKey)
	}

	decidedBy := input.DecidedBy
	if decidedBy == "" {
		decidedBy = session.DecidedByUser
	}

	rec := &session.Record{
		UserID:       input.UserID,
		TechniqueKey: string(input.TechniqueKey),
		DecidedBy:    decidedBy,
		Goal:         input.Goal,
		Status:       session.StatusLive,
		StartedAt:    e.now(),
	}

	err := e.db.CreateSession(rec)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Pause records a pause event for a live session. The event log is
// descriptive rather than authoritative over playback state, so alternation
// with resume events is not enforced.
func (e *Engine) Pause(id string) error {
	return e.logLiveEvent(id, session.EventPause)
}

// Resume records a resume event for a live session.
func (e *Engine) Resume(id string) error {
	return e.logLiveEvent(id, session.EventResume)
}

func (e *Engine) logLiveEvent(id string, kind session.EventKind) error {
	sess, err := e.db.GetSession(id)
	if err != nil {
		return err
	}

	if sess.Status.Terminal() {
		return ErrInvalidTransition.Fmt(sess.Status)
	}

	at := e.now()

	return e.db.RecordEvent(&session.Event{
		SessionID:  id,
		Kind:       kind,
		RecordedAt: at,
		Payload: map[string]any{
			"at": at.Format(time.RFC3339),
		},
	})
}

// End marks a live session as abandoned. The transition is irreversible.
func (e *Engine) End(id string) error {
	sess, err := e.db.GetSession(id)
	if err != nil {
		return err
	}

	if sess.Status.Terminal() {
		return ErrInvalidTransition.Fmt(sess.Status)
	}

	endedAt := e.now()

	err = e.db.SetStatus(id, session.StatusAbandoned, endedAt)
	if err != nil {
		return err
	}

	return e.db.RecordEvent(&session.Event{
		SessionID:  id,
		Kind:       session.EventAbandoned,
		RecordedAt: endedAt,
		Payload: map[string]any{
			"at": endedAt.Format(time.RFC3339),
		},
	})
}

// Complete marks a live session as completed without a reflection. It is
// used when a session runs to its full duration and the reflection form
// is skipped.
func (e *Engine) Complete(id string) error {
	sess, err := e.db.GetSession(id)
	if err != nil {
		return err
	}

	if sess.Status.Terminal() {
		return ErrInvalidTransition.Fmt(sess.Status)
	}

	return e.db.SetStatus(id, session.StatusCompleted, e.now())
}

// Reflect appends a reflection event and completes the session. It is
// permitted from a live session or as an update to an already completed
// one, never from an abandoned session. The two writes are issued
// concurrently without a cross-write transaction: when only one succeeds
// the caller receives ErrReflectIncomplete and must re-fetch the session.
func (e *Engine) Reflect(id string, r session.Reflection) error {
	if r.Mood == "" {
		return errEmptyMood
	}

	if r.Clarity < minClarity || r.Clarity > maxClarity {
		return errInvalidClarity.Fmt(minClarity, maxClarity)
	}

	sess, err := e.db.GetSession(id)
	if err != nil {
		return err
	}

	if sess.Status == session.StatusAbandoned {
		return ErrInvalidTransition.Fmt(sess.Status)
	}

	recordedAt := e.now()

	eventErr := make(chan error, 1)

	go func() {
		eventErr <- e.db.RecordEvent(&session.Event{
			SessionID:  id,
			Kind:       session.EventReflection,
			RecordedAt: recordedAt,
			Payload:    r.Payload(recordedAt),
		})
	}()

	statusErr := e.db.SetStatus(id, session.StatusCompleted, recordedAt)

	evErr := <-eventErr

	if evErr != nil || statusErr != nil {
		return ErrReflectIncomplete.Wrap(errors.Join(evErr, statusErr))
	}

	return nil
}

// List returns the user's sessions, most recently started first.
func (e *Engine) List(userID string) ([]session.Record, error) {
	return e.db.ListSessions(userID)
}

// Events returns a session's event log in recording order.
func (e *Engine) Events(id string) ([]session.Event, error) {
	return e.db.ListEvents(id)
}

// Subscribe registers a callback fired after each storage change and
// returns its unsubscribe handle.
func (e *Engine) Subscribe(fn func()) (cancel func()) {
	return e.db.Subscribe(fn)
}
