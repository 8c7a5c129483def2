package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/stillpoint/internal/session"
)

// Memory is an in-memory session store for the local-only configuration.
// Identifiers are generated locally and nothing touches the disk. It also
// serves as the storage double in tests.
type Memory struct {
	observers
	mu       sync.RWMutex
	sessions map[string]session.Record
	events   []session.Event
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]session.Record),
	}
}

func (m *Memory) CreateSession(sess *session.Record) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	m.mu.Lock()
	m.sessions[sess.ID] = *sess
	m.mu.Unlock()

	m.notify()

	return nil
}

func (m *Memory) GetSession(id string) (*session.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return &sess, nil
}

func (m *Memory) ListSessions(userID string) ([]session.Record, error) {
	m.mu.RLock()

	sessions := make([]session.Record, 0, len(m.sessions))

	for _, sess := range m.sessions {
		if userID == "" || sess.UserID == userID {
			sessions = append(sessions, sess)
		}
	}

	m.mu.RUnlock()

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	return sessions, nil
}

func (m *Memory) RecordEvent(ev *session.Event) error {
	if ev.RecordedAt.IsZero() {
		ev.RecordedAt = time.Now()
	}

	m.mu.Lock()

	if _, ok := m.sessions[ev.SessionID]; !ok {
		m.mu.Unlock()
		return ErrSessionNotFound
	}

	m.events = append(m.events, *ev)

	m.mu.Unlock()

	m.notify()

	return nil
}

func (m *Memory) SetStatus(
	id string,
	status session.Status,
	endedAt time.Time,
) error {
	if !status.Valid() {
		return errUnknownStatus.Fmt(status)
	}

	m.mu.Lock()

	sess, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return ErrSessionNotFound
	}

	sess.Status = status
	sess.EndedAt = endedAt
	m.sessions[id] = sess

	m.mu.Unlock()

	m.notify()

	return nil
}

func (m *Memory) ListEvents(sessionID string) ([]session.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var events []session.Event

	for _, ev := range m.events {
		if ev.SessionID == sessionID {
			events = append(events, ev)
		}
	}

	return events, nil
}

func (m *Memory) DeleteSessions(ids []string) error {
	m.mu.Lock()

	drop := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		drop[id] = struct{}{}
		delete(m.sessions, id)
	}

	kept := m.events[:0]

	for _, ev := range m.events {
		if _, ok := drop[ev.SessionID]; !ok {
			kept = append(kept, ev)
		}
	}

	m.events = kept

	m.mu.Unlock()

	m.notify()

	return nil
}

func (m *Memory) Subscribe(fn func()) (cancel func()) {
	return m.subscribe(fn)
}

func (m *Memory) Open() error { return nil }

func (m *Memory) Close() error { return nil }
