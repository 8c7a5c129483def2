package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()

	e := New(mem)
	e.now = func() time.Time {
		return time.Date(2024, 1, 3, 7, 30, 0, 0, time.UTC)
	}

	return e, mem
}

func mustCreate(t *testing.T, e *Engine) *session.Record {
	t.Helper()

	rec, err := e.Create(CreateInput{
		UserID:       "local",
		TechniqueKey: technique.BoxBreathing,
		DecidedBy:    session.DecidedByGuru,
		Goal:         "focus",
	})
	if err != nil {
		t.Fatal(err)
	}

	return rec
}

func TestCreate(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	if rec.ID == "" {
		t.Error("expected a generated session id")
	}

	if rec.Status != session.StatusLive {
		t.Errorf("expected status %q, but got %q", session.StatusLive, rec.Status)
	}

	if !rec.EndedAt.IsZero() {
		t.Errorf("expected no end time on a live session, got %v", rec.EndedAt)
	}

	if rec.StartedAt.IsZero() {
		t.Error("expected a start time")
	}
}

func TestCreateUnknownTechnique(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.Create(CreateInput{TechniqueKey: "not_a_real_key"})
	if !errors.Is(err, errUnknownTechnique) {
		t.Fatalf("expected unknown technique error, but got: %v", err)
	}
}

func TestEndAbandonsSession(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	err := e.End(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	got, err := e.db.GetSession(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	// end never yields a completed session
	if got.Status != session.StatusAbandoned {
		t.Errorf(
			"expected status %q, but got %q",
			session.StatusAbandoned,
			got.Status,
		)
	}

	if got.EndedAt.IsZero() {
		t.Error("expected an end time on an abandoned session")
	}

	events, err := e.Events(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 || events[0].Kind != session.EventAbandoned {
		t.Errorf("expected a single abandoned event, but got %v", events)
	}
}

func TestCompleteWithoutReflection(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	err := e.Complete(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	got, err := e.db.GetSession(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Status != session.StatusCompleted {
		t.Errorf(
			"expected status %q, but got %q",
			session.StatusCompleted,
			got.Status,
		)
	}

	if got.EndedAt.IsZero() {
		t.Error("expected an end time on a completed session")
	}

	events, err := e.Events(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 0 {
		t.Errorf("expected no events, but got %v", events)
	}

	// skipping the reflection still leaves the session open to one later
	err = e.Reflect(rec.ID, session.Reflection{Mood: "calm", Clarity: 4})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCompleteTerminalSession(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	err := e.End(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	err = e.Complete(rec.ID)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition error, but got: %v", err)
	}
}

func TestEndTwice(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	if err := e.End(rec.ID); err != nil {
		t.Fatal(err)
	}

	first, err := e.db.GetSession(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	e.now = func() time.Time {
		return time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	}

	err = e.End(rec.ID)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition error, but got: %v", err)
	}

	second, err := e.db.GetSession(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if !second.EndedAt.Equal(first.EndedAt) {
		t.Errorf(
			"expected end time to remain %v, but got %v",
			first.EndedAt,
			second.EndedAt,
		)
	}
}

func TestReflectCompletesSession(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	err := e.Reflect(rec.ID, session.Reflection{
		Mood:    "calm",
		Clarity: 4,
		Notes:   "steady breath throughout",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := e.db.GetSession(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Status != session.StatusCompleted {
		t.Errorf(
			"expected status %q, but got %q",
			session.StatusCompleted,
			got.Status,
		)
	}

	if got.EndedAt.IsZero() {
		t.Error("expected an end time on a completed session")
	}

	events, err := e.Events(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 {
		t.Fatalf("expected a single event, but got %d", len(events))
	}

	ev := events[0]

	if ev.Kind != session.EventReflection {
		t.Errorf("expected a reflection event, but got %q", ev.Kind)
	}

	if ev.Payload["mood"] != "calm" || ev.Payload["clarity"] != 4 {
		t.Errorf("unexpected reflection payload: %v", ev.Payload)
	}
}

func TestReflectUpdatesCompletedSession(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	err := e.Reflect(rec.ID, session.Reflection{Mood: "calm", Clarity: 3})
	if err != nil {
		t.Fatal(err)
	}

	err = e.Reflect(rec.ID, session.Reflection{Mood: "grateful", Clarity: 5})
	if err != nil {
		t.Fatalf("expected reflection update to succeed, but got: %v", err)
	}

	events, err := e.Events(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 2 {
		t.Errorf("expected two reflection events, but got %d", len(events))
	}
}

func TestReflectAbandonedSession(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	if err := e.End(rec.ID); err != nil {
		t.Fatal(err)
	}

	err := e.Reflect(rec.ID, session.Reflection{Mood: "calm", Clarity: 3})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition error, but got: %v", err)
	}
}

func TestReflectValidation(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	cases := []struct {
		Name       string
		Reflection session.Reflection
	}{
		{
			Name:       "empty mood",
			Reflection: session.Reflection{Clarity: 3},
		},
		{
			Name:       "clarity too low",
			Reflection: session.Reflection{Mood: "calm", Clarity: 0},
		},
		{
			Name:       "clarity too high",
			Reflection: session.Reflection{Mood: "calm", Clarity: 6},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			err := e.Reflect(rec.ID, tc.Reflection)
			if err == nil {
				t.Fatal("expected a validation error, but got nil")
			}
		})
	}
}

func TestPauseResume(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	if err := e.Pause(rec.ID); err != nil {
		t.Fatal(err)
	}

	// consecutive pauses are accepted: the log is descriptive, not
	// authoritative over playback state
	if err := e.Pause(rec.ID); err != nil {
		t.Fatal(err)
	}

	if err := e.Resume(rec.ID); err != nil {
		t.Fatal(err)
	}

	got, err := e.db.GetSession(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got.Status != session.StatusLive {
		t.Errorf("expected pause/resume to leave status %q, but got %q",
			session.StatusLive,
			got.Status,
		)
	}

	events, err := e.Events(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	kinds := []session.EventKind{
		session.EventPause,
		session.EventPause,
		session.EventResume,
	}

	if len(events) != len(kinds) {
		t.Fatalf("expected %d events, but got %d", len(kinds), len(events))
	}

	for i, kind := range kinds {
		if events[i].Kind != kind {
			t.Errorf("event %d: expected %q, but got %q", i, kind, events[i].Kind)
		}
	}
}

func TestPauseTerminalSession(t *testing.T) {
	e, _ := newTestEngine(t)

	rec := mustCreate(t, e)

	if err := e.End(rec.ID); err != nil {
		t.Fatal(err)
	}

	err := e.Pause(rec.ID)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition error, but got: %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	e, _ := newTestEngine(t)

	times := []time.Time{
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
	}

	for _, at := range times {
		e.now = func() time.Time { return at }
		mustCreate(t, e)
	}

	sessions, err := e.List("local")
	if err != nil {
		t.Fatal(err)
	}

	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, but got %d", len(sessions))
	}

	for i := 1; i < len(sessions); i++ {
		if sessions[i].StartedAt.After(sessions[i-1].StartedAt) {
			t.Errorf("expected sessions in descending start order, got %v",
				sessions,
			)
		}
	}
}

// failingStore wraps a DB and rejects status updates to simulate a partial
// reflection write.
type failingStore struct {
	store.DB
	setStatusErr error
}

func (f *failingStore) SetStatus(
	id string,
	status session.Status,
	endedAt time.Time,
) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}

	return f.DB.SetStatus(id, status, endedAt)
}

func TestReflectPartialFailure(t *testing.T) {
	mem := store.NewMemory()

	e := New(mem)
	e.now = func() time.Time {
		return time.Date(2024, 1, 3, 7, 30, 0, 0, time.UTC)
	}

	rec := mustCreate(t, e)

	boom := errors.New("storage rejected the write")
	e.db = &failingStore{DB: mem, setStatusErr: boom}

	err := e.Reflect(rec.ID, session.Reflection{Mood: "calm", Clarity: 4})
	if !errors.Is(err, ErrReflectIncomplete) {
		t.Fatalf("expected incomplete reflection error, but got: %v", err)
	}

	if !errors.Is(err, boom) {
		t.Errorf("expected the storage error to be wrapped, but got: %v", err)
	}

	// the event append went through even though the status update failed
	events, err := mem.ListEvents(rec.ID)
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 1 {
		t.Errorf("expected the reflection event to persist, but got %d events",
			len(events),
		)
	}
}
