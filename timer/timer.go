// Package timer runs a live meditation session as a full-screen countdown
// with rotating guidance cues and collects the post-session reflection
package timer

import (
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/stillpoint/config"
	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/lifecycle"
)

const (
	padding  = 2
	maxWidth = 80
)

// Timer drives a single live session from start to a terminal state. All
// state transitions go through the lifecycle engine; the model only tracks
// what is needed to draw the screen.
type Timer struct {
	engine *lifecycle.Engine
	opts   *config.Config
	sess   *session.Record
	tech   technique.Technique

	clock    btimer.Model
	progress progress.Model
	help     help.Model

	duration time.Duration
	cueIndex int

	reflectForm *huh.Form
	mood        string
	clarity     int
	notes       string

	reflecting bool
	settled    bool
}

// New initialises a timer for a freshly created live session.
func New(
	engine *lifecycle.Engine,
	cfg *config.Config,
	sess *session.Record,
	tech technique.Technique,
) *Timer {
	duration := time.Duration(tech.DurationMinutes) * time.Minute

	return &Timer{
		engine:   engine,
		opts:     cfg,
		sess:     sess,
		tech:     tech,
		duration: duration,
		clock:    btimer.New(duration),
		progress: progress.New(progress.WithDefaultGradient()),
		help:     help.New(),
	}
}

// notify sends a desktop notification when the session runs its full
// course.
func (t *Timer) notify() {
	if !t.opts.Notification.Enabled {
		return
	}

	title := fmt.Sprintf("%s is complete", t.tech.Name)

	err := beeep.Notify(title, "Take a moment before you move on", "")
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the specified command.
func (t *Timer) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

// newReflectForm builds the post-session reflection form.
func (t *Timer) newReflectForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do you feel now?").
				Options(
					huh.NewOption("Calm", "calm"),
					huh.NewOption("Grounded", "grounded"),
					huh.NewOption("Grateful", "grateful"),
					huh.NewOption("Sleepy", "sleepy"),
					huh.NewOption("Energized", "energized"),
				).
				Value(&t.mood),
			huh.NewSelect[int]().
				Title("How clear is your mind? (1 = foggy, 5 = crystal)").
				Options(
					huh.NewOption("1", 1),
					huh.NewOption("2", 2),
					huh.NewOption("3", 3),
					huh.NewOption("4", 4),
					huh.NewOption("5", 5),
				).
				Value(&t.clarity),
			huh.NewText().
				Title("Anything worth remembering?").
				CharLimit(500).
				Value(&t.notes),
		),
	)
}

// submitReflection completes the session with the reflection the user
// filled in.
func (t *Timer) submitReflection() {
	err := t.engine.Reflect(t.sess.ID, session.Reflection{
		Mood:    t.mood,
		Clarity: t.clarity,
		Notes:   t.notes,
	})
	if err != nil {
		slog.Error(
			"unable to save reflection",
			slog.String("session_id", t.sess.ID),
			slog.Any("error", err),
		)
	}
}

// skipReflection completes the session without a reflection.
func (t *Timer) skipReflection() {
	err := t.engine.Complete(t.sess.ID)
	if err != nil {
		slog.Error(
			"unable to complete session",
			slog.String("session_id", t.sess.ID),
			slog.Any("error", err),
		)
	}
}

// abandon ends the session before its time is up.
func (t *Timer) abandon() {
	err := t.engine.End(t.sess.ID)
	if err != nil {
		slog.Error(
			"unable to abandon session",
			slog.String("session_id", t.sess.ID),
			slog.Any("error", err),
		)
	}
}

// postSession runs the side effects that follow a finished session.
func (t *Timer) postSession() {
	t.notify()

	err := t.runSessionCmd(t.opts.Session.SessionCmd)
	if err != nil {
		slog.Error("unable to run session_cmd", slog.Any("error", err))
	}
}
