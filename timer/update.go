package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func (t *Timer) Init() tea.Cmd {
	return t.clock.Init()
}

// handleTimerTick processes timer tick events and rotates the guidance
// cue.
func (t *Timer) handleTimerTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if len(t.tech.Cues) > 0 {
		elapsed := t.duration - t.clock.Timeout

		t.cueIndex = int(elapsed/t.opts.Session.CueInterval) % len(t.tech.Cues)
	}

	return t, cmd
}

// handleTimerStartStop records pause and resume events as the countdown is
// toggled.
func (t *Timer) handleTimerStartStop(
	msg btimer.StartStopMsg,
) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	var err error

	if t.clock.Running() {
		err = t.engine.Resume(t.sess.ID)
	} else {
		err = t.engine.Pause(t.sess.ID)
	}

	if err != nil {
		slog.Error(
			"unable to record pause/resume event",
			slog.String("session_id", t.sess.ID),
			slog.Any("error", err),
		)
	}

	return t, cmd
}

// startReflection switches the screen over to the reflection form.
func (t *Timer) startReflection() tea.Cmd {
	t.reflecting = true
	t.reflectForm = t.newReflectForm()

	return t.reflectForm.Init()
}

// handleReflection routes messages to the reflection form until it is
// completed or skipped.
func (t *Timer) handleReflection(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, defaultKeymap.skip),
			key.Matches(keyMsg, defaultKeymap.quit) && keyMsg.String() == "ctrl+c":
			t.skipReflection()

			t.settled = true

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}
	}

	form, cmd := t.reflectForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.reflectForm = f
	}

	if t.reflectForm.State == huh.StateCompleted {
		t.submitReflection()

		t.settled = true

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.reflecting {
		return t.handleReflection(msg)
	}

	switch msg := msg.(type) {
	case btimer.TickMsg:
		return t.handleTimerTick(msg)

	case btimer.StartStopMsg:
		return t.handleTimerStartStop(msg)

	case btimer.TimeoutMsg:
		t.postSession()

		return t, t.startReflection()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			return t, t.clock.Toggle()

		case key.Matches(msg, defaultKeymap.finish):
			return t, t.startReflection()

		case key.Matches(msg, defaultKeymap.quit):
			t.abandon()

			t.settled = true

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}

		return t, nil

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		var cmd tea.Cmd

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
