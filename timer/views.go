package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/internal/timeutil"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)

	mainStyle = lipgloss.NewStyle().Bold(true)

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	hintStyle = lipgloss.NewStyle().Faint(true)

	cueStyle = lipgloss.NewStyle().Italic(true)
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Timer) formatTimeRemaining() string {
	m, s := timeutil.SecsToMinsAndSecs(t.clock.Timeout.Seconds())

	return fmt.Sprintf(
		"%s:%s", fmt.Sprintf("%02d", m), fmt.Sprintf("%02d", s),
	)
}

func (t *Timer) currentCue() string {
	if len(t.tech.Cues) == 0 {
		return ""
	}

	return t.tech.Cues[t.cueIndex]
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(mainStyle.Render(t.tech.Name))

	var timeFormat string
	if t.opts.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	} else {
		timeFormat = "03:04:05 PM"
	}

	if !t.clock.Running() && !t.clock.Timedout() {
		s.WriteString(secondaryStyle.Render(" [Paused]"))
	} else {
		endsAt := t.sess.StartedAt.Add(t.duration)

		s.WriteString(
			hintStyle.Render(" until " + endsAt.Format(timeFormat)),
		)
	}

	s.WriteString("\n")
	s.WriteString(secondaryStyle.Render(t.tech.Intention))
	s.WriteString("\n\n")
	s.WriteString(
		hintStyle.Render(technique.FormatPattern(t.tech.Pattern)),
	)

	if cue := t.currentCue(); cue != "" {
		s.WriteString("\n\n")
		s.WriteString(cueStyle.Render(cue))
	}

	percent := t.clock.Timeout.Seconds() / t.duration.Seconds()

	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(t.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(1 - percent))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.finish,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) reflectView() string {
	var s strings.Builder

	s.WriteString(mainStyle.Render("Session complete"))
	s.WriteString("\n\n")
	s.WriteString(t.reflectForm.View())
	s.WriteString("\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.skip,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.settled {
		return ""
	}

	if t.reflecting {
		return baseStyle.Render(t.reflectView())
	}

	return baseStyle.Render(t.timerView())
}
