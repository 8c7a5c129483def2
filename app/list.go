package app

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
)

const dateFormat = "Jan 02, 2006 03:04 PM"

func statusText(status session.Status) string {
	switch status {
	case session.StatusCompleted:
		return ui.Green(status)
	case session.StatusLive:
		return ui.Blue(status)
	default:
		return ui.Red(status)
	}
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []session.Record) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := &sessions[i]

		name := sess.TechniqueKey
		if t, ok := technique.GetByKey(technique.Key(sess.TechniqueKey)); ok {
			name = t.Name
		}

		decidedBy := string(sess.DecidedBy)
		if sess.DecidedBy == session.DecidedByGuru {
			decidedBy = ui.Magenta(sess.DecidedBy)
		}

		endDate := ""
		if !sess.Live() {
			endDate = sess.EndedAt.Format(dateFormat)
		}

		row := []string{
			fmt.Sprintf("%d", i+1),
			name,
			decidedBy,
			sess.Goal,
			sess.StartedAt.Format(dateFormat),
			endDate,
			statusText(sess.Status),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"#", "TECHNIQUE", "DECIDED BY", "GOAL", "START DATE", "END DATE", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listSessions prints out a table of sessions.
func listSessions(sessions []session.Record) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions)

	return nil
}
