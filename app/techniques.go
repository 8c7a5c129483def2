package app

import (
	"fmt"
	"io"

	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/internal/ui"
)

// printTechniquesTable prints the technique catalog to the command-line.
func printTechniquesTable(w io.Writer, techniques []technique.Technique) {
	tableBody := make([][]string, len(techniques))

	for i := range techniques {
		t := &techniques[i]

		row := []string{
			string(t.Key),
			t.Name,
			fmt.Sprintf("%d min", t.DurationMinutes),
			technique.FormatPattern(t.Pattern),
			t.Description,
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{"KEY", "NAME", "DURATION", "BREATH PATTERN", "DESCRIPTION"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// printTechnique prints a single technique in full.
func printTechnique(w io.Writer, t technique.Technique) {
	fmt.Fprintln(w, ui.Green(t.Name))
	fmt.Fprintln(w, t.Description)
	fmt.Fprintln(w, ui.Highlight(t.Intention))
	fmt.Fprintf(w, "Duration: %d minutes\n", t.DurationMinutes)
	fmt.Fprintf(w, "Breath pattern: %s\n", technique.FormatPattern(t.Pattern))

	for _, b := range t.Benefits {
		fmt.Fprintf(w, "  - %s\n", b)
	}
}
