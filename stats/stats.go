// Package stats reports meditation statistics for a session history
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/internal/timeutil"
	"github.com/ayoisaiah/stillpoint/internal/ui"
	"github.com/ayoisaiah/stillpoint/summary"
)

const barChartChar = "▇"

const noSessionsMsg = "No sessions found for the specified time range"

// historyDays is the span of the daily minutes chart.
const historyDays = 14

// Report is a rendered view over a session history snapshot. PlannedMinutes
// is the technique-default total, reported alongside the wall-clock total
// but never blended into it.
type Report struct {
	Generated      time.Time        `json:"generated"`
	Metrics        summary.Metrics  `json:"metrics"`
	ByTechnique    map[string]int   `json:"minutes_by_technique"`
	PlannedMinutes int              `json:"planned_minutes"`
	Sessions       []session.Record `json:"sessions"`
}

// New computes a report from a session snapshot relative to now.
func New(sessions []session.Record, now time.Time) *Report {
	return &Report{
		Generated:      now,
		Metrics:        summary.Compute(sessions, now),
		ByTechnique:    summary.MinutesByTechnique(sessions, now),
		PlannedMinutes: summary.TechniqueDefaultMinutes(sessions),
		Sessions:       sessions,
	}
}

// ToJSON renders the report for machine consumption.
func (r *Report) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Report) summarySection() string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	total := durafmt.Parse(
		time.Duration(r.Metrics.TotalMinutes) * time.Minute,
	)

	timeLogged := fmt.Sprintf(
		"Time meditated: %s\n",
		//nolint:gomnd // limit to first 2 units
		ui.Green(total.LimitToUnit("hours").LimitFirstN(2)),
	)

	planned := fmt.Sprintf(
		"Time planned: %s\n",
		ui.Green(durafmt.Parse(
			time.Duration(r.PlannedMinutes)*time.Minute,
		).LimitToUnit("hours").LimitFirstN(2)),
	)

	streak := fmt.Sprintf(
		"Current streak: %s\n",
		ui.Green(fmt.Sprintf("%d days", r.Metrics.Streak)),
	)

	completed := fmt.Sprintln(
		"Sessions completed:",
		ui.Green(r.Metrics.Completed),
	)

	abandoned := fmt.Sprintln(
		"Sessions abandoned:",
		ui.Green(r.Metrics.Abandoned),
	)

	return header + timeLogged + planned + streak + completed + abandoned
}

// techniqueSection renders a per-technique minutes breakdown, largest
// first.
func (r *Report) techniqueSection() string {
	if len(r.ByTechnique) == 0 {
		return ""
	}

	type keyValue struct {
		key   string
		value int
	}

	kv := make([]keyValue, 0, len(r.ByTechnique))
	for k, v := range r.ByTechnique {
		kv = append(kv, keyValue{k, v})
	}

	sort.SliceStable(kv, func(i, j int) bool {
		return kv[i].value > kv[j].value
	})

	var bars pterm.Bars

	for _, v := range kv {
		label := v.key

		if t, ok := technique.GetByKey(technique.Key(v.key)); ok {
			label = t.Name
		}

		bars = append(bars, pterm.Bar{
			Value: v.value,
			Label: label,
		})
	}

	header := ui.Blue("\nTechnique breakdown (minutes)")

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// historySection renders the daily minutes for the most recent days.
func (r *Report) historySection() string {
	daily := make(map[string]int, historyDays)

	for i := historyDays - 1; i >= 0; i-- {
		daily[timeutil.DayKey(r.Generated.AddDate(0, 0, -i))] = 0
	}

	for i := range r.Sessions {
		sess := &r.Sessions[i]

		key := timeutil.DayKey(sess.StartedAt)
		if _, ok := daily[key]; !ok {
			continue
		}

		daily[key] += timeutil.Round(sess.Duration(r.Generated).Minutes())
	}

	keys := make([]string, 0, len(daily))
	for k := range daily {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var bars pterm.Bars

	for _, k := range keys {
		bars = append(bars, pterm.Bar{
			Value: daily[k],
			Label: k,
		})
	}

	header := ui.Blue("\nDaily breakdown (minutes)")

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func (r *Report) recentSection() string {
	if len(r.Sessions) == 0 {
		return ""
	}

	recent := r.Sessions
	//nolint:gomnd // dashboard shows the five most recent sessions
	if len(recent) > 5 {
		recent = recent[:5]
	}

	var builder strings.Builder

	builder.WriteString(ui.Blue("\nRecent sessions\n"))

	for i := range recent {
		sess := &recent[i]

		name := sess.TechniqueKey
		if t, ok := technique.GetByKey(technique.Key(sess.TechniqueKey)); ok {
			name = t.Name
		}

		var status string

		switch sess.Status {
		case session.StatusCompleted:
			status = ui.Green(sess.Status)
		case session.StatusLive:
			status = ui.Blue(sess.Status)
		default:
			status = ui.Yellow(sess.Status)
		}

		builder.WriteString(fmt.Sprintf(
			"%s | %s (%s)\n",
			sess.StartedAt.Format("Jan 02, 2006 03:04 PM"),
			name,
			status,
		))
	}

	return builder.String()
}

// Render writes the full report to the writer.
func (r *Report) Render(w io.Writer) {
	if len(r.Sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	output := fmt.Sprint(
		r.summarySection(),
		r.recentSection(),
		r.techniqueSection(),
		r.historySection(),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))
}
