// Package summary derives aggregate metrics from a session history
// snapshot. Metrics are recomputed on demand and never stored.
//
// Duration follows the wall-clock policy: each session contributes the
// rounded minutes between its start and end times, and a still-live session
// contributes its elapsed time so far. The streak counts completed sessions
// only. The fixed technique-default durations remain available as a
// separate, explicitly named policy and the two are never blended.
package summary

import (
	"time"

	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/internal/timeutil"
)

// Metrics is the derived dashboard summary.
type Metrics struct {
	TotalMinutes int
	Streak       int
	Completed    int
	Abandoned    int
	Live         int
}

// Compute derives all metrics from a session snapshot relative to now.
func Compute(sessions []session.Record, now time.Time) Metrics {
	m := Metrics{
		TotalMinutes: TotalMinutes(sessions, now),
		Streak:       CurrentStreak(sessions, now),
	}

	for i := range sessions {
		switch sessions[i].Status {
		case session.StatusCompleted:
			m.Completed++
		case session.StatusAbandoned:
			m.Abandoned++
		case session.StatusLive:
			m.Live++
		}
	}

	return m
}

// TotalMinutes sums wall-clock session durations in whole minutes across
// all recorded sessions.
func TotalMinutes(sessions []session.Record, now time.Time) int {
	var total int

	for i := range sessions {
		total += sessionMinutes(&sessions[i], now)
	}

	return total
}

func sessionMinutes(sess *session.Record, now time.Time) int {
	mins := timeutil.Round(sess.Duration(now).Minutes())
	if mins < 0 {
		return 0
	}

	return mins
}

// MinutesByTechnique breaks total minutes down per technique key.
func MinutesByTechnique(
	sessions []session.Record,
	now time.Time,
) map[string]int {
	totals := make(map[string]int)

	for i := range sessions {
		sess := &sessions[i]
		totals[sess.TechniqueKey] += sessionMinutes(sess, now)
	}

	return totals
}

// TechniqueDefaultMinutes sums each session's technique default duration,
// ignoring elapsed time. Sessions whose technique is missing from the
// catalog contribute nothing.
func TechniqueDefaultMinutes(sessions []session.Record) int {
	var total int

	for i := range sessions {
		t, ok := technique.GetByKey(technique.Key(sessions[i].TechniqueKey))
		if !ok {
			continue
		}

		total += t.DurationMinutes
	}

	return total
}

// CurrentStreak counts consecutive calendar days with at least one
// completed session, ending today or yesterday. A streak survives a day
// with no session yet, but never starts on one. Day keys come from each
// session's start time in its own location; mixing calendars here would
// produce off-by-one streaks across midnight.
func CurrentStreak(sessions []session.Record, now time.Time) int {
	days := make(map[string]struct{})

	for i := range sessions {
		sess := &sessions[i]
		if sess.Status != session.StatusCompleted {
			continue
		}

		days[timeutil.DayKey(sess.StartedAt)] = struct{}{}
	}

	cursor := now

	// The streak must be anchored on today or, when today has no session
	// yet, on yesterday.
	if _, ok := days[timeutil.DayKey(cursor)]; !ok {
		if _, ok := days[timeutil.PrevDayKey(cursor)]; !ok {
			return 0
		}

		cursor = cursor.AddDate(0, 0, -1)
	}

	var streak int

	for {
		if _, ok := days[timeutil.DayKey(cursor)]; !ok {
			return streak
		}

		streak++

		cursor = cursor.AddDate(0, 0, -1)
	}
}
