package timeutil_test

import (
	"testing"
	"time"

	"github.com/ayoisaiah/stillpoint/internal/timeutil"
)

func TestDayKey(t *testing.T) {
	cases := []struct {
		in      time.Time
		key     string
		prevKey string
	}{
		{
			in:      time.Date(2024, 1, 3, 7, 30, 0, 0, time.UTC),
			key:     "2024-01-03",
			prevKey: "2024-01-02",
		},
		{
			in:      time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC),
			key:     "2024-03-01",
			prevKey: "2024-02-29",
		},
		{
			in:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			key:     "2024-01-01",
			prevKey: "2023-12-31",
		},
	}

	for _, tc := range cases {
		if got := timeutil.DayKey(tc.in); got != tc.key {
			t.Errorf("DayKey(%v): expected %q, but got %q", tc.in, tc.key, got)
		}

		if got := timeutil.PrevDayKey(tc.in); got != tc.prevKey {
			t.Errorf(
				"PrevDayKey(%v): expected %q, but got %q",
				tc.in,
				tc.prevKey,
				got,
			)
		}
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	mins, secs := timeutil.SecsToMinsAndSecs(605)
	if mins != 10 || secs != 5 {
		t.Errorf("expected 10m5s, but got %dm%ds", mins, secs)
	}

	mins, secs = timeutil.SecsToMinsAndSecs(-3)
	if mins != 0 || secs != 0 {
		t.Errorf("expected negative input to clamp to zero, got %dm%ds", mins, secs)
	}
}
