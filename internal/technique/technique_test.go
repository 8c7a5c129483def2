package technique_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/stillpoint/internal/technique"
)

func TestChooseForProfile(t *testing.T) {
	cases := []struct {
		Name     string
		Profile  technique.Profile
		Expected technique.Key
	}{
		{
			Name: "sleep goal wins regardless of stressed mood",
			Profile: technique.Profile{
				Goal: technique.GoalSleep,
				Mood: technique.MoodStressed,
			},
			Expected: technique.BodyScan,
		},
		{
			Name: "sleep goal wins regardless of tired mood",
			Profile: technique.Profile{
				Goal: technique.GoalSleep,
				Mood: technique.MoodTired,
			},
			Expected: technique.BodyScan,
		},
		{
			Name: "sleep goal wins regardless of restless mood",
			Profile: technique.Profile{
				Goal: technique.GoalSleep,
				Mood: technique.MoodRestless,
			},
			Expected: technique.BodyScan,
		},
		{
			Name: "focus goal outranks restless mood",
			Profile: technique.Profile{
				Goal: technique.GoalFocus,
				Mood: technique.MoodRestless,
			},
			Expected: technique.BoxBreathing,
		},
		{
			Name: "self love goal picks loving kindness",
			Profile: technique.Profile{
				Goal: technique.GoalSelfLove,
				Mood: technique.MoodStressed,
			},
			Expected: technique.LovingKind,
		},
		{
			Name: "calm goal defaults to mindfulness",
			Profile: technique.Profile{
				Goal: technique.GoalCalm,
				Mood: technique.MoodTired,
			},
			Expected: technique.Mindfulness,
		},
		{
			Name:     "empty profile falls back to mindfulness",
			Profile:  technique.Profile{},
			Expected: technique.Mindfulness,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := technique.ChooseForProfile(tc.Profile)
			if err != nil {
				t.Fatal(err)
			}

			if got.Key != tc.Expected {
				t.Errorf(
					"expected technique %q, but got %q",
					tc.Expected,
					got.Key,
				)
			}
		})
	}
}

func TestGetByKey(t *testing.T) {
	cases := []struct {
		Name  string
		Key   technique.Key
		Found bool
	}{
		{Name: "known key", Key: technique.BoxBreathing, Found: true},
		{Name: "unknown key", Key: "not_a_real_key", Found: false},
		{Name: "empty key", Key: "", Found: false},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, ok := technique.GetByKey(tc.Key)
			if ok != tc.Found {
				t.Fatalf("expected found=%t, but got %t", tc.Found, ok)
			}

			if ok && got.Key != tc.Key {
				t.Errorf("expected key %q, but got %q", tc.Key, got.Key)
			}
		})
	}
}

func TestListPreservesCatalogOrder(t *testing.T) {
	expected := []technique.Key{
		technique.BoxBreathing,
		technique.BodyScan,
		technique.Mindfulness,
		technique.LovingKind,
		technique.Mantra,
		technique.Transcendent,
		technique.Zen,
		technique.YogaNidra,
		technique.NadiShodhana,
	}

	var got []technique.Key
	for _, entry := range technique.List() {
		got = append(got, entry.Key)
	}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("catalog order mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPattern(t *testing.T) {
	cases := []struct {
		Name     string
		Pattern  technique.Pattern
		Expected string
	}{
		{
			Name: "full pattern",
			Pattern: technique.Pattern{
				InhaleSecs: 4,
				HoldSecs:   4,
				ExhaleSecs: 4,
				Cycles:     12,
			},
			Expected: "Inhale 4s • Hold 4s • Exhale 4s • 12 cycles",
		},
		{
			Name:     "no hold or cycles",
			Pattern:  technique.Pattern{InhaleSecs: 5, ExhaleSecs: 5},
			Expected: "Inhale 5s • Exhale 5s",
		},
		{
			Name: "hold without cycles",
			Pattern: technique.Pattern{
				InhaleSecs: 4,
				HoldSecs:   2,
				ExhaleSecs: 6,
			},
			Expected: "Inhale 4s • Hold 2s • Exhale 6s",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := technique.FormatPattern(tc.Pattern)
			if got != tc.Expected {
				t.Errorf("expected %q, but got %q", tc.Expected, got)
			}
		})
	}
}

func TestFormatPatternOrdering(t *testing.T) {
	got := technique.FormatPattern(technique.Pattern{
		InhaleSecs: 4,
		HoldSecs:   4,
		ExhaleSecs: 4,
		Cycles:     12,
	})

	order := []string{"Inhale", "Hold", "Exhale", "cycles"}

	last := -1

	for _, word := range order {
		i := strings.Index(got, word)
		if i <= last {
			t.Fatalf("expected %q before the next part in %q", word, got)
		}

		last = i
	}
}
