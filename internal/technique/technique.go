// Package technique exposes the fixed meditation technique catalog and
// recommends a technique for a mood/goal profile
package technique

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ayoisaiah/stillpoint/internal/apperr"
)

var errEmptyCatalog = &apperr.Error{
	Message: "no techniques available to choose from",
}

// Key uniquely identifies a technique in the catalog.
type Key string

const (
	BoxBreathing Key = "box_breathing"
	BodyScan     Key = "body_scan"
	Mindfulness  Key = "mindfulness"
	LovingKind   Key = "loving_kindness"
	Mantra       Key = "mantra"
	Transcendent Key = "transcendental"
	Zen          Key = "zen"
	YogaNidra    Key = "yoga_nidra"
	NadiShodhana Key = "nadi_shodhana"
)

// Pattern describes one breath cycle. Hold and Cycles are optional and
// omitted from formatted output when zero.
type Pattern struct {
	InhaleSecs int
	HoldSecs   int
	ExhaleSecs int
	Cycles     int
}

// Technique is an immutable catalog entry. Entries are created once at
// process start and never mutated.
type Technique struct {
	Key             Key
	Name            string
	Description     string
	Intention       string
	DurationMinutes int
	Benefits        []string
	Pattern         Pattern
	Cues            []string
}

// Mood is the user's current emotional state.
type Mood string

const (
	MoodStressed Mood = "stressed"
	MoodTired    Mood = "tired"
	MoodRestless Mood = "restless"
)

// Goal is what the user wants to get out of a session.
type Goal string

const (
	GoalCalm     Goal = "calm"
	GoalSleep    Goal = "sleep"
	GoalFocus    Goal = "focus"
	GoalSelfLove Goal = "self_love"
)

// Profile is the transient input to a guru recommendation.
type Profile struct {
	Mood Mood
	Goal Goal
}

// List returns all techniques in catalog order. The order is meaningful for
// display and must be preserved.
func List() []Technique {
	out := make([]Technique, len(catalog))
	copy(out, catalog)

	return out
}

// GetByKey looks up a technique by its key. A miss is a normal outcome
// reported through the second return value.
func GetByKey(key Key) (Technique, bool) {
	for _, t := range catalog {
		if t.Key == key {
			return t, true
		}
	}

	return Technique{}, false
}

// ChooseForProfile recommends a technique for a profile. Goal candidates are
// enqueued before mood candidates so that what the user wants to achieve
// always outranks how they currently feel. The candidate order is a product
// decision and must not be reordered.
func ChooseForProfile(profile Profile) (Technique, error) {
	var candidates []Key

	switch profile.Goal {
	case GoalSleep:
		candidates = append(candidates, BodyScan)
	case GoalFocus:
		candidates = append(candidates, BoxBreathing, Mindfulness)
	case GoalSelfLove:
		candidates = append(candidates, LovingKind)
	default:
		candidates = append(candidates, Mindfulness)
	}

	switch profile.Mood {
	case MoodTired:
		candidates = append(candidates, LovingKind, Mindfulness)
	case MoodRestless:
		candidates = append(candidates, NadiShodhana, BoxBreathing)
	default:
		candidates = append(candidates, BoxBreathing)
	}

	for _, key := range candidates {
		if t, ok := GetByKey(key); ok {
			return t, nil
		}
	}

	return PickRandom()
}

// PickRandom returns a uniformly random technique from the catalog. It fails
// only when the catalog is empty.
func PickRandom() (Technique, error) {
	if len(catalog) == 0 {
		return Technique{}, errEmptyCatalog
	}

	return catalog[rand.Intn(len(catalog))], nil
}

// FormatPattern renders a breath pattern as a human-readable description:
// inhale, optional hold, exhale, and optional cycle count.
func FormatPattern(p Pattern) string {
	parts := []string{fmt.Sprintf("Inhale %ds", p.InhaleSecs)}

	if p.HoldSecs > 0 {
		parts = append(parts, fmt.Sprintf("Hold %ds", p.HoldSecs))
	}

	parts = append(parts, fmt.Sprintf("Exhale %ds", p.ExhaleSecs))

	if p.Cycles > 0 {
		parts = append(parts, fmt.Sprintf("%d cycles", p.Cycles))
	}

	return strings.Join(parts, " • ")
}
