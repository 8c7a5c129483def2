package app

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/stillpoint/internal/technique"
)

// promptProfile asks for a mood/goal profile when neither was given on the
// command line.
func promptProfile() (technique.Profile, error) {
	var profile technique.Profile

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[technique.Mood]().
				Title("How do you feel right now?").
				Options(
					huh.NewOption("Stressed", technique.MoodStressed),
					huh.NewOption("Tired", technique.MoodTired),
					huh.NewOption("Restless", technique.MoodRestless),
				).
				Value(&profile.Mood),
			huh.NewSelect[technique.Goal]().
				Title("What do you want from this session?").
				Options(
					huh.NewOption("Calm", technique.GoalCalm),
					huh.NewOption("Sleep", technique.GoalSleep),
					huh.NewOption("Focus", technique.GoalFocus),
					huh.NewOption("Self love", technique.GoalSelfLove),
				).
				Value(&profile.Goal),
		),
	)

	err := form.Run()
	if err != nil {
		return profile, err
	}

	return profile, nil
}
