package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stillpoint/config"
	"github.com/ayoisaiah/stillpoint/internal/session"
	"github.com/ayoisaiah/stillpoint/internal/technique"
	"github.com/ayoisaiah/stillpoint/internal/ui"
	"github.com/ayoisaiah/stillpoint/lifecycle"
	"github.com/ayoisaiah/stillpoint/stats"
	"github.com/ayoisaiah/stillpoint/store"
	"github.com/ayoisaiah/stillpoint/timer"
)

const (
	envNoColor           = "NO_COLOR"
	envStillpointNoColor = "STILLPOINT_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// sessionHelper loads the persisted sessions that match the command-line
// filters.
func sessionHelper(ctx *cli.Context) ([]session.Record, store.DB, error) {
	conf := config.Get(ctx)

	filters := config.Filter(ctx)

	db, err := store.NewClient(conf.System.PathToDB)
	if err != nil {
		return nil, nil, err
	}

	all, err := db.ListSessions(conf.System.User)
	if err != nil {
		_ = db.Close()

		return nil, nil, err
	}

	sessions := make([]session.Record, 0, len(all))

	for i := range all {
		if filters.Includes(all[i].StartedAt, all[i].TechniqueKey) {
			sessions = append(sessions, all[i])
		}
	}

	return sessions, db, nil
}

// resolveTechnique determines the technique for a new session from the
// command-line flags. The guru is consulted only when a mood or goal is
// given without an explicit technique.
func resolveTechnique(
	ctx *cli.Context,
	cfg *config.Config,
) (technique.Technique, session.Decision, error) {
	key := strings.TrimSpace(ctx.String("technique"))
	if key != "" {
		t, ok := technique.GetByKey(technique.Key(key))
		if !ok {
			return technique.Technique{}, "", fmt.Errorf(
				"unknown technique: %q",
				key,
			)
		}

		return t, session.DecidedByUser, nil
	}

	mood := strings.TrimSpace(ctx.String("mood"))
	goal := strings.TrimSpace(ctx.String("goal"))

	if mood != "" || goal != "" {
		t, err := technique.ChooseForProfile(technique.Profile{
			Mood: technique.Mood(mood),
			Goal: technique.Goal(goal),
		})
		if err != nil {
			return technique.Technique{}, "", err
		}

		return t, session.DecidedByGuru, nil
	}

	t, _ := technique.GetByKey(technique.Key(cfg.Session.DefaultTechnique))

	return t, session.DecidedByUser, nil
}

// defaultAction starts a new meditation session.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	ui.DarkTheme = cfg.Display.DarkTheme

	var db store.DB

	if cfg.Session.Persist {
		client, err := store.NewClient(cfg.System.PathToDB)
		if err != nil {
			return err
		}

		db = client
	} else {
		db = store.NewMemory()
	}

	defer db.Close()

	engine := lifecycle.New(db)

	tech, decidedBy, err := resolveTechnique(ctx, cfg)
	if err != nil {
		return err
	}

	if decidedBy == session.DecidedByGuru {
		pterm.Info.Printfln(
			"The guru suggests %s: %s",
			ui.Green(tech.Name),
			tech.Intention,
		)
	}

	sess, err := engine.Create(lifecycle.CreateInput{
		UserID:       cfg.System.User,
		TechniqueKey: tech.Key,
		DecidedBy:    decidedBy,
		Goal:         strings.TrimSpace(ctx.String("goal")),
	})
	if err != nil {
		return err
	}

	t := timer.New(engine, cfg, sess, tech)

	p := tea.NewProgram(t)

	_, err = p.Run()

	return err
}

// guruAction recommends a technique for a mood/goal profile without
// starting a session.
func guruAction(ctx *cli.Context) error {
	profile := technique.Profile{
		Mood: technique.Mood(strings.TrimSpace(ctx.String("mood"))),
		Goal: technique.Goal(strings.TrimSpace(ctx.String("goal"))),
	}

	if profile.Mood == "" && profile.Goal == "" && !ctx.Bool("json") {
		var err error

		profile, err = promptProfile()
		if err != nil {
			return err
		}
	}

	tech, err := technique.ChooseForProfile(profile)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(tech)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	printTechnique(os.Stdout, tech)

	return nil
}

// techniquesAction prints the technique catalog.
func techniquesAction(ctx *cli.Context) error {
	if ctx.Bool("json") {
		b, err := json.Marshal(technique.List())
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	printTechniquesTable(os.Stdout, technique.List())

	return nil
}

// listAction handles the list command and prints a table of all the
// sessions started within a time period.
func listAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listSessions(sessions)
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	report := stats.New(sessions, time.Now())

	if ctx.Bool("json") {
		b, err := report.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	report.Render(os.Stdout)

	return nil
}

// deleteAction handles the delete command which deletes one or more
// sessions.
func deleteAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return delSessions(db, sessions)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.Get(ctx)

	cmd := exec.Command(editor, cfg.System.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if STILLPOINT_NO_COLOR is set
	if _, exists := os.LookupEnv(envStillpointNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
