package app

import "github.com/urfave/cli/v2"

var (
	techniqueFlag = &cli.StringFlag{
		Name:    "technique",
		Aliases: []string{"t"},
		Usage:   "Start a session with a specific technique (e.g. box_breathing). Run 'stillpoint techniques' to see all options",
	}

	moodFlag = &cli.StringFlag{
		Name:    "mood",
		Aliases: []string{"m"},
		Usage:   "Tell the guru how you feel right now. Allowed options: stressed, tired, restless",
	}

	goalFlag = &cli.StringFlag{
		Name:    "goal",
		Aliases: []string{"g"},
		Usage:   "Tell the guru what you want from the session. Allowed options: calm, sleep, focus, self_love",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Filter sessions by time period. Allowed options: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Filter sessions from this date onward (e.g. '2024-01-02', '3 days ago')",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Filter sessions up to this date. Defaults to the current time",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	noPersistFlag = &cli.BoolFlag{
		Name:  "no-persist",
		Usage: "Keep the session in memory only. Nothing is written to the database",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
