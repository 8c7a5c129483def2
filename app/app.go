// Package app defines the command-line interface for stillpoint
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stillpoint/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the stillpoint app instance.
func Get() *cli.App {
	stillpointApp := &cli.App{
		Name: "stillpoint",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Stillpoint is a meditation companion for the command-line. Pick a
		technique or describe how you feel and let the guru choose one, then
		follow the guided breathing cues until the session ends.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "techniques",
				Usage:  "List every meditation technique in the catalog",
				Action: techniquesAction,
				Flags: []cli.Flag{
					jsonFlag,
				},
			},
			{
				Name: "guru",
				Usage: `
				Get a technique recommendation for how you feel right now
				without starting a session`,
				Action: guruAction,
				Flags: []cli.Flag{
					moodFlag,
					goalFlag,
					jsonFlag,
				},
			},
			{
				Name:   "list",
				Usage:  "List all the sessions within the specified time period",
				Action: listAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					techniqueFlag,
					jsonFlag,
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults
				to a reporting period of all time`,
				Action: statsAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					techniqueFlag,
					jsonFlag,
				},
			},
			{
				Name:   "delete",
				Usage:  "Permanently delete the sessions within the specified time period",
				Action: deleteAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					techniqueFlag,
				},
			},
		},
		Flags: []cli.Flag{
			techniqueFlag,
			moodFlag,
			goalFlag,
			noPersistFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return stillpointApp
}
