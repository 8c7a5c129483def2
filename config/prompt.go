package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/stillpoint/internal/technique"
)

const asciiLogo = `
███████╗████████╗██╗██╗     ██╗     ██████╗  ██████╗ ██╗███╗   ██╗████████╗
██╔════╝╚══██╔══╝██║██║     ██║     ██╔══██╗██╔═══██╗██║████╗  ██║╚══██╔══╝
███████╗   ██║   ██║██║     ██║     ██████╔╝██║   ██║██║██╔██╗ ██║   ██║
╚════██║   ██║   ██║██║     ██║     ██╔═══╝ ██║   ██║██║██║╚██╗██║   ██║
███████║   ██║   ██║███████╗███████╗██║     ╚██████╔╝██║██║ ╚████║   ██║
╚══════╝   ╚═╝   ╚═╝╚══════╝╚══════╝╚═╝      ╚═════╝ ╚═╝╚═╝  ╚═══╝   ╚═╝`

// promptOptions holds the user's responses to the configuration prompts.
type promptOptions struct {
	DefaultTechnique string
	Persist          bool
	Notify           bool
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts on first run.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.Session.DefaultTechnique = opts.DefaultTechnique
		c.Session.Persist = opts.Persist
		c.Notification.Enabled = opts.Notify

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (promptOptions, error) {
	opts := promptOptions{
		DefaultTechnique: string(technique.Mindfulness),
		Persist:          true,
		Notify:           true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Stillpoint for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'stillpoint edit-config' to change any settings.`, " ").
		Render()

	var techniqueOpts []huh.Option[string]

	for _, t := range technique.List() {
		label := fmt.Sprintf("%s (%d min)", t.Name, t.DurationMinutes)
		techniqueOpts = append(
			techniqueOpts,
			huh.NewOption(label, string(t.Key)),
		)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default technique").
				Description("Used when you start a session without choosing one").
				Options(techniqueOpts...).
				Value(&opts.DefaultTechnique),
			huh.NewConfirm().
				Title("Save sessions to disk?").
				Description("Disable to keep sessions in memory only").
				Value(&opts.Persist),
			huh.NewConfirm().
				Title("Enable desktop notifications?").
				Value(&opts.Notify),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}
