// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/stillpoint/internal/technique"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Session      SessionConfig
		Notification NotificationConfig
		Display      DisplayConfig
		System       SystemConfig
	}

	// SessionConfig holds session-related settings.
	SessionConfig struct {
		// DefaultTechnique is used when neither a technique nor a guru
		// profile is given on the command line.
		DefaultTechnique string
		// CueInterval is how long each guidance cue stays on screen.
		CueInterval time.Duration
		// SessionCmd is executed after a session is completed.
		SessionCmd string
		// Persist controls whether sessions are written to the database.
		// When false, everything is kept in memory and lost on exit.
		Persist bool
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool
		TwentyFourHour bool
	}

	// SystemConfig holds system-related settings.
	SystemConfig struct {
		PathToConfig string
		PathToDB     string
		PathToLog    string
		User         string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.2.0"

const defaultUser = "local"

var (
	configDir      = "stillpoint"
	configFileName = "config.yml"
	dbFileName     = "stillpoint.db"
	logFileName    = "stillpoint.log"

	configFilePath string
	dbFilePath     string
	logFilePath    string
)

var (
	cfg  *Config
	once sync.Once
)

// InitializePaths resolves the config and data file locations. A
// STILLPOINT_ENV value isolates the files for testing.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("STILLPOINT_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("stillpoint_%s.db", env)
		logFileName = fmt.Sprintf("stillpoint_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)
	logFilePath = filepath.Join(dataDir, logFileName)
}

func ConfigFilePath() string {
	return configFilePath
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func defaultConfig() *Config {
	return &Config{
		Session: SessionConfig{
			DefaultTechnique: string(technique.Mindfulness),
			CueInterval:      15 * time.Second,
			Persist:          true,
		},
		Notification: NotificationConfig{Enabled: true},
		Display:      DisplayConfig{DarkTheme: true},
		System: SystemConfig{
			PathToConfig: configFilePath,
			PathToDB:     dbFilePath,
			PathToLog:    logFilePath,
			User:         defaultUser,
		},
	}
}

// New builds a Config by applying the given options to the defaults.
func New(opts ...Option) (*Config, error) {
	c := defaultConfig()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) validate() error {
	if _, ok := technique.GetByKey(technique.Key(c.Session.DefaultTechnique)); !ok {
		return errUnknownTechnique.Fmt(c.Session.DefaultTechnique)
	}

	if c.Session.CueInterval < time.Second {
		return errCueIntervalTooShort
	}

	return nil
}

// WithCliOverrides returns an Option that applies command-line flags on top
// of the file configuration.
func WithCliOverrides(ctx *cli.Context) Option {
	return func(c *Config) error {
		if ctx.Bool("no-persist") {
			c.Session.Persist = false
		}

		if ctx.Bool("disable-notification") {
			c.Notification.Enabled = false
		}

		if ctx.String("session-cmd") != "" {
			c.Session.SessionCmd = ctx.String("session-cmd")
		}

		return nil
	}
}

// Get returns the singleton configuration for the process, constructing it
// on first use from the config file, first-run prompts, and command-line
// flags.
func Get(ctx *cli.Context) *Config {
	once.Do(func() {
		InitializePaths()

		c, err := New(
			WithPromptConfig(configFilePath),
			WithViperConfig(configFilePath),
			WithCliOverrides(ctx),
		)
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}

		cfg = c
	})

	return cfg
}
