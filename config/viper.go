package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper
// counterparts.
const (
	keyDefaultTechnique     = "session.default_technique"
	keyCueInterval          = "session.cue_interval"
	keySessionCmd           = "session.cmd"
	keyPersist              = "session.persist"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyUser                 = "system.user"
)

// WithViperConfig returns an Option that loads configuration from Viper,
// writing the defaults out when no config file exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("reading config file failed: %w", err)
		}

		if err := v.WriteConfig(); err != nil {
			return fmt.Errorf("writing default config failed: %w", err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyDefaultTechnique, "mindfulness")
	v.SetDefault(keyCueInterval, "15s")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyPersist, true)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyUser, defaultUser)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	c.Session.DefaultTechnique = v.GetString(keyDefaultTechnique)
	c.Session.SessionCmd = v.GetString(keySessionCmd)
	c.Session.Persist = v.GetBool(keyPersist)
	c.Notification.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.TwentyFourHour = v.GetBool(keyTwentyFourHour)

	if user := v.GetString(keyUser); user != "" {
		c.System.User = user
	}

	interval, err := time.ParseDuration(v.GetString(keyCueInterval))
	if err != nil {
		return fmt.Errorf("parsing cue interval failed: %w", err)
	}

	c.Session.CueInterval = interval

	return nil
}
