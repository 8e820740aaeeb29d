package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to a settings file. Defaults to lucro.yaml in the current folder or in $HOME/.config/lucro.")
	dataDir    = flag.String("data-dir", "", "Folder holding the data. Overrides the data_dir setting.")
	backend    = flag.String("backend", "", "Storage backend (file, sqlite). Overrides the backend setting.")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error). Overrides the log_level setting.")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")
)

// Settings are the user preferences of lcr.
type Settings struct {
	DataDir    string `mapstructure:"data_dir"`
	Backend    string `mapstructure:"backend"`
	Currency   string `mapstructure:"currency"`
	LogLevel   string `mapstructure:"log_level"`
	BcryptCost int    `mapstructure:"bcrypt_cost"`
}

// LoadSettings reads the settings from file, or from lucro.yaml when file is
// empty, then from LCR_* environment variables.
//
// A missing lucro.yaml is not an error, every setting has a default.
func LoadSettings(file string) (*Settings, error) {
	v := viper.New()
	home, _ := os.UserHomeDir()
	v.SetDefault("data_dir", filepath.Join(home, ".lucro"))
	v.SetDefault("backend", "file")
	v.SetDefault("currency", "BRL")
	v.SetDefault("log_level", "warn")
	v.SetDefault("bcrypt_cost", 10)

	if file == "" {
		v.SetConfigName("lucro")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "lucro"))
		}
	} else {
		v.SetConfigFile(file)
	}

	// environment overrides, e.g. LCR_BACKEND=sqlite
	v.SetEnvPrefix("LCR")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	s.Currency = strings.ToUpper(s.Currency)
	return &s, nil
}

// applyFlags overrides the settings with the global flags that were set.
func (s *Settings) applyFlags() {
	if *dataDir != "" {
		s.DataDir = *dataDir
	}
	if *backend != "" {
		s.Backend = *backend
	}
	if *logLevel != "" {
		s.LogLevel = *logLevel
	}
}

// newLogger returns a human readable logger writing to w. Unknown levels
// fall back to warn.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().Timestamp().
		Logger()
}
