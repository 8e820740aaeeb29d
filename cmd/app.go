package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/etnz/lucro"
	"github.com/etnz/lucro/auth"
	"github.com/etnz/lucro/renderer"
	"github.com/etnz/lucro/storage"
	"github.com/rs/zerolog"
)

// testingNow is the environment variable freezing the clock, for
// documentation tests.
const testingNow = "LCR_TESTING_NOW"

// app is what every command needs: settings, logger, storage and accounts.
type app struct {
	settings *Settings
	log      zerolog.Logger
	storage  storage.Closer
	auth     *auth.Manager
}

// openApp loads the settings and opens the storage.
func openApp() (*app, error) {
	settings, err := LoadSettings(*configFile)
	if err != nil {
		return nil, err
	}
	settings.applyFlags()
	log := newLogger(os.Stderr, settings.LogLevel)

	st, err := storage.Open(settings.Backend, settings.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage in %q: %w", settings.Backend, settings.DataDir, err)
	}
	log.Debug().Str("backend", settings.Backend).Str("dir", settings.DataDir).Msg("storage opened")
	return &app{
		settings: settings,
		log:      log,
		storage:  st,
		auth:     auth.NewManager(st, log, settings.BcryptCost),
	}, nil
}

func (a *app) Close() {
	if err := a.storage.Close(); err != nil {
		a.log.Error().Err(err).Msg("closing storage")
	}
}

// openStore opens the ledger of the connected user.
func (a *app) openStore() (*lucro.Store, error) {
	session, err := a.auth.Current()
	if err != nil {
		return nil, fmt.Errorf("%w: use 'lcr login' or 'lcr register' first", err)
	}
	s, err := lucro.Open(a.storage, session, a.log)
	if err != nil {
		return nil, err
	}
	if now, ok := frozenNow(); ok {
		s.SetClock(func() time.Time { return now })
	}
	return s, nil
}

// frozenNow reads the testing clock from the environment.
func frozenNow() (time.Time, bool) {
	v := os.Getenv(testingNow)
	if v == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(time.DateTime, v, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (a *app) renderOptions() renderer.Options {
	return renderer.Options{Currency: a.settings.Currency}
}

// withStore runs f on the store of the connected user, reporting errors on
// stderr the way every command does.
func withStore(f func(a *app, s *lucro.Store) error) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	s, err := a.openStore()
	if err != nil {
		return err
	}
	return f(a, s)
}
