package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	prefsKey  = "theme"
	prefsDir  = ".bike-shop"
	prefsFile = "prefs.yaml"
)

// Store persists the chosen theme.
type Store interface {
	Load() Theme
	Save(t Theme) error
}

// Prefs is a YAML key-value file holding the theme preference.
type Prefs struct {
	path string
	v    *viper.Viper
}

// DefaultPrefsPath is ~/.bike-shop/prefs.yaml, or prefs.yaml in the working
// directory when the home directory is unknown.
func DefaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return prefsFile
	}
	return filepath.Join(home, prefsDir, prefsFile)
}

func NewPrefs(path string) *Prefs {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault(prefsKey, string(Default))
	return &Prefs{path: path, v: v}
}

func (p *Prefs) Path() string {
	return p.path
}

// Load reads the stored theme. A missing or unreadable file and an invalid
// value all yield Default.
func (p *Prefs) Load() Theme {
	if err := p.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).WithField("path", p.path).Warn("Failed to read preferences, using default theme")
		}
		return Default
	}
	return Parse(p.v.GetString(prefsKey))
}

func (p *Prefs) Save(t Theme) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	p.v.Set(prefsKey, t.String())
	if err := p.v.WriteConfigAs(p.path); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// Switcher holds the active theme and writes every change through to store.
type Switcher struct {
	mu      sync.Mutex
	store   Store
	current Theme
}

// NewSwitcher starts from the stored theme.
func NewSwitcher(store Store) *Switcher {
	return &Switcher{store: store, current: store.Load()}
}

func (s *Switcher) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Toggle moves to the next theme and persists it. The in-memory theme
// changes even when the write fails.
func (s *Switcher) Toggle() (Theme, error) {
	s.mu.Lock()
	s.current = s.current.Next()
	next := s.current
	s.mu.Unlock()

	if err := s.store.Save(next); err != nil {
		return next, err
	}
	return next, nil
}

// Set switches to t directly and persists it.
func (s *Switcher) Set(t Theme) error {
	if !t.Valid() {
		t = Default
	}
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()
	return s.store.Save(t)
}
