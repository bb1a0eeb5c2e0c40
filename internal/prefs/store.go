package prefs

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Backend is a string key/value store.
type Backend interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context) error
	Close() error
}

// Snapshotter is implemented by backends that can read every key at once.
type Snapshotter interface {
	All(ctx context.Context) (map[string]string, error)
}

// ThemeListener is notified after the display theme is saved.
type ThemeListener func(DisplayTheme)

// Store reads and writes preferences on a best-effort basis: backend errors
// are logged and never returned, so the board keeps running on defaults.
type Store struct {
	backend Backend
	logger  *log.Logger

	mu        sync.Mutex
	listeners map[uint64]ThemeListener
	nextID    uint64
}

// NewStore wraps backend. A nil backend behaves as unavailable storage.
func NewStore(backend Backend, logger *log.Logger) *Store {
	if backend == nil {
		backend = Unavailable()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		backend:   backend,
		logger:    logger,
		listeners: make(map[uint64]ThemeListener),
	}
}

// Load reads every preference. Missing or malformed values keep their
// defaults; the result is always normalized.
func (s *Store) Load(ctx context.Context) Preferences {
	p := Defaults()
	for key, raw := range s.raw(ctx) {
		value, err := ParseValue(key, raw)
		if err != nil {
			s.logger.Debug("ignoring stored preference", "key", key, "value", raw, "error", err)
			continue
		}
		p.apply(key, value)
	}
	return p.Normalize()
}

// Raw returns the stored, unvalidated values.
func (s *Store) Raw(ctx context.Context) map[Key]string {
	return s.raw(ctx)
}

func (s *Store) raw(ctx context.Context) map[Key]string {
	out := make(map[Key]string)

	if snap, ok := s.backend.(Snapshotter); ok {
		all, err := snap.All(ctx)
		if err != nil {
			s.logger.Debug("preference storage unavailable, using defaults", "error", err)
			return out
		}
		for _, key := range Keys() {
			if v, ok := all[string(key)]; ok {
				out[key] = v
			}
		}
		return out
	}

	for _, key := range Keys() {
		v, found, err := s.backend.Get(ctx, string(key))
		if err != nil {
			s.logger.Debug("reading preference failed", "key", key, "error", err)
			continue
		}
		if found {
			out[key] = v
		}
	}
	return out
}

// Save validates and writes a single preference, returning the stored
// encoding. Validation errors are returned; storage errors are not.
func (s *Store) Save(ctx context.Context, key Key, value string) (string, error) {
	normalized, err := ParseValue(key, value)
	if err != nil {
		return "", err
	}

	if err := s.backend.Set(ctx, string(key), normalized); err != nil {
		s.logger.Debug("preference not persisted", "key", key, "error", err)
	} else {
		s.logger.Debug("preference saved", "key", key, "value", normalized)
	}

	if key == KeyTheme {
		s.notifyTheme(DisplayTheme(normalized))
	}
	return normalized, nil
}

// SaveAll writes every field of p.
func (s *Store) SaveAll(ctx context.Context, p Preferences) error {
	p = p.Normalize()
	for _, key := range Keys() {
		if _, err := s.Save(ctx, key, p.Value(key)); err != nil {
			return err
		}
	}
	return nil
}

// ToggleTheme flips the stored display theme and returns the new one.
func (s *Store) ToggleTheme(ctx context.Context) DisplayTheme {
	next := s.Load(ctx).Theme.Toggle()
	_, _ = s.Save(ctx, KeyTheme, string(next))
	return next
}

// Reset clears the whole store and notifies listeners of the default theme.
func (s *Store) Reset(ctx context.Context) {
	if err := s.backend.Clear(ctx); err != nil {
		s.logger.Debug("clearing preferences failed", "error", err)
	}
	s.notifyTheme(Defaults().Theme)
}

// OnThemeChange registers l and returns a function that removes it.
func (s *Store) OnThemeChange(l ThemeListener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) notifyTheme(t DisplayTheme) {
	s.mu.Lock()
	listeners := make([]ThemeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(t)
	}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
