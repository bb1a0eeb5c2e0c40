package prefs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnavailable is returned by the unavailable backend.
var ErrUnavailable = errors.New("preference storage unavailable")

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Drivers returns the supported backend drivers.
func Drivers() []string {
	return []string{DriverFile, DriverSQLite, DriverMemory}
}

// Options selects and locates a backend.
type Options struct {
	Driver string
	Path   string
}

// Open creates the backend described by opts.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("file backend requires a path")
		}
		return NewFileBackend(opts.Path), nil
	case DriverSQLite:
		return OpenSQLite(ctx, SQLiteConfig{DSN: opts.Path})
	case DriverMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}

// MemoryBackend keeps preferences for the lifetime of the process.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryBackend) All(_ context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryBackend) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	return nil
}

func (m *MemoryBackend) Close() error { return nil }

type unavailable struct{}

// Unavailable returns a backend whose every operation fails.
func Unavailable() Backend { return unavailable{} }

func (unavailable) Get(context.Context, string) (string, bool, error) {
	return "", false, ErrUnavailable
}
func (unavailable) Set(context.Context, string, string) error { return ErrUnavailable }
func (unavailable) Clear(context.Context) error { return ErrUnavailable }
func (unavailable) Close() error { return nil }

// FileBackend stores preferences in a YAML document.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

type fileDocument struct {
	Preferences map[string]string `yaml:"preferences"`
}

// NewFileBackend returns a backend writing to path. The file is created on
// first write.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the preferences file location.
func (f *FileBackend) Path() string { return f.path }

func (f *FileBackend) All(_ context.Context) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileBackend) Get(ctx context.Context, key string) (string, bool, error) {
	all, err := f.All(ctx)
	if err != nil {
		return "", false, err
	}
	v, ok := all[key]
	return v, ok, nil
}

func (f *FileBackend) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value
	return f.write(values)
}

func (f *FileBackend) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing preferences: %w", err)
	}
	return nil
}

func (f *FileBackend) Close() error { return nil }

func (f *FileBackend) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	if doc.Preferences == nil {
		doc.Preferences = map[string]string{}
	}
	return doc.Preferences, nil
}

func (f *FileBackend) write(values map[string]string) error {
	data, err := yaml.Marshal(fileDocument{Preferences: values})
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing preferences: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing preferences: %w", err)
	}
	return nil
}
