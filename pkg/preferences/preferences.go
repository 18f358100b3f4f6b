package preferences

import (
	"log/slog"

	"arduinoenv/pkg/parse/properties"
)

// Store reads the IDE's preferences.txt. An absent or unreadable file
// degrades to an empty map so startup never fails on preferences. The
// map is replaced wholesale on Reload, never patched in place.
type Store struct {
	path      string
	values    map[string]string
	malformed int
	loaded    bool
}

// NewStore returns a Store bound to a preferences.txt path. Nothing is
// read until Load.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load parses the file on first call; later calls reuse the cached
// map.
func (s *Store) Load() map[string]string {
	if s.loaded {
		return s.values
	}
	return s.Reload()
}

// Reload re-parses the file, replacing the cached map wholesale.
func (s *Store) Reload() map[string]string {
	result, err := properties.ParseFile(s.path)
	if err != nil {
		slog.Debug("preferences unreadable, using empty map", "path", s.path, "err", err)
	}
	s.values = result.Values
	s.malformed = result.Malformed
	s.loaded = true
	return s.values
}

// Get returns the value for key, or "" when absent.
func (s *Store) Get(key string) string {
	return s.Load()[key]
}

// Lookup returns the value for key and whether it was present.
func (s *Store) Lookup(key string) (string, bool) {
	v, ok := s.Load()[key]
	return v, ok
}

// Len returns the number of loaded preference keys.
func (s *Store) Len() int {
	return len(s.Load())
}

// Malformed returns how many lines the last load skipped for having no
// separator.
func (s *Store) Malformed() int {
	s.Load()
	return s.malformed
}

// Path returns the preferences file location.
func (s *Store) Path() string {
	return s.path
}
