package tools

import "fmt"

// UnversionedKey returns the "current" pointer key for a tool name.
func UnversionedKey(name string) string {
	return fmt.Sprintf("runtime.tools.%s.path", name)
}

// VersionedKey returns the stable per-version key for a tool.
func VersionedKey(name, version string) string {
	return fmt.Sprintf("runtime.tools.%s-%s.path", name, version)
}

// Entry is one (name, version, path) registration, kept in scan order.
type Entry struct {
	Name    string
	Version string
	Path    string
}

// Registry maps runtime.tools.* keys to installed tool directories.
// Every registration sets both the versioned key and the unversioned
// "current" pointer, so a later registration for the same name moves
// the pointer while each version stays independently addressable.
type Registry struct {
	values  map[string]string
	order   []string
	entries []Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{values: map[string]string{}}
}

// Register records a tool version at dir, unconditionally updating
// both key forms.
func (r *Registry) Register(name, version, dir string) {
	r.set(VersionedKey(name, version), dir)
	r.set(UnversionedKey(name), dir)
	r.entries = append(r.entries, Entry{Name: name, Version: version, Path: dir})
}

func (r *Registry) set(key, value string) {
	if _, seen := r.values[key]; !seen {
		r.order = append(r.order, key)
	}
	r.values[key] = value
}

// Lookup returns the path for a full runtime.tools.* key.
func (r *Registry) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Path returns the current pointer for a tool name, or "".
func (r *Registry) Path(name string) string {
	return r.values[UnversionedKey(name)]
}

// VersionedPath returns the path for an exact (name, version), or "".
func (r *Registry) VersionedPath(name, version string) string {
	return r.values[VersionedKey(name, version)]
}

// Keys returns every key in first-registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct keys.
func (r *Registry) Len() int {
	return len(r.values)
}

// Entries returns every registration in scan order, including ones
// whose current pointer was later overridden.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
