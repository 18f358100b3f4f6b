package shellfolder

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrRegistryUnavailable is returned by registry reads on hosts where
// the Windows registry does not exist.
var ErrRegistryUnavailable = errors.New("windows registry unavailable")

// HKCU key holding the user's redirected shell folders.
const (
	userShellFoldersKey = `Software\Microsoft\Windows\CurrentVersion\Explorer\User Shell Folders`
	personalValue       = "Personal"
)

// RegistryReader reads a string value from the current user hive.
type RegistryReader interface {
	ReadString(key, value string) (string, error)
}

// Resolver finds the user's Documents folder. Failures at any step
// degrade to the next one; Documents never returns an error.
type Resolver struct {
	Registry  RegistryReader
	LookupEnv func(string) (string, bool)
	Home      func() (string, error)
}

// NewResolver returns a Resolver backed by the host registry and
// environment.
func NewResolver() *Resolver {
	return &Resolver{
		Registry:  systemRegistry{},
		LookupEnv: os.LookupEnv,
		Home:      os.UserHomeDir,
	}
}

// Documents resolves the user's Documents folder: the registry
// "Personal" shell folder when readable, else <home>/Documents.
// %VAR% tokens in the registry value are expanded from the
// environment.
func (r *Resolver) Documents() string {
	raw, err := r.Registry.ReadString(userShellFoldersKey, personalValue)
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			slog.Debug("shell folder lookup failed, using fallback", "err", err)
		}
		return filepath.Join(r.home(), "Documents")
	}
	return filepath.Clean(Expand(raw, r.LookupEnv))
}

func (r *Resolver) home() string {
	home, err := r.Home()
	if err != nil || strings.TrimSpace(home) == "" {
		return "."
	}
	return home
}

// Expand substitutes %VAR% tokens in s using lookup. Tokens whose
// variable is unset stay literal, matching how Windows expands
// REG_EXPAND_SZ values.
func Expand(s string, lookup func(string) (string, bool)) string {
	var b strings.Builder
	for {
		i := strings.IndexByte(s, '%')
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		j := strings.IndexByte(s[i+1:], '%')
		if j < 0 {
			b.WriteString(s)
			return b.String()
		}

		name := s[i+1 : i+1+j]
		b.WriteString(s[:i])
		if name == "" {
			b.WriteString("%%")
		} else if v, ok := lookup(name); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[i : i+j+2])
		}
		s = s[i+j+2:]
	}
}
