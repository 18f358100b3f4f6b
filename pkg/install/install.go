package install

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"arduinoenv/pkg/platform"
)

var (
	// ErrNotFound means no installation path could be obtained from
	// any source.
	ErrNotFound = errors.New("arduino installation not found")

	// ErrInvalidPath means a path was obtained but no IDE executable
	// exists under it. Distinct from ErrNotFound: present-but-wrong
	// rather than absent.
	ErrInvalidPath = errors.New("arduino installation path is invalid")
)

// Source identifies which step of the priority chain produced the
// installation path.
type Source string

const (
	SourceOverride Source = "override"
	SourceProbe    Source = "probe"
	SourceNone     Source = "none"
)

// Prober yields candidate installation directories in priority order.
type Prober interface {
	Candidates() []string
}

// Resolution is the outcome of a resolve: the chosen root and where it
// came from.
type Resolution struct {
	Path   string
	Source Source
}

// Resolver determines the Arduino installation root. The override, when
// non-blank, is used verbatim; otherwise the prober's first existing
// candidate wins. Whatever is found must contain the platform's IDE
// executable.
type Resolver struct {
	Override string
	Prober   Prober
	Profile  platform.Profile
}

// Resolve runs the priority chain. There is no fallback once a source
// yields a path: an override that fails validation does not fall
// through to probing.
func (r *Resolver) Resolve() (Resolution, error) {
	res := r.locate()
	if res.Path == "" {
		return res, ErrNotFound
	}

	command := r.Profile.CommandPath(res.Path)
	if !fileExists(command) {
		return res, fmt.Errorf("%w: no %s under %s", ErrInvalidPath, r.Profile.Command, res.Path)
	}

	slog.Debug("arduino installation resolved", "path", res.Path, "source", res.Source)
	return res, nil
}

func (r *Resolver) locate() Resolution {
	if override := strings.TrimSpace(r.Override); override != "" {
		return Resolution{Path: override, Source: SourceOverride}
	}

	for _, candidate := range r.Prober.Candidates() {
		if dirExists(candidate) {
			return Resolution{Path: candidate, Source: SourceProbe}
		}
	}
	return Resolution{Source: SourceNone}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
