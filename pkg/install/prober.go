package install

import (
	"os"
	"path/filepath"

	"arduinoenv/pkg/platform"
)

// EnvInstallPath names the environment variable probed first on every
// platform.
const EnvInstallPath = "ARDUINO_PATH"

// DefaultProber lists the conventional installation directories for an
// OS. Getenv and Home are injectable for tests and default to the
// process environment.
type DefaultProber struct {
	OS     platform.OS
	Getenv func(string) string
	Home   func() (string, error)
}

// NewProber returns a DefaultProber for the given OS backed by the
// host environment.
func NewProber(os_ platform.OS) *DefaultProber {
	return &DefaultProber{
		OS:     os_,
		Getenv: os.Getenv,
		Home:   os.UserHomeDir,
	}
}

// Candidates returns candidate roots in priority order: ARDUINO_PATH
// first, then the conventional directories for the OS. On darwin a
// directory qualifies only if it holds an Arduino.app bundle, since
// the root is the bundle's parent.
func (p *DefaultProber) Candidates() []string {
	var out []string
	if env := p.Getenv(EnvInstallPath); env != "" {
		out = append(out, env)
	}

	switch p.OS {
	case platform.Linux:
		out = append(out,
			"/usr/local/share/arduino",
			"/usr/share/arduino",
			"/opt/arduino",
		)
		if home, err := p.Home(); err == nil {
			out = append(out, filepath.Join(home, "arduino"))
		}
	case platform.Windows:
		for _, envName := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if dir := p.Getenv(envName); dir != "" {
				out = append(out, filepath.Join(dir, "Arduino"))
			}
		}
		if dir := p.Getenv("LOCALAPPDATA"); dir != "" {
			out = append(out, filepath.Join(dir, "Programs", "Arduino"))
		}
	case platform.Darwin:
		roots := []string{"/Applications"}
		if home, err := p.Home(); err == nil {
			roots = append(roots, filepath.Join(home, "Applications"))
		}
		for _, root := range roots {
			if dirExists(filepath.Join(root, "Arduino.app")) {
				out = append(out, root)
			}
		}
	}
	return out
}
