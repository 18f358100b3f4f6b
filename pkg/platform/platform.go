package platform

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// OS identifies an operating system the Arduino IDE ships for.
type OS string

const (
	Linux   OS = "linux"
	Darwin  OS = "darwin"
	Windows OS = "windows"
)

// Current maps runtime.GOOS to a supported OS.
func Current() (OS, error) {
	switch runtime.GOOS {
	case "linux":
		return Linux, nil
	case "darwin":
		return Darwin, nil
	case "windows":
		return Windows, nil
	}
	return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}

// Profile describes the IDE's on-disk layout relative to the
// installation root. Entries use forward slashes and are joined with
// the root via filepath semantics, so a Profile is usable on any host.
type Profile struct {
	OS OS

	Command   string // IDE executable
	Builder   string // arduino-builder executable
	Examples  string // bundled example sketches
	Hardware  string // bundled hardware/tool tree
	Libraries string // bundled libraries
}

var profiles = map[OS]Profile{
	Linux: {
		OS:        Linux,
		Command:   "arduino",
		Builder:   "arduino-builder",
		Examples:  "examples",
		Hardware:  "hardware",
		Libraries: "libraries",
	},
	Windows: {
		OS:        Windows,
		Command:   "arduino_debug.exe",
		Builder:   "arduino-builder.exe",
		Examples:  "examples",
		Hardware:  "hardware",
		Libraries: "libraries",
	},
	Darwin: {
		OS:        Darwin,
		Command:   "Arduino.app/Contents/MacOS/Arduino",
		Builder:   "Arduino.app/Contents/Java/arduino-builder",
		Examples:  "Arduino.app/Contents/Java/examples",
		Hardware:  "Arduino.app/Contents/Java/hardware",
		Libraries: "Arduino.app/Contents/Java/libraries",
	},
}

// Lookup returns the layout profile for the given OS.
func Lookup(os OS) (Profile, error) {
	p, ok := profiles[os]
	if !ok {
		return Profile{}, fmt.Errorf("unsupported platform: %s", os)
	}
	return p, nil
}

// CommandPath returns the absolute path of the IDE executable under root.
func (p Profile) CommandPath(root string) string {
	return join(root, p.Command)
}

// BuilderPath returns the absolute path of the builder executable under root.
func (p Profile) BuilderPath(root string) string {
	return join(root, p.Builder)
}

// ExamplesPath returns the bundled examples directory under root.
func (p Profile) ExamplesPath(root string) string {
	return join(root, p.Examples)
}

// HardwarePath returns the bundled hardware directory under root.
func (p Profile) HardwarePath(root string) string {
	return join(root, p.Hardware)
}

// LibrariesPath returns the bundled libraries directory under root.
func (p Profile) LibrariesPath(root string) string {
	return join(root, p.Libraries)
}

func join(root, rel string) string {
	if root == "" {
		return ""
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
