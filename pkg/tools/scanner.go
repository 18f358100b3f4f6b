package tools

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"arduinoenv/pkg/parse/properties"
)

// Scanner walks the built-in tool manifest and the packages tree,
// producing a merged registry. The traversal order is the override
// policy: manifest records first, then packages, tools and versions in
// directory-enumeration order, so the last scanned version of a name
// owns the unversioned key.
type Scanner struct {
	// BuiltinManifest is the builtin_tools_versions.txt path under the
	// IDE's bundled hardware tree. Optional.
	BuiltinManifest string

	// BuiltinToolsDir is the fixed directory registered for every
	// manifest record.
	BuiltinToolsDir string

	// PackagesDir is <package dir>/packages. Optional.
	PackagesDir string
}

// ScanResult carries the merged registry plus the absorbed failures,
// kept for diagnostics.
type ScanResult struct {
	Registry *Registry

	// Warnings lists recovered problems: unreadable files, malformed
	// manifest records.
	Warnings []string

	// SkippedPackages lists packages that had no tools directory.
	// Expected for library-only packages; they contribute nothing.
	SkippedPackages []string
}

func (r *ScanResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Scan runs both phases in strict sequence and never fails: every
// problem is absorbed into Warnings or SkippedPackages.
func (s *Scanner) Scan() *ScanResult {
	result := &ScanResult{Registry: NewRegistry()}
	s.scanBuiltin(result)
	s.scanPackages(result)
	slog.Debug("tool scan finished",
		"keys", result.Registry.Len(),
		"warnings", len(result.Warnings),
		"skipped_packages", len(result.SkippedPackages))
	return result
}

// scanBuiltin reads pkg.name=version records and registers each name
// at the fixed builtin tools directory. Records without a '.' in the
// key or no '=' at all are skipped, never turned into garbage paths.
func (s *Scanner) scanBuiltin(result *ScanResult) {
	if s.BuiltinManifest == "" {
		return
	}

	file, err := os.Open(s.BuiltinManifest)
	if os.IsNotExist(err) {
		slog.Debug("builtin tool manifest absent", "path", s.BuiltinManifest)
		return
	}
	if err != nil {
		result.warnf("builtin manifest unreadable: %v", err)
		return
	}
	defer file.Close()

	records, err := properties.ParseOrdered(file)
	if err != nil {
		result.warnf("builtin manifest unreadable: %v", err)
		return
	}
	if records.Malformed > 0 {
		result.warnf("builtin manifest: skipped %d line(s) without '='", records.Malformed)
	}

	for _, rec := range records.Pairs {
		_, name, found := strings.Cut(rec.Key, ".")
		if !found || name == "" {
			result.warnf("builtin manifest: skipped record %q (no package prefix)", rec.Key)
			continue
		}
		result.Registry.Register(name, rec.Value, s.BuiltinToolsDir)
	}
}

// scanPackages walks <packages>/<package>/tools/<name>/<version>.
func (s *Scanner) scanPackages(result *ScanResult) {
	if s.PackagesDir == "" {
		return
	}

	packages, err := os.ReadDir(s.PackagesDir)
	if err != nil {
		if !os.IsNotExist(err) {
			result.warnf("packages directory unreadable: %v", err)
		}
		return
	}

	for _, pkg := range packages {
		if !pkg.IsDir() {
			continue
		}

		toolsDir := filepath.Join(s.PackagesDir, pkg.Name(), "tools")
		names, err := os.ReadDir(toolsDir)
		if err != nil {
			if os.IsNotExist(err) {
				result.SkippedPackages = append(result.SkippedPackages, pkg.Name())
			} else {
				result.warnf("package %s: tools directory unreadable: %v", pkg.Name(), err)
			}
			continue
		}

		for _, name := range names {
			if !name.IsDir() {
				continue
			}

			versionsDir := filepath.Join(toolsDir, name.Name())
			versions, err := os.ReadDir(versionsDir)
			if err != nil {
				result.warnf("package %s: tool %s unreadable: %v", pkg.Name(), name.Name(), err)
				continue
			}

			for _, version := range versions {
				if !version.IsDir() {
					continue
				}
				result.Registry.Register(
					name.Name(),
					version.Name(),
					filepath.Join(versionsDir, version.Name()),
				)
			}
		}
	}
}
