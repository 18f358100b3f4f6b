package settings

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"arduinoenv/pkg/install"
	"arduinoenv/pkg/platform"
	"arduinoenv/pkg/preferences"
	"arduinoenv/pkg/shellfolder"
	"arduinoenv/pkg/tools"
)

// SketchbookKey is the preference that overrides the sketchbook
// location.
const SketchbookKey = "sketchbook.path"

// Failure describes an unusable installation path, surfaced so the
// host can point the user at its settings UI.
type Failure struct {
	Err    error
	Path   string
	Source install.Source
}

// Notifier receives resolution failures that the user must act on.
type Notifier interface {
	ResolutionFailed(ctx context.Context, f Failure)
}

// ArduinoSettings resolves and exposes every path the rest of an
// application needs to invoke an installed Arduino IDE. Construct it
// explicitly with New; there is no process-wide instance. Initialize
// runs the installation resolution exactly once; preferences and the
// tool registry load lazily on first access.
type ArduinoSettings struct {
	os       platform.OS
	profile  platform.Profile
	override string
	prober   install.Prober
	notifier Notifier
	shell    *shellfolder.Resolver
	getenv   func(string) string
	home     func() (string, error)

	initOnce sync.Once
	initErr  error
	root     string
	source   install.Source

	dataOnce          sync.Once
	packagePath       string
	defaultSketchbook string

	prefsOnce sync.Once
	prefs     *preferences.Store

	sketchbookMu  sync.Mutex
	sketchbook    string
	sketchbookSet bool

	scanOnce sync.Once
	scan     *tools.ScanResult
	scanFn   func() *tools.ScanResult
}

// Option configures an ArduinoSettings.
type Option func(*ArduinoSettings)

// WithOS pins the platform instead of detecting it.
func WithOS(os platform.OS) Option {
	return func(s *ArduinoSettings) { s.os = os }
}

// WithOverride sets the explicit installation path from the settings
// store. Non-blank wins over all probing.
func WithOverride(path string) Option {
	return func(s *ArduinoSettings) { s.override = path }
}

// WithProber replaces the default per-OS installation prober.
func WithProber(p install.Prober) Option {
	return func(s *ArduinoSettings) { s.prober = p }
}

// WithNotifier sets the failure notification sink.
func WithNotifier(n Notifier) Option {
	return func(s *ArduinoSettings) { s.notifier = n }
}

// WithShellFolder replaces the Windows shell folder resolver.
func WithShellFolder(r *shellfolder.Resolver) Option {
	return func(s *ArduinoSettings) { s.shell = r }
}

// WithGetenv replaces environment lookups.
func WithGetenv(fn func(string) string) Option {
	return func(s *ArduinoSettings) { s.getenv = fn }
}

// WithHome replaces home directory lookup.
func WithHome(fn func() (string, error)) Option {
	return func(s *ArduinoSettings) { s.home = fn }
}

// WithToolScan replaces the tool scan, for tests.
func WithToolScan(fn func() *tools.ScanResult) Option {
	return func(s *ArduinoSettings) { s.scanFn = fn }
}

// New builds an ArduinoSettings for the current (or pinned) platform.
func New(opts ...Option) (*ArduinoSettings, error) {
	s := &ArduinoSettings{
		getenv: os.Getenv,
		home:   os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.os == "" {
		current, err := platform.Current()
		if err != nil {
			return nil, err
		}
		s.os = current
	}

	profile, err := platform.Lookup(s.os)
	if err != nil {
		return nil, err
	}
	s.profile = profile

	if s.prober == nil {
		prober := install.NewProber(s.os)
		prober.Getenv = s.getenv
		prober.Home = s.home
		s.prober = prober
	}
	if s.shell == nil {
		s.shell = shellfolder.NewResolver()
	}
	if s.scanFn == nil {
		s.scanFn = s.defaultScan
	}
	return s, nil
}

// Initialize resolves the installation path. It runs exactly once;
// every later call returns the first outcome. On failure the notifier
// is told and root-derived getters stay empty.
func (s *ArduinoSettings) Initialize(ctx context.Context) error {
	s.initOnce.Do(func() {
		resolver := &install.Resolver{
			Override: s.override,
			Prober:   s.prober,
			Profile:  s.profile,
		}
		res, err := resolver.Resolve()
		s.source = res.Source
		if err != nil {
			s.initErr = err
			if s.notifier != nil {
				s.notifier.ResolutionFailed(ctx, Failure{
					Err:    err,
					Path:   res.Path,
					Source: res.Source,
				})
			}
		} else {
			s.root = res.Path
		}
		// Data paths depend on the root on Windows (store-variant
		// detection), so fix them now rather than on first access.
		s.resolveDataPaths()
	})
	return s.initErr
}

// OS returns the platform this instance resolves for.
func (s *ArduinoSettings) OS() platform.OS { return s.os }

// Profile returns the platform layout profile.
func (s *ArduinoSettings) Profile() platform.Profile { return s.profile }

// Source reports which resolution step produced the installation path.
func (s *ArduinoSettings) Source() install.Source { return s.source }

// ArduinoPath returns the installation root, or "" before a successful
// Initialize.
func (s *ArduinoSettings) ArduinoPath() string { return s.root }

// CommandPath returns the IDE executable path.
func (s *ArduinoSettings) CommandPath() string { return s.profile.CommandPath(s.root) }

// BuilderPath returns the arduino-builder executable path.
func (s *ArduinoSettings) BuilderPath() string { return s.profile.BuilderPath(s.root) }

// DefaultExamplePath returns the bundled examples directory.
func (s *ArduinoSettings) DefaultExamplePath() string { return s.profile.ExamplesPath(s.root) }

// DefaultPackagePath returns the bundled hardware directory.
func (s *ArduinoSettings) DefaultPackagePath() string { return s.profile.HardwarePath(s.root) }

// DefaultLibPath returns the bundled libraries directory.
func (s *ArduinoSettings) DefaultLibPath() string { return s.profile.LibrariesPath(s.root) }

// PackagePath returns the per-user data directory holding installed
// packages and preferences. Available even when installation
// resolution failed.
func (s *ArduinoSettings) PackagePath() string {
	s.resolveDataPaths()
	return s.packagePath
}

// PreferencePath returns the preferences.txt location.
func (s *ArduinoSettings) PreferencePath() string {
	pkg := s.PackagePath()
	if pkg == "" {
		return ""
	}
	return filepath.Join(pkg, "preferences.txt")
}

// SketchbookPath returns the sketchbook location: the preference
// override when set and non-empty, else the platform default. A
// reload whose fresh map lacks the override keeps the last known
// value.
func (s *ArduinoSettings) SketchbookPath() string {
	s.sketchbookMu.Lock()
	defer s.sketchbookMu.Unlock()
	if !s.sketchbookSet {
		s.sketchbook = s.freshSketchbook()
		s.sketchbookSet = true
	}
	return s.sketchbook
}

func (s *ArduinoSettings) freshSketchbook() string {
	if v := s.Preferences()[SketchbookKey]; v != "" {
		return v
	}
	s.resolveDataPaths()
	return s.defaultSketchbook
}

// Preferences returns the preference map, loading it on first access.
func (s *ArduinoSettings) Preferences() map[string]string {
	return s.prefsStore().Load()
}

// ReloadPreferences re-reads preferences.txt, replacing the map
// wholesale, and refreshes the sketchbook path when the fresh map
// carries a non-empty override. Installation resolution and the tool
// registry are untouched.
func (s *ArduinoSettings) ReloadPreferences() map[string]string {
	prefs := s.prefsStore().Reload()
	s.sketchbookMu.Lock()
	if v := prefs[SketchbookKey]; v != "" {
		s.sketchbook = v
		s.sketchbookSet = true
	}
	s.sketchbookMu.Unlock()
	return prefs
}

// PreferencesMalformed reports lines the last preference load skipped.
func (s *ArduinoSettings) PreferencesMalformed() int {
	return s.prefsStore().Malformed()
}

func (s *ArduinoSettings) prefsStore() *preferences.Store {
	s.prefsOnce.Do(func() {
		s.prefs = preferences.NewStore(s.PreferencePath())
	})
	return s.prefs
}

// ToolRegistry returns the merged tool path registry, scanning on
// first access. The scan is never repeated: new tool installs need a
// fresh process.
func (s *ArduinoSettings) ToolRegistry() *tools.Registry {
	return s.ToolScan().Registry
}

// ToolScan returns the full scan result including absorbed warnings.
func (s *ArduinoSettings) ToolScan() *tools.ScanResult {
	s.scanOnce.Do(func() {
		s.scan = s.scanFn()
	})
	return s.scan
}

func (s *ArduinoSettings) defaultScan() *tools.ScanResult {
	scanner := &tools.Scanner{
		PackagesDir: filepath.Join(s.PackagePath(), "packages"),
	}
	if hardware := s.DefaultPackagePath(); hardware != "" {
		builtin := filepath.Join(hardware, "tools", "avr")
		scanner.BuiltinManifest = filepath.Join(builtin, "builtin_tools_versions.txt")
		scanner.BuiltinToolsDir = builtin
	}
	if s.PackagePath() == "" {
		scanner.PackagesDir = ""
	}
	return scanner.Scan()
}

// resolveDataPaths computes the per-user directories once. On Windows
// the package dir depends on whether the install is a packaged/store
// variant, detected by AppxManifest.xml directly under the root.
func (s *ArduinoSettings) resolveDataPaths() {
	s.dataOnce.Do(func() {
		switch s.os {
		case platform.Linux:
			if home, err := s.home(); err == nil {
				s.packagePath = filepath.Join(home, ".arduino15")
				s.defaultSketchbook = filepath.Join(home, "Arduino")
			}
		case platform.Darwin:
			if home, err := s.home(); err == nil {
				s.packagePath = filepath.Join(home, "Library", "Arduino15")
				s.defaultSketchbook = filepath.Join(home, "Documents", "Arduino")
			}
		case platform.Windows:
			documents := s.shell.Documents()
			if s.root != "" && fileExists(filepath.Join(s.root, "AppxManifest.xml")) {
				s.packagePath = filepath.Join(documents, "ArduinoData")
			} else if local := s.localAppData(); local != "" {
				s.packagePath = filepath.Join(local, "Arduino15")
			}
			s.defaultSketchbook = filepath.Join(documents, "Arduino")
		}
	})
}

func (s *ArduinoSettings) localAppData() string {
	if v := s.getenv("LOCALAPPDATA"); v != "" {
		return v
	}
	home, err := s.home()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "AppData", "Local")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
