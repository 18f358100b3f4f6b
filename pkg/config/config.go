package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"arduinoenv/pkg/driver"
	"arduinoenv/pkg/env"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "ARDUINOENV_CONFIG"

// providerBoostWeight outranks every provider default so a configured
// notify provider always wins selection.
const providerBoostWeight = 100

//go:embed schema.cue
var schemaCue string

// Config is the arduinoenv settings store, read from config.toml.
type Config struct {
	Arduino ArduinoConfig `toml:"arduino"`
	Notify  NotifyConfig  `toml:"notify"`
	History HistoryConfig `toml:"history"`
}

// ArduinoConfig holds installation settings.
type ArduinoConfig struct {
	// Path is the explicit installation root. When non-blank it wins
	// over all probing.
	Path string `toml:"path"`
}

// NotifyConfig selects the notification transport.
type NotifyConfig struct {
	Provider string `toml:"provider"`
}

// HistoryConfig controls the resolution history database.
type HistoryConfig struct {
	Path     string `toml:"path"`
	Disabled bool   `toml:"disabled"`
}

// ArduinoPath returns the installation override with ~ and environment
// variables expanded, or "" when unset.
func (c *Config) ArduinoPath() string {
	if c.Arduino.Path == "" {
		return ""
	}
	return env.ExpandPath(c.Arduino.Path)
}

// Path returns the config file location: $ARDUINOENV_CONFIG when set,
// else <user config dir>/arduinoenv/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "arduinoenv", "config.toml"), nil
}

// LoadFrom reads and validates the config at path. A missing file
// yields defaults.
func LoadFrom(path string) (*Config, error) {
	out := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return out, nil
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := validateRaw(raw); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return out, nil
}

// validateRaw checks the decoded TOML against the embedded CUE schema.
// Definitions are closed, so unknown sections or keys are rejected.
func validateRaw(raw map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCue)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal schema error: %w", err)
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return err
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	return unified.Validate(cue.Concrete(true))
}

var loadOnce = sync.OnceValues(func() (*Config, error) {
	path, err := Path()
	if err != nil {
		return &Config{}, err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return &Config{}, err
	}
	if cfg.Notify.Provider != "" {
		driver.SetWeight(cfg.Notify.Provider, providerBoostWeight)
	}
	return cfg, nil
})

// Load reads the config once per process and applies driver weight
// overrides. Later calls return the same result.
func Load() (*Config, error) {
	return loadOnce()
}

// Get returns the loaded config, falling back to defaults when loading
// failed.
func Get() *Config {
	cfg, err := Load()
	if err != nil || cfg == nil {
		return &Config{}
	}
	return cfg
}
