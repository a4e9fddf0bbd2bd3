package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/fire-calculator/internal/domain"
)

// Settings holds the per-user defaults applied when a flag is not given.
type Settings struct {
	Defaults DefaultsSettings `toml:"defaults"`
	Output   OutputSettings   `toml:"output"`
}

// DefaultsSettings holds calculator defaults.
type DefaultsSettings struct {
	FireType              string  `toml:"fire_type"`
	ReturnRatePercent     float64 `toml:"return_rate_percent"`
	WithdrawalRatePercent float64 `toml:"withdrawal_rate_percent"`
}

// OutputSettings holds report preferences.
type OutputSettings struct {
	Format   string `toml:"format"`
	Currency string `toml:"currency"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Defaults: DefaultsSettings{
			FireType:              string(domain.FireTraditional),
			ReturnRatePercent:     7,
			WithdrawalRatePercent: 4,
		},
		Output: OutputSettings{
			Format:   "console",
			Currency: "USD",
		},
	}
}

// SettingsDir returns the XDG-compliant settings directory.
func SettingsDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "firecalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "firecalc")
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() string {
	return filepath.Join(SettingsDir(), "config.toml")
}

// LoadSettings reads the settings file at path, returning defaults if it
// doesn't exist. Keys missing from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings: %w", err)
	}
	if _, err := domain.ParseFireType(s.Defaults.FireType); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}

	return s, nil
}

// SaveSettings writes the settings to path, creating its directory.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// SettingsExist reports whether a settings file exists at path.
func SettingsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
