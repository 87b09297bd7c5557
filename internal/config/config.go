package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Starties/calculators/internal/consts"
	"github.com/Starties/calculators/internal/programmer"
	"github.com/Starties/calculators/internal/scientific"
)

const appName = "calcsuite"

// Config represents application configuration
type Config struct {
	AngleMode      string `json:"angle_mode"`      // "deg" or "rad"
	Precision      int    `json:"precision"`       // significant digits in results
	LowerExp       int    `json:"lower_exp"`       // results below 10^lower_exp use scientific notation
	UpperExp       int    `json:"upper_exp"`       // results at or above 10^upper_exp use scientific notation
	MaxDenominator int64  `json:"max_denominator"` // largest denominator the fraction toggle may produce
	DefaultBase    string `json:"default_base"`    // BIN, OCT, DEC or HEX
	LogLevel       string `json:"log_level"`       // debug, info, warn, error, none
	LogPath        string `json:"log_path,omitempty"`
}

func defaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := strings.TrimSpace(os.Getenv("APPDATA")); appData != "" {
			return filepath.Join(appData, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		if configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".config", appName)
	}
}

func defaultStateDir() string {
	switch runtime.GOOS {
	case "linux":
		if stateHome := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, ".local", "state", appName)
	case "windows":
		if localAppData := strings.TrimSpace(os.Getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, appName)
		}
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "AppData", "Local", appName)
	default:
		return defaultConfigDir()
	}
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		AngleMode:      "deg",
		Precision:      consts.DefaultPrecision,
		LowerExp:       consts.DefaultLowerExp,
		UpperExp:       consts.DefaultUpperExp,
		MaxDenominator: consts.DefaultMaxDenominator,
		DefaultBase:    programmer.Dec.String(),
		LogLevel:       "info",
		LogPath:        filepath.Join(defaultStateDir(), appName+".log"),
	}
}

// Load loads configuration from file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	// Unmarshal into default config (overrides only provided fields)
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) fillDefaults() {
	defaults := DefaultConfig()
	if c.AngleMode == "" {
		c.AngleMode = defaults.AngleMode
	}
	if c.Precision == 0 {
		c.Precision = defaults.Precision
	}
	if c.UpperExp == 0 && c.LowerExp == 0 {
		c.LowerExp = defaults.LowerExp
		c.UpperExp = defaults.UpperExp
	}
	if c.MaxDenominator == 0 {
		c.MaxDenominator = defaults.MaxDenominator
	}
	if c.DefaultBase == "" {
		c.DefaultBase = defaults.DefaultBase
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.LogPath == "" {
		c.LogPath = defaults.LogPath
	}
}

// Validate checks the values an engine would otherwise have to guess about
func (c *Config) Validate() error {
	if _, err := scientific.ParseAngleMode(c.AngleMode); err != nil {
		return err
	}
	if c.Precision < 1 || c.Precision > consts.MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d, got %d", consts.MaxPrecision, c.Precision)
	}
	if c.LowerExp >= c.UpperExp {
		return fmt.Errorf("lower_exp (%d) must be below upper_exp (%d)", c.LowerExp, c.UpperExp)
	}
	if c.MaxDenominator < 1 {
		return fmt.Errorf("max_denominator must be positive, got %d", c.MaxDenominator)
	}
	if _, err := programmer.ParseBase(c.DefaultBase); err != nil {
		return err
	}
	return nil
}

// Angle returns the configured angle mode, degrees when unparseable
func (c *Config) Angle() scientific.AngleMode {
	mode, err := scientific.ParseAngleMode(c.AngleMode)
	if err != nil {
		return scientific.Degrees
	}
	return mode
}

// Base returns the configured start-up base, decimal when unparseable
func (c *Config) Base() programmer.Base {
	b, err := programmer.ParseBase(c.DefaultBase)
	if err != nil {
		return programmer.Dec
	}
	return b
}

// FormatOptions returns the result formatting settings
func (c *Config) FormatOptions() scientific.FormatOptions {
	return scientific.FormatOptions{
		Precision:      c.Precision,
		LowerExp:       c.LowerExp,
		UpperExp:       c.UpperExp,
		MaxDenominator: c.MaxDenominator,
	}
}

// Save saves configuration to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigPath returns the default config path
func GetConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.json")
}
