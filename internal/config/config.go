package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Font is one TTF candidate for a language. Languages may list several
// candidates; the first one whose file exists is used.
type Font struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

// Page contains PDF layout settings.
type Page struct {
	Size     string  `toml:"size"`
	MarginMM float64 `toml:"margin_mm"`
	FontSize float64 `toml:"font_size"`
}

// Config is the on-disk configuration for subpair.
type Config struct {
	ThresholdMS int64             `toml:"threshold_ms"`
	Page        Page              `toml:"page"`
	Fonts       map[string][]Font `toml:"fonts"`
}

// Default returns the built-in configuration used when no config file
// exists.
func Default() Config {
	return Config{
		ThresholdMS: 500,
		Page: Page{
			Size:     "A4",
			MarginMM: 10,
			FontSize: 9,
		},
		Fonts: map[string][]Font{
			"ja": {
				{Name: "IPAexGothic", File: "ipaexg.ttf"},
			},
			"ko": {
				{Name: "NanumGothic", File: "NanumGothic.ttf"},
			},
		},
	}
}

// Threshold returns the configured merge threshold as a duration.
func (c Config) Threshold() time.Duration {
	return time.Duration(c.ThresholdMS) * time.Millisecond
}

// Validate checks the loaded configuration for values the pipeline cannot
// work with.
func (c Config) Validate() error {
	if c.ThresholdMS < 0 {
		return fmt.Errorf("threshold_ms must be >= 0, got %d", c.ThresholdMS)
	}
	if c.Page.MarginMM < 0 {
		return fmt.Errorf("page.margin_mm must be >= 0, got %g", c.Page.MarginMM)
	}
	if c.Page.FontSize <= 0 {
		return fmt.Errorf("page.font_size must be > 0, got %g", c.Page.FontSize)
	}
	for lang, fonts := range c.Fonts {
		for _, font := range fonts {
			if font.File == "" {
				return fmt.Errorf("font for language %q has no file", lang)
			}
		}
	}
	return nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "subpair", "config.toml"), nil
}

// Load reads and validates the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the config from an explicit path, or from the default
// location when path is empty. A missing file at the default location is
// not an error; the built-in defaults apply.
func Resolve(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
