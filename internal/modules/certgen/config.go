package certgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RenderConfig holds renderer-wide settings that are deployment concerns
// rather than per-template data: page geometry for PDF output and an
// optional brand font. Loaded once at startup from YAML.
type RenderConfig struct {
	Page struct {
		// Document units (PDF points). Defaults to A4 landscape.
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"page"`

	// FontPath optionally points at a TTF file; when empty the embedded Go
	// Regular face is used so rendering works with zero provisioning.
	FontPath string `yaml:"fontPath"`

	DefaultColor    string `yaml:"defaultColor"`
	DefaultFontSize int    `yaml:"defaultFontSize"`
}

func DefaultRenderConfig() RenderConfig {
	var cfg RenderConfig
	cfg.Page.Width = 841.89
	cfg.Page.Height = 595.28
	cfg.DefaultColor = defaultPrimaryColor
	cfg.DefaultFontSize = defaultFontSize
	return cfg
}

// LoadRenderConfig reads the YAML config at path, filling gaps with
// defaults. A missing file is not an error; the defaults stand.
func LoadRenderConfig(path string) (RenderConfig, error) {
	cfg := DefaultRenderConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read render config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse render config: %w", err)
	}
	if cfg.Page.Width <= 0 {
		cfg.Page.Width = 841.89
	}
	if cfg.Page.Height <= 0 {
		cfg.Page.Height = 595.28
	}
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = defaultPrimaryColor
	}
	if cfg.DefaultFontSize <= 0 {
		cfg.DefaultFontSize = defaultFontSize
	}
	return cfg, nil
}
