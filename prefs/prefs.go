// Package prefs loads the dock's rendering preferences once at startup.
// The values map straight onto constructor parameters; nothing rereads the
// file while the dock runs.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"dockbar/render"
)

// AttentionStyle selects how urgency is rendered.
type AttentionStyle int

const (
	AttentionBlink AttentionStyle = iota
	AttentionBadge
)

// Prefs is the on-disk preference file, TOML keys matching field names.
type Prefs struct {
	Indicator     string `toml:"indicator"`      // light, dark, none, bar, circle, square, triangle, diamond, subway
	Background    string `toml:"background"`     // gradient, fill, unity, unity-flat
	Attention     string `toml:"attention"`      // blink, badge
	MultiInd      bool   `toml:"multi_ind"`      // one marker per window
	WorkspaceOnly bool   `toml:"workspace_only"` // count only current-workspace windows
	IconSize      int    `toml:"icon_size"`
	Orientation   string `toml:"orientation"` // up, down, left, right
	ScaleFactor   int    `toml:"scale_factor"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		Indicator:   "light",
		Background:  "gradient",
		Attention:   "blink",
		MultiInd:    true,
		IconSize:    48,
		Orientation: "up",
		ScaleFactor: 1,
	}
}

// ResolvePath picks the prefs file location: explicit flag, then the
// DOCKBAR_PREFS environment variable, then the XDG default.
func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if env := os.Getenv("DOCKBAR_PREFS"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	cfg := os.Getenv("XDG_CONFIG_HOME")
	if cfg == "" {
		cfg = filepath.Join(home, ".config")
	}
	return filepath.Join(cfg, "dockbar", "prefs.toml"), nil
}

// Load reads the prefs file at path, filling in defaults for anything the
// file leaves unset. A missing file is not an error; a malformed one is.
func Load(path string) (Prefs, error) {
	p := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return p, nil
	}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", path, err)
	}
	if p.IconSize < 16 {
		p.IconSize = 16
	}
	if p.ScaleFactor < 1 {
		p.ScaleFactor = 1
	}
	return p, nil
}

// IndicatorStyle returns the parsed indicator selection.
func (p Prefs) IndicatorStyle() render.IndicatorStyle {
	return render.ParseIndicatorStyle(p.Indicator)
}

// BackgroundStyle returns the parsed background selection.
func (p Prefs) BackgroundStyle() render.BackgroundStyle {
	return render.ParseBackgroundStyle(p.Background)
}

// AttentionMode returns the parsed attention selection.
func (p Prefs) AttentionMode() AttentionStyle {
	if p.Attention == "badge" {
		return AttentionBadge
	}
	return AttentionBlink
}

// Orient returns the parsed panel orientation.
func (p Prefs) Orient() render.Orientation {
	return render.ParseOrientation(p.Orientation)
}
