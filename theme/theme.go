// Package theme loads panel presentation settings from TOML files:
// the foreground/background color pair, the font file path, and an
// integer pixel scale for the presentation layer.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gopanel/panel"
)

// ErrBadScale is returned when a theme declares a non-positive scale.
var ErrBadScale = errors.New("theme: scale must be positive")

// Theme holds the presentation settings for a panel.
type Theme struct {
	Foreground panel.Pixel
	Background panel.Pixel
	FontPath   string
	Scale      int
}

// themeFile is the on-disk TOML shape; colors are hex strings.
type themeFile struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	FontPath   string `toml:"font"`
	Scale      int    `toml:"scale"`
}

// Default returns the default theme: black on white at scale 1.
func Default() Theme {
	return Theme{
		Foreground: panel.Black,
		Background: panel.White,
		Scale:      1,
	}
}

// Load reads and parses a theme file. A missing file yields the default
// theme without error.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML theme. Omitted keys keep their defaults; unknown
// keys are ignored.
func Parse(data []byte) (Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Default(), fmt.Errorf("theme: parse: %w", err)
	}

	th := Default()
	if file.Foreground != "" {
		px, err := panel.Hex(file.Foreground)
		if err != nil {
			return Default(), fmt.Errorf("theme: foreground: %w", err)
		}
		th.Foreground = px
	}
	if file.Background != "" {
		px, err := panel.Hex(file.Background)
		if err != nil {
			return Default(), fmt.Errorf("theme: background: %w", err)
		}
		th.Background = px
	}
	th.FontPath = file.FontPath
	if file.Scale != 0 {
		if file.Scale < 0 {
			return Default(), ErrBadScale
		}
		th.Scale = file.Scale
	}
	return th, nil
}
