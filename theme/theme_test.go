package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopanel/panel"
)

// TestParse tests a fully specified theme.
func TestParse(t *testing.T) {
	th, err := Parse([]byte(`
foreground = "#222222"
background = "#eeddcc"
font = "fonts/geneva14.uf2"
scale = 3
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if th.Foreground != panel.RGB(0x22, 0x22, 0x22) {
		t.Errorf("foreground = %v", th.Foreground)
	}
	if th.Background != panel.RGB(0xee, 0xdd, 0xcc) {
		t.Errorf("background = %v", th.Background)
	}
	if th.FontPath != "fonts/geneva14.uf2" {
		t.Errorf("font path = %q", th.FontPath)
	}
	if th.Scale != 3 {
		t.Errorf("scale = %d, want 3", th.Scale)
	}
}

// TestParseDefaults tests that omitted keys keep the default theme
// values.
func TestParseDefaults(t *testing.T) {
	th, err := Parse([]byte(`scale = 2`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	def := Default()
	if th.Foreground != def.Foreground || th.Background != def.Background {
		t.Error("omitted colors did not keep defaults")
	}
	if th.Scale != 2 {
		t.Errorf("scale = %d, want 2", th.Scale)
	}

	empty, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if empty != def {
		t.Errorf("empty theme = %+v, want defaults", empty)
	}
}

// TestParse_Errors tests rejection of bad colors and scales.
func TestParse_Errors(t *testing.T) {
	if _, err := Parse([]byte(`foreground = "notacolor"`)); err == nil {
		t.Error("bad color accepted")
	}
	if _, err := Parse([]byte(`scale = -1`)); !errors.Is(err, ErrBadScale) {
		t.Errorf("scale -1: err = %v, want ErrBadScale", err)
	}
	if _, err := Parse([]byte(`foreground = 42`)); err == nil {
		t.Error("malformed TOML accepted")
	}
}

// TestLoad tests the file round trip and the missing-file default.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.toml")
	if err := os.WriteFile(path, []byte(`background = "#000"`), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Background != panel.Black {
		t.Errorf("background = %v, want black", th.Background)
	}

	missing, err := Load(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("Load missing: %v", err)
	}
	if missing != Default() {
		t.Errorf("missing file theme = %+v, want defaults", missing)
	}
}
