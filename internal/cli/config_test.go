package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg.SHRFactor != pipeline.DefaultSHRFactor {
		t.Errorf("SHRFactor = %g", cfg.SHRFactor)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
shr_factor = 1.25
min_spacing = 2.5

[reflectances]
ceiling = 70
walls = 50
floor = 20
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SHRFactor != 1.25 {
		t.Errorf("SHRFactor = %g, want 1.25", cfg.SHRFactor)
	}
	if cfg.MinSpacing != 2.5 {
		t.Errorf("MinSpacing = %g, want 2.5", cfg.MinSpacing)
	}
	if cfg.Reflectances.Ceiling != 70 || cfg.Reflectances.Floor != 20 {
		t.Errorf("Reflectances = %+v", cfg.Reflectances)
	}
	// Keys absent from the file keep their defaults.
	if cfg.MaintenanceFactor != pipeline.DefaultMaintenanceFactor {
		t.Errorf("MaintenanceFactor = %g, want default", cfg.MaintenanceFactor)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "shr_faktor = 1.25\n")
	if _, err := LoadConfig(path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for unknown key, got %v", err)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := writeConfig(t, "shr_factor = [broken\n")
	if _, err := LoadConfig(path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT for bad TOML, got %v", err)
	}
}
