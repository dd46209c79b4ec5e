package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/lumen"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

// Config holds the process-wide calculation tunables. Values apply to every
// command unless overridden by flags; zero values select the pipeline
// defaults.
type Config struct {
	// SHRFactor widens the nominal spacing-to-height ratio for the layout
	// search.
	SHRFactor float64 `toml:"shr_factor"`

	// MinSpacing is the minimum center-to-center fixture distance in meters.
	MinSpacing float64 `toml:"min_spacing"`

	// MaintenanceFactor derates the installation for lumen depreciation.
	MaintenanceFactor float64 `toml:"maintenance_factor"`

	// Reflectances are the default surface reflectances in percent.
	Reflectances lumen.Reflectances `toml:"reflectances"`
}

// DefaultConfig returns the built-in defaults, matching the pipeline's.
func DefaultConfig() Config {
	return Config{
		SHRFactor:         pipeline.DefaultSHRFactor,
		MinSpacing:        pipeline.DefaultMinSpacing,
		MaintenanceFactor: pipeline.DefaultMaintenanceFactor,
		Reflectances:      pipeline.DefaultReflectances,
	}
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// A missing file is not an error; unknown keys are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read config file %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return DefaultConfig(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return DefaultConfig(), errors.New(errors.ErrCodeInvalidFormat,
			"unknown config key %q in %s", undecoded[0].String(), path)
	}
	return cfg, nil
}
