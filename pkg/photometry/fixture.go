// Package photometry holds manufacturer-supplied fixture data: the fixture
// metadata block and the utilization-factor table, including the 2-D
// interpolation (reflectance-combination weighting plus cavity-index
// bracketing) used to look up a utilization factor.
//
// Tables are parsed once at load time into structured, immutable values.
// Reflectance column tags are extracted from their encoded labels
// (e.g. "Rc50_Rw30_Rf10") during parsing and never re-parsed per lookup.
package photometry

import (
	"github.com/voltexlighting/lumenplan/pkg/errors"
)

// DefaultSHRFactor is the multiplier applied to the nominal spacing-to-height
// ratio from the data sheet. The widened ratio is what the layout search
// constrains against.
const DefaultSHRFactor = 1.50

// Fixture is the metadata block describing a single fixture model.
// Parsed once from a table file; immutable for the duration of a calculation.
type Fixture struct {
	Name         string  `json:"name"`
	LuminousFlux float64 `json:"luminous_flux"` // lumens
	Wattage      float64 `json:"wattage"`       // watts
	NominalSHR   float64 `json:"nominal_shr"`   // manufacturer SHRNOM
}

// Validate checks the fixture's photometric fields.
func (f Fixture) Validate() error {
	if f.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "fixture name must not be empty")
	}
	if f.LuminousFlux <= 0 {
		return errors.New(errors.ErrCodeInvalidPhotometry,
			"fixture %q: luminous flux must be greater than 0, got %g lm", f.Name, f.LuminousFlux)
	}
	if f.Wattage <= 0 {
		return errors.New(errors.ErrCodeInvalidPhotometry,
			"fixture %q: wattage must be greater than 0, got %g W", f.Name, f.Wattage)
	}
	if f.NominalSHR <= 0 {
		return errors.New(errors.ErrCodeInvalidPhotometry,
			"fixture %q: nominal spacing-to-height ratio must be greater than 0, got %g", f.Name, f.NominalSHR)
	}
	return nil
}

// ModifiedSHR returns the widened spacing-to-height ratio limit:
// NominalSHR × factor. A non-positive factor falls back to DefaultSHRFactor.
func (f Fixture) ModifiedSHR(factor float64) float64 {
	if factor <= 0 {
		factor = DefaultSHRFactor
	}
	return f.NominalSHR * factor
}
