package pipeline

import (
	"github.com/voltexlighting/lumenplan/pkg/grid"
	"github.com/voltexlighting/lumenplan/pkg/lumen"
)

// Placement is a selected arrangement together with the illuminance it
// actually delivers.
type Placement struct {
	grid.Candidate

	// AdjustedIlluminance is the illuminance the arrangement achieves, in
	// lux: the target scaled by installed over required fixtures.
	AdjustedIlluminance float64 `json:"adjusted_illuminance"`
}

// Result is the outcome of one calculation, created fresh per invocation and
// owned by the caller.
type Result struct {
	// Echo of the validated inputs, for presentation.
	Room         lumen.Room         `json:"room"`
	Reflectances lumen.Reflectances `json:"reflectances"`
	Illuminance  float64            `json:"illuminance"`
	Maintenance  float64            `json:"maintenance_factor"`
	FixtureName  string             `json:"fixture_name"`
	LuminousFlux float64            `json:"luminous_flux"`
	Wattage      float64            `json:"wattage"`
	NominalSHR   float64            `json:"nominal_shr"`
	SHRLimit     float64            `json:"shr_limit"`
	MinSpacing   float64            `json:"min_spacing"`

	// Computed values.
	MountingHeight    float64 `json:"mounting_height"`
	CavityIndex       float64 `json:"cavity_index"`
	UtilizationFactor float64 `json:"utilization_factor"`
	RequiredFixtures  int     `json:"required_fixtures"`

	// Selected arrangements; nil when no qualifying layout of that parity
	// exists, which is a reportable state rather than an error.
	Even *Placement `json:"even,omitempty"`
	Odd  *Placement `json:"odd,omitempty"`
}

// HasLayout reports whether at least one arrangement qualified.
func (r *Result) HasLayout() bool {
	return r.Even != nil || r.Odd != nil
}

// TotalWattage returns the connected load in watts for a placement, derived
// from the fixture wattage recorded in the result.
func (r *Result) TotalWattage(p *Placement) float64 {
	if p == nil {
		return 0
	}
	return float64(p.Fixtures) * r.Wattage
}

// newPlacement wraps a search candidate with its adjusted illuminance.
// A required count of zero has no meaningful scaling, so the target is
// reported unchanged.
func newPlacement(c *grid.Candidate, e float64, required int) *Placement {
	if c == nil {
		return nil
	}
	p := &Placement{Candidate: *c, AdjustedIlluminance: e}
	if required > 0 {
		p.AdjustedIlluminance = lumen.AdjustedIlluminance(e, required, c.Fixtures)
	}
	return p
}
