// Package pipeline runs the complete lumen-method calculation for lumenplan.
//
// This package implements the cavity index → utilization factor → fixture
// count → layout search pipeline that can be used by CLI and API components.
// By centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// A calculation consists of four stages:
//
//  1. Cavity index: room geometry reduced to the table lookup key
//  2. Utilization factor: 2-D interpolation over the manufacturer table
//  3. Fixture count: the lumen-method estimate for the target illuminance
//  4. Layout search: best even- and odd-width arrangements within constraints
//
// Every stage is pure and deterministic; a Request is immutable for the
// duration of one calculation and concurrent calculations share nothing.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Calculate(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.RequiredFixtures)
package pipeline

import (
	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/grid"
	"github.com/voltexlighting/lumenplan/pkg/lumen"
	"github.com/voltexlighting/lumenplan/pkg/photometry"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMaintenanceFactor derates for lumen depreciation and dirt
	// accumulation over fixture life.
	DefaultMaintenanceFactor = 0.8

	// DefaultSHRFactor widens the manufacturer's nominal spacing-to-height
	// ratio for the layout search.
	DefaultSHRFactor = photometry.DefaultSHRFactor

	// DefaultMinSpacing is the minimum center-to-center fixture distance in
	// meters.
	DefaultMinSpacing = grid.DefaultMinSpacing
)

// DefaultReflectances are typical commercial-interior surface reflectances.
var DefaultReflectances = lumen.Reflectances{Ceiling: 50, Walls: 30, Floor: 10}

// =============================================================================
// Request
// =============================================================================

// Request is the sole input to one calculation: room geometry, surface
// reflectances, lighting requirements, fixture data, and the tunables that
// constrain the layout search. It is treated as immutable once validated.
type Request struct {
	Room         lumen.Room         `json:"room"`
	Reflectances lumen.Reflectances `json:"reflectances"`

	// Illuminance is the required maintained illuminance in lux.
	Illuminance float64 `json:"illuminance"`

	// MaintenanceFactor is in (0, 1]; 0 selects the default.
	MaintenanceFactor float64 `json:"maintenance_factor,omitempty"`

	Fixture photometry.Fixture `json:"fixture"`
	Table   *photometry.Table  `json:"-"`

	// SHRFactor multiplies the fixture's nominal SHR; 0 selects the default.
	SHRFactor float64 `json:"shr_factor,omitempty"`

	// MinSpacing is the minimum fixture spacing in meters; 0 selects the
	// default.
	MinSpacing float64 `json:"min_spacing,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks all raw fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (r *Request) ValidateAndSetDefaults() error {
	if r.validated {
		return nil
	}

	if r.MaintenanceFactor == 0 {
		r.MaintenanceFactor = DefaultMaintenanceFactor
	}
	if r.SHRFactor == 0 {
		r.SHRFactor = DefaultSHRFactor
	}
	if r.MinSpacing == 0 {
		r.MinSpacing = DefaultMinSpacing
	}

	if err := r.Room.Validate(); err != nil {
		return err
	}
	if err := r.Reflectances.Validate(); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("required illuminance", r.Illuminance); err != nil {
		return err
	}
	if r.MaintenanceFactor <= 0 || r.MaintenanceFactor > 1 {
		return errors.New(errors.ErrCodeInvalidInput,
			"maintenance factor must be in (0, 1], got %g", r.MaintenanceFactor)
	}
	if err := errors.ValidatePositive("spacing-to-height ratio factor", r.SHRFactor); err != nil {
		return err
	}
	if err := errors.ValidatePositive("minimum spacing", r.MinSpacing); err != nil {
		return err
	}
	if err := r.Fixture.Validate(); err != nil {
		return err
	}
	if r.Table == nil {
		return errors.New(errors.ErrCodeMalformedTable, "utilization-factor table is required")
	}

	r.validated = true
	return nil
}

// SHRLimit returns the modified spacing-to-height-ratio limit used by the
// layout search.
func (r *Request) SHRLimit() float64 {
	return r.Fixture.ModifiedSHR(r.SHRFactor)
}
