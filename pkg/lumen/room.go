// Package lumen implements the lumen-method formulas used to size a lighting
// installation: room cavity index, mounting height, spacing-to-height ratios,
// fixture count estimation, and adjusted illuminance.
//
// All functions are pure and deterministic. Validation failures are reported
// as structured errors from the errors package; callers can distinguish bad
// geometry (INVALID_GEOMETRY), bad photometric data (INVALID_PHOTOMETRY), and
// raw field errors (INVALID_INPUT).
package lumen

import (
	"math"

	"github.com/voltexlighting/lumenplan/pkg/errors"
)

// Room describes a rectangular room. All dimensions are in meters.
type Room struct {
	Length             float64 `json:"length" toml:"length"`
	Width              float64 `json:"width" toml:"width"`
	Height             float64 `json:"height" toml:"height"`
	WorkingPlaneHeight float64 `json:"working_plane_height" toml:"working_plane_height"`
	SuspensionDistance float64 `json:"suspension_distance" toml:"suspension_distance"`
}

// Validate checks the raw room fields. Dimensions must be positive; the
// suspension distance may be zero (surface-mounted fixtures).
func (r Room) Validate() error {
	if err := errors.ValidatePositive("room length", r.Length); err != nil {
		return err
	}
	if err := errors.ValidatePositive("room width", r.Width); err != nil {
		return err
	}
	if err := errors.ValidatePositive("room height", r.Height); err != nil {
		return err
	}
	if err := errors.ValidatePositive("working plane height", r.WorkingPlaneHeight); err != nil {
		return err
	}
	return errors.ValidateNonNegative("suspension distance", r.SuspensionDistance)
}

// MountingHeight returns the vertical distance from the working plane to the
// fixtures: height - workingPlaneHeight - suspensionDistance. The result may
// be non-positive for degenerate inputs; CavityIndex rejects that case.
func (r Room) MountingHeight() float64 {
	return r.Height - r.WorkingPlaneHeight - r.SuspensionDistance
}

// AspectRatio returns length divided by width.
func (r Room) AspectRatio() float64 {
	return r.Length / r.Width
}

// Area returns the floor area in square meters.
func (r Room) Area() float64 {
	return r.Length * r.Width
}

// CavityIndex computes the room cavity index
//
//	K = (L × W) / (h × (L + W))
//
// where h is the mounting height. Returns INVALID_GEOMETRY when h <= 0.
func (r Room) CavityIndex() (float64, error) {
	h := r.MountingHeight()
	if h <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidGeometry,
			"mounting height must be positive: height %.2fm - working plane %.2fm - suspension %.2fm = %.2fm",
			r.Height, r.WorkingPlaneHeight, r.SuspensionDistance, h)
	}
	return (r.Length * r.Width) / (h * (r.Length + r.Width)), nil
}

// Reflectances holds the surface reflectances in percent, each in [0, 100].
type Reflectances struct {
	Ceiling float64 `json:"ceiling" toml:"ceiling"`
	Walls   float64 `json:"walls" toml:"walls"`
	Floor   float64 `json:"floor" toml:"floor"`
}

// Validate checks that every reflectance lies within [0, 100].
func (r Reflectances) Validate() error {
	if err := errors.ValidateRange("ceiling reflectance", r.Ceiling, 0, 100); err != nil {
		return err
	}
	if err := errors.ValidateRange("walls reflectance", r.Walls, 0, 100); err != nil {
		return err
	}
	return errors.ValidateRange("floor reflectance", r.Floor, 0, 100)
}

// Spacing returns the center-to-center fixture spacing along one room
// dimension. A single fixture spans the full dimension with no internal
// spacing, so for count <= 1 the dimension itself is returned.
func Spacing(dimension float64, count int) float64 {
	if count <= 1 {
		return dimension
	}
	return dimension / float64(count)
}

// SHR returns the spacing-to-height ratio for the given spacing and mounting
// height. A non-positive mounting height yields +Inf, which no finite SHR
// limit can satisfy.
func SHR(spacing, mountingHeight float64) float64 {
	if mountingHeight <= 0 {
		return math.Inf(1)
	}
	return spacing / mountingHeight
}
