package lumen

import (
	"math"

	"github.com/voltexlighting/lumenplan/pkg/errors"
)

// FixtureCount estimates the number of fixtures required to reach the target
// illuminance E (lux) over a length × width floor area using the lumen method:
//
//	N = ceil((E × L × W) / (flux × uf × mf))
//
// flux is the luminous flux of one fixture in lumens, uf the utilization
// factor and mf the maintenance factor. Returns INVALID_PHOTOMETRY when flux,
// uf, or mf is non-positive. E == 0 legitimately yields 0 fixtures; callers
// treat that as a degenerate no-fixtures case rather than an error.
func FixtureCount(e, length, width, flux, uf, mf float64) (int, error) {
	if flux <= 0 || uf <= 0 || mf <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidPhotometry,
			"luminous flux (%g lm), utilization factor (%g) and maintenance factor (%g) must all be greater than 0",
			flux, uf, mf)
	}
	return int(math.Ceil((e * length * width) / (flux * uf * mf))), nil
}

// AdjustedIlluminance reports the illuminance a physically realizable layout
// delivers. The continuous estimate asked for required fixtures; the chosen
// arrangement installs actual fixtures, scaling the target proportionally.
func AdjustedIlluminance(e float64, required, actual int) float64 {
	return e * (float64(actual) / float64(required))
}
