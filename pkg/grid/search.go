package grid

import (
	"sort"

	"github.com/voltexlighting/lumenplan/pkg/lumen"
)

// DefaultMinSpacing is the minimum allowed center-to-center distance between
// fixtures in meters. Process-wide tunable, set once at startup.
const DefaultMinSpacing = 3.0

// searchMargin bounds the enumeration at required+margin fixtures per
// direction. The cutoff is inherited from the field-calibrated tool this
// engine reimplements; widening it changes which layouts are reachable for
// small counts, so it stays fixed.
const searchMargin = 3

// Params configures a layout search.
type Params struct {
	Required       int     // fixture count from the lumen-method estimate
	RoomLength     float64 // meters
	RoomWidth      float64 // meters
	MountingHeight float64 // meters, working plane to fixtures
	SHRLimit       float64 // modified spacing-to-height-ratio limit
	MinSpacing     float64 // meters; 0 falls back to DefaultMinSpacing
}

// Search enumerates candidate rows × columns arrangements for the room and
// returns the best-ranked even-parity and odd-parity candidates.
//
// All (rows, cols) pairs with 1 ≤ rows, cols ≤ Required+3 and
// rows × cols ≥ Required are considered. Each pair is oriented by the room's
// aspect ratio: the larger count runs along the longer dimension. A candidate
// is valid when both directional spacing-to-height ratios are within
// SHRLimit and the minimum-spacing rule holds; a direction holding a single
// fixture has no internal spacing and bypasses the minimum-spacing check.
//
// Surviving candidates are deduplicated by (alongLength, acrossWidth) and
// ranked by |fixtures − Required| ascending, then by total fixtures
// ascending. The best candidate of each parity is selected independently;
// absent parities are nil in the result.
func Search(p Params) Result {
	minSpacing := p.MinSpacing
	if minSpacing == 0 {
		minSpacing = DefaultMinSpacing
	}
	aspect := p.RoomLength / p.RoomWidth

	var candidates []Candidate
	maxDim := p.Required + searchMargin
	for rows := 1; rows <= maxDim; rows++ {
		for cols := 1; cols <= maxDim; cols++ {
			if rows*cols < p.Required {
				continue
			}

			alongLength, acrossWidth := orient(rows, cols, aspect)

			spacingLength := lumen.Spacing(p.RoomLength, alongLength)
			spacingWidth := lumen.Spacing(p.RoomWidth, acrossWidth)
			shrLength := lumen.SHR(spacingLength, p.MountingHeight)
			shrWidth := lumen.SHR(spacingWidth, p.MountingHeight)

			if shrLength > p.SHRLimit || shrWidth > p.SHRLimit {
				continue
			}
			if !spacingValid(alongLength, acrossWidth, spacingLength, spacingWidth, minSpacing) {
				continue
			}

			parity := ParityOdd
			if acrossWidth%2 == 0 {
				parity = ParityEven
			}
			candidates = append(candidates, Candidate{
				AlongLength:   alongLength,
				AcrossWidth:   acrossWidth,
				SpacingLength: spacingLength,
				SpacingWidth:  spacingWidth,
				SHRLength:     shrLength,
				SHRWidth:      shrWidth,
				Fixtures:      alongLength * acrossWidth,
				Parity:        parity,
			})
		}
	}

	return selectBest(candidates, p.Required)
}

// orient assigns the pair to room directions: rooms at least as long as they
// are wide take the larger count along the length, narrower rooms the
// reverse.
func orient(rows, cols int, aspect float64) (alongLength, acrossWidth int) {
	hi, lo := rows, cols
	if cols > rows {
		hi, lo = cols, rows
	}
	if aspect >= 1 {
		return hi, lo
	}
	return lo, hi
}

// spacingValid applies the three-case minimum-spacing rule. A single
// row/column has no internal spacing in that direction, so only the other
// direction is checked (and only when it holds more than one fixture).
func spacingValid(alongLength, acrossWidth int, spacingLength, spacingWidth, minSpacing float64) bool {
	switch {
	case alongLength == 1:
		return acrossWidth == 1 || spacingWidth >= minSpacing
	case acrossWidth == 1:
		return spacingLength >= minSpacing
	default:
		return spacingLength >= minSpacing && spacingWidth >= minSpacing
	}
}

// selectBest deduplicates, ranks, and picks the first candidate of each
// parity.
func selectBest(candidates []Candidate, required int) Result {
	sort.SliceStable(candidates, func(i, j int) bool {
		di := abs(candidates[i].Fixtures - required)
		dj := abs(candidates[j].Fixtures - required)
		if di != dj {
			return di < dj
		}
		return candidates[i].Fixtures < candidates[j].Fixtures
	})

	type key struct{ along, across int }
	seen := make(map[key]bool, len(candidates))
	var result Result
	for i := range candidates {
		c := candidates[i]
		k := key{c.AlongLength, c.AcrossWidth}
		if seen[k] {
			continue
		}
		seen[k] = true

		switch {
		case c.Parity == ParityEven && result.Even == nil:
			result.Even = &candidates[i]
		case c.Parity == ParityOdd && result.Odd == nil:
			result.Odd = &candidates[i]
		}
		if result.Even != nil && result.Odd != nil {
			break
		}
	}
	return result
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
