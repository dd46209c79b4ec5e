package photometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/voltexlighting/lumenplan/pkg/errors"
	"github.com/voltexlighting/lumenplan/pkg/lumen"
)

// weightEpsilon keeps the inverse-distance weight finite when a column is an
// exact reflectance match (distance 0).
const weightEpsilon = 1e-9

// Combination tags a table column with the integer ceiling/wall/floor
// reflectance values it represents.
type Combination struct {
	Ceiling int `json:"ceiling"`
	Walls   int `json:"walls"`
	Floor   int `json:"floor"`
}

// Distance returns the L1 distance between the tagged reflectances and the
// requested ones: the sum of absolute per-surface differences.
func (c Combination) Distance(r lumen.Reflectances) float64 {
	return math.Abs(float64(c.Ceiling)-r.Ceiling) +
		math.Abs(float64(c.Walls)-r.Walls) +
		math.Abs(float64(c.Floor)-r.Floor)
}

// String renders the combination in its encoded label form.
func (c Combination) String() string {
	return "Rc" + strconv.Itoa(c.Ceiling) + "_Rw" + strconv.Itoa(c.Walls) + "_Rf" + strconv.Itoa(c.Floor)
}

// ParseCombination extracts reflectance tags from an encoded column label of
// the form "Rc50_Rw30_Rf10". The second return is false when the label does
// not encode a combination; such columns are ignored by the interpolator.
func ParseCombination(label string) (Combination, bool) {
	parts := strings.Split(strings.TrimSpace(label), "_")
	if len(parts) != 3 {
		return Combination{}, false
	}
	ceiling, ok := parseTag(parts[0], "Rc")
	if !ok {
		return Combination{}, false
	}
	walls, ok := parseTag(parts[1], "Rw")
	if !ok {
		return Combination{}, false
	}
	floor, ok := parseTag(parts[2], "Rf")
	if !ok {
		return Combination{}, false
	}
	return Combination{Ceiling: ceiling, Walls: walls, Floor: floor}, true
}

func parseTag(s, prefix string) (int, bool) {
	if !strings.HasPrefix(s, prefix) {
		return 0, false
	}
	v, err := strconv.Atoi(s[len(prefix):])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Column is one reflectance-combination column of a utilization-factor table.
// Values is parallel to the table's cavity-index keys.
type Column struct {
	Label  string      `json:"label"`
	Combo  Combination `json:"combo"`
	Values []float64   `json:"values"`
}

// Table is an immutable utilization-factor table: an ordered set of rows
// keyed by cavity index, with one utilization factor per reflectance
// combination. Construction (NewTable, the CSV loader) performs all cleaning;
// lookups never mutate the table, so a Table is safe for concurrent use.
type Table struct {
	keys []float64
	cols []Column
}

// NewTable builds a table from cavity-index keys and combination columns.
// Rows with duplicate keys are dropped (first occurrence wins), mirroring the
// cleaning the loader applies to raw files. Columns whose value slice does
// not cover every key are rejected.
func NewTable(keys []float64, cols []Column) (*Table, error) {
	seen := make(map[float64]bool, len(keys))
	keep := make([]int, 0, len(keys))
	cleaned := make([]float64, 0, len(keys))
	for i, k := range keys {
		if math.IsNaN(k) || seen[k] {
			continue
		}
		seen[k] = true
		keep = append(keep, i)
		cleaned = append(cleaned, k)
	}

	out := make([]Column, len(cols))
	for i, col := range cols {
		if len(col.Values) != len(keys) {
			return nil, errors.New(errors.ErrCodeMalformedTable,
				"column %q has %d values for %d cavity-index keys", col.Label, len(col.Values), len(keys))
		}
		values := make([]float64, len(keep))
		for j, idx := range keep {
			values[j] = col.Values[idx]
		}
		out[i] = Column{Label: col.Label, Combo: col.Combo, Values: values}
	}

	return &Table{keys: cleaned, cols: out}, nil
}

// Rows returns the number of cavity-index rows after cleaning.
func (t *Table) Rows() int { return len(t.keys) }

// Keys returns a copy of the cavity-index keys in row order.
func (t *Table) Keys() []float64 {
	out := make([]float64, len(t.keys))
	copy(out, t.keys)
	return out
}

// Columns returns the reflectance-combination columns in original order.
func (t *Table) Columns() []Column { return t.cols }

// KRange returns the inclusive cavity-index range covered by the table.
func (t *Table) KRange() (minK, maxK float64) {
	if len(t.keys) == 0 {
		return 0, 0
	}
	minK, maxK = t.keys[0], t.keys[0]
	for _, k := range t.keys[1:] {
		minK = math.Min(minK, k)
		maxK = math.Max(maxK, k)
	}
	return minK, maxK
}

// Interpolate returns the utilization factor for cavity index k and the given
// surface reflectances.
//
// The lookup is two-level. The two columns whose tagged reflectances are
// closest (L1 distance, ties broken by original column order) are each
// interpolated linearly between the rows bracketing k, then combined by
// inverse-distance weighting so an exact reflectance match dominates.
//
// Returns OUT_OF_RANGE when k falls outside the table's inclusive key range
// and MALFORMED_TABLE when the table lacks two tagged columns or any numeric
// keys.
func (t *Table) Interpolate(k float64, refl lumen.Reflectances) (float64, error) {
	if len(t.keys) == 0 {
		return 0, errors.New(errors.ErrCodeMalformedTable, "table has no numeric cavity-index keys")
	}
	if len(t.cols) < 2 {
		return 0, errors.New(errors.ErrCodeMalformedTable,
			"table needs at least two reflectance-combination columns, found %d", len(t.cols))
	}

	minK, maxK := t.KRange()
	if k < minK || k > maxK {
		return 0, errors.New(errors.ErrCodeOutOfRange,
			"room cavity index %.4f outside table range [%.4f, %.4f]", k, minK, maxK)
	}

	first, second := t.closestColumns(refl)

	uf1, err := t.interpolateColumn(first, k)
	if err != nil {
		return 0, err
	}
	uf2, err := t.interpolateColumn(second, k)
	if err != nil {
		return 0, err
	}

	w1 := 1 / (t.cols[first].Combo.Distance(refl) + weightEpsilon)
	w2 := 1 / (t.cols[second].Combo.Distance(refl) + weightEpsilon)
	return (uf1*w1 + uf2*w2) / (w1 + w2), nil
}

// closestColumns returns the indices of the two columns nearest the requested
// reflectances. A strict less-than comparison keeps earlier columns ahead on
// ties, matching the table's original column order.
func (t *Table) closestColumns(refl lumen.Reflectances) (first, second int) {
	first, second = -1, -1
	var bestD, secondD float64
	for i, col := range t.cols {
		d := col.Combo.Distance(refl)
		switch {
		case first == -1 || d < bestD:
			second, secondD = first, bestD
			first, bestD = i, d
		case second == -1 || d < secondD:
			second, secondD = i, d
		}
	}
	return first, second
}

// interpolateColumn linearly interpolates one column's value at cavity index
// k between the bracketing rows. An exact key hit returns the stored value.
func (t *Table) interpolateColumn(col int, k float64) (float64, error) {
	lowerIdx, upperIdx := -1, -1
	for i, key := range t.keys {
		if key <= k && (lowerIdx == -1 || key > t.keys[lowerIdx]) {
			lowerIdx = i
		}
		if key >= k && (upperIdx == -1 || key < t.keys[upperIdx]) {
			upperIdx = i
		}
	}
	if lowerIdx == -1 || upperIdx == -1 {
		// KRange was checked by the caller, so a missing bracket means the
		// keys changed underneath us.
		return 0, errors.New(errors.ErrCodeInternal, "no bracketing rows for cavity index %.4f", k)
	}

	values := t.cols[col].Values
	lowerK, upperK := t.keys[lowerIdx], t.keys[upperIdx]
	if lowerK == upperK {
		return values[lowerIdx], nil
	}
	lower, upper := values[lowerIdx], values[upperIdx]
	return lower + (k-lowerK)*(upper-lower)/(upperK-lowerK), nil
}
