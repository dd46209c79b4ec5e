// Package grid enumerates rectangular fixture arrangements for a room and
// selects the best even- and odd-width candidates satisfying the spacing and
// spacing-to-height-ratio constraints.
package grid

// Parity classifies a candidate by whether the across-width fixture count is
// even or odd. Presenting one of each lets the designer pick between a
// center-aisle and a center-row arrangement.
type Parity string

const (
	ParityEven Parity = "even"
	ParityOdd  Parity = "odd"
)

// Candidate is one physically valid rows × columns fixture arrangement.
type Candidate struct {
	AlongLength   int     `json:"along_length"`   // fixtures along the room length
	AcrossWidth   int     `json:"across_width"`   // fixtures across the room width
	SpacingLength float64 `json:"spacing_length"` // meters, center to center
	SpacingWidth  float64 `json:"spacing_width"`  // meters, center to center
	SHRLength     float64 `json:"shr_length"`
	SHRWidth      float64 `json:"shr_width"`
	Fixtures      int     `json:"fixtures"` // AlongLength × AcrossWidth
	Parity        Parity  `json:"parity"`
}

// EdgeOffsets returns the distance from each wall to the first fixture in
// both directions: (dimension − (count−1) × spacing) / 2. Used by renderers
// to place the grid centered in the room.
func (c Candidate) EdgeOffsets(roomLength, roomWidth float64) (alongLength, acrossWidth float64) {
	alongLength = (roomLength - float64(c.AlongLength-1)*c.SpacingLength) / 2
	acrossWidth = (roomWidth - float64(c.AcrossWidth-1)*c.SpacingWidth) / 2
	return alongLength, acrossWidth
}

// Positions returns the fixture center coordinates in room meters, origin at
// a room corner, x along the length and y across the width.
func (c Candidate) Positions(roomLength, roomWidth float64) [][2]float64 {
	offX, offY := c.EdgeOffsets(roomLength, roomWidth)
	out := make([][2]float64, 0, c.Fixtures)
	for col := 0; col < c.AlongLength; col++ {
		for row := 0; row < c.AcrossWidth; row++ {
			out = append(out, [2]float64{
				offX + float64(col)*c.SpacingLength,
				offY + float64(row)*c.SpacingWidth,
			})
		}
	}
	return out
}

// Result holds the selected candidates. Either or both may be nil when no
// qualifying arrangement of that parity exists; that is a normal outcome, not
// an error.
type Result struct {
	Even *Candidate `json:"even,omitempty"`
	Odd  *Candidate `json:"odd,omitempty"`
}

// Empty reports whether the search found no layout of either parity.
func (r Result) Empty() bool {
	return r.Even == nil && r.Odd == nil
}
