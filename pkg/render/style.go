// Package render draws fixture-layout schematics: a scaled room outline with
// the fixture grid placed at the candidate's spacing and edge offsets, plus
// titles and a spacing caption. The SVG sink is the primary output; callers
// that want machine-readable output use the io package instead.
package render

import "bytes"

// Style defines the visual appearance for schematic rendering.
// Implementations control how the room, fixtures, and captions are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderRoom writes the room outline rectangle.
	RenderRoom(buf *bytes.Buffer, x, y, w, h float64)
	// RenderFixture writes a single fixture marker centered at (cx, cy).
	RenderFixture(buf *bytes.Buffer, cx, cy float64)
	// RenderTitle writes the heading text centered at (cx, y).
	RenderTitle(buf *bytes.Buffer, cx, y float64, text string)
	// RenderCaption writes a secondary text line centered at (cx, y).
	RenderCaption(buf *bytes.Buffer, cx, y float64, text string)
	// RenderNotice writes the "no valid layout" message centered at (cx, cy).
	RenderNotice(buf *bytes.Buffer, cx, cy float64, text string)
}
