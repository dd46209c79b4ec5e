package render

import (
	"bytes"
	"fmt"

	"github.com/voltexlighting/lumenplan/pkg/grid"
)

// Canvas dimensions in pixels, and the reserved margins around the scaled
// room: a header band for titles and captions, plus side padding.
const (
	canvasWidth  = 450.0
	canvasHeight = 400.0
	sidePadding  = 20.0
	headerHeight = 80.0
	footerMargin = 40.0
)

// Plan is the input to the schematic renderer: the room footprint and the
// arrangement to draw. A nil Candidate renders the room with a "no valid
// layout" notice, which is how absent parities are presented.
type Plan struct {
	RoomLength float64 // meters
	RoomWidth  float64 // meters
	Candidate  *grid.Candidate
	Title      string
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style Style
	title string
}

// WithStyle overrides the default Simple style.
func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle overrides the plan's title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG draws the schematic for a plan and returns the SVG document.
//
// The room is scaled to fit the canvas preserving aspect ratio and centered
// horizontally below the header. Fixtures sit on a regular grid at the
// candidate's spacing, inset by the edge offsets so the grid is centered in
// the room.
func RenderSVG(p Plan, opts ...SVGOption) []byte {
	r := svgRenderer{style: Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		canvasWidth, canvasHeight, canvasWidth, canvasHeight)

	r.style.RenderDefs(&buf)

	scale := fitScale(p.RoomLength, p.RoomWidth)
	offsetX := (canvasWidth - p.RoomLength*scale) / 2
	offsetY := headerHeight

	title := p.Title
	if r.title != "" {
		title = r.title
	}
	if title != "" {
		r.style.RenderTitle(&buf, canvasWidth/2, 15, title)
	}
	r.style.RenderCaption(&buf, canvasWidth/2, 35,
		fmt.Sprintf("Room: %.1fm (L) x %.1fm (W)", p.RoomLength, p.RoomWidth))

	if c := p.Candidate; c != nil {
		offL, offW := c.EdgeOffsets(p.RoomLength, p.RoomWidth)
		r.style.RenderCaption(&buf, canvasWidth/2, 52,
			fmt.Sprintf("Fixture Spacing: %.2fm (L) x %.2fm (W)", c.SpacingLength, c.SpacingWidth))
		r.style.RenderCaption(&buf, canvasWidth/2, 66,
			fmt.Sprintf("Edge Distance: %.2fm (L) x %.2fm (W)", offL, offW))
	}

	r.style.RenderRoom(&buf, offsetX, offsetY, p.RoomLength*scale, p.RoomWidth*scale)

	if c := p.Candidate; c != nil {
		for _, pos := range c.Positions(p.RoomLength, p.RoomWidth) {
			r.style.RenderFixture(&buf, offsetX+pos[0]*scale, offsetY+pos[1]*scale)
		}
	} else {
		r.style.RenderNotice(&buf, canvasWidth/2, canvasHeight/2, "No valid layout for this configuration")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// fitScale returns the pixels-per-meter factor that fits the room within the
// canvas work area while preserving aspect ratio.
func fitScale(roomLength, roomWidth float64) float64 {
	if roomLength <= 0 || roomWidth <= 0 {
		return 1
	}
	sx := (canvasWidth - 2*sidePadding) / roomLength
	sy := (canvasHeight - headerHeight - footerMargin) / roomWidth
	if sx < sy {
		return sx
	}
	return sy
}
