package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Simple is the default schematic style: light gray room fill, blue fixture
// dots, black sans-serif text. It matches the plain engineering-sketch look
// of printed lighting reports.
type Simple struct{}

const (
	simpleRoomFill    = "#f0f0f0"
	simpleFixtureFill = "#1f77b4"
	simpleFixtureR    = 5.0
)

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderRoom(buf *bytes.Buffer, x, y, w, h float64) {
	fmt.Fprintf(buf,
		`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black" stroke-width="2"/>`+"\n",
		x, y, w, h, simpleRoomFill)
}

func (Simple) RenderFixture(buf *bytes.Buffer, cx, cy float64) {
	fmt.Fprintf(buf,
		`  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="black" stroke-width="1"/>`+"\n",
		cx, cy, simpleFixtureR, simpleFixtureFill)
}

func (Simple) RenderTitle(buf *bytes.Buffer, cx, y float64, text string) {
	simpleText(buf, cx, y, 12, "bold", "black", text)
}

func (Simple) RenderCaption(buf *bytes.Buffer, cx, y float64, text string) {
	simpleText(buf, cx, y, 9, "normal", "black", text)
}

func (Simple) RenderNotice(buf *bytes.Buffer, cx, cy float64, text string) {
	simpleText(buf, cx, cy, 11, "normal", "red", text)
}

func simpleText(buf *bytes.Buffer, cx, y, size float64, weight, fill, text string) {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" font-weight="%s" fill="%s" text-anchor="middle">%s</text>`+"\n",
		cx, y, size, weight, fill, escaped.String())
}

// Ensure Simple implements Style.
var _ Style = Simple{}
