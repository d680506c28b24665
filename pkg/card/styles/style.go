// Package styles defines the visual styles used when rendering a card
// layout plan to SVG. A style controls stroke treatment and typography;
// the geometry always comes from the plan and is identical across styles.
package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/matzehuels/cardfold/pkg/card/layout"
)

// Style defines the visual appearance for card rendering. All coordinates
// are in SVG user units (the sink scales the plan's page units by its DPI
// before calling the style).
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, font faces).
	RenderDefs(buf *bytes.Buffer)
	// RenderFold writes the fold line as a dashed vertical guide.
	RenderFold(buf *bytes.Buffer, seg layout.Segment)
	// RenderArtwork places the artwork bitmap into its fit rectangle.
	// href may be a file reference or a data URI.
	RenderArtwork(buf *bytes.Buffer, href string, r layout.Rect)
	// RenderBranding writes the back-panel branding mark.
	RenderBranding(buf *bytes.Buffer, text string, p layout.Point, size float64)
	// RenderFlourish writes one decorative stroke between two anchors.
	RenderFlourish(buf *bytes.Buffer, from, to layout.Point)
	// RenderTextLine writes one line of the inside message, centered at x.
	RenderTextLine(buf *bytes.Buffer, text string, x, y, size float64)
	// RenderGuide writes one horizontal writing guide.
	RenderGuide(buf *bytes.Buffer, x0, x1, y float64)
	// RenderTruncationMark writes the overflow indicator near the bottom
	// margin of the message panel.
	RenderTruncationMark(buf *bytes.Buffer, x, y, size float64)
}

// Ink colors shared by the styles.
const (
	inkColor   = "#2b2b2b"
	guideColor = "#b9c4d4"
	foldColor  = "#c9c9c9"
)

// EscapeXML escapes text for embedding in SVG output.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
