package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/fonts"
)

// Simple renders clean straight strokes and a plain serif face. It is the
// style to pick when the artwork should carry the card on its own.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderFold(buf *bytes.Buffer, seg layout.Segment) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1" stroke-dasharray="6,6"/>`+"\n",
		seg.X, seg.Y0, seg.X, seg.Y1, foldColor)
}

func (Simple) RenderArtwork(buf *bytes.Buffer, href string, r layout.Rect) {
	fmt.Fprintf(buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="%s" preserveAspectRatio="none"/>`+"\n",
		r.X, r.Y, r.W, r.H, EscapeXML(href))
}

func (Simple) RenderBranding(buf *bytes.Buffer, text string, p layout.Point, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		p.X, p.Y, fonts.SerifFamily, size, inkColor, EscapeXML(text))
}

func (Simple) RenderFlourish(buf *bytes.Buffer, from, to layout.Point) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1.5" stroke-linecap="round"/>`+"\n",
		from.X, from.Y, to.X, to.Y, inkColor)
}

func (Simple) RenderTextLine(buf *bytes.Buffer, text string, x, y, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		x, y, fonts.SerifFamily, size, inkColor, EscapeXML(text))
}

func (Simple) RenderGuide(buf *bytes.Buffer, x0, x1, y float64) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"/>`+"\n",
		x0, y, x1, y, guideColor)
}

func (Simple) RenderTruncationMark(buf *bytes.Buffer, x, y, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">&#8230;</text>`+"\n",
		x, y, fonts.SerifFamily, size, inkColor)
}

// Ensure Simple implements Style.
var _ Style = Simple{}
