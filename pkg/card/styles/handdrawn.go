package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/fonts"
)

const (
	wobbleAmp      = 1.6  // maximum jitter per control point, in user units
	wobbleStep     = 34.0 // distance between wobble control points
	flourishCurve  = 0.35 // control-point offset as a fraction of stroke length
	foldDashLength = 7.0
)

// Handdrawn renders strokes with a deterministic pen wobble and a
// handwriting face, matching hand-finished cards. The same seed always
// produces the same paths, so rendered output is reproducible.
type Handdrawn struct {
	seed int64
}

// NewHanddrawn creates the hand-drawn style with the given wobble seed.
func NewHanddrawn(seed int64) Handdrawn {
	return Handdrawn{seed: seed}
}

func (h Handdrawn) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>text { font-family: %s; }</style>\n", fonts.ScriptFallbackFamily)
}

func (h Handdrawn) RenderFold(buf *bytes.Buffer, seg layout.Segment) {
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="%.0f,%.0f"/>`+"\n",
		wobbledLine(seg.X, seg.Y0, seg.X, seg.Y1, h.seed, "fold"), foldColor, foldDashLength, foldDashLength)
}

func (h Handdrawn) RenderArtwork(buf *bytes.Buffer, href string, r layout.Rect) {
	fmt.Fprintf(buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="%s" preserveAspectRatio="none"/>`+"\n",
		r.X, r.Y, r.W, r.H, EscapeXML(href))
	// A wobbled border makes the bitmap sit naturally among the strokes.
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round"/>`+"\n",
		wobbledFrame(r, h.seed), inkColor)
}

func (h Handdrawn) RenderBranding(buf *bytes.Buffer, text string, p layout.Point, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		p.X, p.Y, fonts.ScriptFallbackFamily, size, inkColor, EscapeXML(text))
}

func (h Handdrawn) RenderFlourish(buf *bytes.Buffer, from, to layout.Point) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	// Bow the stroke perpendicular to its direction.
	cx := (from.X+to.X)/2 - dy*flourishCurve
	cy := (from.Y+to.Y)/2 + dx*flourishCurve
	fmt.Fprintf(buf, `  <path d="M%.2f,%.2f Q%.2f,%.2f %.2f,%.2f" fill="none" stroke="%s" stroke-width="1.5" stroke-linecap="round"/>`+"\n",
		from.X, from.Y, cx, cy, to.X, to.Y, inkColor)
}

func (h Handdrawn) RenderTextLine(buf *bytes.Buffer, text string, x, y, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		x, y, fonts.ScriptFallbackFamily, size, inkColor, EscapeXML(text))
}

func (h Handdrawn) RenderGuide(buf *bytes.Buffer, x0, x1, y float64) {
	fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="1" stroke-linecap="round"/>`+"\n",
		wobbledLine(x0, y, x1, y, h.seed, fmt.Sprintf("guide-%.0f", y)), guideColor)
}

func (h Handdrawn) RenderTruncationMark(buf *bytes.Buffer, x, y, size float64) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.1f" fill="%s">&#8230;</text>`+"\n",
		x, y, fonts.ScriptFallbackFamily, size, inkColor)
}

// wobbledLine builds an SVG path from (x1,y1) to (x2,y2) as a chain of
// quadratic beziers with jittered control points. The jitter is seeded by
// both the style seed and the id, so every stroke wobbles differently but
// identically across renders.
func wobbledLine(x1, y1, x2, y2 float64, seed int64, id string) string {
	rng := strokeRand(seed, id)

	dx := x2 - x1
	dy := y2 - y1
	steps := int(math.Hypot(dx, dy) / wobbleStep)
	if steps < 1 {
		steps = 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "M%.2f,%.2f", x1, y1)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		tm := t - 0.5/float64(steps)
		cx := x1 + dx*tm + jitter(rng)
		cy := y1 + dy*tm + jitter(rng)
		px := x1 + dx*t
		py := y1 + dy*t
		if i < steps {
			px += jitter(rng) / 2
			py += jitter(rng) / 2
		}
		fmt.Fprintf(&buf, " Q%.2f,%.2f %.2f,%.2f", cx, cy, px, py)
	}
	return buf.String()
}

// wobbledFrame draws the four edges of r as one closed wobbled path.
func wobbledFrame(r layout.Rect, seed int64) string {
	top := wobbledLine(r.X, r.Y, r.Right(), r.Y, seed, "frame-top")
	right := wobbledLine(r.Right(), r.Y, r.Right(), r.Bottom(), seed, "frame-right")
	bottom := wobbledLine(r.Right(), r.Bottom(), r.X, r.Bottom(), seed, "frame-bottom")
	left := wobbledLine(r.X, r.Bottom(), r.X, r.Y, seed, "frame-left")
	return top + " " + right + " " + bottom + " " + left + " Z"
}

func strokeRand(seed int64, id string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(id))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}

func jitter(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * wobbleAmp
}

// Ensure Handdrawn implements Style.
var _ Style = Handdrawn{}
