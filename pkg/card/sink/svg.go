package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/card/styles"
	"github.com/matzehuels/cardfold/pkg/errors"
)

// Page selects which printed sheet of the card to render.
type Page int

const (
	// PageOutside is page 1: back panel left, front cover right.
	PageOutside Page = iota + 1
	// PageInside is page 2: inside-left flourishes, inside-right message.
	PageInside
)

const (
	defaultDPI       = 96.0
	defaultSeed      = 42
	brandingPts      = 10.0
	truncationOffset = 0.5  // units above the bottom edge for the overflow mark
	baselineRatio    = 0.75 // baseline position within a line box
	qrSizeUnits      = 0.8
	qrGapUnits       = 0.15
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	dpi      float64
	artwork  string
	branding string
	shareURL string
}

// WithStyle sets the visual style (default [styles.Handdrawn] with the
// default seed).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithDPI sets the output resolution in SVG user units per page unit.
func WithDPI(dpi float64) SVGOption { return func(r *svgRenderer) { r.dpi = dpi } }

// WithArtwork sets the front-cover artwork reference: a file href or a
// data URI.
func WithArtwork(href string) SVGOption { return func(r *svgRenderer) { r.artwork = href } }

// WithBranding sets the back-panel branding text.
func WithBranding(text string) SVGOption { return func(r *svgRenderer) { r.branding = text } }

// WithShareQR adds a QR code for url next to the branding mark on the
// back panel.
func WithShareQR(url string) SVGOption { return func(r *svgRenderer) { r.shareURL = url } }

// RenderSVG renders one page of the card plan as an SVG document.
func RenderSVG(plan *layout.Plan, page Page, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)

	if page != PageOutside && page != PageInside {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown card page: %d", page)
	}

	w := plan.Page.Width * r.dpi
	h := plan.Page.Height * r.dpi

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white"/>`+"\n", w, h)
	r.style.RenderDefs(&buf)

	switch page {
	case PageOutside:
		if err := r.renderOutside(&buf, plan); err != nil {
			return nil, err
		}
	case PageInside:
		r.renderInside(&buf, plan)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		style: styles.NewHanddrawn(defaultSeed),
		dpi:   defaultDPI,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r *svgRenderer) renderOutside(buf *bytes.Buffer, plan *layout.Plan) error {
	fold := plan.Outside.FoldSegment()
	r.style.RenderFold(buf, r.scaleSegment(fold))

	if r.artwork != "" {
		r.style.RenderArtwork(buf, r.artwork, r.scaleRect(plan.FrontArt))
	}

	if r.branding != "" {
		r.style.RenderBranding(buf, r.branding, r.scalePoint(plan.Branding), r.fontPx(brandingPts))
	}

	if r.shareURL != "" {
		if err := r.renderShareQR(buf, plan); err != nil {
			return err
		}
	}
	return nil
}

func (r *svgRenderer) renderInside(buf *bytes.Buffer, plan *layout.Plan) {
	fold := plan.Inside.FoldSegment()
	r.style.RenderFold(buf, r.scaleSegment(fold))

	// Flourish strokes connect the paired corner anchors.
	r.style.RenderFlourish(buf, r.scalePoint(plan.Flourishes[0]), r.scalePoint(plan.Flourishes[1]))
	r.style.RenderFlourish(buf, r.scalePoint(plan.Flourishes[2]), r.scalePoint(plan.Flourishes[3]))

	panel := plan.Inside.Right
	switch {
	case plan.InsideRight.Text != nil:
		r.renderMessage(buf, panel, plan.InsideRight.Text)
	case plan.InsideRight.Guides != nil:
		for _, y := range plan.InsideRight.Guides.Ys {
			r.style.RenderGuide(buf, plan.InsideRight.Guides.X0*r.dpi, plan.InsideRight.Guides.X1*r.dpi, y*r.dpi)
		}
	}
}

func (r *svgRenderer) renderMessage(buf *bytes.Buffer, panel layout.Rect, block *layout.TextBlock) {
	pts := block.LineHeight / 1.4 * 72 // recover the tier's point size
	cx := panel.CenterX() * r.dpi

	for i, line := range block.Lines {
		baseline := block.StartY + float64(i)*block.LineHeight + block.LineHeight*baselineRatio
		r.style.RenderTextLine(buf, line, cx, baseline*r.dpi, r.fontPx(pts))
	}

	if block.Truncated {
		// The overflow mark sits at a fixed position near the bottom
		// margin, independent of where the last kept line landed.
		y := (panel.H - truncationOffset) * r.dpi
		r.style.RenderTruncationMark(buf, cx, y, r.fontPx(pts))
	}
}

func (r *svgRenderer) renderShareQR(buf *bytes.Buffer, plan *layout.Plan) error {
	png, err := qrcode.Encode(r.shareURL, qrcode.Medium, int(qrSizeUnits*r.dpi))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to encode share QR")
	}

	size := qrSizeUnits * r.dpi
	x := plan.Branding.X * r.dpi
	y := plan.Branding.Y*r.dpi - r.fontPx(brandingPts) - qrGapUnits*r.dpi - size

	href := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	fmt.Fprintf(buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="%s"/>`+"\n", x, y, size, size, href)
	return nil
}

func (r *svgRenderer) fontPx(pts float64) float64 { return pts * r.dpi / 72 }

func (r *svgRenderer) scaleRect(rect layout.Rect) layout.Rect {
	return layout.Rect{X: rect.X * r.dpi, Y: rect.Y * r.dpi, W: rect.W * r.dpi, H: rect.H * r.dpi}
}

func (r *svgRenderer) scalePoint(p layout.Point) layout.Point {
	return layout.Point{X: p.X * r.dpi, Y: p.Y * r.dpi}
}

func (r *svgRenderer) scaleSegment(s layout.Segment) layout.Segment {
	return layout.Segment{X: s.X * r.dpi, Y0: s.Y0 * r.dpi, Y1: s.Y1 * r.dpi}
}
