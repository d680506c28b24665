package sink

import (
	"github.com/matzehuels/cardfold/pkg/card/layout"
	"github.com/matzehuels/cardfold/pkg/render"
)

// RenderPDF renders the full card as a two-page PDF (outside sheet, then
// inside sheet) via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(plan *layout.Plan, opts ...SVGOption) ([]byte, error) {
	outside, err := RenderSVG(plan, PageOutside, opts...)
	if err != nil {
		return nil, err
	}
	inside, err := RenderSVG(plan, PageInside, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(outside, inside)
}
