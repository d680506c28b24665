// Package layout computes the geometry and text layout of a bifold
// greeting card.
//
// A card is printed on two landscape pages that are folded in half along
// the vertical midline. Page 1 carries the back panel (left) and the front
// cover (right); page 2 carries the inside-left and inside-right panels.
// The package turns a page size, the artwork's intrinsic pixel dimensions
// and an optional inside message into a [Plan]: fold segments, an
// aspect-fit placement rectangle for the artwork, anchor points for
// branding and flourish strokes, and either a wrapped text block or a
// ruled writing-line pattern.
//
// All computations are pure functions of their inputs. Nothing here
// performs I/O, touches shared state, or retains values between calls, so
// the package is safe for concurrent use. Coordinates use a single linear
// unit (inches in the shipped page presets) with the origin at the top-left
// corner and y growing downward, matching the SVG sinks that consume plans.
package layout

import "github.com/matzehuels/cardfold/pkg/errors"

// Point is a position on a page.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a vertical line segment, used for fold lines.
type Segment struct {
	X  float64 `json:"x"`
	Y0 float64 `json:"y0"`
	Y1 float64 `json:"y1"`
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether other lies entirely within r, allowing eps of
// floating-point slack on each edge.
func (r Rect) Contains(other Rect, eps float64) bool {
	return other.X >= r.X-eps &&
		other.Y >= r.Y-eps &&
		other.Right() <= r.Right()+eps &&
		other.Bottom() <= r.Bottom()+eps
}

// PageGeometry is the size of one printed page in card units. Width is
// always the long edge: the card is designed to fold along the vertical
// midline, so pages are landscape by construction.
type PageGeometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Shipped page presets, in inches.
var (
	// Letter is a US-letter sheet in landscape orientation.
	Letter = PageGeometry{Width: 11, Height: 8.5}

	// Compact is a smaller sheet for half-size cards.
	Compact = PageGeometry{Width: 8, Height: 6}
)

func (p PageGeometry) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "page dimensions must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.Width <= p.Height {
		return errors.New(errors.ErrCodeInvalidGeometry, "page must be landscape (width > height), got %gx%g", p.Width, p.Height)
	}
	return nil
}

// FoldGeometry is the panel split of a single page. The same geometry
// applies to both pages of a card; they differ only in which content each
// panel receives.
type FoldGeometry struct {
	FoldX float64 `json:"fold_x"`
	Left  Rect    `json:"left"`
	Right Rect    `json:"right"`
}

// ComputeFoldGeometry splits a page at its vertical midline into two
// equal panels. It returns an INVALID_GEOMETRY error unless
// width > height > 0.
func ComputeFoldGeometry(page PageGeometry) (FoldGeometry, error) {
	if err := page.validate(); err != nil {
		return FoldGeometry{}, err
	}
	foldX := page.Width / 2
	return FoldGeometry{
		FoldX: foldX,
		Left:  Rect{X: 0, Y: 0, W: foldX, H: page.Height},
		Right: Rect{X: foldX, Y: 0, W: foldX, H: page.Height},
	}, nil
}

// FoldSegment returns the full-height fold line of the page.
func (g FoldGeometry) FoldSegment() Segment {
	return Segment{X: g.FoldX, Y0: 0, Y1: g.Left.H}
}
