package layout

// Layout defaults, in page units.
const (
	defaultGuideCount  = 10
	defaultGuideMargin = 1.25
	defaultTextMargin  = 1.0

	brandingOffsetX = 0.5  // from the back panel's left edge
	brandingOffsetY = 0.4  // up from the page bottom
	flourishInset   = 0.45 // near corner stroke anchor
	flourishSpread  = 0.95 // far corner stroke anchor
)

type settings struct {
	guideCount  int
	guideMargin float64
	textMargin  float64
}

// Option adjusts the engine's presentation knobs. The zero configuration
// matches the printed defaults; options exist so tests and alternative
// page formats can tighten margins without new entry points.
type Option func(*settings)

// WithGuideCount sets the number of writing guide lines (default 10).
func WithGuideCount(n int) Option {
	return func(s *settings) { s.guideCount = n }
}

// WithGuideMargin sets the top and bottom margin of the writing guides.
func WithGuideMargin(m float64) Option {
	return func(s *settings) { s.guideMargin = m }
}

// WithTextMargin sets the top and bottom margin of the message block
// (default 1 page unit).
func WithTextMargin(m float64) Option {
	return func(s *settings) { s.textMargin = m }
}

func newSettings(opts ...Option) settings {
	s := settings{
		guideCount:  defaultGuideCount,
		guideMargin: defaultGuideMargin,
		textMargin:  defaultTextMargin,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Plan is the complete layout of a bifold card: two pages, four panels.
//
// Page 1 (outside) prints the back panel on the left and the front cover
// on the right; page 2 (inside) prints the inside-left and inside-right
// panels. After printing, the sheet folds along each page's vertical
// midline.
//
// A Plan is a value object: built once, never mutated, discarded after the
// renderer consumes it. Identical inputs always produce identical plans.
type Plan struct {
	Page    PageGeometry `json:"page"`
	Outside FoldGeometry `json:"outside"` // page 1: back | front
	Inside  FoldGeometry `json:"inside"`  // page 2: inside-left | inside-right

	// FrontArt is the aspect-fit placement of the artwork on the front
	// cover (the outside right panel).
	FrontArt Rect `json:"front_art"`

	// Branding anchors the back-panel branding mark at a fixed offset
	// from the panel's bottom-left corner.
	Branding Point `json:"branding"`

	// Flourishes are the four inside-left anchor points for decorative
	// strokes: two off the top-left corner, two off the bottom-right.
	Flourishes [4]Point `json:"flourishes"`

	// InsideRight is the message block, or writing guides when no
	// message was supplied.
	InsideRight InsideContent `json:"inside_right"`
}

// BuildPlan assembles the full card layout from a page size, the
// artwork's intrinsic dimensions, and the inside message. All inputs are
// validated before any geometry is computed; on error no partial plan is
// returned.
func BuildPlan(page PageGeometry, image ImageSpec, message MessageSpec, opts ...Option) (*Plan, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	if err := image.validate(); err != nil {
		return nil, err
	}
	if err := message.Tier.validate(); err != nil {
		return nil, err
	}

	outside, err := ComputeFoldGeometry(page)
	if err != nil {
		return nil, err
	}
	frontArt, err := ComputeFitRect(image, outside.Right)
	if err != nil {
		return nil, err
	}

	inside, err := ComputeFoldGeometry(page)
	if err != nil {
		return nil, err
	}
	insideRight, err := LayoutMessage(message, inside.Right, opts...)
	if err != nil {
		return nil, err
	}

	left := inside.Left
	return &Plan{
		Page:     page,
		Outside:  outside,
		Inside:   inside,
		FrontArt: frontArt,
		Branding: Point{
			X: outside.Left.X + brandingOffsetX,
			Y: page.Height - brandingOffsetY,
		},
		Flourishes: [4]Point{
			{X: left.X + flourishInset, Y: flourishInset},
			{X: left.X + flourishSpread, Y: flourishSpread},
			{X: left.Right() - flourishInset, Y: left.H - flourishInset},
			{X: left.Right() - flourishSpread, Y: left.H - flourishSpread},
		},
		InsideRight: insideRight,
	}, nil
}
