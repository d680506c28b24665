package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/cardfold/pkg/errors"
)

// Typographic constants. The page unit is inches, so point sizes are
// converted through 72 points per unit. Character widths use the same
// width-ratio approximation the renderers draw with, keeping measurement
// and output consistent without shipping font metric tables.
const (
	pointsPerUnit   = 72.0
	lineHeightRatio = 1.4
	charWidthRatio  = 0.55

	// DefaultInset is the horizontal message inset used when a
	// MessageSpec leaves Inset unset.
	DefaultInset = 0.75
)

// FontTier is one of the three named presentation sizes for the inside
// message. Tiers map to fixed point sizes; there is deliberately no
// free-form size input.
type FontTier string

const (
	TierSmall  FontTier = "small"
	TierMedium FontTier = "medium"
	TierLarge  FontTier = "large"
)

// PointSize returns the fixed point size for the tier, or 0 for an
// unrecognized tier.
func (t FontTier) PointSize() float64 {
	switch t {
	case TierSmall:
		return 11
	case TierMedium:
		return 14
	case TierLarge:
		return 18
	}
	return 0
}

// LineHeight returns the tier's line height in page units.
func (t FontTier) LineHeight() float64 {
	return t.PointSize() * lineHeightRatio / pointsPerUnit
}

func (t FontTier) validate() error {
	switch t {
	case TierSmall, TierMedium, TierLarge:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidMessageSpec, "unknown font tier: %q", string(t))
}

// MessageSpec describes the inside-right message. Empty or whitespace-only
// text is valid and yields ruled writing guides instead of a text block.
type MessageSpec struct {
	Text  string   `json:"text"`
	Tier  FontTier `json:"tier"`
	Inset float64  `json:"inset"` // horizontal inset; <= 0 selects DefaultInset
}

func (m MessageSpec) inset() float64 {
	if m.Inset <= 0 {
		return DefaultInset
	}
	return m.Inset
}

// TextBlock is a wrapped, vertically centered message. StartY is relative
// to the panel top; Lines are drawn at StartY, StartY+LineHeight, and so
// on. Truncated reports that lines beyond the panel's capacity were
// dropped; the renderer is expected to surface a truncation mark near the
// bottom margin.
type TextBlock struct {
	Lines      []string `json:"lines"`
	StartY     float64  `json:"start_y"`
	LineHeight float64  `json:"line_height"`
	Truncated  bool     `json:"truncated"`
}

// WritingLines is the fallback content when no message is supplied:
// evenly spaced horizontal guide lines for handwriting. Each guide spans
// [X0, X1] at its y-coordinate.
type WritingLines struct {
	Ys []float64 `json:"ys"`
	X0 float64   `json:"x0"`
	X1 float64   `json:"x1"`
}

// InsideContent holds the inside-right panel content. Exactly one of Text
// and Guides is non-nil.
type InsideContent struct {
	Text   *TextBlock    `json:"text,omitempty"`
	Guides *WritingLines `json:"guides,omitempty"`
}

// TextWidth returns the measured width of s at the given point size, in
// page units.
func TextWidth(s string, pointSize float64) float64 {
	return float64(utf8.RuneCountInString(s)) * pointSize * charWidthRatio / pointsPerUnit
}

// LayoutMessage lays out the inside-right panel.
//
// An unrecognized font tier is rejected before anything is computed.
// Whitespace-only text yields [WritingLines]; otherwise the text is
// wrapped to the panel width minus insets, vertically centered, and
// truncated to the panel's line capacity when too long. Truncation is a
// defined outcome, not an error.
func LayoutMessage(message MessageSpec, panel Rect, opts ...Option) (InsideContent, error) {
	s := newSettings(opts...)

	if err := message.Tier.validate(); err != nil {
		return InsideContent{}, err
	}

	if strings.TrimSpace(message.Text) == "" {
		return InsideContent{Guides: writingGuides(panel, message.inset(), s)}, nil
	}

	pts := message.Tier.PointSize()
	lineHeight := message.Tier.LineHeight()
	maxWidth := panel.W - 2*message.inset()

	lines := wrapText(message.Text, pts, maxWidth)

	availableHeight := panel.H - 2*s.textMargin
	maxLines := int(availableHeight / lineHeight)
	if maxLines < 0 {
		// Panels shorter than the margins hold no lines at all; the whole
		// message is truncated rather than rejected.
		maxLines = 0
	}
	truncated := false
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}

	totalHeight := float64(len(lines)) * lineHeight
	startY := (panel.H - totalHeight) / 2
	if startY < s.textMargin {
		startY = s.textMargin
	}

	return InsideContent{Text: &TextBlock{
		Lines:      lines,
		StartY:     startY,
		LineHeight: lineHeight,
		Truncated:  truncated,
	}}, nil
}

// wrapText breaks text into lines no wider than maxWidth, splitting only
// at whitespace. A single word wider than maxWidth is placed on its own
// line unsplit; hyphenation is deliberately out of scope.
func wrapText(text string, pointSize, maxWidth float64) []string {
	words := strings.Fields(text)
	var lines []string
	var current string

	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current == "" || TextWidth(candidate, pointSize) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// writingGuides computes evenly spaced guide lines between the top and
// bottom guide margins. Deriving the spacing from the panel height keeps
// every guide inside the panel for any page format.
func writingGuides(panel Rect, inset float64, s settings) *WritingLines {
	count := s.guideCount
	if count < 2 {
		count = 2
	}
	margin := s.guideMargin
	if 2*margin >= panel.H {
		// The fixed margin overflows short panels; fall back to a
		// proportional one so the spacing stays positive.
		margin = panel.H / 4
	}
	spacing := (panel.H - 2*margin) / float64(count-1)

	ys := make([]float64, count)
	for i := range ys {
		ys[i] = margin + float64(i)*spacing
	}
	return &WritingLines{
		Ys: ys,
		X0: panel.X + inset,
		X1: panel.X + panel.W - inset,
	}
}
