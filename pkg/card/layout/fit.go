package layout

import "github.com/matzehuels/cardfold/pkg/errors"

// ImageSpec is the intrinsic pixel size of the artwork. Only the aspect
// ratio matters for layout; the actual bitmap never passes through this
// package.
type ImageSpec struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Ratio returns the width/height aspect ratio.
func (s ImageSpec) Ratio() float64 { return s.Width / s.Height }

func (s ImageSpec) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidImageSpec, "image dimensions must be positive, got %gx%g", s.Width, s.Height)
	}
	return nil
}

// ComputeFitRect places an image inside target with "contain" semantics:
// the full image stays visible, its aspect ratio is preserved exactly, and
// it is centered on the unconstrained axis. The result always fills target
// in one dimension and never exceeds it in the other.
//
// Returns an INVALID_IMAGE_SPEC error for non-positive intrinsic
// dimensions.
func ComputeFitRect(image ImageSpec, target Rect) (Rect, error) {
	if err := image.validate(); err != nil {
		return Rect{}, err
	}

	imgRatio := image.Ratio()
	targetRatio := target.W / target.H

	var fit Rect
	if imgRatio > targetRatio {
		// Image is relatively wider: fill the width, center vertically.
		fit.W = target.W
		fit.H = target.W / imgRatio
		fit.X = target.X
		fit.Y = target.Y + (target.H-fit.H)/2
	} else {
		// Image is relatively taller or equal: fill the height, center horizontally.
		fit.H = target.H
		fit.W = target.H * imgRatio
		fit.X = target.X + (target.W-fit.W)/2
		fit.Y = target.Y
	}
	return fit, nil
}
