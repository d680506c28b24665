package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/cardfold/pkg/errors"
)

func TestComputeFitRect(t *testing.T) {
	tests := []struct {
		name   string
		image  ImageSpec
		target Rect
		want   Rect
	}{
		{
			// 2:3 portrait artwork on the letter front panel. The image
			// ratio (0.667) exceeds the panel ratio (0.647), so the fit is
			// width-constrained and centered vertically.
			name:   "portrait art on letter front panel",
			image:  ImageSpec{Width: 1000, Height: 1500},
			target: Rect{X: 5.5, Y: 0, W: 5.5, H: 8.5},
			want:   Rect{X: 5.5, Y: 0.125, W: 5.5, H: 8.25},
		},
		{
			name:   "wide art is width constrained",
			image:  ImageSpec{Width: 2000, Height: 500},
			target: Rect{X: 0, Y: 0, W: 4, H: 4},
			want:   Rect{X: 0, Y: 1.5, W: 4, H: 1},
		},
		{
			name:   "tall art is height constrained",
			image:  ImageSpec{Width: 500, Height: 2000},
			target: Rect{X: 0, Y: 0, W: 4, H: 4},
			want:   Rect{X: 1.5, Y: 0, W: 1, H: 4},
		},
		{
			name:   "matching ratios fill the target",
			image:  ImageSpec{Width: 800, Height: 600},
			target: Rect{X: 1, Y: 1, W: 4, H: 3},
			want:   Rect{X: 1, Y: 1, W: 4, H: 3},
		},
		{
			name:   "square art in offset target",
			image:  ImageSpec{Width: 512, Height: 512},
			target: Rect{X: 2, Y: 1, W: 6, H: 4},
			want:   Rect{X: 3, Y: 1, W: 4, H: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeFitRect(tt.image, tt.target)
			if err != nil {
				t.Fatalf("ComputeFitRect error: %v", err)
			}

			if math.Abs(got.X-tt.want.X) > eps ||
				math.Abs(got.Y-tt.want.Y) > eps ||
				math.Abs(got.W-tt.want.W) > eps ||
				math.Abs(got.H-tt.want.H) > eps {
				t.Errorf("ComputeFitRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The contain guarantee: the fit never exceeds the target, preserves the
// image ratio exactly, and fully fills one target dimension.
func TestComputeFitRect_Properties(t *testing.T) {
	images := []ImageSpec{
		{Width: 1000, Height: 1500},
		{Width: 1500, Height: 1000},
		{Width: 1, Height: 1000},
		{Width: 1000, Height: 1},
		{Width: 333, Height: 333},
	}
	targets := []Rect{
		{X: 0, Y: 0, W: 5.5, H: 8.5},
		{X: 5.5, Y: 0, W: 5.5, H: 8.5},
		{X: 4, Y: 0, W: 4, H: 6},
		{X: 0.25, Y: 0.25, W: 10.5, H: 8},
	}

	for _, img := range images {
		for _, target := range targets {
			fit, err := ComputeFitRect(img, target)
			if err != nil {
				t.Fatalf("ComputeFitRect(%+v, %+v) error: %v", img, target, err)
			}

			if !target.Contains(fit, eps) {
				t.Errorf("fit %+v escapes target %+v", fit, target)
			}

			gotRatio := fit.W / fit.H
			if math.Abs(gotRatio-img.Ratio()) > 1e-6 {
				t.Errorf("fit ratio = %v, want %v (image %+v)", gotRatio, img.Ratio(), img)
			}

			fillsWidth := math.Abs(fit.W-target.W) < eps
			fillsHeight := math.Abs(fit.H-target.H) < eps
			if !fillsWidth && !fillsHeight {
				t.Errorf("fit %+v fills neither dimension of %+v", fit, target)
			}
		}
	}
}

func TestComputeFitRect_Invalid(t *testing.T) {
	target := Rect{X: 0, Y: 0, W: 5.5, H: 8.5}

	tests := []struct {
		name  string
		image ImageSpec
	}{
		{"zero height", ImageSpec{Width: 1000, Height: 0}},
		{"zero width", ImageSpec{Width: 0, Height: 1000}},
		{"negative height", ImageSpec{Width: 1000, Height: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeFitRect(tt.image, target)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidImageSpec) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidImageSpec)
			}
			if got != (Rect{}) {
				t.Errorf("expected zero rect on error, got %+v", got)
			}
		})
	}
}
