package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/cardfold/pkg/errors"
)

func TestBuildPlan(t *testing.T) {
	plan, err := BuildPlan(Letter, ImageSpec{Width: 1000, Height: 1500}, MessageSpec{Text: "Happy birthday, Sam!", Tier: TierMedium})
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}

	// Both pages share the same fold geometry.
	if plan.Outside != plan.Inside {
		t.Errorf("outside and inside fold geometry differ: %+v vs %+v", plan.Outside, plan.Inside)
	}
	if plan.Outside.FoldX != 5.5 {
		t.Errorf("FoldX = %v, want 5.5", plan.Outside.FoldX)
	}

	// Front artwork is the aspect-fit of the 2:3 image on the right panel.
	want := Rect{X: 5.5, Y: 0.125, W: 5.5, H: 8.25}
	if math.Abs(plan.FrontArt.X-want.X) > eps ||
		math.Abs(plan.FrontArt.Y-want.Y) > eps ||
		math.Abs(plan.FrontArt.W-want.W) > eps ||
		math.Abs(plan.FrontArt.H-want.H) > eps {
		t.Errorf("FrontArt = %+v, want %+v", plan.FrontArt, want)
	}
	if !plan.Outside.Right.Contains(plan.FrontArt, eps) {
		t.Errorf("FrontArt %+v escapes front panel %+v", plan.FrontArt, plan.Outside.Right)
	}

	// Branding sits at a fixed offset from the back panel's bottom-left.
	if plan.Branding.X != brandingOffsetX || plan.Branding.Y != Letter.Height-brandingOffsetY {
		t.Errorf("Branding = %+v, want {%v %v}", plan.Branding, brandingOffsetX, Letter.Height-brandingOffsetY)
	}

	// Flourish anchors stay on the inside-left panel.
	left := plan.Inside.Left
	for i, p := range plan.Flourishes {
		if p.X < left.X || p.X > left.Right() || p.Y < 0 || p.Y > left.H {
			t.Errorf("flourish %d at %+v escapes inside-left panel %+v", i, p, left)
		}
	}

	if plan.InsideRight.Text == nil {
		t.Fatal("expected message text block")
	}
	if plan.InsideRight.Guides != nil {
		t.Error("text and guides are mutually exclusive")
	}
}

func TestBuildPlan_EmptyMessage(t *testing.T) {
	plan, err := BuildPlan(Letter, ImageSpec{Width: 800, Height: 600}, MessageSpec{Tier: TierLarge})
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}

	if plan.InsideRight.Guides == nil {
		t.Fatal("expected writing guides for empty message")
	}
	if got := len(plan.InsideRight.Guides.Ys); got != defaultGuideCount {
		t.Errorf("guide count = %d, want %d", got, defaultGuideCount)
	}
}

// Identical inputs always produce structurally identical plans.
func TestBuildPlan_Deterministic(t *testing.T) {
	image := ImageSpec{Width: 1024, Height: 768}
	message := MessageSpec{Text: "same inputs, same plan", Tier: TierSmall}

	a, err := BuildPlan(Compact, image, message)
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}
	b, err := BuildPlan(Compact, image, message)
	if err != nil {
		t.Fatalf("BuildPlan error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Errorf("plans differ:\n%+v\n%+v", a, b)
	}
}

func TestBuildPlan_InvalidInputs(t *testing.T) {
	validImage := ImageSpec{Width: 1000, Height: 1500}
	validMessage := MessageSpec{Text: "hello", Tier: TierMedium}

	tests := []struct {
		name     string
		page     PageGeometry
		image    ImageSpec
		message  MessageSpec
		wantCode errors.Code
	}{
		{"zero page", PageGeometry{}, validImage, validMessage, errors.ErrCodeInvalidGeometry},
		{"portrait page", PageGeometry{Width: 8.5, Height: 11}, validImage, validMessage, errors.ErrCodeInvalidGeometry},
		{"zero image height", Letter, ImageSpec{Width: 1000, Height: 0}, validMessage, errors.ErrCodeInvalidImageSpec},
		{"unknown tier", Letter, validImage, MessageSpec{Text: "hi", Tier: FontTier("huge")}, errors.ErrCodeInvalidMessageSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPlan(tt.page, tt.image, tt.message)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
			if plan != nil {
				t.Errorf("expected nil plan on error, got %+v", plan)
			}
		})
	}
}
