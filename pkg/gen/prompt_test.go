package gen

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardfold/pkg/errors"
)

func TestValidateOccasion(t *testing.T) {
	for _, o := range Occasions() {
		if err := ValidateOccasion(o); err != nil {
			t.Errorf("ValidateOccasion(%q) failed: %v", o, err)
		}
	}

	tests := []Occasion{"", "wedding", "BIRTHDAY"}
	for _, o := range tests {
		err := ValidateOccasion(o)
		if !errors.Is(err, errors.ErrCodeInvalidOccasion) {
			t.Errorf("ValidateOccasion(%q) = %v, want INVALID_OCCASION", o, err)
		}
	}
}

func TestValidateArtStyle(t *testing.T) {
	for _, s := range ArtStyles() {
		if err := ValidateArtStyle(s); err != nil {
			t.Errorf("ValidateArtStyle(%q) failed: %v", s, err)
		}
	}

	tests := []ArtStyle{"", "cubist", "Watercolor"}
	for _, s := range tests {
		err := ValidateArtStyle(s)
		if !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("ValidateArtStyle(%q) = %v, want INVALID_STYLE", s, err)
		}
	}
}

func TestOccasionsSorted(t *testing.T) {
	occasions := Occasions()
	if len(occasions) == 0 {
		t.Fatal("expected occasions")
	}
	for i := 1; i < len(occasions); i++ {
		if occasions[i-1] >= occasions[i] {
			t.Errorf("occasions not sorted: %v", occasions)
			break
		}
	}
}

func TestBuildArtworkPrompt(t *testing.T) {
	prompt, err := BuildArtworkPrompt(OccasionBirthday, StyleWatercolor, "a fox with a slice of cake")
	if err != nil {
		t.Fatalf("BuildArtworkPrompt failed: %v", err)
	}

	for _, want := range []string{
		"a fox with a slice of cake",
		"watercolor",
		"festive",
		"no text",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildArtworkPromptDeterministic(t *testing.T) {
	p1, _ := BuildArtworkPrompt(OccasionThankYou, StyleSketch, "desc")
	p2, _ := BuildArtworkPrompt(OccasionThankYou, StyleSketch, "desc")
	if p1 != p2 {
		t.Error("same inputs should produce the same prompt")
	}

	p3, _ := BuildArtworkPrompt(OccasionThankYou, StyleMinimal, "desc")
	if p1 == p3 {
		t.Error("different styles should produce different prompts")
	}
}

func TestBuildArtworkPromptInvalid(t *testing.T) {
	if _, err := BuildArtworkPrompt("wedding", StyleSketch, "desc"); !errors.Is(err, errors.ErrCodeInvalidOccasion) {
		t.Errorf("expected INVALID_OCCASION, got %v", err)
	}
	if _, err := BuildArtworkPrompt(OccasionBirthday, "cubist", "desc"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("expected INVALID_STYLE, got %v", err)
	}

	long := strings.Repeat("x", 2001)
	if _, err := BuildArtworkPrompt(OccasionBirthday, StyleSketch, long); err == nil {
		t.Error("overlong description should fail")
	}
}

func TestBuildMessagePrompt(t *testing.T) {
	prompt, err := BuildMessagePrompt(OccasionGetWell, "my neighbor broke a leg skiing")
	if err != nil {
		t.Fatalf("BuildMessagePrompt failed: %v", err)
	}

	for _, want := range []string{
		"getwell",
		"my neighbor broke a leg skiing",
		"No markdown",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildMessagePromptEmptyDescription(t *testing.T) {
	prompt, err := BuildMessagePrompt(OccasionCongrats, "")
	if err != nil {
		t.Fatalf("BuildMessagePrompt failed: %v", err)
	}
	if strings.Contains(prompt, "Context from the sender") {
		t.Error("empty description should omit the context line")
	}
}

func TestBuildArtworkPromptEmptyDescription(t *testing.T) {
	prompt, err := BuildArtworkPrompt(OccasionHoliday, StyleVintage, "")
	if err != nil {
		t.Fatalf("BuildArtworkPrompt failed: %v", err)
	}
	if !strings.Contains(prompt, "a scene for a holiday card") {
		t.Errorf("empty description should fall back to a generic subject:\n%s", prompt)
	}
}

func TestMoodAndDirection(t *testing.T) {
	if OccasionBirthday.Mood() == "" {
		t.Error("birthday should have a mood")
	}
	if StyleSketch.Direction() == "" {
		t.Error("sketch should have a direction")
	}
	if Occasion("wedding").Mood() != "" {
		t.Error("unknown occasion should have no mood")
	}
}
