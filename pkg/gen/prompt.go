package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matzehuels/cardfold/pkg/errors"
)

// Occasion identifies the kind of event a card is for.
type Occasion string

// Supported occasions.
const (
	OccasionBirthday    Occasion = "birthday"
	OccasionThankYou    Occasion = "thankyou"
	OccasionCongrats    Occasion = "congrats"
	OccasionHoliday     Occasion = "holiday"
	OccasionValentine   Occasion = "valentine"
	OccasionGetWell     Occasion = "getwell"
	OccasionNewBaby     Occasion = "newbaby"
	OccasionAnniversary Occasion = "anniversary"
)

// ArtStyle identifies the visual treatment of the front artwork.
type ArtStyle string

// Supported art styles.
const (
	StyleWatercolor ArtStyle = "watercolor"
	StyleSketch     ArtStyle = "sketch"
	StylePapercut   ArtStyle = "papercut"
	StyleVintage    ArtStyle = "vintage"
	StyleMinimal    ArtStyle = "minimal"
)

// occasionMoods steer both the artwork and the message toward the
// emotional register readers expect from each card type.
var occasionMoods = map[Occasion]string{
	OccasionBirthday:    "festive and joyful, with a sense of celebration",
	OccasionThankYou:    "warm and sincere, expressing gratitude",
	OccasionCongrats:    "triumphant and proud, marking an achievement",
	OccasionHoliday:     "cozy and seasonal, evoking shared traditions",
	OccasionValentine:   "romantic and tender",
	OccasionGetWell:     "gentle and uplifting, full of comfort",
	OccasionNewBaby:     "soft and sweet, celebrating a new arrival",
	OccasionAnniversary: "nostalgic and loving, honoring years together",
}

var styleDirections = map[ArtStyle]string{
	StyleWatercolor: "loose watercolor painting with soft edges and gentle color bleeds",
	StyleSketch:     "hand-drawn ink sketch with visible pen strokes and light crosshatching",
	StylePapercut:   "layered paper-cut collage with crisp silhouettes and subtle drop shadows",
	StyleVintage:    "mid-century vintage print with muted palette and slight grain",
	StyleMinimal:    "minimal flat illustration with a restrained palette and generous negative space",
}

// Occasions returns the supported occasion values, sorted.
func Occasions() []Occasion {
	out := make([]Occasion, 0, len(occasionMoods))
	for o := range occasionMoods {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ArtStyles returns the supported art style values, sorted.
func ArtStyles() []ArtStyle {
	out := make([]ArtStyle, 0, len(styleDirections))
	for s := range styleDirections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Mood returns the emotional register prompts use for o, or "" when o
// is not a supported occasion.
func (o Occasion) Mood() string {
	return occasionMoods[o]
}

// Direction returns the visual treatment prompts use for s, or "" when
// s is not a supported art style.
func (s ArtStyle) Direction() string {
	return styleDirections[s]
}

// ValidateOccasion checks that o is a supported occasion.
func ValidateOccasion(o Occasion) error {
	if _, ok := occasionMoods[o]; !ok {
		return errors.New(errors.ErrCodeInvalidOccasion, "unknown occasion: %s", o)
	}
	return nil
}

// ValidateArtStyle checks that s is a supported art style.
func ValidateArtStyle(s ArtStyle) error {
	if _, ok := styleDirections[s]; !ok {
		return errors.New(errors.ErrCodeInvalidStyle, "unknown art style: %s", s)
	}
	return nil
}

// BuildArtworkPrompt composes the image-model prompt for the card front.
// The description is the user's free-text subject and may be empty, in
// which case a generic subject for the occasion is used. Occasion and
// style must come from the supported vocabularies.
func BuildArtworkPrompt(occasion Occasion, style ArtStyle, description string) (string, error) {
	if err := ValidateOccasion(occasion); err != nil {
		return "", err
	}
	if err := ValidateArtStyle(style); err != nil {
		return "", err
	}
	subject := strings.TrimSpace(description)
	if subject == "" {
		subject = fmt.Sprintf("a scene for a %s card", occasion)
	} else if err := errors.ValidateDescription(description); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Greeting card front illustration: %s.\n", subject)
	fmt.Fprintf(&b, "Rendered as a %s.\n", styleDirections[style])
	fmt.Fprintf(&b, "Mood: %s.\n", occasionMoods[occasion])
	b.WriteString("Single centered composition on a clean background, ")
	b.WriteString("no text, no lettering, no borders, no watermark. ")
	b.WriteString("The image fills the frame and reads clearly at small print sizes.")
	return b.String(), nil
}

// BuildMessagePrompt composes the text-model prompt that writes the
// inside message. The model is asked for plain prose because the layout
// engine wraps and centers the text itself. The description is optional
// context and may be empty.
func BuildMessagePrompt(occasion Occasion, description string) (string, error) {
	if err := ValidateOccasion(occasion); err != nil {
		return "", err
	}
	if strings.TrimSpace(description) != "" {
		if err := errors.ValidateDescription(description); err != nil {
			return "", err
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a short greeting card message for a %s card.\n", occasion)
	if d := strings.TrimSpace(description); d != "" {
		fmt.Fprintf(&b, "Context from the sender: %s.\n", d)
	}
	fmt.Fprintf(&b, "Tone: %s.\n", occasionMoods[occasion])
	b.WriteString("Two to four sentences of plain prose. ")
	b.WriteString("No markdown, no emoji, no salutation or signature lines.")
	return b.String(), nil
}
