package mensa

import (
	"encoding/json"
	"strings"
)

// Color is the traffic-light rating scale used by the Studierendenwerk for
// quality, CO2 and water-usage ratings.
type Color string

// Color values.
const (
	ColorGreen  Color = "Green"
	ColorOrange Color = "Orange"
	ColorRed    Color = "Red"
)

// TagKind identifies a meal tag variant.
type TagKind string

// TagKind values. The first seven are boolean attributes; the last three
// carry a Color rating.
const (
	TagVegetarian         TagKind = "Vegetarian"
	TagVegan              TagKind = "Vegan"
	TagFairtrade          TagKind = "Fairtrade"
	TagClimateFood        TagKind = "ClimateFood"
	TagSustainableFarming TagKind = "SustainableFarming"
	TagSustainableFishing TagKind = "SustainableFishing"
	TagFrozen             TagKind = "Frozen"
	TagCo2                TagKind = "Co2"
	TagWaterUsage         TagKind = "WaterUsage"
	TagQuality            TagKind = "Quality"
)

// MealTag is a dietary, sourcing or rating attribute attached to a meal.
// Color is empty for boolean attributes. MealTag is comparable; two tags
// are equal when kind and color match.
type MealTag struct {
	Kind  TagKind
	Color Color
}

// Co2Tag returns the CO2 rating tag for the given color.
func Co2Tag(c Color) MealTag { return MealTag{Kind: TagCo2, Color: c} }

// WaterUsageTag returns the water-usage rating tag for the given color.
func WaterUsageTag(c Color) MealTag { return MealTag{Kind: TagWaterUsage, Color: c} }

// QualityTag returns the quality rating tag for the given color.
func QualityTag(c Color) MealTag { return MealTag{Kind: TagQuality, Color: c} }

// mealTagCodes maps the tooltip codes used on the menu page to tags.
// The vocabulary is fixed by the source site; matching is exact and
// case-sensitive after trimming.
var mealTagCodes = map[string]MealTag{
	"gruen":       QualityTag(ColorGreen),
	"gelb":        QualityTag(ColorOrange),
	"rot":         QualityTag(ColorRed),
	"vegetarisch": {Kind: TagVegetarian},
	"vegan":       {Kind: TagVegan},
	"bio":         {Kind: TagSustainableFarming},
	"klima":       {Kind: TagClimateFood},
	"msc":         {Kind: TagSustainableFishing},

	"CO2_bewertung_A": Co2Tag(ColorGreen),
	"CO2_bewertung_B": Co2Tag(ColorOrange),
	"CO2_bewertung_C": Co2Tag(ColorRed),

	"H2O_bewertung_A": WaterUsageTag(ColorGreen),
	"H2O_bewertung_B": WaterUsageTag(ColorOrange),
	"H2O_bewertung_C": WaterUsageTag(ColorRed),
}

// ParseMealTag classifies a raw tooltip code into a MealTag. The code is
// trimmed before matching. Unrecognized codes return ok=false so that new
// vocabulary introduced by the source site degrades gracefully instead of
// breaking extraction.
func ParseMealTag(code string) (MealTag, bool) {
	tag, ok := mealTagCodes[strings.TrimSpace(code)]
	return tag, ok
}

// MarshalJSON encodes boolean tags as bare strings ("Vegetarian") and rated
// tags as single-key objects ({"Co2":"Green"}).
func (t MealTag) MarshalJSON() ([]byte, error) {
	if t.Color == "" {
		return json.Marshal(string(t.Kind))
	}
	return json.Marshal(map[string]Color{string(t.Kind): t.Color})
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (t *MealTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = MealTag{Kind: TagKind(s)}
		return nil
	}

	var m map[string]Color
	if err := json.Unmarshal(data, &m); err != nil {
		return Errorf(EINVALID, "invalid meal tag: %v", err)
	}
	if len(m) != 1 {
		return Errorf(EINVALID, "invalid meal tag: expected a single-key object")
	}
	for kind, color := range m {
		*t = MealTag{Kind: TagKind(kind), Color: color}
	}
	return nil
}
