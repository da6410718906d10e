// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// directionVocab maps direction tokens to display forms.
var directionVocab = map[string]string{
	"north":     "North",
	"south":     "South",
	"east":      "East",
	"west":      "West",
	"northeast": "Northeast",
	"northwest": "Northwest",
	"southeast": "Southeast",
	"southwest": "Southwest",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
}

// colorVocab maps color tokens to display forms. Both spellings of gray
// normalize to one form.
var colorVocab = map[string]string{
	"red":    "Red",
	"blue":   "Blue",
	"green":  "Green",
	"yellow": "Yellow",
	"white":  "White",
	"black":  "Black",
	"gray":   "Gray",
	"grey":   "Gray",
	"brown":  "Brown",
	"beige":  "Beige",
	"orange": "Orange",
	"purple": "Purple",
	"pink":   "Pink",
	"cream":  "Cream",
}

// projectTypeVocab maps single-token project types to display forms.
var projectTypeVocab = map[string]string{
	"residential":   "Residential",
	"commercial":    "Commercial",
	"industrial":    "Industrial",
	"institutional": "Institutional",
	"hospitality":   "Hospitality",
	"healthcare":    "Healthcare",
	"educational":   "Educational",
	"retail":        "Retail",
}

// phrase pairs a lowercase surface form with its canonical display form.
type phrase struct {
	surface   string
	canonical string
}

// performanceSpecs lists recognized performance phrases. Hyphenated variants
// come before spaced ones so the earliest mention wins its surface form.
var performanceSpecs = []phrase{
	{"fire-rated", "Fire Rated"},
	{"fire rated", "Fire Rated"},
	{"fire resistant", "Fire Rated"},
	{"load-bearing", "Load Bearing"},
	{"load bearing", "Load Bearing"},
	{"waterproof", "Waterproof"},
	{"water resistant", "Waterproof"},
	{"soundproof", "Acoustic"},
	{"acoustic", "Acoustic"},
	{"insulated", "Thermal"},
	{"thermal", "Thermal"},
	{"energy efficient", "Energy Efficient"},
	{"energy-efficient", "Energy Efficient"},
}

// projectTypePhrases lists multi-word project types.
var projectTypePhrases = []phrase{
	{"mixed-use", "Mixed Use"},
	{"mixed use", "Mixed Use"},
}

// synonyms maps surface words to canonical forms for ResolveSynonym. Command
// verbs collapse onto create/delete; the remainder are common material and
// room aliases.
var synonyms = map[string]string{
	"add":    "create",
	"place":  "create",
	"insert": "create",
	"make":   "create",
	"draw":   "create",
	"build":  "create",

	"remove": "delete",
	"erase":  "delete",
	"clear":  "delete",

	"timber":       "wood",
	"lumber":       "wood",
	"cement":       "concrete",
	"plasterboard": "drywall",
	"sheetrock":    "drywall",
	"glazing":      "glass",

	"lounge":   "living room",
	"toilet":   "bathroom",
	"washroom": "bathroom",
	"hallway":  "corridor",
}

// ResolveSynonym returns the canonical form of word when a synonym mapping
// exists, or the input unchanged otherwise. It never fails and never returns
// empty for non-empty input (R4.1).
func (e *Extractor) ResolveSynonym(word string) string {
	if canonical, ok := synonyms[strings.ToLower(word)]; ok {
		return canonical
	}
	return word
}
