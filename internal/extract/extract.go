// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recognizes domain-independent lexical entities in command
// text: dimensions, numbers, directions, colors, performance specs,
// compliance standards, climate zones, and project types.
// Implements: prd003-extraction (R1-R4);
//
//	docs/ARCHITECTURE.md § Lexical Extraction.
package extract

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// Confidence values per entity type. Every extraction is an exact
// vocabulary or regex match, so confidence is high and near-constant
// (always >= 0.9) rather than continuously graded (R1.4).
const (
	confidenceDimension = 0.95
	confidenceNumber    = 0.9
	confidenceDirection = 0.95
	confidenceColor     = 0.9
	confidenceSpec      = 0.9
	confidenceStandard  = 0.95
	confidenceZone      = 0.95
	confidenceProject   = 0.9
)

// dimensionPattern matches a number followed by a length unit. Longer unit
// spellings come first: the regexp engine prefers the earliest alternative.
var dimensionPattern = regexp.MustCompile(
	`(?i)(\d+(?:\.\d+)?)\s*(millimetres?|millimeters?|centimetres?|centimeters?|metres?|meters?|mm|cm|m\b|feet|foot|ft\b|inches|inch|")`)

// numberPattern matches standalone numbers not consumed by a dimension.
var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// standardPattern matches a compliance standard designation with an
// optional section/edition number ("nfpa 101", "IBC 2021").
var standardPattern = regexp.MustCompile(
	`(?i)\b(ada|ibc|irc|nfpa|ashrae|iecc|osha|leed)\b(?:[ -](\d{1,4}))?`)

// zonePattern matches climate zone designations ("climate zone 4a").
var zonePattern = regexp.MustCompile(`(?i)\bclimate\s+zone\s+(\d[a-c]?)\b`)

// Extractor performs lexical entity extraction. It is stateless: every
// Extract call is a pure function of its input, safe for concurrent use.
type Extractor struct{}

// New returns a lexical extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans text and returns all recognized entities in input order.
// The result is empty, never nil, for text with no recognizable entities.
func (e *Extractor) Extract(text string) []types.Entity {
	lowered := strings.ToLower(text)

	type positioned struct {
		pos    int
		entity types.Entity
	}
	var found []positioned

	// Dimensions, standards, and climate zones first; their spans mask the
	// standalone number pass (R2.4).
	var consumed [][2]int
	for _, m := range dimensionPattern.FindAllStringSubmatchIndex(lowered, -1) {
		value := lowered[m[2]:m[3]]
		unit := lowered[m[4]:m[5]]
		mm, ok := toMillimeters(value, unit)
		if !ok {
			continue
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
		found = append(found, positioned{m[0], types.Entity{
			Type:            types.EntityDimension,
			Value:           strings.TrimSpace(lowered[m[0]:m[1]]),
			NormalizedValue: mm,
			Confidence:      confidenceDimension,
		}})
	}

	for _, m := range standardPattern.FindAllStringSubmatchIndex(lowered, -1) {
		designation := strings.ToUpper(lowered[m[2]:m[3]])
		if m[4] >= 0 {
			designation += " " + lowered[m[4]:m[5]]
		}
		consumed = append(consumed, [2]int{m[0], m[1]})
		found = append(found, positioned{m[0], types.Entity{
			Type:            types.EntityComplianceStandard,
			Value:           lowered[m[0]:m[1]],
			NormalizedValue: designation,
			Confidence:      confidenceStandard,
		}})
	}

	for _, m := range zonePattern.FindAllStringSubmatchIndex(lowered, -1) {
		consumed = append(consumed, [2]int{m[0], m[1]})
		found = append(found, positioned{m[0], types.Entity{
			Type:            types.EntityClimateZone,
			Value:           lowered[m[0]:m[1]],
			NormalizedValue: "Zone " + strings.ToUpper(lowered[m[2]:m[3]]),
			Confidence:      confidenceZone,
		}})
	}

	for _, m := range numberPattern.FindAllStringIndex(lowered, -1) {
		if insideAny(m[0], consumed) {
			continue
		}
		found = append(found, positioned{m[0], types.Entity{
			Type:            types.EntityNumber,
			Value:           lowered[m[0]:m[1]],
			NormalizedValue: lowered[m[0]:m[1]],
			Confidence:      confidenceNumber,
		}})
	}

	// Single-word vocabularies are matched per token; every occurrence is
	// reported, preserving input order (R3.1).
	for _, tok := range tokenize(lowered) {
		if canonical, ok := directionVocab[tok.word]; ok {
			found = append(found, positioned{tok.pos, types.Entity{
				Type:            types.EntityDirection,
				Value:           tok.word,
				NormalizedValue: canonical,
				Confidence:      confidenceDirection,
			}})
		}
		if canonical, ok := colorVocab[tok.word]; ok {
			found = append(found, positioned{tok.pos, types.Entity{
				Type:            types.EntityColor,
				Value:           tok.word,
				NormalizedValue: canonical,
				Confidence:      confidenceColor,
			}})
		}
		if canonical, ok := projectTypeVocab[tok.word]; ok {
			found = append(found, positioned{tok.pos, types.Entity{
				Type:            types.EntityProjectType,
				Value:           tok.word,
				NormalizedValue: canonical,
				Confidence:      confidenceProject,
			}})
		}
	}

	// Performance specs and multi-word project types are phrase matches.
	for _, spec := range performanceSpecs {
		if pos := strings.Index(lowered, spec.surface); pos >= 0 {
			found = append(found, positioned{pos, types.Entity{
				Type:            types.EntityPerformanceSpec,
				Value:           spec.surface,
				NormalizedValue: spec.canonical,
				Confidence:      confidenceSpec,
			}})
		}
	}
	for _, pt := range projectTypePhrases {
		if pos := strings.Index(lowered, pt.surface); pos >= 0 {
			found = append(found, positioned{pos, types.Entity{
				Type:            types.EntityProjectType,
				Value:           pt.surface,
				NormalizedValue: pt.canonical,
				Confidence:      confidenceProject,
			}})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	entities := make([]types.Entity, 0, len(found))
	for _, f := range found {
		entities = append(entities, f.entity)
	}
	return entities
}

// toMillimeters converts a value/unit pair to the canonical millimeter form
// ("4", "m" → "4000mm"). The conversion table is exact: m and meters use
// factor 1000, mm is identity, feet use 304.8, cm 10, inches 25.4 (R2.1-R2.3).
func toMillimeters(value, unit string) (string, bool) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", false
	}

	var factor float64
	switch {
	case strings.HasPrefix(unit, "millimet") || unit == "mm":
		factor = 1
	case strings.HasPrefix(unit, "centimet") || unit == "cm":
		factor = 10
	case strings.HasPrefix(unit, "met") || unit == "m":
		factor = 1000
	case unit == "feet" || unit == "foot" || unit == "ft":
		factor = 304.8
	case unit == "inches" || unit == "inch" || unit == `"`:
		factor = 25.4
	default:
		return "", false
	}

	// Round away float multiplication noise (3 feet is 914.4mm, not
	// 914.4000000000001mm) while keeping fractional millimeters intact.
	mm := math.Round(v*factor*1e4) / 1e4
	return strconv.FormatFloat(mm, 'f', -1, 64) + "mm", true
}

func insideAny(pos int, spans [][2]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}

// token is a lowercase word with its byte position in the input.
type token struct {
	word string
	pos  int
}

func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{word: text[start:i], pos: start})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{word: text[start:], pos: start})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
}
