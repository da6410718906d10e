// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify scores free-text commands against the intent catalog and
// matches them against registered dispatch patterns.
// Implements: prd002-classification (R1-R4);
//
//	docs/ARCHITECTURE.md § Intent Classification.
package classify

import (
	"strings"

	"github.com/meshintelligence/bim-assistant/internal/catalog"
	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// Scoring constants. An example-phrase hit short-circuits keyword scoring
// at a high fixed confidence; keyword hits start at the base and grow per
// matched keyword (prd002 R2.3-R2.4).
const (
	exampleMatchScore = 0.9
	keywordBaseScore  = 0.5
	keywordStepScore  = 0.1

	// defaultScoreFloor is the score at or below which no intent is
	// reported (prd002 R3.2).
	defaultScoreFloor = 0.3
)

// verbSynonyms maps surface command verbs onto the canonical verbs the
// catalog keywords use. Expansion is plain substring replacement, applied
// in declaration order for determinism (prd002 R2.2).
var verbSynonyms = []struct{ from, to string }{
	{"add", "create"},
	{"place", "create"},
	{"insert", "create"},
	{"make", "create"},
	{"draw", "create"},
	{"build", "create"},
	{"remove", "delete"},
	{"erase", "delete"},
	{"clear", "delete"},
}

// Classifier scores input text against a catalog's intents. It keeps no
// state across calls: each Classify invocation is a pure function of its
// input and the injected catalog, safe for concurrent use (prd002 R1.5).
type Classifier struct {
	cat   *catalog.Catalog
	floor float64
}

// New returns a classifier over cat. A zero ScoreFloor uses the default.
func New(cat *catalog.Catalog, cfg types.ClassifierConfig) *Classifier {
	floor := cfg.ScoreFloor
	if floor <= 0 {
		floor = defaultScoreFloor
	}
	return &Classifier{cat: cat, floor: floor}
}

// Classify returns the best-matching intent for text with a confidence and
// the matched keywords. Empty or whitespace-only input always yields a nil
// intent with zero confidence; a winning score at or below the floor also
// reports a nil intent (prd002 R2, R3).
func (c *Classifier) Classify(text string) types.ClassificationResult {
	if strings.TrimSpace(text) == "" {
		return types.ClassificationResult{}
	}

	normalized := Normalize(text)

	var (
		best      *types.Intent
		bestScore float64
	)

	// Strictly-greater comparison: on equal scores the intent declared
	// first in the catalog wins (prd002 R3.5).
	for _, in := range c.cat.Intents() {
		score := scoreIntent(in, normalized)
		if score > bestScore {
			intent := in
			best = &intent
			bestScore = score
		}
	}

	result := types.ClassificationResult{Confidence: clamp(bestScore)}
	if best == nil || bestScore <= c.floor {
		return result
	}

	result.Intent = best
	result.MatchedKeywords = matchedKeywords(*best, normalized)
	return result
}

// Normalize lowercases text and expands command-verb synonyms so that
// "add a door" and "create a door" score identically.
func Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, s := range verbSynonyms {
		normalized = strings.ReplaceAll(normalized, s.from, s.to)
	}
	return normalized
}

// scoreIntent scores one intent against normalized input. An example-phrase
// substring hit returns the fixed example score immediately; otherwise the
// score grows from the keyword base by one step per matched keyword, capped
// at 1.0. No keyword hits means zero.
func scoreIntent(in types.Intent, normalized string) float64 {
	for _, ex := range in.Examples {
		if strings.Contains(normalized, strings.ToLower(ex)) {
			return exampleMatchScore
		}
	}

	count := 0
	for _, kw := range in.Keywords {
		if strings.Contains(normalized, kw) {
			count++
		}
	}
	if count == 0 {
		return 0
	}

	score := keywordBaseScore + float64(count)*keywordStepScore
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// matchedKeywords returns exactly the subset of the intent's keywords found
// in the normalized input (prd002 R3.4).
func matchedKeywords(in types.Intent, normalized string) []string {
	var matched []string
	for _, kw := range in.Keywords {
		if strings.Contains(normalized, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
