// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the bim-assistant NLP core.
// Implements: prd001-catalog (Intent, RoomTypeDefinition, MaterialDefinition);
//
//	prd002-classification (ClassificationResult, Pattern types);
//	prd003-extraction (Entity, EntityType).
//
// See docs/ARCHITECTURE.md § Data Structures.
package types

// IntentCategory groups intents by the kind of model operation they request.
// Per prd002-classification R1.2.
type IntentCategory string

const (
	CategoryCreation     IntentCategory = "creation"
	CategoryModification IntentCategory = "modification"
	CategorySelection    IntentCategory = "selection"
	CategoryView         IntentCategory = "view"
	CategoryQuery        IntentCategory = "query"
	CategoryAnalysis     IntentCategory = "analysis"
	CategoryUtility      IntentCategory = "utility"
)

// Intent is an immutable catalog entry describing one recognizable user
// command. Per prd002-classification R1.1, R1.3, R1.4.
type Intent struct {
	// Name uniquely identifies the intent (e.g. "CreateWall").
	Name string `json:"name" yaml:"name"`

	// Category groups the intent by operation kind.
	Category IntentCategory `json:"category" yaml:"category"`

	// Keywords are lowercase trigger words. Never empty: an intent with
	// no keywords cannot be scored (R1.3).
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Examples are canonical example phrases used for high-confidence
	// substring matching. Never empty (R1.4).
	Examples []string `json:"examples" yaml:"examples"`
}

// ClassificationResult is the output of one classification call.
// Per prd002-classification R3.1-R3.4.
type ClassificationResult struct {
	// Intent is the best-scoring catalog intent. Nil when the input is
	// empty or the winning score falls at or below the score floor (R3.2).
	Intent *Intent `json:"intent" yaml:"intent"`

	// Confidence is the winning score, clamped to [0, 1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// MatchedKeywords is exactly the subset of the winning intent's
	// keywords found in the normalized input (R3.4). Used by callers for
	// explanation, not just scoring.
	MatchedKeywords []string `json:"matched_keywords" yaml:"matched_keywords"`
}

// IsConfident reports whether the result clears the caller-facing
// confident-match threshold (R3.3).
func (r ClassificationResult) IsConfident() bool {
	return r.Intent != nil && r.Confidence >= ConfidentMatch
}

// ConfidentMatch is the confidence callers use to decide between acting on
// a classification and asking for clarification. Per prd002-classification R3.3.
const ConfidentMatch = 0.5

// PatternType selects how a Pattern's expression is interpreted.
// Per prd002-classification R4.1.
type PatternType string

const (
	PatternExact      PatternType = "exact"
	PatternStartsWith PatternType = "starts_with"
	PatternContains   PatternType = "contains"
	PatternRegex      PatternType = "regex"
)
