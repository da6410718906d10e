// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interpret combines pattern dispatch, intent classification, and
// entity extraction into one result for command handlers.
// Implements: prd004-interpretation (R1-R3);
//
//	docs/ARCHITECTURE.md § Interpretation.
package interpret

import (
	"github.com/sahilm/fuzzy"

	"github.com/meshintelligence/bim-assistant/internal/catalog"
	"github.com/meshintelligence/bim-assistant/internal/classify"
	"github.com/meshintelligence/bim-assistant/internal/extract"
	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// defaultMaxSuggestions bounds the clarification list (R3.2).
const defaultMaxSuggestions = 3

// Result is the full interpretation of one command string.
type Result struct {
	// Input is the raw command text.
	Input string `json:"input" yaml:"input"`

	// IntentName is the dispatch intent: the pattern intent when a pattern
	// outranks the classifier, otherwise the classified intent. Empty when
	// neither strategy produced a match (R1.3).
	IntentName string `json:"intent_name" yaml:"intent_name"`

	// Confidence is the dispatch confidence for IntentName.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Classification is the keyword/example scoring result.
	Classification types.ClassificationResult `json:"classification" yaml:"classification"`

	// Pattern is the best matching dispatch pattern, nil when none matched.
	Pattern *classify.Pattern `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Entities lists catalog-resolved domain entities followed by lexical
	// entities, each in input order within its group.
	Entities []types.Entity `json:"entities" yaml:"entities"`

	// Suggestions holds example phrases offered when the dispatch
	// confidence is below the confident-match threshold (R3.1).
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Interpreter wires the catalog, classifier, pattern registry, and lexical
// extractor together. All components are injected; the interpreter adds no
// state of its own and is safe for concurrent use.
type Interpreter struct {
	cat            *catalog.Catalog
	classifier     *classify.Classifier
	registry       *classify.Registry
	extractor      *extract.Extractor
	maxSuggestions int
}

// New returns an interpreter over the given catalog and registry.
func New(cat *catalog.Catalog, registry *classify.Registry, cfg types.InterpreterConfig) *Interpreter {
	maxSuggestions := cfg.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	return &Interpreter{
		cat:            cat,
		classifier:     classify.New(cat, types.ClassifierConfig{}),
		registry:       registry,
		extractor:      extract.New(),
		maxSuggestions: maxSuggestions,
	}
}

// Interpret runs both classification strategies and both extraction passes
// over text. Patterns are tried for specialized consulting intents and win
// when they outrank the general classifier (R1.1, R1.2).
func (i *Interpreter) Interpret(text string) Result {
	result := Result{
		Input:          text,
		Classification: i.classifier.Classify(text),
		Pattern:        i.registry.Best(text),
	}

	if result.Classification.Intent != nil {
		result.IntentName = result.Classification.Intent.Name
		result.Confidence = result.Classification.Confidence
	}
	if result.Pattern != nil && result.Pattern.Confidence >= result.Confidence {
		result.IntentName = result.Pattern.IntentName
		result.Confidence = result.Pattern.Confidence
	}

	result.Entities = append(i.cat.ExtractDomainEntities(text), i.extractor.Extract(text)...)

	if result.Confidence < types.ConfidentMatch {
		result.Suggestions = i.Suggest(text, i.maxSuggestions)
	}

	return result
}

// Suggest fuzzy-matches text against every catalog example phrase and
// returns the top n, for use in clarification prompts (R3.1, R3.2).
func (i *Interpreter) Suggest(text string, n int) []string {
	var examples []string
	for _, in := range i.cat.Intents() {
		examples = append(examples, in.Examples...)
	}

	matches := fuzzy.Find(classify.Normalize(text), examples)
	var suggestions []string
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == n {
			break
		}
	}
	return suggestions
}
