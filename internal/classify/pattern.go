// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// Pattern binds a text pattern to an intent name with a fixed confidence.
// Patterns give fast, unambiguous dispatch for specialized consulting
// commands that the keyword scorer would treat as generic (prd002 R4).
type Pattern struct {
	IntentName string            `json:"intent_name" yaml:"intent_name"`
	Expr       string            `json:"expr" yaml:"expr"`
	Type       types.PatternType `json:"type" yaml:"type"`
	Confidence float64           `json:"confidence" yaml:"confidence"`

	re *regexp.Regexp
}

// NewPattern builds a pattern, compiling regex expressions eagerly. An
// invalid regex is a configuration defect and fails here, at registration
// time, never per classification call (prd002 R4.3).
func NewPattern(intentName, expr string, t types.PatternType, confidence float64) (Pattern, error) {
	p := Pattern{
		IntentName: intentName,
		Expr:       expr,
		Type:       t,
		Confidence: clamp(confidence),
	}

	switch t {
	case types.PatternExact, types.PatternStartsWith, types.PatternContains:
	case types.PatternRegex:
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern for %s: invalid regex %q: %w", intentName, expr, err)
		}
		p.re = re
	default:
		return Pattern{}, fmt.Errorf("pattern for %s: unknown type %q", intentName, t)
	}

	return p, nil
}

// mustPattern is the registration helper for the built-in pattern set,
// which is known valid.
func mustPattern(intentName, expr string, t types.PatternType, confidence float64) Pattern {
	p, err := NewPattern(intentName, expr, t, confidence)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches reports whether text satisfies the pattern. All comparisons are
// case-insensitive; regex patterns match anywhere in the string (prd002 R4.2).
func (p Pattern) Matches(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	expr := strings.ToLower(p.Expr)

	switch p.Type {
	case types.PatternExact:
		return lowered == expr
	case types.PatternStartsWith:
		return strings.HasPrefix(lowered, expr)
	case types.PatternContains:
		return strings.Contains(lowered, expr)
	case types.PatternRegex:
		return p.re.MatchString(text)
	}
	return false
}

// Registry holds registered patterns. Registration may happen at runtime and
// is mutex-guarded; reads take a snapshot so match loops never hold the lock
// (prd002 R4.4).
type Registry struct {
	mu       sync.RWMutex
	patterns []Pattern
}

// NewRegistry returns an empty pattern registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a pattern. Build patterns with NewPattern so invalid
// expressions are rejected before they reach the registry.
func (r *Registry) Register(p Pattern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = append(r.patterns, p)
}

// Patterns returns a copy of the registered patterns in registration order.
// The registry is enumerable by contract; tests and tooling never need
// access to internals.
func (r *Registry) Patterns() []Pattern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Match returns all patterns matching text, in registration order.
func (r *Registry) Match(text string) []Pattern {
	var matched []Pattern
	for _, p := range r.Patterns() {
		if p.Matches(text) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Best returns the highest-confidence matching pattern, or nil when none
// match. Equal confidences resolve to the earliest registered pattern.
func (r *Registry) Best(text string) *Pattern {
	var best *Pattern
	for _, p := range r.Match(text) {
		if best == nil || p.Confidence > best.Confidence {
			q := p
			best = &q
		}
	}
	return best
}

// DefaultRegistry returns the built-in consulting and management pattern
// set: compliance checks, quantity takeoff, and model health commands that
// professionals phrase in fixed ways (prd002 R4.5).
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range []Pattern{
		mustPattern("CheckFireSafety", "check fire", types.PatternStartsWith, 0.95),
		mustPattern("CheckFireSafety", "fire safety", types.PatternContains, 0.9),
		mustPattern("CheckFireSafety", "egress", types.PatternContains, 0.85),
		mustPattern("CheckFireSafety", `nfpa[ -]?\d+`, types.PatternRegex, 0.9),

		mustPattern("CheckAccessibility", "check accessibility", types.PatternStartsWith, 0.95),
		mustPattern("CheckAccessibility", "ada comp", types.PatternContains, 0.9),
		mustPattern("CheckAccessibility", "wheelchair", types.PatternContains, 0.85),
		mustPattern("CheckAccessibility", `accessib(le|ility) (check|review|audit)`, types.PatternRegex, 0.9),

		mustPattern("CheckCompliance", "check compliance", types.PatternStartsWith, 0.95),
		mustPattern("CheckCompliance", "building code", types.PatternContains, 0.9),
		mustPattern("CheckCompliance", "code check", types.PatternContains, 0.9),
		mustPattern("CheckCompliance", `(ibc|iecc)[ -]?\d{4}`, types.PatternRegex, 0.9),

		mustPattern("CheckStructural", "structural review", types.PatternContains, 0.9),
		mustPattern("CheckStructural", `load[- ]bearing`, types.PatternRegex, 0.85),

		mustPattern("AnalyzeEnergy", "energy analysis", types.PatternContains, 0.9),
		mustPattern("AnalyzeEnergy", `climate zone[ ]?\d`, types.PatternRegex, 0.85),

		mustPattern("RunTakeoff", "quantity takeoff", types.PatternContains, 0.95),
		mustPattern("RunTakeoff", "takeoff", types.PatternStartsWith, 0.9),
		mustPattern("RunTakeoff", "bill of quantities", types.PatternContains, 0.9),

		mustPattern("AnalyzeModelHealth", "model health", types.PatternContains, 0.95),
		mustPattern("AnalyzeModelHealth", "health check", types.PatternExact, 0.9),
		mustPattern("AnalyzeModelHealth", `clash(es| detection)?`, types.PatternRegex, 0.85),
	} {
		r.Register(p)
	}
	return r
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
