// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

func TestPatternMatches(t *testing.T) {
	tests := []struct {
		name string
		expr string
		typ  types.PatternType
		text string
		want bool
	}{
		{"exact hit", "health check", types.PatternExact, "health check", true},
		{"exact case insensitive", "health check", types.PatternExact, "Health Check", true},
		{"exact trailing text", "health check", types.PatternExact, "health check now", false},
		{"starts_with hit", "check fire", types.PatternStartsWith, "check fire exits on level 2", true},
		{"starts_with mid-string", "check fire", types.PatternStartsWith, "please check fire exits", false},
		{"contains hit", "wall", types.PatternContains, "create a wall here", true},
		{"contains miss", "wall", types.PatternContains, "create a floor", false},
		{"regex hit", `nfpa[ -]?\d+`, types.PatternRegex, "does this meet NFPA 101", true},
		{"regex miss", `nfpa[ -]?\d+`, types.PatternRegex, "fire code question", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPattern("TestIntent", tt.expr, tt.typ, 0.9)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Matches(tt.text))
		})
	}
}

func TestNewPatternInvalidRegex(t *testing.T) {
	_, err := NewPattern("TestIntent", `([`, types.PatternRegex, 0.9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestNewPatternUnknownType(t *testing.T) {
	_, err := NewPattern("TestIntent", "x", types.PatternType("fuzzy"), 0.9)
	require.Error(t, err)
}

func TestNewPatternClampsConfidence(t *testing.T) {
	p, err := NewPattern("TestIntent", "x", types.PatternContains, 1.7)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Confidence)
}

func TestRegistryPatternsIsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register(mustPattern("A", "alpha", types.PatternContains, 0.9))

	snapshot := r.Patterns()
	snapshot[0].IntentName = "mutated"

	assert.Equal(t, "A", r.Patterns()[0].IntentName)
}

func TestRegistryBest(t *testing.T) {
	r := NewRegistry()
	r.Register(mustPattern("Low", "wall", types.PatternContains, 0.8))
	r.Register(mustPattern("High", "wall here", types.PatternContains, 0.95))
	r.Register(mustPattern("TiedWithHigh", "wall h", types.PatternContains, 0.95))

	best := r.Best("create a wall here")
	require.NotNil(t, best)
	// Highest confidence wins; the tie between High and TiedWithHigh goes
	// to the earlier registration.
	assert.Equal(t, "High", best.IntentName)

	assert.Nil(t, r.Best("create a floor"))
}

func TestRegistryMatchOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(mustPattern("First", "wall", types.PatternContains, 0.5))
	r.Register(mustPattern("Second", "wall", types.PatternContains, 0.9))

	matched := r.Match("a wall")
	require.Len(t, matched, 2)
	assert.Equal(t, "First", matched[0].IntentName)
	assert.Equal(t, "Second", matched[1].IntentName)
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	require.NotEmpty(t, r.Patterns())

	tests := []struct {
		text string
		want string
	}{
		{"check fire exits", "CheckFireSafety"},
		{"does this meet nfpa 101", "CheckFireSafety"},
		{"check compliance for this floor plan", "CheckCompliance"},
		{"is the building code satisfied", "CheckCompliance"},
		{"check accessibility of the corridor", "CheckAccessibility"},
		{"is this wheelchair friendly", "CheckAccessibility"},
		{"run a quantity takeoff", "RunTakeoff"},
		{"model health report", "AnalyzeModelHealth"},
		{"run clash detection", "AnalyzeModelHealth"},
		{"energy analysis for climate zone 4", "AnalyzeEnergy"},
	}
	for _, tt := range tests {
		best := r.Best(tt.text)
		require.NotNil(t, best, "text %q", tt.text)
		assert.Equal(t, tt.want, best.IntentName, "text %q", tt.text)
	}

	assert.Nil(t, r.Best("create a wall"))
}
