// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

func ofType(entities []types.Entity, typ types.EntityType) []types.Entity {
	var out []types.Entity
	for _, e := range entities {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestExtractDimensions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"meters compact", "create a 4m wall", "4000mm"},
		{"meters spelled", "a wall 4 meters long", "4000mm"},
		{"metres british", "4 metres of railing", "4000mm"},
		{"millimeters identity", "offset by 4000mm", "4000mm"},
		{"centimeters", "a 30cm ledge", "300mm"},
		{"feet", "a 10 feet span", "3048mm"},
		{"feet fractional result", "3 feet high", "914.4mm"},
		{"single foot", "1 foot deep", "304.8mm"},
		{"ft abbreviation", "an 8 ft ceiling", "2438.4mm"},
		{"inches", "6 inches of insulation", "152.4mm"},
		{"inch quote mark", `a 2" gap`, "50.8mm"},
		{"decimal meters", "a 2.5 m opening", "2500mm"},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := ofType(e.Extract(tt.input), types.EntityDimension)
			if len(dims) != 1 {
				t.Fatalf("Extract(%q): got %d dimensions, want 1: %v", tt.input, len(dims), dims)
			}
			if dims[0].NormalizedValue != tt.want {
				t.Errorf("Extract(%q) = %s, want %s", tt.input, dims[0].NormalizedValue, tt.want)
			}
			if dims[0].Confidence < 0.9 {
				t.Errorf("Extract(%q): confidence %g below 0.9", tt.input, dims[0].Confidence)
			}
		})
	}
}

// A number consumed by a dimension must not also surface as a bare number.
func TestExtractNumberMasking(t *testing.T) {
	e := New()
	entities := e.Extract("a 4m wall with 3 windows")

	dims := ofType(entities, types.EntityDimension)
	nums := ofType(entities, types.EntityNumber)
	if len(dims) != 1 || dims[0].NormalizedValue != "4000mm" {
		t.Fatalf("dimensions = %v, want one 4000mm", dims)
	}
	if len(nums) != 1 || nums[0].NormalizedValue != "3" {
		t.Fatalf("numbers = %v, want one bare 3", nums)
	}
}

func TestExtractComplianceStandards(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"check ada compliance", "ADA"},
		{"does this meet nfpa 101", "NFPA 101"},
		{"verify against IBC 2021", "IBC 2021"},
		{"ashrae requirements", "ASHRAE"},
	}

	e := New()
	for _, tt := range tests {
		stds := ofType(e.Extract(tt.input), types.EntityComplianceStandard)
		if len(stds) != 1 {
			t.Fatalf("Extract(%q): got %d standards, want 1: %v", tt.input, len(stds), stds)
		}
		if stds[0].NormalizedValue != tt.want {
			t.Errorf("Extract(%q) = %s, want %s", tt.input, stds[0].NormalizedValue, tt.want)
		}
	}

	// The section number belongs to the standard, not the number pass.
	if nums := ofType(e.Extract("does this meet nfpa 101"), types.EntityNumber); len(nums) != 0 {
		t.Errorf("standard section leaked as number: %v", nums)
	}
}

func TestExtractClimateZone(t *testing.T) {
	e := New()
	entities := e.Extract("design for climate zone 4a")

	zones := ofType(entities, types.EntityClimateZone)
	if len(zones) != 1 || zones[0].NormalizedValue != "Zone 4A" {
		t.Fatalf("zones = %v, want Zone 4A", zones)
	}
	if nums := ofType(entities, types.EntityNumber); len(nums) != 0 {
		t.Errorf("zone digit leaked as number: %v", nums)
	}
}

func TestExtractVocabularies(t *testing.T) {
	e := New()

	dirs := ofType(e.Extract("move it north then southwest"), types.EntityDirection)
	if len(dirs) != 2 || dirs[0].NormalizedValue != "North" || dirs[1].NormalizedValue != "Southwest" {
		t.Errorf("directions = %v, want North, Southwest", dirs)
	}

	colors := ofType(e.Extract("paint the wall grey"), types.EntityColor)
	if len(colors) != 1 || colors[0].NormalizedValue != "Gray" {
		t.Errorf("colors = %v, want Gray", colors)
	}

	specs := ofType(e.Extract("a fire rated partition"), types.EntityPerformanceSpec)
	if len(specs) != 1 || specs[0].NormalizedValue != "Fire Rated" {
		t.Errorf("specs = %v, want Fire Rated", specs)
	}

	projects := ofType(e.Extract("a mixed-use development"), types.EntityProjectType)
	if len(projects) != 1 || projects[0].NormalizedValue != "Mixed Use" {
		t.Errorf("projects = %v, want Mixed Use", projects)
	}
}

func TestExtractOrderAndEmpty(t *testing.T) {
	e := New()

	entities := e.Extract("a red 4m wall facing north")
	if len(entities) != 3 {
		t.Fatalf("got %d entities, want 3: %v", len(entities), entities)
	}
	wantOrder := []types.EntityType{types.EntityColor, types.EntityDimension, types.EntityDirection}
	for i, typ := range wantOrder {
		if entities[i].Type != typ {
			t.Errorf("entity %d: type %s, want %s", i, entities[i].Type, typ)
		}
	}

	if got := e.Extract(""); got == nil || len(got) != 0 {
		t.Errorf("Extract(empty) = %v, want empty non-nil slice", got)
	}
	if got := e.Extract("hello there"); len(got) != 0 {
		t.Errorf("Extract(no entities) = %v, want empty", got)
	}
}

func TestResolveSynonym(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add", "create"},
		{"Place", "create"},
		{"remove", "delete"},
		{"timber", "wood"},
		{"plasterboard", "drywall"},
		{"lounge", "living room"},
		{"wall", "wall"},
		{"", ""},
	}

	e := New()
	for _, tt := range tests {
		if got := e.ResolveSynonym(tt.input); got != tt.want {
			t.Errorf("ResolveSynonym(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
