package catalog

import (
	"strings"
	"testing"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

func TestValidateBuiltins(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestIntentInvariants(t *testing.T) {
	for _, in := range New().Intents() {
		if len(in.Keywords) == 0 {
			t.Errorf("intent %s: no keywords", in.Name)
		}
		if len(in.Examples) == 0 {
			t.Errorf("intent %s: no examples", in.Name)
		}
		for _, kw := range in.Keywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("intent %s: keyword %q is not lowercase", in.Name, kw)
			}
		}
	}
}

func TestIntentsOrderStable(t *testing.T) {
	c := New()
	first := c.Intents()
	second := c.Intents()
	if len(first) != len(second) {
		t.Fatalf("intent count changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("intent order changed at %d: %s vs %s", i, first[i].Name, second[i].Name)
		}
	}
}

func TestRoomAreaInvariant(t *testing.T) {
	for key, def := range New().RoomTypes() {
		if def.DefaultArea <= def.MinArea {
			t.Errorf("room %s: default area %g not above min area %g", key, def.DefaultArea, def.MinArea)
		}
	}
}

func TestStructuralCategoryImpliesFlag(t *testing.T) {
	for key, def := range New().Materials() {
		if def.Category == types.MaterialStructural && !def.IsStructural {
			t.Errorf("material %s: structural category without structural flag", key)
		}
	}
}

func TestResolveRoomType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // canonical name; "" means no match
	}{
		{"direct key", "bedroom", "Bedroom"},
		{"direct key uppercased", "BEDROOM", "Bedroom"},
		{"direct key padded", "  kitchen  ", "Kitchen"},
		{"synonym toilet", "toilet", "Bathroom"},
		{"synonym lounge", "lounge", "Living Room"},
		{"synonym study", "study", "Office"},
		{"synonym hallway", "hallway", "Corridor"},
		{"substring master bedroom", "master bedroom", "Bedroom"},
		{"substring sentence", "a small guest room upstairs", "Bedroom"},
		{"unknown", "unknown_room_type", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := c.ResolveRoomType(tt.input)
			if tt.want == "" {
				if def != nil {
					t.Fatalf("ResolveRoomType(%q) = %s, want no match", tt.input, def.CanonicalName)
				}
				return
			}
			if def == nil {
				t.Fatalf("ResolveRoomType(%q) = nil, want %s", tt.input, tt.want)
			}
			if def.CanonicalName != tt.want {
				t.Errorf("ResolveRoomType(%q) = %s, want %s", tt.input, def.CanonicalName, tt.want)
			}
		})
	}
}

// Resolving a definition's own canonical name must yield the same
// definition: resolution is idempotent over its outputs.
func TestResolveRoomTypeIdempotent(t *testing.T) {
	c := New()
	for _, input := range []string{"toilet", "lounge", "master bedroom", "kitchenette"} {
		first := c.ResolveRoomType(input)
		if first == nil {
			t.Fatalf("ResolveRoomType(%q) = nil", input)
		}
		second := c.ResolveRoomType(strings.ToLower(first.CanonicalName))
		if second == nil || second.CanonicalName != first.CanonicalName {
			t.Errorf("re-resolving %q: got %v, want %s", input, second, first.CanonicalName)
		}
	}
}

func TestResolveMaterial(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"direct key", "steel", "Steel"},
		{"case upper", "STEEL", "Steel"},
		{"case title", "Steel", "Steel"},
		{"synonym timber", "timber", "Wood"},
		{"synonym cement", "cement", "Concrete"},
		{"synonym plasterboard", "plasterboard", "Drywall"},
		{"substring", "reinforced concrete slab", "Concrete"},
		{"unknown", "unobtainium", ""},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := c.ResolveMaterial(tt.input)
			if tt.want == "" {
				if def != nil {
					t.Fatalf("ResolveMaterial(%q) = %s, want no match", tt.input, def.CanonicalName)
				}
				return
			}
			if def == nil {
				t.Fatalf("ResolveMaterial(%q) = nil, want %s", tt.input, tt.want)
			}
			if def.CanonicalName != tt.want {
				t.Errorf("ResolveMaterial(%q) = %s, want %s", tt.input, def.CanonicalName, tt.want)
			}
		})
	}
}

// A direct key match must win over any substring match: "office" resolves
// to Office even though other entries could partially match longer text.
func TestDirectMatchBeatsSubstring(t *testing.T) {
	c := New()
	def := c.ResolveRoomType("office")
	if def == nil || def.CanonicalName != "Office" {
		t.Fatalf("ResolveRoomType(office) = %v, want Office", def)
	}

	// "home office" is an exact synonym and must not fall through to the
	// substring tier of another entry.
	def = c.ResolveRoomType("home office")
	if def == nil || def.CanonicalName != "Office" {
		t.Fatalf("ResolveRoomType(home office) = %v, want Office", def)
	}
}

func TestIntentLookup(t *testing.T) {
	c := New()
	if in := c.Intent("CreateWall"); in == nil || in.Category != types.CategoryCreation {
		t.Fatalf("Intent(CreateWall) = %v, want creation intent", in)
	}
	if in := c.Intent("NoSuchIntent"); in != nil {
		t.Fatalf("Intent(NoSuchIntent) = %v, want nil", in)
	}
}

// Returned maps are copies; callers must not be able to mutate the catalog.
func TestAccessorsReturnCopies(t *testing.T) {
	c := New()
	rooms := c.RoomTypes()
	delete(rooms, "bedroom")
	if c.ResolveRoomType("bedroom") == nil {
		t.Fatal("mutating the returned map changed the catalog")
	}
}
