// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the static building-domain knowledge base: intents,
// room types, materials, and vocabularies, with synonym-aware resolution.
// Implements: prd001-catalog (R1-R5);
//
//	docs/ARCHITECTURE.md § Domain Catalog.
package catalog

import (
	"fmt"
	"strings"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// Catalog is the immutable domain knowledge base. Construct it once with
// New (optionally merging an overlay) and share it by reference; all methods
// are read-only and safe for concurrent use (R5.1).
type Catalog struct {
	intents []types.Intent

	// roomOrder and materialOrder preserve declaration order so that the
	// substring resolution tier and entity extraction are deterministic
	// regardless of map iteration (R1.5).
	rooms     map[string]types.RoomTypeDefinition
	roomOrder []string

	materials     map[string]types.MaterialDefinition
	materialOrder []string

	elementTypes []string
	directions   []string
}

// New builds the catalog from the built-in definitions.
func New() *Catalog {
	c := &Catalog{
		rooms:        map[string]types.RoomTypeDefinition{},
		materials:    map[string]types.MaterialDefinition{},
		elementTypes: builtinElementTypes(),
		directions:   builtinDirections(),
	}
	c.intents = builtinIntents()
	for _, e := range builtinRoomTypes() {
		c.rooms[e.key] = e.def
		c.roomOrder = append(c.roomOrder, e.key)
	}
	for _, e := range builtinMaterials() {
		c.materials[e.key] = e.def
		c.materialOrder = append(c.materialOrder, e.key)
	}
	return c
}

// Intents returns the full intent catalog in declaration order. The order
// is stable across calls within a process lifetime (R1.5).
func (c *Catalog) Intents() []types.Intent {
	out := make([]types.Intent, len(c.intents))
	copy(out, c.intents)
	return out
}

// Intent looks up a catalog intent by name. Returns nil when unknown.
func (c *Catalog) Intent(name string) *types.Intent {
	for i := range c.intents {
		if c.intents[i].Name == name {
			in := c.intents[i]
			return &in
		}
	}
	return nil
}

// RoomTypes returns the room-type table keyed by canonical lowercase
// identifier. Synonyms are not keys (R2.1).
func (c *Catalog) RoomTypes() map[string]types.RoomTypeDefinition {
	out := make(map[string]types.RoomTypeDefinition, len(c.rooms))
	for k, v := range c.rooms {
		out[k] = v
	}
	return out
}

// Materials returns the material table keyed by canonical lowercase identifier.
func (c *Catalog) Materials() map[string]types.MaterialDefinition {
	out := make(map[string]types.MaterialDefinition, len(c.materials))
	for k, v := range c.materials {
		out[k] = v
	}
	return out
}

// ResolveRoomType resolves free text to a room-type definition. Matching is
// case-insensitive and three-tier: direct key, synonym, then substring
// containment ("master bedroom" contains "bedroom"). A direct key match
// always wins over a substring match; within the substring tier the first
// catalog entry in declaration order wins (R2.5, R2.6). Returns nil when
// nothing matches; callers treat that as "no entity", not an error.
func (c *Catalog) ResolveRoomType(text string) *types.RoomTypeDefinition {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return nil
	}

	if def, ok := c.rooms[key]; ok {
		return &def
	}

	for _, k := range c.roomOrder {
		def := c.rooms[k]
		for _, syn := range def.Synonyms {
			if syn == key {
				return &def
			}
		}
	}

	for _, k := range c.roomOrder {
		def := c.rooms[k]
		if strings.Contains(key, k) {
			return &def
		}
		for _, syn := range def.Synonyms {
			if strings.Contains(key, syn) {
				return &def
			}
		}
	}

	return nil
}

// ResolveMaterial resolves free text to a material definition using the
// same three-tier strategy as ResolveRoomType (R3.4).
func (c *Catalog) ResolveMaterial(text string) *types.MaterialDefinition {
	key := strings.ToLower(strings.TrimSpace(text))
	if key == "" {
		return nil
	}

	if def, ok := c.materials[key]; ok {
		return &def
	}

	for _, k := range c.materialOrder {
		def := c.materials[k]
		for _, syn := range def.Synonyms {
			if syn == key {
				return &def
			}
		}
	}

	for _, k := range c.materialOrder {
		def := c.materials[k]
		if strings.Contains(key, k) {
			return &def
		}
		for _, syn := range def.Synonyms {
			if strings.Contains(key, syn) {
				return &def
			}
		}
	}

	return nil
}

// Validate checks the catalog invariants: every intent has at least one
// keyword and one example with a known category, every room type has
// DefaultArea > MinArea, and structural-category materials carry the
// IsStructural flag (R1.3, R2.3, R3.3). Violations are configuration
// defects and are reported all at once.
func (c *Catalog) Validate() error {
	var problems []string

	for _, in := range c.intents {
		if in.Name == "" {
			problems = append(problems, "intent with empty name")
			continue
		}
		if len(in.Keywords) == 0 {
			problems = append(problems, fmt.Sprintf("intent %s: no keywords", in.Name))
		}
		if len(in.Examples) == 0 {
			problems = append(problems, fmt.Sprintf("intent %s: no examples", in.Name))
		}
		if !validCategory(in.Category) {
			problems = append(problems, fmt.Sprintf("intent %s: unknown category %q", in.Name, in.Category))
		}
	}

	for _, k := range c.roomOrder {
		def := c.rooms[k]
		if def.CanonicalName == "" {
			problems = append(problems, fmt.Sprintf("room type %s: empty canonical name", k))
		}
		if def.DefaultArea <= def.MinArea {
			problems = append(problems, fmt.Sprintf("room type %s: default area %g not above min area %g", k, def.DefaultArea, def.MinArea))
		}
	}

	for _, k := range c.materialOrder {
		def := c.materials[k]
		if def.CanonicalName == "" {
			problems = append(problems, fmt.Sprintf("material %s: empty canonical name", k))
		}
		if !validMaterialCategory(def.Category) {
			problems = append(problems, fmt.Sprintf("material %s: unknown category %q", k, def.Category))
		}
		if def.Category == types.MaterialStructural && !def.IsStructural {
			problems = append(problems, fmt.Sprintf("material %s: structural category without structural flag", k))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validCategory(cat types.IntentCategory) bool {
	switch cat {
	case types.CategoryCreation, types.CategoryModification, types.CategorySelection,
		types.CategoryView, types.CategoryQuery, types.CategoryAnalysis, types.CategoryUtility:
		return true
	}
	return false
}

func validMaterialCategory(cat types.MaterialCategory) bool {
	switch cat {
	case types.MaterialStructural, types.MaterialFinish, types.MaterialMEP, types.MaterialOther:
		return true
	}
	return false
}
