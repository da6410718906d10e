// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EntityType categorizes an extracted entity span.
// Per prd003-extraction R1.1 and prd001-catalog R4.1.
type EntityType string

const (
	// Domain entity types produced by the catalog resolver (prd001-catalog R4).
	EntityElementType EntityType = "element_type"
	EntityRoomType    EntityType = "room_type"
	EntityMaterial    EntityType = "material"
	EntityDirection   EntityType = "direction"

	// Lexical entity types produced by the extractor (prd003-extraction R1).
	EntityDimension          EntityType = "dimension"
	EntityNumber             EntityType = "number"
	EntityColor              EntityType = "color"
	EntityPerformanceSpec    EntityType = "performance_spec"
	EntityComplianceStandard EntityType = "compliance_standard"
	EntityClimateZone        EntityType = "climate_zone"
	EntityProjectType        EntityType = "project_type"
)

// Entity is a typed span recognized in the input text. Entities are produced
// fresh per input string and never mutated after creation.
// Per prd003-extraction R1.2-R1.5, prd001-catalog R4.2-R4.4.
type Entity struct {
	// Type categorizes the span.
	Type EntityType `json:"type" yaml:"type"`

	// Value is the matched surface text, lowercase-normalized for lookup.
	Value string `json:"value" yaml:"value"`

	// NormalizedValue is the canonical display form (e.g. "Bathroom" for
	// "toilet", "4000mm" for "4m"). Always set when resolution succeeds.
	NormalizedValue string `json:"normalized_value" yaml:"normalized_value"`

	// Confidence is a value in [0, 1]. Deterministic lexical matches sit in
	// a fixed high band (>= 0.9 for vocabulary/regex matches, >= 0.8 for
	// catalog-resolved domain entities) rather than a graded score.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Metadata carries extra facts from the canonical definition, populated
	// only where the definition has them (room types get DefaultArea and
	// MinArea, materials get IsStructural).
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// MaterialCategory groups materials by their role in the building.
// Per prd001-catalog R3.3.
type MaterialCategory string

const (
	MaterialStructural MaterialCategory = "structural"
	MaterialFinish     MaterialCategory = "finish"
	MaterialMEP        MaterialCategory = "mep"
	MaterialOther      MaterialCategory = "other"
)

// MaterialDefinition is a static catalog entry for a building material,
// keyed in the catalog by its lowercase identifier. Per prd001-catalog R3.
type MaterialDefinition struct {
	// CanonicalName is the display form (e.g. "Concrete").
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`

	// Synonyms are alternate lowercase lookup keys (e.g. "cement").
	Synonyms []string `json:"synonyms" yaml:"synonyms"`

	// Category groups the material. A structural category implies
	// IsStructural (R3.3).
	Category MaterialCategory `json:"category" yaml:"category"`

	// IsStructural reports whether the material can carry load.
	IsStructural bool `json:"is_structural" yaml:"is_structural"`
}

// RoomTypeDefinition is a static catalog entry for a room type, keyed in
// the catalog by its lowercase identifier. Per prd001-catalog R2.
type RoomTypeDefinition struct {
	// CanonicalName is the display form (e.g. "Living Room").
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`

	// Synonyms are alternate lowercase lookup keys (e.g. "lounge").
	Synonyms []string `json:"synonyms" yaml:"synonyms"`

	// MinArea is the smallest acceptable floor area in square meters.
	MinArea float64 `json:"min_area" yaml:"min_area"`

	// DefaultArea is the floor area used when the user gives none.
	// Always strictly greater than MinArea (R2.3).
	DefaultArea float64 `json:"default_area" yaml:"default_area"`

	// MinWidth is the smallest acceptable clear width in meters. Zero when
	// not applicable; set for corridor-like spaces (R2.4).
	MinWidth float64 `json:"min_width,omitempty" yaml:"min_width,omitempty"`

	RequiresWindow      bool `json:"requires_window" yaml:"requires_window"`
	RequiresDoor        bool `json:"requires_door" yaml:"requires_door"`
	RequiresPlumbing    bool `json:"requires_plumbing" yaml:"requires_plumbing"`
	RequiresVentilation bool `json:"requires_ventilation" yaml:"requires_ventilation"`

	// AdjacentPreferred lists room-type keys this type is commonly placed
	// next to (e.g. kitchen → dining).
	AdjacentPreferred []string `json:"adjacent_preferred,omitempty" yaml:"adjacent_preferred,omitempty"`
}
