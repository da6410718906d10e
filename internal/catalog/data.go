// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/meshintelligence/bim-assistant/pkg/types"

// roomEntry and materialEntry pair a canonical lowercase key with its
// definition so the built-in tables keep declaration order (R1.5).
type roomEntry struct {
	key string
	def types.RoomTypeDefinition
}

type materialEntry struct {
	key string
	def types.MaterialDefinition
}

// builtinIntents returns the intent catalog. Keywords are lowercase and use
// canonical verbs; the classifier's synonym expansion maps surface verbs
// ("add", "place", "remove") onto them before matching (prd002 R2.2).
func builtinIntents() []types.Intent {
	return []types.Intent{
		// Creation. More specific intents are declared before generic ones
		// so equal keyword scores resolve in their favor (prd002 R3.5).
		{
			Name:     "CreateDoor",
			Category: types.CategoryCreation,
			Keywords: []string{"door", "doorway", "entrance"},
			Examples: []string{"create a door", "create a door in the wall", "new door"},
		},
		{
			Name:     "CreateWindow",
			Category: types.CategoryCreation,
			Keywords: []string{"window", "glazing", "opening"},
			Examples: []string{"create a window", "create a window here", "new window"},
		},
		{
			Name:     "CreateWall",
			Category: types.CategoryCreation,
			Keywords: []string{"wall", "partition", "create"},
			Examples: []string{"create a wall", "create a partition", "new wall"},
		},
		{
			Name:     "CreateFloor",
			Category: types.CategoryCreation,
			Keywords: []string{"floor", "slab", "create"},
			Examples: []string{"create a floor", "create a slab", "new floor"},
		},
		{
			Name:     "CreateRoof",
			Category: types.CategoryCreation,
			Keywords: []string{"roof", "create"},
			Examples: []string{"create a roof", "new roof"},
		},
		{
			Name:     "CreateColumn",
			Category: types.CategoryCreation,
			Keywords: []string{"column", "pillar", "post"},
			Examples: []string{"create a column", "new column"},
		},
		{
			Name:     "CreateBeam",
			Category: types.CategoryCreation,
			Keywords: []string{"beam", "girder", "joist"},
			Examples: []string{"create a beam", "new beam"},
		},
		{
			Name:     "CreateStair",
			Category: types.CategoryCreation,
			Keywords: []string{"stair", "stairs", "staircase", "steps"},
			Examples: []string{"create a stair", "create a staircase", "new staircase"},
		},
		{
			Name:     "CreateRoom",
			Category: types.CategoryCreation,
			Keywords: []string{"room", "space", "bedroom", "bathroom", "kitchen"},
			Examples: []string{"create a room", "create a bedroom", "create a kitchen"},
		},
		{
			Name:     "CreateGrid",
			Category: types.CategoryCreation,
			Keywords: []string{"grid", "gridline", "axis"},
			Examples: []string{"create a grid", "create gridlines"},
		},

		// Modification.
		{
			Name:     "MoveElement",
			Category: types.CategoryModification,
			Keywords: []string{"move", "shift", "relocate"},
			Examples: []string{"move this", "move the wall", "move it north"},
		},
		{
			Name:     "RotateElement",
			Category: types.CategoryModification,
			Keywords: []string{"rotate", "turn", "spin"},
			Examples: []string{"rotate this", "rotate the door", "turn it around"},
		},
		{
			Name:     "ResizeElement",
			Category: types.CategoryModification,
			Keywords: []string{"resize", "scale", "stretch", "taller", "wider", "shorter"},
			Examples: []string{"resize this wall", "scale it up", "stretch the wall"},
		},
		{
			Name:     "CopyElement",
			Category: types.CategoryModification,
			Keywords: []string{"copy", "duplicate", "mirror", "array"},
			Examples: []string{"copy this", "duplicate the wall", "mirror it"},
		},
		{
			Name:     "DeleteElement",
			Category: types.CategoryModification,
			Keywords: []string{"delete", "demolish"},
			Examples: []string{"delete this", "delete the wall", "delete selected"},
		},
		{
			Name:     "ModifyParameter",
			Category: types.CategoryModification,
			Keywords: []string{"change", "set", "parameter", "property", "height", "width", "thickness"},
			Examples: []string{"change the height", "set the width", "change wall thickness"},
		},

		// Selection.
		{
			Name:     "SelectElements",
			Category: types.CategorySelection,
			Keywords: []string{"select", "pick", "choose", "grab"},
			Examples: []string{"select all walls", "select everything", "pick the door"},
		},
		{
			Name:     "FilterSelection",
			Category: types.CategorySelection,
			Keywords: []string{"filter", "only", "except"},
			Examples: []string{"filter the selection", "only the doors"},
		},

		// View.
		{
			Name:     "ShowView",
			Category: types.CategoryView,
			Keywords: []string{"show", "view", "display", "open"},
			Examples: []string{"show the floor plan", "open the 3d view", "display level 2"},
		},
		{
			Name:     "HideElements",
			Category: types.CategoryView,
			Keywords: []string{"hide", "isolate", "unhide", "reveal"},
			Examples: []string{"hide these", "isolate the walls", "hide the roof"},
		},
		{
			Name:     "ZoomView",
			Category: types.CategoryView,
			Keywords: []string{"zoom", "fit", "pan"},
			Examples: []string{"zoom to fit", "zoom in", "zoom out"},
		},

		// Query.
		{
			Name:     "QueryElements",
			Category: types.CategoryQuery,
			Keywords: []string{"how many", "count", "list", "find", "where"},
			Examples: []string{"how many doors", "count the windows", "find all walls"},
		},
		{
			Name:     "QueryParameter",
			Category: types.CategoryQuery,
			Keywords: []string{"what is", "value", "dimension", "area of"},
			Examples: []string{"what is the height", "what is the area of this room"},
		},

		// Analysis.
		{
			Name:     "CheckCompliance",
			Category: types.CategoryAnalysis,
			Keywords: []string{"compliance", "code", "regulation", "check"},
			Examples: []string{"check compliance", "check the building code", "run a code check"},
		},
		{
			Name:     "CheckFireSafety",
			Category: types.CategoryAnalysis,
			Keywords: []string{"fire", "egress", "sprinkler", "evacuation"},
			Examples: []string{"check fire safety", "check the egress paths", "verify fire rating"},
		},
		{
			Name:     "CheckAccessibility",
			Category: types.CategoryAnalysis,
			Keywords: []string{"accessibility", "accessible", "wheelchair", "ramp"},
			Examples: []string{"check accessibility", "is this wheelchair accessible"},
		},
		{
			Name:     "CheckStructural",
			Category: types.CategoryAnalysis,
			Keywords: []string{"structural", "load", "span", "bearing"},
			Examples: []string{"check the structure", "review the structural system"},
		},
		{
			Name:     "AnalyzeEnergy",
			Category: types.CategoryAnalysis,
			Keywords: []string{"energy", "thermal", "insulation", "efficiency"},
			Examples: []string{"run an energy analysis", "check the insulation"},
		},
		{
			Name:     "RunTakeoff",
			Category: types.CategoryAnalysis,
			Keywords: []string{"takeoff", "quantity", "quantities", "estimate", "cost"},
			Examples: []string{"run a quantity takeoff", "estimate the cost", "material quantities"},
		},
		{
			Name:     "AnalyzeModelHealth",
			Category: types.CategoryAnalysis,
			Keywords: []string{"health", "audit", "warnings", "clash", "errors"},
			Examples: []string{"check the model health", "audit the model", "show model warnings"},
		},

		// Utility.
		{
			Name:     "Undo",
			Category: types.CategoryUtility,
			Keywords: []string{"undo", "revert", "back"},
			Examples: []string{"undo that", "undo the last change"},
		},
		{
			Name:     "Redo",
			Category: types.CategoryUtility,
			Keywords: []string{"redo", "again"},
			Examples: []string{"redo that", "do it again"},
		},
		{
			Name:     "Help",
			Category: types.CategoryUtility,
			Keywords: []string{"help", "how do", "what can"},
			Examples: []string{"help", "what can you do", "how do i create a wall"},
		},
	}
}

// builtinRoomTypes returns the room-type table. Areas are square meters,
// widths meters (prd001 R2.2-R2.4).
func builtinRoomTypes() []roomEntry {
	return []roomEntry{
		{"bedroom", types.RoomTypeDefinition{
			CanonicalName:  "Bedroom",
			Synonyms:       []string{"sleeping room", "master bedroom", "guest room"},
			MinArea:        7.0,
			DefaultArea:    12.0,
			RequiresWindow: true, RequiresDoor: true, RequiresVentilation: true,
			AdjacentPreferred: []string{"bathroom", "corridor"},
		}},
		{"bathroom", types.RoomTypeDefinition{
			CanonicalName:    "Bathroom",
			Synonyms:         []string{"toilet", "washroom", "wc", "restroom", "lavatory", "powder room"},
			MinArea:          3.0,
			DefaultArea:      5.0,
			RequiresDoor:     true,
			RequiresPlumbing: true, RequiresVentilation: true,
			AdjacentPreferred: []string{"bedroom", "corridor"},
		}},
		{"kitchen", types.RoomTypeDefinition{
			CanonicalName:    "Kitchen",
			Synonyms:         []string{"kitchenette", "cooking area"},
			MinArea:          5.0,
			DefaultArea:      10.0,
			RequiresWindow:   true,
			RequiresPlumbing: true, RequiresVentilation: true,
			AdjacentPreferred: []string{"dining room", "pantry"},
		}},
		{"living room", types.RoomTypeDefinition{
			CanonicalName:     "Living Room",
			Synonyms:          []string{"lounge", "family room", "sitting room", "den", "great room"},
			MinArea:           12.0,
			DefaultArea:       20.0,
			RequiresWindow:    true,
			AdjacentPreferred: []string{"dining room", "corridor"},
		}},
		{"dining room", types.RoomTypeDefinition{
			CanonicalName:     "Dining Room",
			Synonyms:          []string{"dining area", "eating area"},
			MinArea:           8.0,
			DefaultArea:       14.0,
			RequiresWindow:    true,
			AdjacentPreferred: []string{"kitchen", "living room"},
		}},
		{"office", types.RoomTypeDefinition{
			CanonicalName:     "Office",
			Synonyms:          []string{"study", "home office", "workspace", "workroom"},
			MinArea:           6.0,
			DefaultArea:       10.0,
			RequiresWindow:    true,
			RequiresDoor:      true,
			AdjacentPreferred: []string{"corridor"},
		}},
		{"corridor", types.RoomTypeDefinition{
			CanonicalName: "Corridor",
			Synonyms:      []string{"hallway", "hall", "passage", "passageway"},
			MinArea:       2.0,
			DefaultArea:   6.0,
			MinWidth:      1.2,
		}},
		{"closet", types.RoomTypeDefinition{
			CanonicalName: "Closet",
			Synonyms:      []string{"storage", "storage room", "wardrobe", "walk-in closet"},
			MinArea:       1.0,
			DefaultArea:   3.0,
		}},
		{"garage", types.RoomTypeDefinition{
			CanonicalName: "Garage",
			Synonyms:      []string{"carport", "parking"},
			MinArea:       15.0,
			DefaultArea:   20.0,
			RequiresDoor:  true, RequiresVentilation: true,
		}},
		{"laundry", types.RoomTypeDefinition{
			CanonicalName:    "Laundry",
			Synonyms:         []string{"laundry room", "utility room", "mudroom"},
			MinArea:          3.0,
			DefaultArea:      5.0,
			RequiresPlumbing: true, RequiresVentilation: true,
			AdjacentPreferred: []string{"kitchen", "garage"},
		}},
		{"pantry", types.RoomTypeDefinition{
			CanonicalName:     "Pantry",
			Synonyms:          []string{"larder", "food storage"},
			MinArea:           1.5,
			DefaultArea:       3.0,
			AdjacentPreferred: []string{"kitchen"},
		}},
		{"balcony", types.RoomTypeDefinition{
			CanonicalName: "Balcony",
			Synonyms:      []string{"terrace", "deck", "patio"},
			MinArea:       2.0,
			DefaultArea:   6.0,
			RequiresDoor:  true,
		}},
	}
}

// builtinMaterials returns the material table (prd001 R3).
func builtinMaterials() []materialEntry {
	return []materialEntry{
		{"concrete", types.MaterialDefinition{
			CanonicalName: "Concrete",
			Synonyms:      []string{"cement", "reinforced concrete"},
			Category:      types.MaterialStructural,
			IsStructural:  true,
		}},
		{"steel", types.MaterialDefinition{
			CanonicalName: "Steel",
			Synonyms:      []string{"metal", "structural steel"},
			Category:      types.MaterialStructural,
			IsStructural:  true,
		}},
		{"wood", types.MaterialDefinition{
			CanonicalName: "Wood",
			Synonyms:      []string{"timber", "lumber", "hardwood", "plywood"},
			Category:      types.MaterialStructural,
			IsStructural:  true,
		}},
		{"brick", types.MaterialDefinition{
			CanonicalName: "Brick",
			Synonyms:      []string{"masonry", "brickwork", "block"},
			Category:      types.MaterialStructural,
			IsStructural:  true,
		}},
		{"stone", types.MaterialDefinition{
			CanonicalName: "Stone",
			Synonyms:      []string{"granite", "marble", "limestone"},
			Category:      types.MaterialStructural,
			IsStructural:  true,
		}},
		{"glass", types.MaterialDefinition{
			CanonicalName: "Glass",
			Synonyms:      []string{"glazing", "curtain wall"},
			Category:      types.MaterialFinish,
		}},
		{"drywall", types.MaterialDefinition{
			CanonicalName: "Drywall",
			Synonyms:      []string{"plasterboard", "gypsum", "gypsum board", "sheetrock"},
			Category:      types.MaterialFinish,
		}},
		{"tile", types.MaterialDefinition{
			CanonicalName: "Tile",
			Synonyms:      []string{"ceramic", "porcelain", "mosaic"},
			Category:      types.MaterialFinish,
		}},
		{"insulation", types.MaterialDefinition{
			CanonicalName: "Insulation",
			Synonyms:      []string{"mineral wool", "fiberglass", "foam board"},
			Category:      types.MaterialOther,
		}},
		{"aluminum", types.MaterialDefinition{
			CanonicalName: "Aluminum",
			Synonyms:      []string{"aluminium"},
			Category:      types.MaterialOther,
		}},
		{"copper", types.MaterialDefinition{
			CanonicalName: "Copper",
			Synonyms:      []string{"copper pipe", "copper wire"},
			Category:      types.MaterialMEP,
		}},
		{"pvc", types.MaterialDefinition{
			CanonicalName: "PVC",
			Synonyms:      []string{"vinyl", "plastic pipe", "upvc"},
			Category:      types.MaterialMEP,
		}},
	}
}

// builtinElementTypes lists the host element keywords recognized during
// domain extraction (prd001 R4.2). Normalization capitalizes the first letter.
func builtinElementTypes() []string {
	return []string{
		"wall", "door", "window", "floor", "roof", "ceiling",
		"column", "beam", "stair", "slab", "railing", "ramp",
	}
}

// builtinDirections lists direction words. Every occurrence in the input is
// extracted, not just the first (prd001 R4.5).
func builtinDirections() []string {
	return []string{
		"north", "south", "east", "west",
		"northeast", "northwest", "southeast", "southwest",
		"up", "down", "left", "right",
	}
}
