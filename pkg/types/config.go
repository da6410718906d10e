package types

// CatalogConfig holds settings for building the domain catalog.
// Per prd001-catalog R5.
type CatalogConfig struct {
	// OverlayPath is an optional YAML file whose intents, room types, and
	// materials are merged over the built-in catalog at startup.
	OverlayPath string `json:"overlay_path,omitempty" yaml:"overlay_path,omitempty"`
}

// ClassifierConfig holds settings for intent classification.
// Per prd002-classification R3.2-R3.3.
type ClassifierConfig struct {
	// ScoreFloor is the score at or below which the classifier reports no
	// intent (default 0.3).
	ScoreFloor float64 `json:"score_floor" yaml:"score_floor"`
}

// InterpreterConfig holds settings for the combined interpretation pass.
// Per prd004-interpretation R1, R3.
type InterpreterConfig struct {
	// MaxSuggestions is the number of example phrases offered when a
	// classification is not confident (default 3).
	MaxSuggestions int `json:"max_suggestions" yaml:"max_suggestions"`
}

// AssistantConfig groups all subsystem configurations.
type AssistantConfig struct {
	Catalog     CatalogConfig     `json:"catalog" yaml:"catalog"`
	Classifier  ClassifierConfig  `json:"classifier" yaml:"classifier"`
	Interpreter InterpreterConfig `json:"interpreter" yaml:"interpreter"`
}
