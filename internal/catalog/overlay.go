// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

// Overlay is the YAML shape for extending the built-in catalog at startup.
// Keys in RoomTypes and Materials are canonical lowercase identifiers; an
// existing key replaces the built-in definition, a new key is appended after
// the built-ins in file order (prd001 R5.2).
type Overlay struct {
	Intents   []types.Intent                      `yaml:"intents"`
	RoomTypes map[string]types.RoomTypeDefinition `yaml:"room_types"`
	Materials map[string]types.MaterialDefinition `yaml:"materials"`
}

// LoadOverlay parses path and merges its entries into a copy of the catalog.
// Entries that violate the catalog invariants reject the whole overlay at
// load time; a half-applied overlay is never returned (prd001 R5.3).
func (c *Catalog) LoadOverlay(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overlay %s: %w", path, err)
	}

	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parsing overlay %s: %w", path, err)
	}

	merged := c.merge(ov)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("overlay %s: %w", path, err)
	}
	return merged, nil
}

// merge returns a new catalog with the overlay applied. The receiver is not
// modified; catalogs stay immutable after construction.
func (c *Catalog) merge(ov Overlay) *Catalog {
	merged := &Catalog{
		intents:       append([]types.Intent{}, c.intents...),
		rooms:         map[string]types.RoomTypeDefinition{},
		roomOrder:     append([]string{}, c.roomOrder...),
		materials:     map[string]types.MaterialDefinition{},
		materialOrder: append([]string{}, c.materialOrder...),
		elementTypes:  append([]string{}, c.elementTypes...),
		directions:    append([]string{}, c.directions...),
	}
	for k, v := range c.rooms {
		merged.rooms[k] = v
	}
	for k, v := range c.materials {
		merged.materials[k] = v
	}

	for _, in := range ov.Intents {
		replaced := false
		for i := range merged.intents {
			if merged.intents[i].Name == in.Name {
				merged.intents[i] = in
				replaced = true
				break
			}
		}
		if !replaced {
			merged.intents = append(merged.intents, in)
		}
	}

	// Map iteration order is not stable, so new keys are appended in sorted
	// order to keep the substring resolution tier deterministic.
	for _, k := range sortedKeys(ov.RoomTypes) {
		key := strings.ToLower(k)
		if _, exists := merged.rooms[key]; !exists {
			merged.roomOrder = append(merged.roomOrder, key)
		}
		merged.rooms[key] = ov.RoomTypes[k]
	}
	for _, k := range sortedKeys(ov.Materials) {
		key := strings.ToLower(k)
		if _, exists := merged.materials[key]; !exists {
			merged.materialOrder = append(merged.materialOrder, key)
		}
		merged.materials[key] = ov.Materials[k]
	}

	return merged
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// export is the serialization shape for catalog dumps.
type export struct {
	Intents   []types.Intent                      `json:"intents" yaml:"intents"`
	RoomTypes map[string]types.RoomTypeDefinition `json:"room_types" yaml:"room_types"`
	Materials map[string]types.MaterialDefinition `json:"materials" yaml:"materials"`
}

// ExportYAML writes the full catalog as YAML to w.
func (c *Catalog) ExportYAML(w io.Writer) error {
	data, err := yaml.Marshal(c.exportView())
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the full catalog as indented JSON to w.
func (c *Catalog) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.exportView())
}

func (c *Catalog) exportView() export {
	return export{
		Intents:   c.Intents(),
		RoomTypes: c.RoomTypes(),
		Materials: c.Materials(),
	}
}
