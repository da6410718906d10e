package catalog

import (
	"testing"

	"github.com/meshintelligence/bim-assistant/pkg/types"
)

func entitiesOfType(entities []types.Entity, typ types.EntityType) []types.Entity {
	var out []types.Entity
	for _, e := range entities {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestExtractDomainEntitiesElements(t *testing.T) {
	c := New()
	entities := c.ExtractDomainEntities("create a wall next to the door")

	elems := entitiesOfType(entities, types.EntityElementType)
	if len(elems) != 2 {
		t.Fatalf("got %d element entities, want 2: %v", len(elems), elems)
	}
	if elems[0].NormalizedValue != "Wall" || elems[1].NormalizedValue != "Door" {
		t.Errorf("elements = %s, %s; want Wall, Door", elems[0].NormalizedValue, elems[1].NormalizedValue)
	}
	for _, e := range elems {
		if e.Confidence < 0.8 {
			t.Errorf("element %s: confidence %g below 0.8", e.Value, e.Confidence)
		}
	}
}

// Every direction mention is reported, in order of appearance.
func TestExtractDomainEntitiesDirections(t *testing.T) {
	c := New()
	entities := c.ExtractDomainEntities("move north then east")

	dirs := entitiesOfType(entities, types.EntityDirection)
	if len(dirs) != 2 {
		t.Fatalf("got %d direction entities, want 2: %v", len(dirs), dirs)
	}
	if dirs[0].NormalizedValue != "North" || dirs[1].NormalizedValue != "East" {
		t.Errorf("directions = %s, %s; want North, East", dirs[0].NormalizedValue, dirs[1].NormalizedValue)
	}
}

func TestExtractDomainEntitiesRoomMetadata(t *testing.T) {
	c := New()
	entities := c.ExtractDomainEntities("create a bedroom")

	rooms := entitiesOfType(entities, types.EntityRoomType)
	if len(rooms) != 1 {
		t.Fatalf("got %d room entities, want 1: %v", len(rooms), rooms)
	}
	room := rooms[0]
	if room.NormalizedValue != "Bedroom" {
		t.Errorf("room = %s, want Bedroom", room.NormalizedValue)
	}
	if room.Metadata[MetaDefaultArea] == "" || room.Metadata[MetaMinArea] == "" {
		t.Errorf("room metadata incomplete: %v", room.Metadata)
	}
}

func TestExtractDomainEntitiesMaterial(t *testing.T) {
	c := New()
	entities := c.ExtractDomainEntities("build a concrete wall")

	mats := entitiesOfType(entities, types.EntityMaterial)
	if len(mats) != 1 {
		t.Fatalf("got %d material entities, want 1: %v", len(mats), mats)
	}
	if mats[0].NormalizedValue != "Concrete" {
		t.Errorf("material = %s, want Concrete", mats[0].NormalizedValue)
	}
	if mats[0].Metadata[MetaIsStructural] != "true" {
		t.Errorf("concrete should carry IsStructural=true, got %v", mats[0].Metadata)
	}
}

// A synonym mention resolves to its canonical material, once.
func TestExtractDomainEntitiesSynonymMention(t *testing.T) {
	c := New()
	entities := c.ExtractDomainEntities("a timber frame with timber cladding")

	mats := entitiesOfType(entities, types.EntityMaterial)
	if len(mats) != 1 {
		t.Fatalf("got %d material entities, want 1: %v", len(mats), mats)
	}
	if mats[0].NormalizedValue != "Wood" {
		t.Errorf("material = %s, want Wood", mats[0].NormalizedValue)
	}
}

func TestExtractDomainEntitiesEmpty(t *testing.T) {
	c := New()
	if got := c.ExtractDomainEntities(""); len(got) != 0 {
		t.Fatalf("entities for empty input: %v", got)
	}
	if got := c.ExtractDomainEntities("the weather is nice"); len(got) != 0 {
		t.Fatalf("entities for off-domain input: %v", got)
	}
}
