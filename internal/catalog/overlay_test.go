package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlayAddsEntries(t *testing.T) {
	path := writeOverlay(t, `
room_types:
  gym:
    canonical_name: Gym
    synonyms: [fitness room, exercise room]
    min_area: 10
    default_area: 20
materials:
  bamboo:
    canonical_name: Bamboo
    synonyms: [bamboo plank]
    category: finish
`)

	base := New()
	merged, err := base.LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}

	if def := merged.ResolveRoomType("fitness room"); def == nil || def.CanonicalName != "Gym" {
		t.Errorf("ResolveRoomType(fitness room) = %v, want Gym", def)
	}
	if def := merged.ResolveMaterial("bamboo"); def == nil || def.CanonicalName != "Bamboo" {
		t.Errorf("ResolveMaterial(bamboo) = %v, want Bamboo", def)
	}

	// The base catalog must be untouched.
	if base.ResolveRoomType("gym") != nil {
		t.Error("overlay leaked into the base catalog")
	}
	// Built-in entries survive the merge.
	if merged.ResolveRoomType("toilet") == nil {
		t.Error("built-in entries lost after merge")
	}
}

func TestLoadOverlayReplacesIntentByName(t *testing.T) {
	path := writeOverlay(t, `
intents:
  - name: CreateWall
    category: creation
    keywords: [wall, bulkhead]
    examples: [create a bulkhead]
`)

	merged, err := New().LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	in := merged.Intent("CreateWall")
	if in == nil {
		t.Fatal("CreateWall missing after overlay")
	}
	if len(in.Keywords) != 2 || in.Keywords[1] != "bulkhead" {
		t.Errorf("CreateWall keywords = %v, want overlay keywords", in.Keywords)
	}
	if len(merged.Intents()) != len(New().Intents()) {
		t.Error("replacing an intent changed the intent count")
	}
}

// An overlay that breaks a catalog invariant is rejected wholesale.
func TestLoadOverlayRejectsInvalid(t *testing.T) {
	path := writeOverlay(t, `
room_types:
  sauna:
    canonical_name: Sauna
    min_area: 10
    default_area: 4
`)

	if _, err := New().LoadOverlay(path); err == nil {
		t.Fatal("expected validation error for default_area below min_area")
	}
}

func TestLoadOverlayMissingFile(t *testing.T) {
	if _, err := New().LoadOverlay(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing overlay file")
	}
}
