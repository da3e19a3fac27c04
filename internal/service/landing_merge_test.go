package service

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/seha22/studienhouse/internal/model"
)

func TestDeepMergeScalarOverride(t *testing.T) {
	base := map[string]interface{}{"title": "old", "count": float64(3)}
	override := map[string]interface{}{"title": "new"}

	got := DeepMerge(base, override)

	if got["title"] != "new" {
		t.Errorf("Expected title to be overridden to %q, got %v", "new", got["title"])
	}
	if got["count"] != float64(3) {
		t.Errorf("Expected omitted key to keep base value 3, got %v", got["count"])
	}
}

func TestDeepMergeNullKeepsBase(t *testing.T) {
	base := map[string]interface{}{"title": "keep me"}
	override := map[string]interface{}{"title": nil}

	got := DeepMerge(base, override)

	if got["title"] != "keep me" {
		t.Errorf("Expected null override to keep base value, got %v", got["title"])
	}
}

func TestDeepMergeArrayReplacedWholesale(t *testing.T) {
	base := map[string]interface{}{
		"items": []interface{}{"a", "b", "c"},
	}
	override := map[string]interface{}{
		"items": []interface{}{"x"},
	}

	got := DeepMerge(base, override)

	items, ok := got["items"].([]interface{})
	if !ok {
		t.Fatalf("Expected items to stay an array, got %T", got["items"])
	}
	if len(items) != 1 || items[0] != "x" {
		t.Errorf("Expected override array to replace base wholesale, got %v", items)
	}
}

func TestDeepMergeArrayIgnoresNonArrayOverride(t *testing.T) {
	base := map[string]interface{}{
		"items": []interface{}{"a", "b"},
	}
	override := map[string]interface{}{
		"items": "not an array",
	}

	got := DeepMerge(base, override)

	items, ok := got["items"].([]interface{})
	if !ok {
		t.Fatalf("Expected base array to survive a non-array override, got %T", got["items"])
	}
	if len(items) != 2 {
		t.Errorf("Expected base array unchanged, got %v", items)
	}
}

func TestDeepMergeNestedObjects(t *testing.T) {
	base := map[string]interface{}{
		"hero": map[string]interface{}{
			"title":    "base title",
			"subtitle": "base subtitle",
		},
	}
	override := map[string]interface{}{
		"hero": map[string]interface{}{
			"title": "new title",
		},
	}

	got := DeepMerge(base, override)

	hero, ok := got["hero"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected hero to stay an object, got %T", got["hero"])
	}
	if hero["title"] != "new title" {
		t.Errorf("Expected nested title override, got %v", hero["title"])
	}
	if hero["subtitle"] != "base subtitle" {
		t.Errorf("Expected omitted nested key to keep base value, got %v", hero["subtitle"])
	}
}

func TestDeepMergeUnknownKeysCarried(t *testing.T) {
	base := map[string]interface{}{"known": "v"}
	override := map[string]interface{}{"extra": "kept"}

	got := DeepMerge(base, override)

	if got["extra"] != "kept" {
		t.Errorf("Expected unknown override key to be carried, got %v", got["extra"])
	}
}

func TestDeepMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]interface{}{
		"hero": map[string]interface{}{"title": "base"},
	}
	override := map[string]interface{}{
		"hero": map[string]interface{}{"title": "changed"},
	}

	DeepMerge(base, override)

	hero := base["hero"].(map[string]interface{})
	if hero["title"] != "base" {
		t.Errorf("Expected base to be untouched, got %v", hero["title"])
	}
}

func TestDeepMergeIdempotent(t *testing.T) {
	base := map[string]interface{}{
		"hero":  map[string]interface{}{"title": "a", "stats": []interface{}{"1", "2"}},
		"count": float64(7),
	}
	override := map[string]interface{}{
		"hero": map[string]interface{}{"title": "b"},
	}

	once := DeepMerge(base, override)
	twice := DeepMerge(once, override)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expected merge to be idempotent, got %v then %v", once, twice)
	}
}

func TestMergeLandingContentTotality(t *testing.T) {
	partial := json.RawMessage(`{"hero":{"title":"Edited Title"}}`)

	got, err := MergeLandingContent(model.DefaultLandingContent(), partial)
	if err != nil {
		t.Fatalf("Expected merge to succeed, got %v", err)
	}

	if got.Hero.Title != "Edited Title" {
		t.Errorf("Expected hero title override, got %q", got.Hero.Title)
	}

	// Everything the partial did not touch must still be the complete
	// default document.
	want := model.DefaultLandingContent()
	want.Hero.Title = "Edited Title"
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected merged document to differ from default only in hero.title")
	}
	if len(got.Testimonials.Items) == 0 || got.Newsletter.ButtonLabel == "" {
		t.Errorf("Expected untouched sections to stay populated")
	}
}

func TestMergeLandingContentArraySection(t *testing.T) {
	partial := json.RawMessage(`{"hero":{"stats":[{"label":"Only","value":"1"}]}}`)

	got, err := MergeLandingContent(model.DefaultLandingContent(), partial)
	if err != nil {
		t.Fatalf("Expected merge to succeed, got %v", err)
	}

	if len(got.Hero.Stats) != 1 {
		t.Fatalf("Expected stats array replaced wholesale, got %d entries", len(got.Hero.Stats))
	}
	if got.Hero.Stats[0].Label != "Only" {
		t.Errorf("Expected replaced stat, got %+v", got.Hero.Stats[0])
	}
}

func TestMergeLandingContentInvalidJSON(t *testing.T) {
	partial := json.RawMessage(`{"hero":`)

	_, err := MergeLandingContent(model.DefaultLandingContent(), partial)
	if err == nil {
		t.Error("Expected an error for malformed JSON")
	}
}

func TestMergeLandingContentEmptyPartial(t *testing.T) {
	got, err := MergeLandingContent(model.DefaultLandingContent(), nil)
	if err != nil {
		t.Fatalf("Expected empty partial to succeed, got %v", err)
	}
	if !reflect.DeepEqual(got, model.DefaultLandingContent()) {
		t.Errorf("Expected empty partial to return the base unchanged")
	}
}
