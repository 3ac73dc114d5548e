package block

import (
	"reflect"
	"testing"
)

func TestProps_MergedWith(t *testing.T) {
	base := Props{
		"title": "default",
		"nested": map[string]any{
			"keep":     "me",
			"override": "old",
		},
		"list": []any{"a", "b"},
	}
	override := Props{
		"title": "custom",
		"nested": map[string]any{
			"override": "new",
		},
		"list":  []any{"c"},
		"extra": 42,
	}

	got := base.MergedWith(override)

	if got["title"] != "custom" {
		t.Errorf("override must win on conflict, got %v", got["title"])
	}
	nested := got["nested"].(map[string]any)
	if nested["keep"] != "me" || nested["override"] != "new" {
		t.Errorf("nested maps must merge recursively, got %v", nested)
	}
	if !reflect.DeepEqual(got["list"], []any{"c"}) {
		t.Errorf("arrays must replace, not concatenate, got %v", got["list"])
	}
	if got["extra"] != 42 {
		t.Errorf("new keys must come through, got %v", got["extra"])
	}

	// inputs stay untouched
	if base["title"] != "default" || base["nested"].(map[string]any)["override"] != "old" {
		t.Error("merge modified the base record")
	}
}

func TestProps_CloneIsolation(t *testing.T) {
	orig := Props{
		"nested": map[string]any{"k": "v"},
		"list":   []any{map[string]any{"deep": 1}},
	}
	cp := orig.Clone()
	cp["nested"].(map[string]any)["k"] = "changed"
	cp["list"].([]any)[0].(map[string]any)["deep"] = 2

	if orig["nested"].(map[string]any)["k"] != "v" {
		t.Error("clone shares nested map with original")
	}
	if orig["list"].([]any)[0].(map[string]any)["deep"] != 1 {
		t.Error("clone shares nested slice element with original")
	}
}

func TestProps_Decode(t *testing.T) {
	p := Props{"text": "hello", "level": 3}
	var view struct {
		Text  string `yaml:"text"`
		Level int    `yaml:"level"`
	}
	if err := p.Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Text != "hello" || view.Level != 3 {
		t.Errorf("unexpected view: %+v", view)
	}

	// incompatible shape fails instead of silently mangling
	bad := Props{"level": map[string]any{"not": "an int"}}
	if err := bad.Decode(&view); err == nil {
		t.Error("mismatched shape must fail to decode")
	}
}

func TestRegistry_Builtin(t *testing.T) {
	reg := Builtin()
	if reg.Len() < 30 {
		t.Fatalf("builtin registry has %d entries, want at least 30", reg.Len())
	}
	entry, ok := reg.Lookup(TypeHero)
	if !ok {
		t.Fatal("hero type must be registered")
	}
	if entry.Label == "" || entry.Icon == "" || entry.DefaultProps == nil {
		t.Errorf("incomplete hero entry: %+v", entry)
	}
	if _, ok := reg.Lookup(Type("made-up")); ok {
		t.Error("unregistered type must not resolve")
	}
}

func TestRegistry_RejectsBadCatalogue(t *testing.T) {
	if _, err := NewRegistry(nil); err == nil {
		t.Error("empty catalogue must be rejected")
	}
	dup := []Entry{
		{Type: TypeText, Label: "Text", DefaultProps: Props{}},
		{Type: TypeText, Label: "Text again", DefaultProps: Props{}},
	}
	if _, err := NewRegistry(dup); err == nil {
		t.Error("duplicate registration must be rejected")
	}
}

func TestBlock_New(t *testing.T) {
	reg := Builtin()
	b := New(TypeHero, reg)
	if b.ID == "" {
		t.Error("new block must receive an id")
	}
	if b.Props["title"] != "Your headline here" {
		t.Errorf("new block must carry registry defaults verbatim, got %v", b.Props["title"])
	}

	// defaults are copied, not aliased
	b.Props["title"] = "mutated"
	again := New(TypeHero, reg)
	if again.Props["title"] != "Your headline here" {
		t.Error("registry defaults were mutated through a block")
	}
}

func TestBlock_Clone(t *testing.T) {
	reg := Builtin()
	b := New(TypeButton, reg)
	d := b.Clone()
	if d.ID == b.ID {
		t.Error("duplicate must receive a fresh id")
	}
	d.Props["text"] = "other"
	if b.Props["text"] == "other" {
		t.Error("duplicate shares props with original")
	}
}
