package template

import (
	"reflect"
	"sort"
	"testing"

	"bpc/block"
)

func TestBuiltinTemplatesExpand(t *testing.T) {
	reg := block.Builtin()
	for _, tpl := range All() {
		t.Run(tpl.Name, func(t *testing.T) {
			p, err := tpl.Expand(reg)
			if err != nil {
				t.Fatalf("unable to expand: %v", err)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("expanded page is not valid: %v", err)
			}
			if len(p.Blocks) != len(tpl.Seeds) {
				t.Errorf("expected %d blocks, got %d", len(tpl.Seeds), len(p.Blocks))
			}
			for i, b := range p.Blocks {
				if b.Type != tpl.Seeds[i].Type {
					t.Errorf("block %d: expected type %s, got %s", i, tpl.Seeds[i].Type, b.Type)
				}
				if b.ID == "" {
					t.Errorf("block %d has no id", i)
				}
			}
		})
	}
}

func TestExpandMergesOverrides(t *testing.T) {
	tpl, ok := Lookup("landing")
	if !ok {
		t.Fatal("landing template missing")
	}
	p, err := tpl.Expand(block.Builtin())
	if err != nil {
		t.Fatalf("unable to expand: %v", err)
	}
	hero := p.Blocks[1]
	if hero.Props["title"] != "Launch your product" {
		t.Errorf("override should win, got %v", hero.Props["title"])
	}
	// defaults the seed does not touch survive the merge
	if hero.Props["align"] != "center" {
		t.Errorf("untouched default should survive, got %v", hero.Props["align"])
	}
}

func TestExpandTwiceIsIndependent(t *testing.T) {
	tpl, _ := Lookup("landing")
	reg := block.Builtin()

	p1, err := tpl.Expand(reg)
	if err != nil {
		t.Fatalf("unable to expand: %v", err)
	}
	p2, err := tpl.Expand(reg)
	if err != nil {
		t.Fatalf("unable to expand again: %v", err)
	}
	for i := range p1.Blocks {
		if p1.Blocks[i].ID == p2.Blocks[i].ID {
			t.Errorf("block %d: both expansions share id %s", i, p1.Blocks[i].ID)
		}
	}

	p1.Blocks[1].Props["title"] = "mutated"
	if p2.Blocks[1].Props["title"] == "mutated" {
		t.Error("mutating one expansion leaked into the other")
	}
	if tpl2, _ := Lookup("landing"); tpl2.Seeds[1].Props["title"] != "Launch your product" {
		t.Error("mutating an expansion leaked into the template itself")
	}
}

func TestExpandDoesNotAliasRegistryDefaults(t *testing.T) {
	reg := block.Builtin()
	tpl, _ := Lookup("about")
	p, err := tpl.Expand(reg)
	if err != nil {
		t.Fatalf("unable to expand: %v", err)
	}
	for _, b := range p.Blocks {
		b.Props["__probe"] = true
	}
	for _, e := range reg.Entries() {
		if _, tainted := e.DefaultProps["__probe"]; tainted {
			t.Fatalf("registry defaults for %s were mutated through an expansion", e.Type)
		}
	}
}

func TestExpandRepeatedTypeStaysIndependent(t *testing.T) {
	tpl := Template{Name: "two-texts", PageTitle: "x", Seeds: []Seed{
		{Type: block.TypeText, Props: block.Props{"text": "first"}},
		{Type: block.TypeText, Props: block.Props{"text": "second"}},
	}}
	p, err := tpl.Expand(block.Builtin())
	if err != nil {
		t.Fatalf("unable to expand: %v", err)
	}
	if p.Blocks[0].ID == p.Blocks[1].ID {
		t.Error("repeated seeds must get distinct ids")
	}
	if p.Blocks[0].Props["text"] != "first" || p.Blocks[1].Props["text"] != "second" {
		t.Errorf("overrides must stay distinct, got %v and %v", p.Blocks[0].Props["text"], p.Blocks[1].Props["text"])
	}
}

func TestExpandHeroCTAScenario(t *testing.T) {
	tpl := Template{Name: "scenario", PageTitle: "x", Seeds: []Seed{
		{Type: block.TypeHero, Props: block.Props{"title": "Welcome"}},
		{Type: block.TypeCTA},
	}}
	p, err := tpl.Expand(block.Builtin())
	if err != nil {
		t.Fatalf("unable to expand: %v", err)
	}
	hero, cta := p.Blocks[0], p.Blocks[1]
	if hero.Type != block.TypeHero || cta.Type != block.TypeCTA {
		t.Fatalf("seed order must be preserved, got %s then %s", hero.Type, cta.Type)
	}
	if hero.Props["title"] != "Welcome" {
		t.Errorf("hero title: got %v", hero.Props["title"])
	}
	if hero.Props["cta_text"] != "Get started" {
		t.Errorf("untouched hero defaults must remain, got %v", hero.Props["cta_text"])
	}
	entry, _ := block.Builtin().Lookup(block.TypeCTA)
	for k, want := range entry.DefaultProps {
		if got := cta.Props[k]; got != want {
			t.Errorf("cta default %s: got %v, want %v", k, got, want)
		}
	}
	if hero.Link != nil || hero.Visibility != nil || hero.Animation != nil || hero.Style != nil {
		t.Error("expansion must leave overlays absent unless the seed sets them")
	}
}

func TestExpandRejectsUnknownType(t *testing.T) {
	tpl := Template{Name: "bad", PageTitle: "x", Seeds: []Seed{{Type: "wibble"}}}
	if _, err := tpl.Expand(block.Builtin()); err == nil {
		t.Error("unknown seed type must fail the expansion")
	}
}

func TestNamesNaturalOrder(t *testing.T) {
	names := Names()
	want := append([]string{}, names...)
	sort.Strings(want)
	// with the current catalogue plain and natural order agree; the check
	// is that every template is listed exactly once
	if len(names) != len(builtinTemplates) {
		t.Fatalf("expected %d names, got %d", len(builtinTemplates), len(names))
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("name %s listed twice", n)
		}
		seen[n] = true
	}
	if !reflect.DeepEqual(want, names) {
		t.Errorf("names not sorted: %v", names)
	}
}
