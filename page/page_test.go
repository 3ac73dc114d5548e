package page

import (
	"strings"
	"testing"

	"bpc/block"
	"bpc/config"
	"bpc/link"
)

func testPage() *Page {
	return &Page{
		Title: "Landing",
		Slug:  "landing",
		Blocks: []*block.Block{
			{ID: "a", Type: block.TypeHero, Props: block.Props{"title": "Hi"}},
			{ID: "b", Type: block.TypeText, Props: block.Props{"text": "Body"}},
			{ID: "c", Type: block.TypeCTA, Props: block.Props{"title": "Go"}},
		},
	}
}

func order(p *Page) string {
	ids := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		ids[i] = b.ID
	}
	return strings.Join(ids, "")
}

func TestValidate(t *testing.T) {
	if err := testPage().Validate(); err != nil {
		t.Errorf("valid page rejected: %v", err)
	}

	p := testPage()
	p.Blocks[2].ID = "a"
	if err := p.Validate(); err == nil || !strings.Contains(err.Error(), "share id") {
		t.Errorf("duplicate ids should be rejected, got %v", err)
	}

	p = testPage()
	p.Blocks[0].ID = ""
	p.Blocks[1].Type = ""
	err := p.Validate()
	if err == nil {
		t.Fatal("invalid page accepted")
	}
	// both problems reported in one pass
	if !strings.Contains(err.Error(), "no id") || !strings.Contains(err.Error(), "no type") {
		t.Errorf("expected aggregated problems, got %v", err)
	}
}

func TestEditOps(t *testing.T) {
	p := testPage()

	p.Move("c", 0)
	if got := order(p); got != "cab" {
		t.Errorf("move to front: got %s", got)
	}
	p.Move("c", 99)
	if got := order(p); got != "abc" {
		t.Errorf("move clamps to end: got %s", got)
	}

	if !p.Remove("b") || order(p) != "ac" {
		t.Errorf("remove: got %s", order(p))
	}
	if p.Remove("zzz") {
		t.Error("removing a missing id should report false")
	}

	p.InsertAt(1, &block.Block{ID: "x", Type: block.TypeDivider, Props: block.Props{}})
	if got := order(p); got != "axc" {
		t.Errorf("insert: got %s", got)
	}

	dup, ok := p.Duplicate("x")
	if !ok {
		t.Fatal("duplicate reported missing id")
	}
	if dup.ID == "x" || dup.ID == "" {
		t.Errorf("duplicate must mint a fresh id, got %q", dup.ID)
	}
	if p.Blocks[2].ID != dup.ID {
		t.Errorf("copy should sit right after the original, got %s", order(p))
	}
}

func TestWholeFieldSetters(t *testing.T) {
	p := testPage()

	if !p.SetProps("b", block.Props{"text": "replaced"}) {
		t.Fatal("SetProps reported missing id")
	}
	b, _ := p.Find("b")
	if b.Props["text"] != "replaced" {
		t.Errorf("props were not replaced: %v", b.Props)
	}

	if !p.SetLink("b", link.NewScroll("top")) || b.Link == nil || b.Link.Kind != link.KindScroll {
		t.Error("link was not replaced")
	}
	if !p.SetLink("b", nil) || b.Link != nil {
		t.Error("link was not cleared")
	}

	if !p.SetVisibility("b", &block.Visibility{Desktop: true, Tablet: false, Mobile: false}) {
		t.Fatal("SetVisibility reported missing id")
	}
	if b.VisibleAt(config.ViewportTablet) {
		t.Error("visibility was not replaced")
	}

	if !p.SetAnimation("b", &block.Animation{Kind: block.AnimFade, DurationMs: 100}) || !b.Animation.Active() {
		t.Error("animation was not replaced")
	}
	if !p.SetStyle("b", &block.StyleOverlay{CustomClass: "x"}) || b.Style.CustomClass != "x" {
		t.Error("style was not replaced")
	}

	if p.SetProps("zzz", block.Props{}) {
		t.Error("setter on a missing id must report false")
	}
}

func TestDuplicateIsDeep(t *testing.T) {
	p := testPage()
	dup, _ := p.Duplicate("a")
	dup.Props["title"] = "changed"
	if orig, _ := p.Find("a"); orig.Props["title"] != "Hi" {
		t.Error("mutating the copy leaked into the original")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	p := testPage()
	p.Lang = "de"
	data, err := p.Marshal()
	if err != nil {
		t.Fatalf("unable to marshal: %v", err)
	}
	back, err := ParsePage(data)
	if err != nil {
		t.Fatalf("unable to parse back: %v", err)
	}
	if back.Title != p.Title || back.Lang != "de" || len(back.Blocks) != 3 {
		t.Errorf("round trip lost data: %+v", back)
	}
	if order(back) != "abc" {
		t.Errorf("round trip lost block order: %s", order(back))
	}
}

func TestParsePageRejectsDuplicateIDs(t *testing.T) {
	data := []byte(`
title: Broken
blocks:
  - id: a
    type: text
    props: {text: one}
  - id: a
    type: text
    props: {text: two}
`)
	if _, err := ParsePage(data); err == nil {
		t.Error("duplicate block ids must fail the load")
	}
}

func TestLangTag(t *testing.T) {
	p := &Page{Title: "t"}
	if got := p.LangTag().String(); got != "en" {
		t.Errorf("missing lang should default to en, got %s", got)
	}
	p.Lang = "pt-BR"
	if got := p.LangTag().String(); got != "pt-BR" {
		t.Errorf("lang should parse, got %s", got)
	}
	p.Lang = "???"
	if got := p.LangTag().String(); got != "en" {
		t.Errorf("bad lang should fall back to en, got %s", got)
	}
}

func TestNewDerivesSlug(t *testing.T) {
	p := New("About Our Team")
	if p.Slug != "about-our-team" {
		t.Errorf("slug: got %s", p.Slug)
	}
}
