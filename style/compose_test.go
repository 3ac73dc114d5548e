package style

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"bpc/block"
)

func testCompositor(t *testing.T) *Compositor {
	t.Helper()
	return NewCompositor(zaptest.NewLogger(t))
}

func TestCompose_Deterministic(t *testing.T) {
	c := testCompositor(t)
	b := &block.Block{
		ID:        "b1",
		Type:      block.TypeHero,
		Animation: &block.Animation{Kind: block.AnimFade, DurationMs: 300, DelayMs: 50},
		Style: &block.StyleOverlay{
			Colors:    block.Colors{TextColor: "#222222", BackgroundColor: "inherit"},
			Spacing:   block.Spacing{PaddingTop: "2rem"},
			CustomCSS: "opacity: 0.9; border-radius: 4px",
		},
	}

	first := c.Compose(b)
	second := c.Compose(b)
	if first.InlineCSS() != second.InlineCSS() {
		t.Errorf("composition is not deterministic:\n%s\n%s", first.InlineCSS(), second.InlineCSS())
	}
	if first.Effect != second.Effect {
		t.Error("effect name differs between runs")
	}
}

func TestCompose_InheritSkips(t *testing.T) {
	c := testCompositor(t)
	b := &block.Block{
		ID:   "b1",
		Type: block.TypeText,
		Style: &block.StyleOverlay{
			Colors: block.Colors{TextColor: "inherit"},
		},
	}
	s := c.Compose(b)
	if got := s.Get("color"); got != "" {
		t.Errorf("inherit must leave the theme value untouched, got %q", got)
	}

	b.Style = &block.StyleOverlay{Colors: block.Colors{TextColor: "#ff0000"}}
	s = c.Compose(b)
	if got := s.Get("color"); got != "#ff0000" {
		t.Errorf("explicit value must override, got %q", got)
	}
}

func TestCompose_AnimationBase(t *testing.T) {
	c := testCompositor(t)
	b := &block.Block{
		ID:        "b1",
		Type:      block.TypeImage,
		Animation: &block.Animation{Kind: block.AnimZoomIn, DurationMs: 400},
	}
	s := c.Compose(b)
	if s.Effect != "zoom-in" {
		t.Errorf("effect name = %q, want zoom-in", s.Effect)
	}
	if s.Get("animation-duration") != "400ms" || s.Get("animation-fill-mode") != "both" {
		t.Errorf("animation base missing: %q", s.InlineCSS())
	}

	// kind none contributes nothing
	b.Animation = &block.Animation{Kind: block.AnimNone, DurationMs: 400}
	s = c.Compose(b)
	if !s.Empty() || s.Effect != "" {
		t.Errorf("none animation must contribute no effect: %q / %q", s.InlineCSS(), s.Effect)
	}
}

func TestCompose_OverlayWinsOverAnimation(t *testing.T) {
	c := testCompositor(t)
	b := &block.Block{
		ID:        "b1",
		Type:      block.TypeText,
		Animation: &block.Animation{Kind: block.AnimFade, DurationMs: 300},
		Style:     &block.StyleOverlay{CustomCSS: "animation-duration: 1s"},
	}
	s := c.Compose(b)
	if got := s.Get("animation-duration"); got != "1s" {
		t.Errorf("custom style must override animation-implied property, got %q", got)
	}
}

func TestSanitizeCSS(t *testing.T) {
	c := testCompositor(t)
	decls := c.sanitizeCSS("opacity: 0.5; transform: scale(1.1); --brand: red")
	want := map[string]string{"opacity": "0.5", "transform": "scale(1.1)", "--brand": "red"}
	if len(decls) != len(want) {
		t.Fatalf("unexpected declaration count: %+v", decls)
	}
	for _, d := range decls {
		if want[d.Property] != d.Value {
			t.Errorf("declaration %s = %q, want %q", d.Property, d.Value, want[d.Property])
		}
	}

	// garbage yields nothing and does not panic
	if decls := c.sanitizeCSS("}{ not css at all ;;;"); len(decls) != 0 {
		t.Errorf("garbage input produced declarations: %+v", decls)
	}
}
