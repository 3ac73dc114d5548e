package link

import (
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func TestWire_ScrollDefaults(t *testing.T) {
	var l Link
	if err := yaml.Unmarshal([]byte("kind: scroll\nanchor_id: pricing\n"), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.Kind != KindScroll || l.Scroll == nil {
		t.Fatalf("unexpected link: %+v", l)
	}
	if !l.Scroll.SmoothScroll || l.Scroll.OffsetPx != DefaultScrollOffsetPx {
		t.Errorf("scroll defaults not applied: %+v", *l.Scroll)
	}
	if l.Scroll.OffsetSet {
		t.Error("absent offset must stay marked absent so a configured default can take over")
	}

	var explicit Link
	data := "kind: scroll\nanchor_id: top\nsmooth_scroll: false\nscroll_offset_px: 0\n"
	if err := yaml.Unmarshal([]byte(data), &explicit); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if explicit.Scroll.SmoothScroll || explicit.Scroll.OffsetPx != 0 {
		t.Errorf("explicit scroll values lost: %+v", *explicit.Scroll)
	}
	if !explicit.Scroll.OffsetSet {
		t.Error("explicit zero offset must be marked as set")
	}
}

func TestWire_ScrollOffsetAbsenceSurvivesRoundTrip(t *testing.T) {
	var l Link
	if err := yaml.Unmarshal([]byte("kind: scroll\nanchor_id: pricing\n"), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, err := yaml.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if yamlHasKey(data, "scroll_offset_px") {
		t.Errorf("absent offset must not be persisted as a number: %s", data)
	}

	explicit := Link{Kind: KindScroll, Scroll: &Scroll{AnchorID: "top", OffsetPx: 0, OffsetSet: true}}
	data, err = yaml.Marshal(explicit)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Link
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Scroll.OffsetPx != 0 || !back.Scroll.OffsetSet {
		t.Errorf("explicit zero offset lost in round trip: %+v", *back.Scroll)
	}
}

func yamlHasKey(data []byte, key string) bool {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func TestWire_ModalActionDefault(t *testing.T) {
	var l Link
	if err := yaml.Unmarshal([]byte("kind: modal\nmodal_id: signup\n"), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if l.Modal == nil || l.Modal.Action != ModalOpen {
		t.Errorf("modal action must default to open: %+v", l.Modal)
	}
}

func TestWire_UnknownKind(t *testing.T) {
	var l Link
	if err := yaml.Unmarshal([]byte("kind: teleport\n"), &l); err == nil {
		t.Error("unknown kind must fail to decode")
	}
}

func TestWire_RoundTrip(t *testing.T) {
	nf := false
	orig := Link{
		Kind:       KindExternal,
		External:   &External{URL: "https://example.com", NewTab: true, NoFollow: &nf},
		TrackClick: true,
		TrackLabel: "cta-main",
	}
	data, err := yaml.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Link
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Kind != KindExternal || back.External == nil || back.External.URL != orig.External.URL {
		t.Errorf("round trip lost payload: %+v", back)
	}
	if back.External.NoFollow == nil || *back.External.NoFollow {
		t.Error("explicit no_follow suppression lost in round trip")
	}
	if back.NoFollow() {
		t.Error("suppressed nofollow must not be implied back")
	}
	if !back.TrackClick || back.TrackLabel != "cta-main" {
		t.Error("cross-cutting fields lost in round trip")
	}
}
