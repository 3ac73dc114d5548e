package block

import (
	"testing"

	yaml "gopkg.in/yaml.v3"

	"bpc/config"
)

func TestVisibility_DefaultsOnDecode(t *testing.T) {
	var v Visibility
	if err := yaml.Unmarshal([]byte("mobile: false\n"), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !v.Desktop || !v.Tablet {
		t.Errorf("absent switches must default to visible: %+v", v)
	}
	if v.Mobile {
		t.Error("explicit mobile switch lost")
	}
}

func TestBlock_VisibleAt(t *testing.T) {
	b := Block{ID: "x", Type: TypeText}
	for _, vp := range []config.Viewport{config.ViewportDesktop, config.ViewportTablet, config.ViewportMobile} {
		if !b.VisibleAt(vp) {
			t.Errorf("absent visibility must mean visible at %s", vp)
		}
	}

	vis := Everywhere()
	vis.Mobile = false
	b.Visibility = &vis
	if b.VisibleAt(config.ViewportMobile) {
		t.Error("mobile switch ignored")
	}
	if !b.VisibleAt(config.ViewportDesktop) {
		t.Error("desktop must stay visible")
	}
}

func TestAnimation_Active(t *testing.T) {
	var a *Animation
	if a.Active() {
		t.Error("nil animation must be inactive")
	}
	if (&Animation{Kind: AnimNone, DurationMs: 500}).Active() {
		t.Error("kind none contributes no effect regardless of durations")
	}
	if !(&Animation{Kind: AnimFadeUp}).Active() {
		t.Error("fade-up must be active")
	}
}

func TestParseAnimationKind(t *testing.T) {
	if k, err := ParseAnimationKind("fade-up"); err != nil || k != AnimFadeUp {
		t.Errorf("ParseAnimationKind(fade-up) = %v, %v", k, err)
	}
	if _, err := ParseAnimationKind("wiggle"); err == nil {
		t.Error("unknown animation kind must be rejected")
	}
}
