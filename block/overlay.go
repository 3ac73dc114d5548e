package block

import (
	"fmt"
	"strings"

	"bpc/config"
)

// Visibility holds one switch per viewport class. The zero value is NOT
// useful - absent visibility on a block means "all true", which is why
// blocks carry *Visibility and the YAML decoder defaults missing fields to
// visible.
type Visibility struct {
	Desktop bool `yaml:"desktop"`
	Tablet  bool `yaml:"tablet"`
	Mobile  bool `yaml:"mobile"`
}

// Everywhere returns visibility enabled for every viewport.
func Everywhere() Visibility {
	return Visibility{Desktop: true, Tablet: true, Mobile: true}
}

func (v Visibility) At(viewport config.Viewport) bool {
	switch viewport {
	case config.ViewportTablet:
		return v.Tablet
	case config.ViewportMobile:
		return v.Mobile
	default:
		return v.Desktop
	}
}

func (v *Visibility) UnmarshalYAML(unmarshal func(any) error) error {
	// absent switches default to visible, not to the bool zero value
	var raw struct {
		Desktop *bool `yaml:"desktop"`
		Tablet  *bool `yaml:"tablet"`
		Mobile  *bool `yaml:"mobile"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*v = Everywhere()
	if raw.Desktop != nil {
		v.Desktop = *raw.Desktop
	}
	if raw.Tablet != nil {
		v.Tablet = *raw.Tablet
	}
	if raw.Mobile != nil {
		v.Mobile = *raw.Mobile
	}
	return nil
}

// AnimationKind names an entrance motion preset.
type AnimationKind string

const (
	AnimNone       AnimationKind = "none"
	AnimFade       AnimationKind = "fade"
	AnimFadeUp     AnimationKind = "fade-up"
	AnimFadeDown   AnimationKind = "fade-down"
	AnimSlideLeft  AnimationKind = "slide-left"
	AnimSlideRight AnimationKind = "slide-right"
	AnimZoomIn     AnimationKind = "zoom-in"
	AnimZoomOut    AnimationKind = "zoom-out"
	AnimBounce     AnimationKind = "bounce"
)

// AnimationKinds lists every known preset including "none".
func AnimationKinds() []AnimationKind {
	return []AnimationKind{
		AnimNone, AnimFade, AnimFadeUp, AnimFadeDown, AnimSlideLeft,
		AnimSlideRight, AnimZoomIn, AnimZoomOut, AnimBounce,
	}
}

func ParseAnimationKind(name string) (AnimationKind, error) {
	for _, k := range AnimationKinds() {
		if strings.EqualFold(name, string(k)) {
			return k, nil
		}
	}
	return AnimNone, fmt.Errorf("unknown animation kind: %s", name)
}

// Animation is the motion overlay of a block. Kind "none" contributes no
// presentation effect regardless of durations.
type Animation struct {
	Kind       AnimationKind `yaml:"kind"`
	DurationMs int           `yaml:"duration_ms,omitempty"`
	DelayMs    int           `yaml:"delay_ms,omitempty"`
}

// Active reports whether the overlay contributes a presentation effect.
func (a *Animation) Active() bool {
	return a != nil && a.Kind != AnimNone && a.Kind != ""
}

// Inherit is the sentinel style value meaning "defer to the theme default
// for this property" - the compositor skips it instead of clearing.
const Inherit = "inherit"

// IsSet reports whether a style overlay value actually overrides anything.
func IsSet(v string) bool {
	return v != "" && v != Inherit
}

type Typography struct {
	FontFamily    string `yaml:"font_family,omitempty"`
	FontSize      string `yaml:"font_size,omitempty"`
	FontWeight    string `yaml:"font_weight,omitempty"`
	LineHeight    string `yaml:"line_height,omitempty"`
	LetterSpacing string `yaml:"letter_spacing,omitempty"`
	TextAlign     string `yaml:"text_align,omitempty"`
	TextTransform string `yaml:"text_transform,omitempty"`
}

type Colors struct {
	TextColor       string `yaml:"text_color,omitempty"`
	BackgroundColor string `yaml:"background_color,omitempty"`
	AccentColor     string `yaml:"accent_color,omitempty"`
}

type Spacing struct {
	MarginTop     string `yaml:"margin_top,omitempty"`
	MarginBottom  string `yaml:"margin_bottom,omitempty"`
	PaddingTop    string `yaml:"padding_top,omitempty"`
	PaddingRight  string `yaml:"padding_right,omitempty"`
	PaddingBottom string `yaml:"padding_bottom,omitempty"`
	PaddingLeft   string `yaml:"padding_left,omitempty"`
}

type Borders struct {
	Width  string `yaml:"width,omitempty"`
	Style  string `yaml:"style,omitempty"`
	Color  string `yaml:"color,omitempty"`
	Radius string `yaml:"radius,omitempty"`
}

type Shadows struct {
	BoxShadow  string `yaml:"box_shadow,omitempty"`
	TextShadow string `yaml:"text_shadow,omitempty"`
}

type Layout struct {
	MaxWidth       string `yaml:"max_width,omitempty"`
	MinHeight      string `yaml:"min_height,omitempty"`
	Display        string `yaml:"display,omitempty"`
	AlignItems     string `yaml:"align_items,omitempty"`
	JustifyContent string `yaml:"justify_content,omitempty"`
	Gap            string `yaml:"gap,omitempty"`
}

// StyleOverlay is the per-block style override layered over the theme by
// the compositor. Empty and Inherit values defer to the theme. CustomCSS is
// a raw declaration passthrough which is parsed and sanitized before use;
// CustomClass/CustomTag pass through to the rendered container.
type StyleOverlay struct {
	Typography Typography `yaml:"typography,omitempty"`
	Colors     Colors     `yaml:"colors,omitempty"`
	Spacing    Spacing    `yaml:"spacing,omitempty"`
	Borders    Borders    `yaml:"borders,omitempty"`
	Shadows    Shadows    `yaml:"shadows,omitempty"`
	Layout     Layout     `yaml:"layout,omitempty"`

	CustomCSS   string `yaml:"custom_css,omitempty"`
	CustomClass string `yaml:"custom_class,omitempty"`
	CustomTag   string `yaml:"custom_tag,omitempty"`
}
