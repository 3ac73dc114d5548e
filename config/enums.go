package config

import (
	"fmt"
	"strings"
)

// Viewport is the device class a page is rendered for.
type Viewport int

const (
	ViewportDesktop Viewport = iota
	ViewportTablet
	ViewportMobile
)

var viewportNames = []string{"desktop", "tablet", "mobile"}

func (v Viewport) String() string {
	if v < 0 || int(v) >= len(viewportNames) {
		return fmt.Sprintf("Viewport(%d)", int(v))
	}
	return viewportNames[v]
}

// ViewportNames returns all valid viewport names in declaration order.
func ViewportNames() []string {
	return append([]string{}, viewportNames...)
}

func ParseViewport(name string) (Viewport, error) {
	for i, n := range viewportNames {
		if strings.EqualFold(name, n) {
			return Viewport(i), nil
		}
	}
	return 0, fmt.Errorf("unknown viewport name: %s", name)
}

func (v Viewport) MarshalYAML() (any, error) {
	return v.String(), nil
}

func (v *Viewport) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseViewport(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// RenderMode selects how the renderer treats hidden blocks and whether edit
// affordances are emitted.
type RenderMode int

const (
	RenderModeEdit RenderMode = iota
	RenderModePreview
	RenderModePublish
)

var renderModeNames = []string{"edit", "preview", "publish"}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(renderModeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return renderModeNames[m]
}

// RenderModeNames returns all valid render mode names in declaration order.
func RenderModeNames() []string {
	return append([]string{}, renderModeNames...)
}

func ParseRenderMode(name string) (RenderMode, error) {
	for i, n := range renderModeNames {
		if strings.EqualFold(name, n) {
			return RenderMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown render mode: %s", name)
}

// Editing reports whether edit affordances (selection controls, hidden-block
// placeholders, link indicators) belong in the output.
func (m RenderMode) Editing() bool {
	return m == RenderModeEdit
}
