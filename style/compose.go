package style

import (
	"strconv"

	"go.uber.org/zap"

	"bpc/block"
)

// Compositor builds RenderStyle values out of block overlays.
type Compositor struct {
	log *zap.Logger
}

func NewCompositor(log *zap.Logger) *Compositor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compositor{log: log.Named("compositor")}
}

// Compose merges the block's animation and style overlays into a single
// RenderStyle. Pure and deterministic: same block state yields identical
// output. The merge order is fixed - animation base first, then the custom
// overlay - so the overlay always wins on conflicting properties.
func (c *Compositor) Compose(b *block.Block) RenderStyle {
	var out RenderStyle

	if b.Animation.Active() {
		out.Effect = string(b.Animation.Kind)
		if b.Animation.DurationMs > 0 {
			out.Set("animation-duration", strconv.Itoa(b.Animation.DurationMs)+"ms")
		}
		if b.Animation.DelayMs > 0 {
			out.Set("animation-delay", strconv.Itoa(b.Animation.DelayMs)+"ms")
		}
		// the element holds its pre/post animation state instead of resetting
		out.Set("animation-fill-mode", "both")
	}

	if b.Style != nil {
		c.applyOverlay(&out, b.Style)
	}

	return out
}

func (c *Compositor) applyOverlay(out *RenderStyle, ov *block.StyleOverlay) {
	out.setIf("font-family", ov.Typography.FontFamily)
	out.setIf("font-size", ov.Typography.FontSize)
	out.setIf("font-weight", ov.Typography.FontWeight)
	out.setIf("line-height", ov.Typography.LineHeight)
	out.setIf("letter-spacing", ov.Typography.LetterSpacing)
	out.setIf("text-align", ov.Typography.TextAlign)
	out.setIf("text-transform", ov.Typography.TextTransform)

	out.setIf("color", ov.Colors.TextColor)
	out.setIf("background-color", ov.Colors.BackgroundColor)
	out.setIf("accent-color", ov.Colors.AccentColor)

	out.setIf("margin-top", ov.Spacing.MarginTop)
	out.setIf("margin-bottom", ov.Spacing.MarginBottom)
	out.setIf("padding-top", ov.Spacing.PaddingTop)
	out.setIf("padding-right", ov.Spacing.PaddingRight)
	out.setIf("padding-bottom", ov.Spacing.PaddingBottom)
	out.setIf("padding-left", ov.Spacing.PaddingLeft)

	out.setIf("border-width", ov.Borders.Width)
	out.setIf("border-style", ov.Borders.Style)
	out.setIf("border-color", ov.Borders.Color)
	out.setIf("border-radius", ov.Borders.Radius)

	out.setIf("box-shadow", ov.Shadows.BoxShadow)
	out.setIf("text-shadow", ov.Shadows.TextShadow)

	out.setIf("max-width", ov.Layout.MaxWidth)
	out.setIf("min-height", ov.Layout.MinHeight)
	out.setIf("display", ov.Layout.Display)
	out.setIf("align-items", ov.Layout.AlignItems)
	out.setIf("justify-content", ov.Layout.JustifyContent)
	out.setIf("gap", ov.Layout.Gap)

	// raw declarations come last so they can override anything above,
	// including animation-implied properties
	if ov.CustomCSS != "" {
		for _, d := range c.sanitizeCSS(ov.CustomCSS) {
			out.Set(d.Property, d.Value)
		}
	}

	out.CustomClass = ov.CustomClass
	out.CustomTag = ov.CustomTag
}
