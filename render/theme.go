// Package render walks a page's block list and produces its HTML element
// tree: per-type renderers dispatched through a function table, visibility
// and link resolution handled by the dispatcher, one broken block never
// taking down the rest of the page.
package render

import (
	"fmt"
	"strings"

	"bpc/config"
)

// Theme is the token set every composed style merges onto. The engine never
// reaches into it beyond emitting the tokens as CSS custom properties - the
// theme provider owns the semantics.
type Theme struct {
	Name       string
	Colors     config.ThemeColors
	Typography config.ThemeTypography
	Spacing    config.ThemeSpacing
}

// ThemeFromConfig builds the render theme from validated configuration.
func ThemeFromConfig(tc *config.ThemeConfig) *Theme {
	return &Theme{
		Name:       tc.Name,
		Colors:     tc.Colors,
		Typography: tc.Typography,
		Spacing:    tc.Spacing,
	}
}

// RootCSS emits the theme tokens as custom properties on :root together
// with the base block rules.
func (t *Theme) RootCSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --color-text: %s;\n", t.Colors.Text)
	fmt.Fprintf(&b, "  --color-background: %s;\n", t.Colors.Background)
	fmt.Fprintf(&b, "  --color-primary: %s;\n", t.Colors.Primary)
	fmt.Fprintf(&b, "  --color-secondary: %s;\n", t.Colors.Secondary)
	fmt.Fprintf(&b, "  --color-muted: %s;\n", t.Colors.Muted)
	fmt.Fprintf(&b, "  --font-family: %s;\n", t.Typography.FontFamily)
	fmt.Fprintf(&b, "  --heading-family: %s;\n", t.Typography.HeadingFamily)
	fmt.Fprintf(&b, "  --font-size: %dpx;\n", t.Typography.BaseSizePx)
	fmt.Fprintf(&b, "  --space-unit: %dpx;\n", t.Spacing.UnitPx)
	fmt.Fprintf(&b, "  --block-gap: %dpx;\n", t.Spacing.BlockGapPx)
	b.WriteString("}\n")
	b.WriteString("body { margin: 0; color: var(--color-text); background: var(--color-background); font-family: var(--font-family); font-size: var(--font-size); }\n")
	b.WriteString(".block { margin-bottom: var(--block-gap); }\n")
	return b.String()
}
