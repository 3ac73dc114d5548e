// Package style merges a block's animation and style overlays into the
// single presentation descriptor the renderer applies to the block's
// container.
package style

import (
	"strings"

	"bpc/block"
)

// Decl is one CSS declaration of the composed style.
type Decl struct {
	Property string
	Value    string
}

// RenderStyle is the composed presentation of one block: an ordered list of
// CSS declarations plus the categorical effect name selecting a motion
// preset. Composition order is fixed - animation first, custom style second -
// so custom style can always override animation-implied properties and
// never the reverse.
type RenderStyle struct {
	decls []Decl

	// Effect selects a named motion preset; empty means none.
	Effect string

	// container passthrough from the style overlay
	CustomClass string
	CustomTag   string
}

// Set adds or overrides a declaration. Overriding keeps the original
// position so output stays deterministic regardless of how many layers
// touched the property.
func (s *RenderStyle) Set(property, value string) {
	for i := range s.decls {
		if s.decls[i].Property == property {
			s.decls[i].Value = value
			return
		}
	}
	s.decls = append(s.decls, Decl{Property: property, Value: value})
}

// Get returns the current value of a property, empty when unset.
func (s *RenderStyle) Get(property string) string {
	for i := range s.decls {
		if s.decls[i].Property == property {
			return s.decls[i].Value
		}
	}
	return ""
}

// Decls returns the declarations in composition order.
func (s *RenderStyle) Decls() []Decl {
	return append([]Decl{}, s.decls...)
}

// Empty reports whether the style carries no declarations.
func (s *RenderStyle) Empty() bool {
	return len(s.decls) == 0
}

// InlineCSS renders the declarations as a style attribute value.
func (s *RenderStyle) InlineCSS() string {
	if len(s.decls) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range s.decls {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";")
	}
	return b.String()
}

// setIf adds the declaration unless the overlay value defers to the theme.
func (s *RenderStyle) setIf(property, value string) {
	if block.IsSet(value) {
		s.Set(property, value)
	}
}
