// Package template provides prebuilt page layouts: ordered block seeds
// that expand against the block registry into ready to edit pages.
package template

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"

	"bpc/block"
	"bpc/link"
	"bpc/page"
)

// Seed is one block a template contributes: the type plus the pieces that
// differ from the registry defaults. Props are merged over the defaults,
// the overlays are taken as is.
type Seed struct {
	Type       block.Type          `yaml:"type"`
	Props      block.Props         `yaml:"props,omitempty"`
	Link       *link.Link          `yaml:"link,omitempty"`
	Visibility *block.Visibility   `yaml:"visibility,omitempty"`
	Animation  *block.Animation    `yaml:"animation,omitempty"`
	Style      *block.StyleOverlay `yaml:"style,omitempty"`
}

// Template is a named page layout.
type Template struct {
	Name        string `yaml:"name"`
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
	PageTitle   string `yaml:"page_title"`
	Seeds       []Seed `yaml:"blocks"`
}

// Expand instantiates the template against a registry: every seed becomes
// a block with a fresh id whose props are the registry defaults with the
// seed's overrides deep merged on top. The template is left untouched, so
// expanding twice yields independent pages.
func (t Template) Expand(reg *block.Registry) (*page.Page, error) {
	p := page.New(t.PageTitle)
	for i, s := range t.Seeds {
		entry, ok := reg.Lookup(s.Type)
		if !ok {
			return nil, fmt.Errorf("template %s: block %d has unknown type %s", t.Name, i, s.Type)
		}
		b := &block.Block{
			ID:    block.NewID(),
			Type:  s.Type,
			Props: entry.DefaultProps.MergedWith(s.Props),
		}
		if s.Link != nil {
			l := *s.Link
			b.Link = &l
		}
		if s.Visibility != nil {
			v := *s.Visibility
			b.Visibility = &v
		}
		if s.Animation != nil {
			a := *s.Animation
			b.Animation = &a
		}
		if s.Style != nil {
			st := *s.Style
			b.Style = &st
		}
		p.Append(b)
	}
	return p, nil
}

// Lookup finds a built-in template by name.
func Lookup(name string) (Template, bool) {
	for _, t := range builtinTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Names returns the built-in template names in natural order, so
// "landing-2" sorts before "landing-10".
func Names() []string {
	out := make([]string, len(builtinTemplates))
	for i, t := range builtinTemplates {
		out[i] = t.Name
	}
	sort.Sort(natural.StringSlice(out))
	return out
}

// All returns the built-in templates in natural name order.
func All() []Template {
	out := append([]Template{}, builtinTemplates...)
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i].Name, out[j].Name) })
	return out
}
