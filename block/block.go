// Package block defines the unit of page content: a typed block with
// free-form properties and optional link/visibility/animation/style
// overlays, plus the static registry of known block types.
package block

import (
	"github.com/google/uuid"

	"bpc/config"
	"bpc/link"
)

// Type tags a block with its registered kind. The set of registered types is
// closed at process start, but Type itself stays open: stale documents may
// carry tags that are no longer registered and those must remain visible.
type Type string

const (
	TypeHero         Type = "hero"
	TypeHeading      Type = "heading"
	TypeText         Type = "text"
	TypeQuote        Type = "quote"
	TypeImage        Type = "image"
	TypeGallery      Type = "gallery"
	TypeVideo        Type = "video"
	TypeAudio        Type = "audio"
	TypeButton       Type = "button"
	TypeCTA          Type = "cta"
	TypeDivider      Type = "divider"
	TypeSpacer       Type = "spacer"
	TypeNavigation   Type = "navigation"
	TypeFooter       Type = "footer"
	TypeProductCard  Type = "product-card"
	TypeProductGrid  Type = "product-grid"
	TypePricing      Type = "pricing"
	TypeTestimonial  Type = "testimonial"
	TypeFAQ          Type = "faq"
	TypeAccordion    Type = "accordion"
	TypeTabs         Type = "tabs"
	TypeContactForm  Type = "contact-form"
	TypeLoginForm    Type = "login-form"
	TypeSignupForm   Type = "signup-form"
	TypeNewsletter   Type = "newsletter"
	TypeSocialIcons  Type = "social-icons"
	TypeMap          Type = "map"
	TypeCountdown    Type = "countdown"
	TypeTeam         Type = "team"
	TypeFeatures     Type = "features"
	TypeStats        Type = "stats"
	TypeLogoCloud    Type = "logo-cloud"
	TypeBreadcrumbs  Type = "breadcrumbs"
	TypeCode         Type = "code"
	TypeEmbed        Type = "embed"
)

// Block is one placeable unit of page content. Edits replace whole fields
// (Props, Link, Visibility, Animation, Style) rather than mutating them in
// place, which keeps change detection trivial for the editing layer.
type Block struct {
	ID    string `yaml:"id"`
	Type  Type   `yaml:"type"`
	Props Props  `yaml:"props,omitempty"`

	Link       *link.Link    `yaml:"link,omitempty"`
	Visibility *Visibility   `yaml:"visibility,omitempty"`
	Animation  *Animation    `yaml:"animation,omitempty"`
	Style      *StyleOverlay `yaml:"style,omitempty"`
}

// NewID generates a fresh block identity. IDs are unique within the owning
// page, stable for the block's lifetime and time-sortable.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy starvation - fall back to random
		return uuid.NewString()
	}
	return id.String()
}

// New creates a block of the given type with default props taken verbatim
// from the registry entry. Unregistered types get empty props.
func New(t Type, reg *Registry) Block {
	b := Block{ID: NewID(), Type: t, Props: Props{}}
	if entry, ok := reg.Lookup(t); ok {
		b.Props = entry.DefaultProps.Clone()
	}
	return b
}

// Clone returns a deep copy of the block under a fresh identity. Used by the
// duplicate edit action.
func (b *Block) Clone() Block {
	out := Block{
		ID:    NewID(),
		Type:  b.Type,
		Props: b.Props.Clone(),
	}
	if b.Link != nil {
		l := *b.Link
		out.Link = &l
	}
	if b.Visibility != nil {
		v := *b.Visibility
		out.Visibility = &v
	}
	if b.Animation != nil {
		a := *b.Animation
		out.Animation = &a
	}
	if b.Style != nil {
		s := *b.Style
		out.Style = &s
	}
	return out
}

// VisibleAt reports whether the block should appear at the given viewport.
// Absent visibility means visible everywhere.
func (b *Block) VisibleAt(viewport config.Viewport) bool {
	if b.Visibility == nil {
		return true
	}
	return b.Visibility.At(viewport)
}
