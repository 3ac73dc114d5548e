package block

import (
	"fmt"

	"go.uber.org/multierr"
)

// Entry describes one registered block type: human label, icon reference
// for the add-block menu and the default property set new blocks start from.
// Entries are immutable after process start.
type Entry struct {
	Type         Type
	Label        string
	Icon         string
	DefaultProps Props
}

// Registry is the static catalogue of block types. Registration order is
// preserved - it is the order the add-block menu presents.
type Registry struct {
	entries []Entry
	index   map[Type]int
}

// NewRegistry builds a registry from the given entries. An empty or
// inconsistent catalogue is a build-time configuration error, not something
// to tolerate at runtime.
func NewRegistry(entries []Entry) (*Registry, error) {
	var err error
	if len(entries) == 0 {
		err = multierr.Append(err, fmt.Errorf("registry has no entries"))
	}
	index := make(map[Type]int, len(entries))
	for i, e := range entries {
		if e.Type == "" {
			err = multierr.Append(err, fmt.Errorf("registry entry %d has empty type", i))
			continue
		}
		if _, dup := index[e.Type]; dup {
			err = multierr.Append(err, fmt.Errorf("registry entry %q registered twice", e.Type))
			continue
		}
		if e.Label == "" {
			err = multierr.Append(err, fmt.Errorf("registry entry %q has no label", e.Type))
		}
		if e.DefaultProps == nil {
			err = multierr.Append(err, fmt.Errorf("registry entry %q has nil default props", e.Type))
		}
		index[e.Type] = i
	}
	if err != nil {
		return nil, fmt.Errorf("unable to build block registry: %w", err)
	}
	return &Registry{entries: entries, index: index}, nil
}

// Lookup finds the registry entry for a type tag.
func (r *Registry) Lookup(t Type) (Entry, bool) {
	if i, ok := r.index[t]; ok {
		return r.entries[i], true
	}
	return Entry{}, false
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	return append([]Entry{}, r.entries...)
}

// Types returns all registered type tags in registration order.
func (r *Registry) Types() []Type {
	out := make([]Type, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Type
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}

var builtin *Registry

func init() {
	var err error
	if builtin, err = NewRegistry(builtinEntries()); err != nil {
		// default catalogue must always be valid
		panic(err)
	}
}

// Builtin returns the default block type catalogue.
func Builtin() *Registry {
	return builtin
}

func builtinEntries() []Entry {
	return []Entry{
		{Type: TypeHero, Label: "Hero", Icon: "layout-hero", DefaultProps: Props{
			"title":    "Your headline here",
			"subtitle": "Supporting copy that explains the value.",
			"cta_text": "Get started",
			"image":    "",
			"align":    "center",
		}},
		{Type: TypeHeading, Label: "Heading", Icon: "type-heading", DefaultProps: Props{
			"text":  "Section heading",
			"level": 2,
		}},
		{Type: TypeText, Label: "Text", Icon: "type-paragraph", DefaultProps: Props{
			"text": "Write something meaningful.",
		}},
		{Type: TypeQuote, Label: "Quote", Icon: "quote", DefaultProps: Props{
			"text":   "A memorable quote.",
			"author": "",
		}},
		{Type: TypeImage, Label: "Image", Icon: "image", DefaultProps: Props{
			"src":     "",
			"alt":     "",
			"caption": "",
		}},
		{Type: TypeGallery, Label: "Gallery", Icon: "images", DefaultProps: Props{
			"images":  []any{},
			"columns": 3,
		}},
		{Type: TypeVideo, Label: "Video", Icon: "video", DefaultProps: Props{
			"src":      "",
			"poster":   "",
			"controls": true,
			"autoplay": false,
		}},
		{Type: TypeAudio, Label: "Audio", Icon: "audio", DefaultProps: Props{
			"src":   "",
			"title": "",
		}},
		{Type: TypeButton, Label: "Button", Icon: "button", DefaultProps: Props{
			"text":    "Click me",
			"variant": "primary",
		}},
		{Type: TypeCTA, Label: "Call to action", Icon: "megaphone", DefaultProps: Props{
			"title":       "Ready to dive in?",
			"subtitle":    "Start your free trial today.",
			"button_text": "Sign up",
		}},
		{Type: TypeDivider, Label: "Divider", Icon: "minus", DefaultProps: Props{
			"style": "solid",
		}},
		{Type: TypeSpacer, Label: "Spacer", Icon: "arrows-vertical", DefaultProps: Props{
			"height_px": 48,
		}},
		{Type: TypeNavigation, Label: "Navigation", Icon: "menu", DefaultProps: Props{
			"brand": "Brand",
			"items": []any{
				map[string]any{"label": "Home", "href": "/"},
				map[string]any{"label": "About", "href": "/about"},
			},
		}},
		{Type: TypeFooter, Label: "Footer", Icon: "layout-footer", DefaultProps: Props{
			"copyright": "© All rights reserved",
			"items":     []any{},
		}},
		{Type: TypeProductCard, Label: "Product card", Icon: "package", DefaultProps: Props{
			"name":     "Product name",
			"price":    "0.00",
			"currency": "USD",
			"image":    "",
			"badge":    "",
		}},
		{Type: TypeProductGrid, Label: "Product grid", Icon: "grid", DefaultProps: Props{
			"products": []any{},
			"columns":  3,
		}},
		{Type: TypePricing, Label: "Pricing", Icon: "tag", DefaultProps: Props{
			"plans": []any{
				map[string]any{"name": "Starter", "price": "0", "features": []any{"1 project"}},
				map[string]any{"name": "Pro", "price": "19", "features": []any{"Unlimited projects"}},
			},
			"period": "month",
		}},
		{Type: TypeTestimonial, Label: "Testimonial", Icon: "message", DefaultProps: Props{
			"quote":  "This changed everything for us.",
			"author": "Happy customer",
			"role":   "",
			"avatar": "",
		}},
		{Type: TypeFAQ, Label: "FAQ", Icon: "help-circle", DefaultProps: Props{
			"items": []any{
				map[string]any{"question": "Is there a free plan?", "answer": "Yes."},
			},
		}},
		{Type: TypeAccordion, Label: "Accordion", Icon: "chevrons-down", DefaultProps: Props{
			"items": []any{},
		}},
		{Type: TypeTabs, Label: "Tabs", Icon: "folder", DefaultProps: Props{
			"tabs": []any{},
		}},
		{Type: TypeContactForm, Label: "Contact form", Icon: "mail", DefaultProps: Props{
			"title":       "Contact us",
			"submit_text": "Send",
			"fields":      []any{"name", "email", "message"},
		}},
		{Type: TypeLoginForm, Label: "Login form", Icon: "log-in", DefaultProps: Props{
			"title":           "Welcome back",
			"submit_text":     "Log in",
			"show_remember":   true,
			"forgot_password": true,
		}},
		{Type: TypeSignupForm, Label: "Signup form", Icon: "user-plus", DefaultProps: Props{
			"title":       "Create your account",
			"submit_text": "Sign up",
			"show_terms":  true,
		}},
		{Type: TypeNewsletter, Label: "Newsletter", Icon: "send", DefaultProps: Props{
			"title":       "Stay in the loop",
			"placeholder": "you@example.com",
			"submit_text": "Subscribe",
		}},
		{Type: TypeSocialIcons, Label: "Social icons", Icon: "share", DefaultProps: Props{
			"profiles": []any{},
			"size":     "medium",
		}},
		{Type: TypeMap, Label: "Map", Icon: "map-pin", DefaultProps: Props{
			"address": "",
			"zoom":    14,
		}},
		{Type: TypeCountdown, Label: "Countdown", Icon: "clock", DefaultProps: Props{
			"target": "",
			"title":  "Launching soon",
		}},
		{Type: TypeTeam, Label: "Team", Icon: "users", DefaultProps: Props{
			"members": []any{},
			"columns": 3,
		}},
		{Type: TypeFeatures, Label: "Features", Icon: "star", DefaultProps: Props{
			"items": []any{
				map[string]any{"title": "Fast", "text": "Really fast."},
				map[string]any{"title": "Simple", "text": "Really simple."},
			},
			"columns": 3,
		}},
		{Type: TypeStats, Label: "Stats", Icon: "bar-chart", DefaultProps: Props{
			"items": []any{
				map[string]any{"value": "99%", "label": "Uptime"},
			},
		}},
		{Type: TypeLogoCloud, Label: "Logo cloud", Icon: "cloud", DefaultProps: Props{
			"logos": []any{},
			"title": "Trusted by",
		}},
		{Type: TypeBreadcrumbs, Label: "Breadcrumbs", Icon: "chevron-right", DefaultProps: Props{
			"items": []any{},
		}},
		{Type: TypeCode, Label: "Code", Icon: "code", DefaultProps: Props{
			"code":     "",
			"language": "",
		}},
		{Type: TypeEmbed, Label: "Embed", Icon: "box", DefaultProps: Props{
			"html": "",
		}},
	}
}
