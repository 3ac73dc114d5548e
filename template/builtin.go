package template

import (
	"bpc/block"
	"bpc/link"
)

// Built-in layouts. Seeds only carry what differs from the registry
// defaults; everything else arrives through the expansion merge.
var builtinTemplates = []Template{
	{
		Name:        "blank",
		Label:       "Blank",
		Description: "An empty page to start from scratch.",
		PageTitle:   "Untitled",
	},
	{
		Name:        "landing",
		Label:       "Landing page",
		Description: "Hero, feature grid, social proof and a closing call to action.",
		PageTitle:   "Landing",
		Seeds: []Seed{
			{Type: block.TypeNavigation},
			{Type: block.TypeHero, Props: block.Props{
				"title":    "Launch your product",
				"subtitle": "Everything you need to go from idea to live page.",
				"cta_text": "Start free",
			}, Animation: &block.Animation{Kind: block.AnimFadeUp, DurationMs: 500}},
			{Type: block.TypeFeatures},
			{Type: block.TypeTestimonial},
			{Type: block.TypeLogoCloud},
			{Type: block.TypeCTA, Link: link.NewScroll("signup")},
			{Type: block.TypeFooter},
		},
	},
	{
		Name:        "about",
		Label:       "About",
		Description: "Company story with the team behind it.",
		PageTitle:   "About us",
		Seeds: []Seed{
			{Type: block.TypeNavigation},
			{Type: block.TypeHeading, Props: block.Props{"text": "About us", "level": 1}},
			{Type: block.TypeText, Props: block.Props{
				"text": "We started with a simple idea and kept going.",
			}},
			{Type: block.TypeImage},
			{Type: block.TypeTeam},
			{Type: block.TypeFooter},
		},
	},
	{
		Name:        "contact",
		Label:       "Contact",
		Description: "Contact form with location details.",
		PageTitle:   "Contact",
		Seeds: []Seed{
			{Type: block.TypeNavigation},
			{Type: block.TypeContactForm},
			{Type: block.TypeMap, Props: block.Props{"address": "1 Main Street"}},
			{Type: block.TypeSocialIcons},
			{Type: block.TypeFooter},
		},
	},
	{
		Name:        "pricing",
		Label:       "Pricing",
		Description: "Plans, answers to common questions and a signup push.",
		PageTitle:   "Pricing",
		Seeds: []Seed{
			{Type: block.TypeNavigation},
			{Type: block.TypeHeading, Props: block.Props{"text": "Simple pricing", "level": 1}},
			{Type: block.TypePricing},
			{Type: block.TypeFAQ},
			{Type: block.TypeCTA, Props: block.Props{
				"title":       "Still deciding?",
				"button_text": "Talk to us",
			}},
			{Type: block.TypeFooter},
		},
	},
	{
		Name:        "shop",
		Label:       "Shop",
		Description: "Product grid storefront.",
		PageTitle:   "Shop",
		Seeds: []Seed{
			{Type: block.TypeNavigation},
			{Type: block.TypeBreadcrumbs},
			{Type: block.TypeProductGrid, Props: block.Props{"columns": 4}},
			{Type: block.TypeNewsletter},
			{Type: block.TypeFooter},
		},
	},
	{
		Name:        "coming-soon",
		Label:       "Coming soon",
		Description: "Single screen countdown with an email capture.",
		PageTitle:   "Coming soon",
		Seeds: []Seed{
			{Type: block.TypeCountdown, Animation: &block.Animation{Kind: block.AnimZoomIn, DurationMs: 600}},
			{Type: block.TypeNewsletter, Props: block.Props{
				"title": "Get notified at launch",
			}},
			{Type: block.TypeSocialIcons},
		},
	},
}
