package link

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
)

// Placeholder is the neutral target used whenever a descriptor cannot
// produce a real one. The UI never renders a broken anchor.
const Placeholder = "#"

// percentEncode escapes a query parameter value for mailto:/sms: targets.
// Spaces become %20 rather than + since mail clients do not decode +.
func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// stripSpace removes all whitespace from a phone number.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Href resolves the descriptor to a navigable target string. It is a pure
// function of the descriptor and never fails: missing required fields
// degrade to Placeholder. Modal and script links are not navigable and
// resolve to an empty string - callers dispatch their click behavior
// instead (see Behavior).
func (l *Link) Href() string {
	if l == nil {
		return Placeholder
	}
	switch l.Kind {
	case KindInternal:
		if l.Internal == nil {
			return Placeholder
		}
		if l.Internal.PageSlug != "" {
			return "/" + slug.Make(l.Internal.PageSlug)
		}
		if l.Internal.URL != "" {
			return l.Internal.URL
		}
		return Placeholder
	case KindExternal:
		if l.External == nil || l.External.URL == "" {
			return Placeholder
		}
		return l.External.URL
	case KindAnchor:
		if l.Anchor == nil || l.Anchor.AnchorID == "" {
			return Placeholder
		}
		return "#" + strings.TrimPrefix(l.Anchor.AnchorID, "#")
	case KindScroll:
		if l.Scroll == nil || l.Scroll.AnchorID == "" {
			return Placeholder
		}
		return "#" + strings.TrimPrefix(l.Scroll.AnchorID, "#")
	case KindEmail:
		if l.Email == nil || l.Email.Address == "" {
			return Placeholder
		}
		href := "mailto:" + l.Email.Address
		var params []string
		if l.Email.Subject != "" {
			params = append(params, "subject="+percentEncode(l.Email.Subject))
		}
		if l.Email.Body != "" {
			params = append(params, "body="+percentEncode(l.Email.Body))
		}
		if len(params) > 0 {
			href += "?" + strings.Join(params, "&")
		}
		return href
	case KindPhone:
		if l.Phone == nil || l.Phone.Number == "" {
			return Placeholder
		}
		return "tel:" + stripSpace(l.Phone.Number)
	case KindSMS:
		if l.SMS == nil || l.SMS.Number == "" {
			return Placeholder
		}
		href := "sms:" + stripSpace(l.SMS.Number)
		if l.SMS.Body != "" {
			href += "?body=" + percentEncode(l.SMS.Body)
		}
		return href
	case KindDownload:
		if l.Download == nil || l.Download.URL == "" {
			return Placeholder
		}
		return l.Download.URL
	case KindSocial:
		if l.Social == nil || l.Social.Profile == "" {
			return Placeholder
		}
		return l.Social.Profile
	case KindModal, KindScript:
		// no target string - these dispatch a runtime action on click
		return ""
	default:
		return Placeholder
	}
}

// Navigable reports whether a click on the link performs standard
// navigation (possibly intercepted for smooth scroll) as opposed to a
// modal/script runtime action.
func (l *Link) Navigable() bool {
	if l.IsZero() {
		return false
	}
	return l.Kind != KindModal && l.Kind != KindScript
}

// NewTab reports whether navigation should open a new browsing context.
func (l *Link) NewTab() bool {
	return l != nil && l.Kind == KindExternal && l.External != nil && l.External.NewTab
}

// NoFollow reports whether the rendered anchor carries rel="nofollow".
// External and social links imply it unless explicitly suppressed.
func (l *Link) NoFollow() bool {
	if l == nil {
		return false
	}
	switch l.Kind {
	case KindExternal:
		return l.External == nil || l.External.NoFollow == nil || *l.External.NoFollow
	case KindSocial:
		return true
	default:
		return false
	}
}
