// Package link models the intent of a block's link and resolves it into a
// renderable target. A link is a tagged union: exactly one payload matching
// Kind is set, all other payload pointers are nil.
package link

import (
	"fmt"
	"strings"
)

// Kind discriminates link payloads.
type Kind int

const (
	KindNone Kind = iota
	KindInternal
	KindExternal
	KindAnchor
	KindScroll
	KindEmail
	KindPhone
	KindSMS
	KindDownload
	KindModal
	KindSocial
	KindScript
)

var kindNames = []string{
	"none", "internal", "external", "anchor", "scroll", "email",
	"phone", "sms", "download", "modal", "social", "script",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindNames returns all valid link kind names in declaration order.
func KindNames() []string {
	return append([]string{}, kindNames...)
}

func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(name, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown link kind: %s", name)
}

// ModalAction selects what a modal link does to its target.
type ModalAction int

const (
	ModalOpen ModalAction = iota
	ModalClose
	ModalToggle
)

var modalActionNames = []string{"open", "close", "toggle"}

func (a ModalAction) String() string {
	if a < 0 || int(a) >= len(modalActionNames) {
		return fmt.Sprintf("ModalAction(%d)", int(a))
	}
	return modalActionNames[a]
}

func ParseModalAction(name string) (ModalAction, error) {
	if name == "" {
		return ModalOpen, nil
	}
	for i, n := range modalActionNames {
		if strings.EqualFold(name, n) {
			return ModalAction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown modal action: %s", name)
}

const (
	// DefaultScrollOffsetPx is used by scroll links that do not set an offset.
	DefaultScrollOffsetPx = 80
)

type Internal struct {
	URL       string
	PageSlug  string
	PageID    string
	PageTitle string
}

type External struct {
	URL    string
	NewTab bool
	// NoFollow is tri-state: unset means implied nofollow, explicit false
	// suppresses it.
	NoFollow *bool
}

type Anchor struct {
	AnchorID string
}

type Scroll struct {
	AnchorID     string
	SmoothScroll bool
	// OffsetPx is the effective offset. OffsetSet records whether the
	// descriptor carried one, so a configured default can fill the gap
	// without clobbering an explicit zero.
	OffsetPx  int
	OffsetSet bool
}

type Email struct {
	Address string
	Subject string
	Body    string
}

type Phone struct {
	Number string
}

type SMS struct {
	Number string
	Body   string
}

type Download struct {
	URL      string
	Filename string
}

type Modal struct {
	ModalID string
	Action  ModalAction
}

type Social struct {
	PlatformID string
	Profile    string
}

type Script struct {
	Body string
}

// Link is the tagged union of all link intents plus cross-cutting fields
// that apply to any kind.
type Link struct {
	Kind Kind

	Internal *Internal
	External *External
	Anchor   *Anchor
	Scroll   *Scroll
	Email    *Email
	Phone    *Phone
	SMS      *SMS
	Download *Download
	Modal    *Modal
	Social   *Social
	Script   *Script

	TrackClick  bool
	TrackLabel  string
	CursorStyle string
	HoverEffect string
}

// None is the canonical "no link" descriptor.
func None() *Link {
	return &Link{Kind: KindNone}
}

// IsZero reports whether the link carries no intent at all. A nil link and a
// KindNone link are both zero.
func (l *Link) IsZero() bool {
	return l == nil || l.Kind == KindNone
}

// NewScroll builds a scroll link with kind defaults applied.
func NewScroll(anchorID string) *Link {
	return &Link{Kind: KindScroll, Scroll: &Scroll{
		AnchorID:     anchorID,
		SmoothScroll: true,
		OffsetPx:     DefaultScrollOffsetPx,
	}}
}

// ApplyScrollDefault sets the offset of a scroll link whose descriptor did
// not carry one. Explicit offsets, including zero, are kept. Safe to call on
// any link.
func (l *Link) ApplyScrollDefault(offsetPx int) {
	if l == nil || l.Kind != KindScroll || l.Scroll == nil || l.Scroll.OffsetSet {
		return
	}
	l.Scroll.OffsetPx = offsetPx
}
