package link

import (
	"fmt"

	"go.uber.org/zap"
)

// BehaviorKind classifies what happens when a linked block is clicked.
type BehaviorKind int

const (
	BehaviorNothing BehaviorKind = iota
	BehaviorNavigate
	BehaviorScroll
	BehaviorModal
	BehaviorScript
)

// Behavior is the click-time plan derived from a descriptor. Href resolution
// answers "where does the anchor point", Behavior answers "what does a click
// actually do".
type Behavior struct {
	Kind BehaviorKind

	// navigate
	Href     string
	NewTab   bool
	NoFollow bool

	// scroll
	AnchorID string
	Smooth   bool
	OffsetPx int

	// modal
	ModalID     string
	ModalAction ModalAction

	// script
	ScriptBody string
}

// ClickBehavior derives the runtime plan for the descriptor. Like Href it
// never fails: descriptors with missing required fields plan to do nothing.
func (l *Link) ClickBehavior() Behavior {
	if l.IsZero() {
		return Behavior{Kind: BehaviorNothing}
	}
	switch l.Kind {
	case KindScroll:
		if l.Scroll == nil || l.Scroll.AnchorID == "" {
			return Behavior{Kind: BehaviorNothing}
		}
		return Behavior{
			Kind:     BehaviorScroll,
			AnchorID: l.Scroll.AnchorID,
			Smooth:   l.Scroll.SmoothScroll,
			OffsetPx: l.Scroll.OffsetPx,
		}
	case KindModal:
		if l.Modal == nil || l.Modal.ModalID == "" {
			return Behavior{Kind: BehaviorNothing}
		}
		return Behavior{Kind: BehaviorModal, ModalID: l.Modal.ModalID, ModalAction: l.Modal.Action}
	case KindScript:
		if l.Script == nil || l.Script.Body == "" {
			return Behavior{Kind: BehaviorNothing}
		}
		return Behavior{Kind: BehaviorScript, ScriptBody: l.Script.Body}
	default:
		href := l.Href()
		if href == Placeholder || href == "" {
			return Behavior{Kind: BehaviorNothing}
		}
		return Behavior{Kind: BehaviorNavigate, Href: href, NewTab: l.NewTab(), NoFollow: l.NoFollow()}
	}
}

// Scroller positions the view at an anchored element.
type Scroller interface {
	ScrollTo(anchorID string, offsetPx int, smooth bool) error
}

// ScriptRunner executes an opaque user supplied script body. Implementations
// are expected to be unsafe; the runtime contains their failures.
type ScriptRunner interface {
	Run(body string) error
}

// Navigator performs standard navigation toward a resolved href.
type Navigator interface {
	Navigate(href string, newTab bool) error
}

// Runtime invokes click behaviors against caller supplied capabilities.
// Script execution is disabled unless explicitly granted. Every failure is
// caught and logged - a broken click must never take the page down.
type Runtime struct {
	AllowScripts bool

	Nav     Navigator
	Scrolls Scroller
	Scripts ScriptRunner

	log *zap.Logger
}

func NewRuntime(allowScripts bool, nav Navigator, scrolls Scroller, scripts ScriptRunner, log *zap.Logger) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runtime{
		AllowScripts: allowScripts,
		Nav:          nav,
		Scrolls:      scrolls,
		Scripts:      scripts,
		log:          log.Named("link-runtime"),
	}
}

// Click executes the link's behavior. Fire and forget: outcome is logged,
// never returned.
func (r *Runtime) Click(l *Link) {
	b := l.ClickBehavior()
	if err := r.invoke(b); err != nil {
		r.log.Warn("Click behavior failed", zap.String("kind", l.Kind.String()), zap.Error(err))
	}
}

func (r *Runtime) invoke(b Behavior) (err error) {
	// runners are user supplied and may well panic
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("runtime action panic: %v", p)
		}
	}()

	switch b.Kind {
	case BehaviorNavigate:
		if r.Nav == nil {
			return nil
		}
		return r.Nav.Navigate(b.Href, b.NewTab)
	case BehaviorScroll:
		if r.Scrolls == nil {
			return nil
		}
		return r.Scrolls.ScrollTo(b.AnchorID, b.OffsetPx, b.Smooth)
	case BehaviorScript:
		if !r.AllowScripts {
			r.log.Debug("Script link ignored, scripts are not allowed")
			return nil
		}
		if r.Scripts == nil {
			return nil
		}
		return r.Scripts.Run(b.ScriptBody)
	case BehaviorModal:
		// modal state lives with the consumer; nothing to do here beyond
		// having produced the plan
		return nil
	default:
		return nil
	}
}
