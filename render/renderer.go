package render

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"bpc/block"
	"bpc/config"
	"bpc/link"
	"bpc/style"
)

// Options tune dispatcher behavior that is not part of the block data
// itself.
type Options struct {
	// ShowLinkIndicator adds a small indicator exposing the resolved link
	// kind and target to linked blocks in edit mode.
	ShowLinkIndicator bool
	// AllowScripts permits script link bodies to reach the output. Without
	// it script links render inert.
	AllowScripts bool
}

type renderCtx struct {
	Theme *Theme
	// InlineEdit asks the renderer for its inline-editable variant: same
	// props contract plus in-place edit affordances.
	InlineEdit bool
}

// renderFunc produces presentational output for one block type from its
// props. It must not look at link/visibility/animation/style - the
// dispatcher resolves those and applies them on the wrapping container.
type renderFunc func(ctx renderCtx, parent *etree.Element, props block.Props) error

// Renderer dispatches blocks to per-type renderers through a function
// table. Adding a block type is a single table registration.
type Renderer struct {
	reg   *block.Registry
	comp  *style.Compositor
	theme *Theme
	opts  Options
	log   *zap.Logger

	table  map[block.Type]renderFunc
	inline map[block.Type]bool
}

func NewRenderer(reg *block.Registry, theme *Theme, opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		reg:   reg,
		comp:  style.NewCompositor(log),
		theme: theme,
		opts:  opts,
		log:   log.Named("renderer"),
	}
	r.table = map[block.Type]renderFunc{
		block.TypeHero:        renderHero,
		block.TypeHeading:     renderHeading,
		block.TypeText:        renderText,
		block.TypeQuote:       renderQuote,
		block.TypeImage:       renderImage,
		block.TypeGallery:     renderGallery,
		block.TypeVideo:       renderVideo,
		block.TypeAudio:       renderAudio,
		block.TypeButton:      renderButton,
		block.TypeCTA:         renderCTA,
		block.TypeDivider:     renderDivider,
		block.TypeSpacer:      renderSpacer,
		block.TypeNavigation:  renderNavigation,
		block.TypeFooter:      renderFooter,
		block.TypeProductCard: renderProductCard,
		block.TypeProductGrid: renderProductGrid,
		block.TypePricing:     renderPricing,
		block.TypeTestimonial: renderTestimonial,
		block.TypeFAQ:         renderFAQ,
		block.TypeAccordion:   renderAccordion,
		block.TypeTabs:        renderTabs,
		block.TypeContactForm: renderContactForm,
		block.TypeLoginForm:   renderLoginForm,
		block.TypeSignupForm:  renderSignupForm,
		block.TypeNewsletter:  renderNewsletter,
		block.TypeSocialIcons: renderSocialIcons,
		block.TypeMap:         renderMap,
		block.TypeCountdown:   renderCountdown,
		block.TypeTeam:        renderTeam,
		block.TypeFeatures:    renderFeatures,
		block.TypeStats:       renderStats,
		block.TypeLogoCloud:   renderLogoCloud,
		block.TypeBreadcrumbs: renderBreadcrumbs,
		block.TypeCode:        renderCode,
		block.TypeEmbed:       renderEmbed,
	}
	r.inline = map[block.Type]bool{
		block.TypeHero:    true,
		block.TypeHeading: true,
		block.TypeText:    true,
		block.TypeQuote:   true,
		block.TypeButton:  true,
		block.TypeCTA:     true,
	}
	return r
}

// containerTags are the tags a style overlay may substitute for the default
// block container.
var containerTags = map[string]bool{
	"div": true, "section": true, "article": true, "aside": true,
	"header": true, "footer": true, "main": true, "nav": true, "figure": true,
}

func containerTag(requested string) string {
	if containerTags[strings.ToLower(requested)] {
		return strings.ToLower(requested)
	}
	return "div"
}

// RenderBlock resolves visibility, composes the block's style, wraps the
// link and dispatches to the per-type renderer. It appends the block's
// container to parent and returns it; a nil return means the block was
// omitted (hidden outside edit mode). It never fails - malformed blocks
// degrade to visible placeholders.
func (r *Renderer) RenderBlock(parent *etree.Element, b *block.Block, viewport config.Viewport, mode config.RenderMode) *etree.Element {
	if !b.VisibleAt(viewport) {
		if !mode.Editing() {
			// hidden blocks leave no trace in preview/published output
			return nil
		}
		ph := parent.CreateElement("div")
		ph.CreateAttr("class", "block block-hidden")
		ph.CreateAttr("data-block-id", b.ID)
		ph.SetText(fmt.Sprintf("hidden on %s", viewport))
		return ph
	}

	composed := r.comp.Compose(b)
	if !b.Link.IsZero() && b.Link.CursorStyle != "" {
		composed.Set("cursor", b.Link.CursorStyle)
	}

	container := parent.CreateElement(containerTag(composed.CustomTag))
	classes := []string{"block", "block-" + string(b.Type)}
	if composed.Effect != "" {
		classes = append(classes, "anim-"+composed.Effect)
	}
	if composed.CustomClass != "" {
		classes = append(classes, composed.CustomClass)
	}
	if mode.Editing() {
		classes = append(classes, "is-editing")
	}
	container.CreateAttr("class", strings.Join(classes, " "))
	container.CreateAttr("data-block-id", b.ID)
	if css := composed.InlineCSS(); css != "" {
		container.CreateAttr("style", css)
	}

	content := container
	if !b.Link.IsZero() {
		content = r.wrapLink(container, b.Link)
	}

	if mode.Editing() {
		r.appendEditControls(container, b)
	}

	entry, known := r.reg.Lookup(b.Type)
	if !known {
		// stale types stay visible for manual cleanup instead of vanishing
		r.log.Warn("Unknown block type", zap.String("id", b.ID), zap.String("type", string(b.Type)))
		fallback := content.CreateElement("div")
		fallback.CreateAttr("class", "block-unknown")
		fallback.SetText(fmt.Sprintf("unknown block type: %s", b.Type))
		return container
	}

	ctx := renderCtx{
		Theme:      r.theme,
		InlineEdit: mode.Editing() && r.inline[b.Type],
	}
	if err := r.dispatch(ctx, content, b); err != nil {
		r.log.Warn("Unable to render block", zap.String("id", b.ID), zap.String("type", string(b.Type)), zap.Error(err))
		broken := content.CreateElement("div")
		broken.CreateAttr("class", "block-error")
		broken.SetText(fmt.Sprintf("%s block could not be rendered", entry.Label))
	}
	return container
}

// dispatch isolates the per-type renderer: errors are returned, panics from
// malformed props are contained here so one broken block cannot take the
// page down.
func (r *Renderer) dispatch(ctx renderCtx, parent *etree.Element, b *block.Block) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("renderer panic: %v", p)
		}
	}()
	fn, ok := r.table[b.Type]
	if !ok {
		// registry and table disagree - render as unknown rather than crash
		return fmt.Errorf("no renderer registered for type %s", b.Type)
	}
	return fn(ctx, parent, b.Props)
}

func (r *Renderer) wrapLink(container *etree.Element, l *link.Link) *etree.Element {
	a := container.CreateElement("a")
	a.CreateAttr("class", "block-link")

	behavior := l.ClickBehavior()
	href := l.Href()
	if href == "" {
		href = link.Placeholder
	}
	a.CreateAttr("href", href)

	switch behavior.Kind {
	case link.BehaviorNavigate:
		var rel []string
		if behavior.NoFollow {
			rel = append(rel, "nofollow")
		}
		if behavior.NewTab {
			a.CreateAttr("target", "_blank")
			rel = append(rel, "noopener")
		}
		if len(rel) > 0 {
			a.CreateAttr("rel", strings.Join(rel, " "))
		}
		if l.Kind == link.KindDownload && l.Download != nil {
			a.CreateAttr("download", l.Download.Filename)
		}
	case link.BehaviorScroll:
		a.CreateAttr("data-scroll", "true")
		if behavior.Smooth {
			a.CreateAttr("data-scroll-smooth", "true")
		}
		a.CreateAttr("data-scroll-offset", fmt.Sprintf("%d", behavior.OffsetPx))
	case link.BehaviorModal:
		a.CreateAttr("data-modal-id", behavior.ModalID)
		a.CreateAttr("data-modal-action", behavior.ModalAction.String())
	case link.BehaviorScript:
		if r.opts.AllowScripts {
			a.CreateAttr("data-script", behavior.ScriptBody)
		} else {
			a.CreateAttr("data-script-disabled", "true")
		}
	}

	if l.TrackClick {
		a.CreateAttr("data-track", "true")
		if l.TrackLabel != "" {
			a.CreateAttr("data-track-label", l.TrackLabel)
		}
	}
	if l.HoverEffect != "" {
		a.CreateAttr("class", "block-link hover-"+l.HoverEffect)
	}
	return a
}

// appendEditControls adds the selection affordance every block carries in
// edit mode: reorder, duplicate, per-viewport visibility toggles, delete,
// and the resolved link indicator when requested.
func (r *Renderer) appendEditControls(container *etree.Element, b *block.Block) {
	controls := container.CreateElement("div")
	controls.CreateAttr("class", "block-controls")

	for _, action := range []string{"move-up", "move-down", "duplicate", "delete"} {
		btn := controls.CreateElement("button")
		btn.CreateAttr("type", "button")
		btn.CreateAttr("data-action", action)
		btn.SetText(action)
	}
	for _, vp := range config.ViewportNames() {
		btn := controls.CreateElement("button")
		btn.CreateAttr("type", "button")
		btn.CreateAttr("data-action", "toggle-visibility")
		btn.CreateAttr("data-viewport", vp)
		btn.SetText(vp)
	}

	if r.opts.ShowLinkIndicator && !b.Link.IsZero() {
		indicator := controls.CreateElement("span")
		indicator.CreateAttr("class", "link-indicator")
		target := b.Link.Href()
		if target == "" {
			switch b.Link.Kind {
			case link.KindModal:
				if b.Link.Modal != nil {
					target = b.Link.Modal.ModalID
				}
			case link.KindScript:
				target = "script"
			}
		}
		indicator.SetText(fmt.Sprintf("%s: %s", b.Link.Kind, target))
	}
}
