package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"bpc/block"
	"bpc/config"
	"bpc/page"
)

// RenderPage assembles the full HTML document for a page: head with theme
// styles and the motion presets the page actually uses, body with every
// block rendered in order.
func (r *Renderer) RenderPage(p *page.Page, viewport config.Viewport, mode config.RenderMode) (*etree.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("unable to render page: %w", err)
	}

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	html.CreateAttr("lang", p.LangTag().String())

	head := html.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")
	vp := head.CreateElement("meta")
	vp.CreateAttr("name", "viewport")
	vp.CreateAttr("content", "width=device-width, initial-scale=1")
	head.CreateElement("title").SetText(p.Title)
	if p.Description != "" {
		desc := head.CreateElement("meta")
		desc.CreateAttr("name", "description")
		desc.CreateAttr("content", p.Description)
	}
	head.CreateElement("style").SetText(r.stylesheet(usedEffects(p, viewport, mode)))

	body := html.CreateElement("body")
	main := body.CreateElement("main")
	main.CreateAttr("class", "page")
	main.CreateAttr("data-mode", mode.String())
	main.CreateAttr("data-viewport", viewport.String())
	for _, b := range p.Blocks {
		r.RenderBlock(main, b, viewport, mode)
	}

	doc.Indent(2)
	return doc, nil
}

// RenderHTML is RenderPage serialized to a string.
func (r *Renderer) RenderHTML(p *page.Page, viewport config.Viewport, mode config.RenderMode) (string, error) {
	doc, err := r.RenderPage(p, viewport, mode)
	if err != nil {
		return "", err
	}
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("unable to serialize page document: %w", err)
	}
	return out, nil
}

// stylesheet is the complete style element content of a document: theme
// tokens plus the motion presets in use.
func (r *Renderer) stylesheet(effects []string) string {
	css := r.theme.RootCSS()
	if anim := animationCSS(effects); anim != "" {
		css += "\n" + anim
	}
	return css
}

// usedEffects collects the animation kinds of blocks that will actually
// appear in the output, so the style element only carries presets in use.
func usedEffects(p *page.Page, viewport config.Viewport, mode config.RenderMode) []string {
	set := make(map[string]bool)
	for _, b := range p.Blocks {
		if b == nil || !b.Animation.Active() {
			continue
		}
		if !b.VisibleAt(viewport) && !mode.Editing() {
			continue
		}
		set[string(b.Animation.Kind)] = true
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// keyframes per motion preset. The .anim-* class only attaches the
// animation name; duration and delay come from the composed inline style.
var effectKeyframes = map[string]string{
	string(block.AnimFade):       "from { opacity: 0; } to { opacity: 1; }",
	string(block.AnimFadeUp):     "from { opacity: 0; transform: translateY(24px); } to { opacity: 1; transform: none; }",
	string(block.AnimFadeDown):   "from { opacity: 0; transform: translateY(-24px); } to { opacity: 1; transform: none; }",
	string(block.AnimSlideLeft):  "from { transform: translateX(48px); } to { transform: none; }",
	string(block.AnimSlideRight): "from { transform: translateX(-48px); } to { transform: none; }",
	string(block.AnimZoomIn):     "from { opacity: 0; transform: scale(0.92); } to { opacity: 1; transform: none; }",
	string(block.AnimZoomOut):    "from { opacity: 0; transform: scale(1.08); } to { opacity: 1; transform: none; }",
	string(block.AnimBounce):     "0% { transform: translateY(0); } 30% { transform: translateY(-12px); } 60% { transform: translateY(0); } 80% { transform: translateY(-4px); } 100% { transform: translateY(0); }",
}

func animationCSS(effects []string) string {
	var sb strings.Builder
	for _, name := range effects {
		frames, ok := effectKeyframes[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "@keyframes %s { %s }\n", name, frames)
		fmt.Fprintf(&sb, ".anim-%s { animation-name: %s; }\n", name, name)
	}
	return strings.TrimRight(sb.String(), "\n")
}
