package render

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"bpc/block"
)

// Per-type renderers. Each decodes the free-form props into the view it
// needs and emits markup under parent. Unknown extra keys are ignored,
// wrong value shapes surface as decode errors and the dispatcher shows the
// degraded placeholder instead.

// editable marks an element as in-place editable for a named prop field.
func editable(el *etree.Element, ctx renderCtx, field string) {
	if !ctx.InlineEdit {
		return
	}
	el.CreateAttr("contenteditable", "true")
	el.CreateAttr("data-field", field)
}

func headingLevel(level int) string {
	if level < 1 || level > 6 {
		level = 2
	}
	return fmt.Sprintf("h%d", level)
}

func renderHero(ctx renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
		CTAText  string `yaml:"cta_text"`
		Image    string `yaml:"image"`
		Align    string `yaml:"align"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	hero := parent.CreateElement("div")
	hero.CreateAttr("class", "hero align-"+alignClass(v.Align))
	if v.Image != "" {
		img := hero.CreateElement("img")
		img.CreateAttr("class", "hero-image")
		img.CreateAttr("src", v.Image)
		img.CreateAttr("alt", "")
	}
	h1 := hero.CreateElement("h1")
	h1.SetText(v.Title)
	editable(h1, ctx, "title")
	if v.Subtitle != "" {
		p := hero.CreateElement("p")
		p.CreateAttr("class", "hero-subtitle")
		p.SetText(v.Subtitle)
		editable(p, ctx, "subtitle")
	}
	if v.CTAText != "" {
		btn := hero.CreateElement("span")
		btn.CreateAttr("class", "btn btn-primary")
		btn.SetText(v.CTAText)
		editable(btn, ctx, "cta_text")
	}
	return nil
}

func alignClass(align string) string {
	switch align {
	case "left", "right", "center":
		return align
	default:
		return "center"
	}
}

func renderHeading(ctx renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Text  string `yaml:"text"`
		Level int    `yaml:"level"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	h := parent.CreateElement(headingLevel(v.Level))
	h.SetText(v.Text)
	editable(h, ctx, "text")
	return nil
}

func renderText(ctx renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Text string `yaml:"text"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	// one editable body for the whole prop, so an inline edit maps back
	// unambiguously even when the text splits into several paragraphs
	body := parent.CreateElement("div")
	body.CreateAttr("class", "text-body")
	editable(body, ctx, "text")
	// blank lines split paragraphs, single newlines stay inside one
	for _, para := range strings.Split(v.Text, "\n\n") {
		body.CreateElement("p").SetText(para)
	}
	return nil
}

func renderQuote(ctx renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Text   string `yaml:"text"`
		Author string `yaml:"author"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	bq := parent.CreateElement("blockquote")
	p := bq.CreateElement("p")
	p.SetText(v.Text)
	editable(p, ctx, "text")
	if v.Author != "" {
		cite := bq.CreateElement("cite")
		cite.SetText(v.Author)
		editable(cite, ctx, "author")
	}
	return nil
}

func renderImage(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Src     string `yaml:"src"`
		Alt     string `yaml:"alt"`
		Caption string `yaml:"caption"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	fig := parent.CreateElement("figure")
	img := fig.CreateElement("img")
	img.CreateAttr("src", v.Src)
	img.CreateAttr("alt", v.Alt)
	if v.Caption != "" {
		fc := fig.CreateElement("figcaption")
		fc.SetText(v.Caption)
	}
	return nil
}

func renderGallery(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Images  []string `yaml:"images"`
		Columns int      `yaml:"columns"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	grid := parent.CreateElement("div")
	grid.CreateAttr("class", "gallery")
	grid.CreateAttr("style", gridColumns(v.Columns))
	for _, src := range v.Images {
		img := grid.CreateElement("img")
		img.CreateAttr("src", src)
		img.CreateAttr("alt", "")
	}
	return nil
}

func gridColumns(n int) string {
	if n < 1 {
		n = 3
	}
	return fmt.Sprintf("display: grid; grid-template-columns: repeat(%d, 1fr); gap: var(--block-gap);", n)
}

func renderVideo(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Src      string `yaml:"src"`
		Poster   string `yaml:"poster"`
		Controls bool   `yaml:"controls"`
		Autoplay bool   `yaml:"autoplay"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	vid := parent.CreateElement("video")
	vid.CreateAttr("src", v.Src)
	if v.Poster != "" {
		vid.CreateAttr("poster", v.Poster)
	}
	if v.Controls {
		vid.CreateAttr("controls", "controls")
	}
	if v.Autoplay {
		vid.CreateAttr("autoplay", "autoplay")
		vid.CreateAttr("muted", "muted")
	}
	return nil
}

func renderAudio(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Src   string `yaml:"src"`
		Title string `yaml:"title"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	if v.Title != "" {
		t := parent.CreateElement("p")
		t.CreateAttr("class", "audio-title")
		t.SetText(v.Title)
	}
	au := parent.CreateElement("audio")
	au.CreateAttr("src", v.Src)
	au.CreateAttr("controls", "controls")
	return nil
}

func renderButton(ctx renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Text    string `yaml:"text"`
		Variant string `yaml:"variant"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	variant := v.Variant
	if variant == "" {
		variant = "primary"
	}
	btn := parent.CreateElement("span")
	btn.CreateAttr("class", "btn btn-"+variant)
	btn.SetText(v.Text)
	editable(btn, ctx, "text")
	return nil
}

func renderCTA(ctx renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Title      string `yaml:"title"`
		Subtitle   string `yaml:"subtitle"`
		ButtonText string `yaml:"button_text"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	cta := parent.CreateElement("div")
	cta.CreateAttr("class", "cta")
	h2 := cta.CreateElement("h2")
	h2.SetText(v.Title)
	editable(h2, ctx, "title")
	if v.Subtitle != "" {
		p := cta.CreateElement("p")
		p.SetText(v.Subtitle)
		editable(p, ctx, "subtitle")
	}
	btn := cta.CreateElement("span")
	btn.CreateAttr("class", "btn btn-primary")
	btn.SetText(v.ButtonText)
	editable(btn, ctx, "button_text")
	return nil
}

func renderDivider(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Style string `yaml:"style"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	hr := parent.CreateElement("hr")
	if v.Style != "" && v.Style != "solid" {
		hr.CreateAttr("style", "border-style: "+v.Style+";")
	}
	return nil
}

func renderSpacer(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		HeightPx int `yaml:"height_px"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	if v.HeightPx < 0 {
		v.HeightPx = 0
	}
	sp := parent.CreateElement("div")
	sp.CreateAttr("class", "spacer")
	sp.CreateAttr("style", fmt.Sprintf("height: %dpx;", v.HeightPx))
	sp.CreateAttr("aria-hidden", "true")
	return nil
}

type navItem struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

func renderNavigation(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Brand string    `yaml:"brand"`
		Items []navItem `yaml:"items"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	nav := parent.CreateElement("nav")
	nav.CreateAttr("class", "site-nav")
	if v.Brand != "" {
		brand := nav.CreateElement("span")
		brand.CreateAttr("class", "nav-brand")
		brand.SetText(v.Brand)
	}
	ul := nav.CreateElement("ul")
	for _, it := range v.Items {
		li := ul.CreateElement("li")
		a := li.CreateElement("a")
		a.CreateAttr("href", it.Href)
		a.SetText(it.Label)
	}
	return nil
}

func renderFooter(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Copyright string    `yaml:"copyright"`
		Items     []navItem `yaml:"items"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	footer := parent.CreateElement("footer")
	footer.CreateAttr("class", "site-footer")
	if len(v.Items) > 0 {
		ul := footer.CreateElement("ul")
		for _, it := range v.Items {
			li := ul.CreateElement("li")
			a := li.CreateElement("a")
			a.CreateAttr("href", it.Href)
			a.SetText(it.Label)
		}
	}
	if v.Copyright != "" {
		p := footer.CreateElement("p")
		p.CreateAttr("class", "copyright")
		p.SetText(v.Copyright)
	}
	return nil
}

type productView struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Currency string `yaml:"currency"`
	Image    string `yaml:"image"`
	Badge    string `yaml:"badge"`
}

func appendProduct(parent *etree.Element, p productView) {
	card := parent.CreateElement("div")
	card.CreateAttr("class", "product-card")
	if p.Badge != "" {
		badge := card.CreateElement("span")
		badge.CreateAttr("class", "badge")
		badge.SetText(p.Badge)
	}
	if p.Image != "" {
		img := card.CreateElement("img")
		img.CreateAttr("src", p.Image)
		img.CreateAttr("alt", p.Name)
	}
	name := card.CreateElement("h3")
	name.SetText(p.Name)
	price := card.CreateElement("p")
	price.CreateAttr("class", "price")
	price.SetText(strings.TrimSpace(p.Price + " " + p.Currency))
}

func renderProductCard(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v productView
	if err := props.Decode(&v); err != nil {
		return err
	}
	appendProduct(parent, v)
	return nil
}

func renderProductGrid(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Products []productView `yaml:"products"`
		Columns  int           `yaml:"columns"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	grid := parent.CreateElement("div")
	grid.CreateAttr("class", "product-grid")
	grid.CreateAttr("style", gridColumns(v.Columns))
	for _, p := range v.Products {
		appendProduct(grid, p)
	}
	return nil
}

func renderPricing(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Plans []struct {
			Name     string   `yaml:"name"`
			Price    string   `yaml:"price"`
			Features []string `yaml:"features"`
		} `yaml:"plans"`
		Period string `yaml:"period"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	row := parent.CreateElement("div")
	row.CreateAttr("class", "pricing")
	for _, plan := range v.Plans {
		card := row.CreateElement("div")
		card.CreateAttr("class", "pricing-plan")
		name := card.CreateElement("h3")
		name.SetText(plan.Name)
		price := card.CreateElement("p")
		price.CreateAttr("class", "price")
		if v.Period != "" {
			price.SetText(plan.Price + "/" + v.Period)
		} else {
			price.SetText(plan.Price)
		}
		ul := card.CreateElement("ul")
		for _, f := range plan.Features {
			ul.CreateElement("li").SetText(f)
		}
	}
	return nil
}

func renderTestimonial(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Quote  string `yaml:"quote"`
		Author string `yaml:"author"`
		Role   string `yaml:"role"`
		Avatar string `yaml:"avatar"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	t := parent.CreateElement("figure")
	t.CreateAttr("class", "testimonial")
	if v.Avatar != "" {
		img := t.CreateElement("img")
		img.CreateAttr("class", "avatar")
		img.CreateAttr("src", v.Avatar)
		img.CreateAttr("alt", v.Author)
	}
	bq := t.CreateElement("blockquote")
	bq.SetText(v.Quote)
	cap := t.CreateElement("figcaption")
	if v.Role != "" {
		cap.SetText(v.Author + ", " + v.Role)
	} else {
		cap.SetText(v.Author)
	}
	return nil
}

type qaItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
}

func renderFAQ(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Items []qaItem `yaml:"items"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	for _, it := range v.Items {
		d := parent.CreateElement("details")
		d.CreateAttr("class", "faq-item")
		d.CreateElement("summary").SetText(it.Question)
		d.CreateElement("p").SetText(it.Answer)
	}
	return nil
}

func renderAccordion(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Items []qaItem `yaml:"items"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	for _, it := range v.Items {
		d := parent.CreateElement("details")
		d.CreateAttr("class", "accordion-item")
		d.CreateElement("summary").SetText(it.Title)
		d.CreateElement("p").SetText(it.Content)
	}
	return nil
}

func renderTabs(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Tabs []qaItem `yaml:"tabs"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	wrap := parent.CreateElement("div")
	wrap.CreateAttr("class", "tabs")
	bar := wrap.CreateElement("div")
	bar.CreateAttr("class", "tab-bar")
	for i, t := range v.Tabs {
		btn := bar.CreateElement("button")
		btn.CreateAttr("type", "button")
		btn.CreateAttr("data-tab", fmt.Sprintf("%d", i))
		btn.SetText(t.Title)
	}
	for i, t := range v.Tabs {
		panel := wrap.CreateElement("div")
		panel.CreateAttr("class", "tab-panel")
		panel.CreateAttr("data-tab", fmt.Sprintf("%d", i))
		if i > 0 {
			panel.CreateAttr("hidden", "hidden")
		}
		panel.CreateElement("p").SetText(t.Content)
	}
	return nil
}

func appendForm(parent *etree.Element, class, title, submitText string) *etree.Element {
	form := parent.CreateElement("form")
	form.CreateAttr("class", class)
	// composition only; submission wiring belongs to the hosting site
	form.CreateAttr("action", "#")
	form.CreateAttr("method", "post")
	if title != "" {
		form.CreateElement("h3").SetText(title)
	}
	submit := form.CreateElement("button")
	submit.CreateAttr("type", "submit")
	submit.SetText(submitText)
	return form
}

func formInput(form *etree.Element, before *etree.Element, name, typ string) {
	input := etree.NewElement("input")
	input.CreateAttr("type", typ)
	input.CreateAttr("name", name)
	input.CreateAttr("placeholder", name)
	form.InsertChildAt(before.Index(), input)
}

func renderContactForm(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Title      string   `yaml:"title"`
		SubmitText string   `yaml:"submit_text"`
		Fields     []string `yaml:"fields"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	form := appendForm(parent, "contact-form", v.Title, v.SubmitText)
	submit := form.ChildElements()[len(form.ChildElements())-1]
	for _, f := range v.Fields {
		switch f {
		case "message":
			ta := etree.NewElement("textarea")
			ta.CreateAttr("name", f)
			ta.CreateAttr("placeholder", f)
			form.InsertChildAt(submit.Index(), ta)
		case "email":
			formInput(form, submit, f, "email")
		default:
			formInput(form, submit, f, "text")
		}
	}
	return nil
}

func renderLoginForm(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Title          string `yaml:"title"`
		SubmitText     string `yaml:"submit_text"`
		ShowRemember   bool   `yaml:"show_remember"`
		ForgotPassword bool   `yaml:"forgot_password"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	form := appendForm(parent, "login-form", v.Title, v.SubmitText)
	submit := form.ChildElements()[len(form.ChildElements())-1]
	formInput(form, submit, "email", "email")
	formInput(form, submit, "password", "password")
	if v.ShowRemember {
		label := etree.NewElement("label")
		cb := label.CreateElement("input")
		cb.CreateAttr("type", "checkbox")
		cb.CreateAttr("name", "remember")
		label.CreateElement("span").SetText("Remember me")
		form.InsertChildAt(submit.Index(), label)
	}
	if v.ForgotPassword {
		a := form.CreateElement("a")
		a.CreateAttr("class", "forgot-password")
		a.CreateAttr("href", "#")
		a.SetText("Forgot password?")
	}
	return nil
}

func renderSignupForm(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Title      string `yaml:"title"`
		SubmitText string `yaml:"submit_text"`
		ShowTerms  bool   `yaml:"show_terms"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	form := appendForm(parent, "signup-form", v.Title, v.SubmitText)
	submit := form.ChildElements()[len(form.ChildElements())-1]
	formInput(form, submit, "name", "text")
	formInput(form, submit, "email", "email")
	formInput(form, submit, "password", "password")
	if v.ShowTerms {
		label := etree.NewElement("label")
		cb := label.CreateElement("input")
		cb.CreateAttr("type", "checkbox")
		cb.CreateAttr("name", "terms")
		label.CreateElement("span").SetText("I agree to the terms")
		form.InsertChildAt(submit.Index(), label)
	}
	return nil
}

func renderNewsletter(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Title       string `yaml:"title"`
		Placeholder string `yaml:"placeholder"`
		SubmitText  string `yaml:"submit_text"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	form := appendForm(parent, "newsletter", v.Title, v.SubmitText)
	submit := form.ChildElements()[len(form.ChildElements())-1]
	input := etree.NewElement("input")
	input.CreateAttr("type", "email")
	input.CreateAttr("name", "email")
	input.CreateAttr("placeholder", v.Placeholder)
	form.InsertChildAt(submit.Index(), input)
	return nil
}

func renderSocialIcons(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Profiles []struct {
			Platform string `yaml:"platform"`
			URL      string `yaml:"url"`
		} `yaml:"profiles"`
		Size string `yaml:"size"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	size := v.Size
	if size == "" {
		size = "medium"
	}
	ul := parent.CreateElement("ul")
	ul.CreateAttr("class", "social-icons size-"+size)
	for _, p := range v.Profiles {
		li := ul.CreateElement("li")
		a := li.CreateElement("a")
		a.CreateAttr("href", p.URL)
		a.CreateAttr("rel", "nofollow noopener")
		a.CreateAttr("target", "_blank")
		a.CreateAttr("aria-label", p.Platform)
		a.SetText(p.Platform)
	}
	return nil
}

func renderMap(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Address string `yaml:"address"`
		Zoom    int    `yaml:"zoom"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	m := parent.CreateElement("div")
	m.CreateAttr("class", "map")
	m.CreateAttr("data-address", v.Address)
	m.CreateAttr("data-zoom", fmt.Sprintf("%d", v.Zoom))
	m.SetText(v.Address)
	return nil
}

func renderCountdown(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Target string `yaml:"target"`
		Title  string `yaml:"title"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	cd := parent.CreateElement("div")
	cd.CreateAttr("class", "countdown")
	cd.CreateAttr("data-target", v.Target)
	if v.Title != "" {
		cd.CreateElement("h3").SetText(v.Title)
	}
	timer := cd.CreateElement("span")
	timer.CreateAttr("class", "countdown-timer")
	return nil
}

func renderTeam(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Members []struct {
			Name  string `yaml:"name"`
			Role  string `yaml:"role"`
			Photo string `yaml:"photo"`
		} `yaml:"members"`
		Columns int `yaml:"columns"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	grid := parent.CreateElement("div")
	grid.CreateAttr("class", "team")
	grid.CreateAttr("style", gridColumns(v.Columns))
	for _, m := range v.Members {
		card := grid.CreateElement("div")
		card.CreateAttr("class", "team-member")
		if m.Photo != "" {
			img := card.CreateElement("img")
			img.CreateAttr("src", m.Photo)
			img.CreateAttr("alt", m.Name)
		}
		card.CreateElement("h4").SetText(m.Name)
		if m.Role != "" {
			role := card.CreateElement("p")
			role.CreateAttr("class", "role")
			role.SetText(m.Role)
		}
	}
	return nil
}

func renderFeatures(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Items []struct {
			Title string `yaml:"title"`
			Text  string `yaml:"text"`
			Icon  string `yaml:"icon"`
		} `yaml:"items"`
		Columns int `yaml:"columns"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	grid := parent.CreateElement("div")
	grid.CreateAttr("class", "features")
	grid.CreateAttr("style", gridColumns(v.Columns))
	for _, it := range v.Items {
		f := grid.CreateElement("div")
		f.CreateAttr("class", "feature")
		if it.Icon != "" {
			icon := f.CreateElement("span")
			icon.CreateAttr("class", "feature-icon icon-"+it.Icon)
		}
		f.CreateElement("h4").SetText(it.Title)
		f.CreateElement("p").SetText(it.Text)
	}
	return nil
}

func renderStats(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Items []struct {
			Value string `yaml:"value"`
			Label string `yaml:"label"`
		} `yaml:"items"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	row := parent.CreateElement("div")
	row.CreateAttr("class", "stats")
	for _, it := range v.Items {
		s := row.CreateElement("div")
		s.CreateAttr("class", "stat")
		val := s.CreateElement("span")
		val.CreateAttr("class", "stat-value")
		val.SetText(it.Value)
		lbl := s.CreateElement("span")
		lbl.CreateAttr("class", "stat-label")
		lbl.SetText(it.Label)
	}
	return nil
}

func renderLogoCloud(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Logos []string `yaml:"logos"`
		Title string   `yaml:"title"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	if v.Title != "" {
		t := parent.CreateElement("p")
		t.CreateAttr("class", "logo-cloud-title")
		t.SetText(v.Title)
	}
	row := parent.CreateElement("div")
	row.CreateAttr("class", "logo-cloud")
	for _, src := range v.Logos {
		img := row.CreateElement("img")
		img.CreateAttr("src", src)
		img.CreateAttr("alt", "")
	}
	return nil
}

func renderBreadcrumbs(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Items []navItem `yaml:"items"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	nav := parent.CreateElement("nav")
	nav.CreateAttr("class", "breadcrumbs")
	nav.CreateAttr("aria-label", "breadcrumbs")
	ol := nav.CreateElement("ol")
	for i, it := range v.Items {
		li := ol.CreateElement("li")
		if i == len(v.Items)-1 {
			// current page is not a link
			li.CreateAttr("aria-current", "page")
			li.SetText(it.Label)
			continue
		}
		a := li.CreateElement("a")
		a.CreateAttr("href", it.Href)
		a.SetText(it.Label)
	}
	return nil
}

func renderCode(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		Code     string `yaml:"code"`
		Language string `yaml:"language"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	pre := parent.CreateElement("pre")
	code := pre.CreateElement("code")
	if v.Language != "" {
		code.CreateAttr("class", "language-"+v.Language)
	}
	code.SetText(v.Code)
	return nil
}

func renderEmbed(_ renderCtx, parent *etree.Element, props block.Props) error {
	var v struct {
		HTML string `yaml:"html"`
	}
	if err := props.Decode(&v); err != nil {
		return err
	}
	if strings.TrimSpace(v.HTML) == "" {
		return nil
	}
	// embed content must be well formed to be spliced into the tree,
	// anything else is shown as source rather than silently dropped
	frag := etree.NewDocument()
	if err := frag.ReadFromString("<div class=\"embed\">" + v.HTML + "</div>"); err != nil || frag.Root() == nil {
		pre := parent.CreateElement("pre")
		pre.CreateAttr("class", "embed-source")
		pre.SetText(v.HTML)
		return nil
	}
	parent.AddChild(frag.Root().Copy())
	return nil
}
