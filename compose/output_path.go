package compose

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"bpc/config"
	"bpc/page"
)

// Values holds the variables available to the output name template.
type Values struct {
	Title      string
	Slug       string
	Lang       string
	Mode       string
	Viewport   string
	SourceFile string
	Blocks     int
}

func expandNameTemplate(field string, values Values) (string, error) {
	tmpl, err := template.New("output_name").Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse output name template: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}
	return buf.String(), nil
}

// outputName derives the output file name for a rendered page from the
// configured template. Empty expansion falls back to the source file name,
// the result is always filesystem safe and carries the .html extension.
func outputName(cfg *config.Config, p *page.Page, src string, mode config.RenderMode, viewport config.Viewport) (string, error) {
	values := Values{
		Title:      p.Title,
		Slug:       p.Slug,
		Lang:       p.LangTag().String(),
		Mode:       mode.String(),
		Viewport:   viewport.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Blocks:     len(p.Blocks),
	}
	name, err := expandNameTemplate(cfg.Document.OutputNameTemplate, values)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = values.SourceFile
	}
	if cfg.Document.FileNameTransliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name) + ".html", nil
}
