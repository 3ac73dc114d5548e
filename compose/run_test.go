package compose

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"bpc/block"
	"bpc/config"
	"bpc/link"
	"bpc/page"
	"bpc/state"
	"bpc/template"
)

func setupTestEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return &state.LocalEnv{
		Cfg:      cfg,
		Log:      zaptest.NewLogger(t),
		Mode:     cfg.RenderMode(),
		Viewport: cfg.Viewport(),
	}
}

func writeTestPage(t *testing.T, dir, name string) string {
	t.Helper()
	tpl, ok := template.Lookup("landing")
	if !ok {
		t.Fatal("landing template missing")
	}
	p, err := tpl.Expand(block.Builtin())
	if err != nil {
		t.Fatalf("unable to expand template: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := p.SavePage(path, false); err != nil {
		t.Fatalf("unable to save page: %v", err)
	}
	return path
}

func TestProcessFile_EndToEnd(t *testing.T) {
	env := setupTestEnv(t)
	srcDir, dstDir := t.TempDir(), t.TempDir()
	src := writeTestPage(t, srcDir, "landing.yaml")

	if err := processFile(context.Background(), env, src, dstDir, env.Log); err != nil {
		t.Fatalf("unable to process page: %v", err)
	}

	// default name template is the page title
	out := filepath.Join(dstDir, "Landing.html")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file was not produced: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("output is missing the document envelope")
	}
	if !strings.Contains(html, "Launch your product") {
		t.Error("output is missing the hero content")
	}
	if strings.Contains(html, "block-controls") {
		t.Error("published output must not carry edit affordances")
	}
}

func TestProcessFile_RespectsOverwrite(t *testing.T) {
	env := setupTestEnv(t)
	srcDir, dstDir := t.TempDir(), t.TempDir()
	src := writeTestPage(t, srcDir, "landing.yaml")

	if err := processFile(context.Background(), env, src, dstDir, env.Log); err != nil {
		t.Fatalf("unable to process page: %v", err)
	}
	if err := processFile(context.Background(), env, src, dstDir, env.Log); err == nil {
		t.Error("existing destination must fail without overwrite")
	}
	env.Overwrite = true
	if err := processFile(context.Background(), env, src, dstDir, env.Log); err != nil {
		t.Errorf("overwrite run failed: %v", err)
	}
}

func TestProcessDir_SkipsBrokenPages(t *testing.T) {
	env := setupTestEnv(t)
	env.Overwrite = true
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeTestPage(t, srcDir, "good.yaml")
	if err := os.WriteFile(filepath.Join(srcDir, "broken.yaml"), []byte("title: [unclosed"), 0644); err != nil {
		t.Fatalf("unable to write broken page: %v", err)
	}

	if err := processDir(context.Background(), env, srcDir, dstDir, env.Log); err != nil {
		t.Fatalf("batch must survive a broken page: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "Landing.html")); err != nil {
		t.Errorf("good page was not rendered: %v", err)
	}
}

func TestProcessFile_EditModeCarriesAffordances(t *testing.T) {
	env := setupTestEnv(t)
	env.Mode = config.RenderModeEdit
	srcDir, dstDir := t.TempDir(), t.TempDir()
	src := writeTestPage(t, srcDir, "landing.yaml")

	if err := processFile(context.Background(), env, src, dstDir, env.Log); err != nil {
		t.Fatalf("unable to process page: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dstDir, "Landing.html"))
	if err != nil {
		t.Fatalf("output file was not produced: %v", err)
	}
	if !strings.Contains(string(data), "block-controls") {
		t.Error("edit mode output must carry edit affordances")
	}
}

func TestProcessFile_ConfiguredScrollOffset(t *testing.T) {
	env := setupTestEnv(t)
	env.Cfg.Document.Links.ScrollOffsetPx = 120
	srcDir, dstDir := t.TempDir(), t.TempDir()

	p := &page.Page{Title: "Offsets", Blocks: []*block.Block{
		{ID: "b1", Type: block.TypeButton, Props: block.Props{"text": "plain"},
			Link: link.NewScroll("signup")},
		{ID: "b2", Type: block.TypeButton, Props: block.Props{"text": "pinned"},
			Link: &link.Link{Kind: link.KindScroll, Scroll: &link.Scroll{AnchorID: "top", OffsetPx: 0, OffsetSet: true}}},
	}}
	src := filepath.Join(srcDir, "offsets.yaml")
	if err := p.SavePage(src, false); err != nil {
		t.Fatalf("unable to save page: %v", err)
	}

	if err := processFile(context.Background(), env, src, dstDir, env.Log); err != nil {
		t.Fatalf("unable to process page: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dstDir, "Offsets.html"))
	if err != nil {
		t.Fatalf("output file was not produced: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, `data-scroll-offset="120"`) {
		t.Error("configured scroll offset must reach links that do not set one")
	}
	if !strings.Contains(html, `data-scroll-offset="0"`) {
		t.Error("explicit zero offset must survive the configured default")
	}
}

func TestProcessFile_RejectsPageWithDuplicateIDs(t *testing.T) {
	env := setupTestEnv(t)
	srcDir, dstDir := t.TempDir(), t.TempDir()
	p := &page.Page{Title: "Dup", Blocks: []*block.Block{
		{ID: "x", Type: block.TypeText, Props: block.Props{"text": "a"}},
		{ID: "x", Type: block.TypeText, Props: block.Props{"text": "b"}},
	}}
	data, err := p.Marshal()
	if err != nil {
		t.Fatalf("unable to marshal page: %v", err)
	}
	src := filepath.Join(srcDir, "dup.yaml")
	if err := os.WriteFile(src, data, 0644); err != nil {
		t.Fatalf("unable to write page: %v", err)
	}
	if err := processFile(context.Background(), env, src, dstDir, env.Log); err == nil {
		t.Error("page with duplicate block ids must be rejected")
	}
}
