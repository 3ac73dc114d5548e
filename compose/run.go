// Package compose drives page processing for the command line: loading
// page documents, rendering them to HTML and expanding templates into new
// pages.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"bpc/block"
	"bpc/config"
	"bpc/page"
	"bpc/render"
	"bpc/state"
)

// Run renders page document(s) to HTML. The source is a page YAML file or
// a directory of them, the destination a directory for the output.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.Mode = env.Cfg.RenderMode()
	if s := cmd.String("mode"); s != "" {
		if env.Mode, err = config.ParseRenderMode(s); err != nil {
			return fmt.Errorf("unable to parse render mode: %w", err)
		}
	}
	env.Viewport = env.Cfg.Viewport()
	if s := cmd.String("viewport"); s != "" {
		if env.Viewport, err = config.ParseViewport(s); err != nil {
			return fmt.Errorf("unable to parse viewport: %w", err)
		}
	}

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("mode", env.Mode), zap.Stringer("viewport", env.Viewport))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}
	if fi.Mode().IsDir() {
		return processDir(ctx, env, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	return processFile(ctx, env, src, dst, log)
}

func isPageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func processDir(ctx context.Context, env *state.LocalEnv, src, dst string, log *zap.Logger) error {
	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isPageFile(path) {
			return nil
		}
		count++
		if err := processFile(ctx, env, path, dst, log); err != nil {
			// one broken page does not stop the batch
			log.Error("Unable to process page", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to process directory (%s): %w", src, err)
	}
	if count == 0 {
		log.Warn("No page files were found", zap.String("source", src))
	}
	return nil
}

func processFile(ctx context.Context, env *state.LocalEnv, src, dst string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := page.LoadPage(src)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("pages/%s", filepath.Base(src)), src)
	}
	for _, b := range p.Blocks {
		b.Link.ApplyScrollDefault(env.Cfg.Document.Links.ScrollOffsetPx)
	}

	r := render.NewRenderer(
		block.Builtin(),
		render.ThemeFromConfig(&env.Cfg.Document.Theme),
		render.Options{
			ShowLinkIndicator: env.Cfg.Document.Links.ShowIndicator,
			AllowScripts:      env.Cfg.Document.Links.AllowScripts,
		},
		env.Log)

	out, err := r.RenderHTML(p, env.Viewport, env.Mode)
	if err != nil {
		return err
	}

	name, err := outputName(env.Cfg, p, src, env.Mode, env.Viewport)
	if err != nil {
		return err
	}
	target := filepath.Join(dst, name)

	if !env.Overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("destination file already exists: %s", target)
		}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}

	log.Info("Page rendered", zap.String("source", src), zap.String("output", target), zap.Int("blocks", len(p.Blocks)))
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("output/%s", name), []byte(out))
	}
	return nil
}
