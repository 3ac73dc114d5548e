package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"bpc/block"
	"bpc/state"
	"bpc/template"
)

// Expand instantiates a named template into a new page document.
func Expand(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("expand")

	name := cmd.Args().Get(0)
	if len(name) == 0 {
		return errors.New("no template name has been specified")
	}
	tpl, ok := template.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown template %q (available: %v)", name, template.Names())
	}

	p, err := tpl.Expand(block.Builtin())
	if err != nil {
		return fmt.Errorf("unable to expand template: %w", err)
	}
	if title := cmd.String("title"); title != "" {
		p.Title = title
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = p.Slug + ".yaml"
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := p.SavePage(dst, cmd.Bool("overwrite")); err != nil {
		return err
	}

	log.Info("Template expanded", zap.String("template", name), zap.String("output", dst), zap.Int("blocks", len(p.Blocks)))
	return nil
}

// ListTemplates prints the available templates.
func ListTemplates(ctx context.Context, _ *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, t := range template.All() {
		fmt.Printf("%-16s %s - %s (%d blocks)\n", t.Name, t.Label, t.Description, len(t.Seeds))
	}
	return nil
}

// ListBlocks prints the block type catalogue in menu order.
func ListBlocks(ctx context.Context, _ *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, e := range block.Builtin().Entries() {
		fmt.Printf("%-16s %s\n", e.Type, e.Label)
	}
	return nil
}
