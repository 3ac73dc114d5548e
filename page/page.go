// Package page holds the composed document model: an ordered list of
// blocks with page level metadata, plus the editing operations a builder
// surface performs on it.
package page

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"golang.org/x/text/language"

	"bpc/block"
	"bpc/link"
)

// Page is a single composed page. Block order is presentation order.
type Page struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug,omitempty"`
	Lang        string         `yaml:"lang,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Blocks      []*block.Block `yaml:"blocks"`
}

// New creates an empty page with a slug derived from the title.
func New(title string) *Page {
	return &Page{
		Title: title,
		Slug:  slug.Make(title),
	}
}

// LangTag parses the page language, defaulting to English when the field
// is absent or unparsable.
func (p *Page) LangTag() language.Tag {
	if p.Lang == "" {
		return language.English
	}
	tag, err := language.Parse(p.Lang)
	if err != nil {
		return language.English
	}
	return tag
}

// Validate checks structural invariants: ids present and unique, every
// block carrying a type tag. Problems are aggregated so one pass reports
// them all.
func (p *Page) Validate() error {
	var err error
	if strings.TrimSpace(p.Title) == "" {
		err = multierr.Append(err, fmt.Errorf("page has no title"))
	}
	seen := make(map[string]int, len(p.Blocks))
	for i, b := range p.Blocks {
		if b == nil {
			err = multierr.Append(err, fmt.Errorf("block %d is empty", i))
			continue
		}
		if b.ID == "" {
			err = multierr.Append(err, fmt.Errorf("block %d has no id", i))
		} else if prev, dup := seen[b.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("blocks %d and %d share id %s", prev, i, b.ID))
		} else {
			seen[b.ID] = i
		}
		if b.Type == "" {
			err = multierr.Append(err, fmt.Errorf("block %d has no type", i))
		}
	}
	return err
}

// indexOf returns the position of the block with the given id, or -1.
func (p *Page) indexOf(id string) int {
	for i, b := range p.Blocks {
		if b != nil && b.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the block with the given id.
func (p *Page) Find(id string) (*block.Block, bool) {
	if i := p.indexOf(id); i >= 0 {
		return p.Blocks[i], true
	}
	return nil, false
}

// Append adds a block at the end of the page.
func (p *Page) Append(b *block.Block) {
	p.Blocks = append(p.Blocks, b)
}

// InsertAt places a block at position i, clamping to the valid range.
func (p *Page) InsertAt(i int, b *block.Block) {
	if i < 0 {
		i = 0
	}
	if i > len(p.Blocks) {
		i = len(p.Blocks)
	}
	p.Blocks = append(p.Blocks, nil)
	copy(p.Blocks[i+1:], p.Blocks[i:])
	p.Blocks[i] = b
}

// Remove deletes the block with the given id. It reports whether the block
// was present.
func (p *Page) Remove(id string) bool {
	i := p.indexOf(id)
	if i < 0 {
		return false
	}
	p.Blocks = append(p.Blocks[:i], p.Blocks[i+1:]...)
	return true
}

// Move shifts the block with the given id to position to, clamping to the
// valid range. Order of the remaining blocks is preserved.
func (p *Page) Move(id string, to int) bool {
	from := p.indexOf(id)
	if from < 0 {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to >= len(p.Blocks) {
		to = len(p.Blocks) - 1
	}
	if from == to {
		return true
	}
	b := p.Blocks[from]
	rest := append(p.Blocks[:from], p.Blocks[from+1:]...)
	rest = append(rest, nil)
	copy(rest[to+1:], rest[to:])
	rest[to] = b
	p.Blocks = rest
	return true
}

// Whole-field replacement setters. The editing layer merges and sends a
// complete value; the engine never patches fields partially, so change
// detection stays a pointer comparison.

func (p *Page) SetProps(id string, props block.Props) bool {
	b, ok := p.Find(id)
	if !ok {
		return false
	}
	b.Props = props
	return true
}

func (p *Page) SetLink(id string, l *link.Link) bool {
	b, ok := p.Find(id)
	if !ok {
		return false
	}
	b.Link = l
	return true
}

func (p *Page) SetVisibility(id string, v *block.Visibility) bool {
	b, ok := p.Find(id)
	if !ok {
		return false
	}
	b.Visibility = v
	return true
}

func (p *Page) SetAnimation(id string, a *block.Animation) bool {
	b, ok := p.Find(id)
	if !ok {
		return false
	}
	b.Animation = a
	return true
}

func (p *Page) SetStyle(id string, s *block.StyleOverlay) bool {
	b, ok := p.Find(id)
	if !ok {
		return false
	}
	b.Style = s
	return true
}

// Duplicate deep copies the block with the given id and inserts the copy
// right after the original. The copy gets a fresh id.
func (p *Page) Duplicate(id string) (*block.Block, bool) {
	i := p.indexOf(id)
	if i < 0 {
		return nil, false
	}
	dup := p.Blocks[i].Clone()
	p.InsertAt(i+1, &dup)
	return &dup, true
}
