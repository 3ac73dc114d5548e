package page

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParsePage reads a page from its YAML form, enforcing structural
// invariants. Pages failing validation are rejected whole rather than
// loaded partially.
func ParsePage(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to parse page: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("page is not valid: %w", err)
	}
	return &p, nil
}

// LoadPage reads a page from a YAML file.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read page file: %w", err)
	}
	p, err := ParsePage(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load page from %s: %w", path, err)
	}
	return p, nil
}

// Marshal serializes the page back to YAML.
func (p *Page) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("unable to serialize page: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("unable to serialize page: %w", err)
	}
	return buf.Bytes(), nil
}

// SavePage writes the page to a YAML file. Existing files are only
// replaced when overwrite is set.
func (p *Page) SavePage(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("output file already exists: %s", path)
		}
	}
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write page file: %w", err)
	}
	return nil
}
