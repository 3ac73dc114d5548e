package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// ThemeColors is the color token set blocks merge their overlays onto.
	ThemeColors struct {
		Text       string `yaml:"text" validate:"required"`
		Background string `yaml:"background" validate:"required"`
		Primary    string `yaml:"primary" validate:"required"`
		Secondary  string `yaml:"secondary" validate:"required"`
		Muted      string `yaml:"muted" validate:"required"`
	}

	ThemeTypography struct {
		FontFamily    string `yaml:"font_family" validate:"required"`
		HeadingFamily string `yaml:"heading_family" validate:"required"`
		BaseSizePx    int    `yaml:"base_size_px" validate:"min=8,max=32"`
	}

	ThemeSpacing struct {
		UnitPx     int `yaml:"unit_px" validate:"min=1,max=32"`
		BlockGapPx int `yaml:"block_gap_px" validate:"min=0,max=256"`
	}

	// ThemeConfig supplies the design tokens the compositor and renderer
	// treat as the base every style overlay merges onto.
	ThemeConfig struct {
		Name       string          `yaml:"name" validate:"required"`
		Colors     ThemeColors     `yaml:"colors"`
		Typography ThemeTypography `yaml:"typography"`
		Spacing    ThemeSpacing    `yaml:"spacing"`
	}

	LinksConfig struct {
		// AllowScripts gates execution/emission of script link bodies. When
		// false script links render inert.
		AllowScripts bool `yaml:"allow_scripts"`
		// ShowIndicator adds a small link indicator to linked blocks in edit mode.
		ShowIndicator bool `yaml:"show_indicator"`
		// ScrollOffsetPx is the default offset for scroll links that do not set one.
		ScrollOffsetPx int `yaml:"scroll_offset_px" validate:"min=0,max=1000"`
	}

	DocumentConfig struct {
		OutputNameTemplate    string      `yaml:"output_name_template"`
		FileNameTransliterate bool        `yaml:"file_name_transliterate"`
		Mode                  string      `yaml:"mode" validate:"required,oneof=edit preview publish"`
		Viewport              string      `yaml:"viewport" validate:"required,oneof=desktop tablet mobile"`
		Theme                 ThemeConfig `yaml:"theme"`
		Links                 LinksConfig `yaml:"links"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// TemplateFieldName names yaml fields containing text/template expressions
// which must not be expanded during configuration processing.
type TemplateFieldName string

const (
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// RenderMode returns the parsed document mode. Validation guarantees the
// stored string is one of the known names.
func (c *Config) RenderMode() RenderMode {
	m, err := ParseRenderMode(c.Document.Mode)
	if err != nil {
		panic(fmt.Sprintf("validated configuration holds bad mode %q", c.Document.Mode))
	}
	return m
}

// Viewport returns the parsed document viewport.
func (c *Config) Viewport() Viewport {
	v, err := ParseViewport(c.Document.Viewport)
	if err != nil {
		panic(fmt.Sprintf("validated configuration holds bad viewport %q", c.Document.Viewport))
	}
	return v
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields we defined are acceptable, so plain yaml.Unmarshal is not
	// good enough here.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration expands the embedded configuration template to provide
// sane defaults, superimposes values from the file at path (when given) and
// sanitizes/validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("unable to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("unable to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates the default configuration file from the embedded template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

// Dump serializes actual configuration values back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to marshal config to yaml: %w", err)
	}
	return data, nil
}
