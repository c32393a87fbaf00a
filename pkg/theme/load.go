package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ElectronicKiwi/kolibri/pkg/errors"
	"github.com/ElectronicKiwi/kolibri/pkg/graphics"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the theme file format this package writes. Files with the
// same major version are accepted.
const FormatVersion = "v1.0.0"

type document struct {
	Version             string          `yaml:"version,omitempty"`
	Name                string          `yaml:"name"`
	Extends             string          `yaml:"extends,omitempty"`
	Font                string          `yaml:"font,omitempty"`
	BackgroundColor     *graphics.Color `yaml:"background_color,omitempty"`
	TextColor           *graphics.Color `yaml:"text_color,omitempty"`
	Normal              *ContextStyle   `yaml:"normal,omitempty"`
	Primary             *ContextStyle   `yaml:"primary,omitempty"`
	Secondary           *ContextStyle   `yaml:"secondary,omitempty"`
	DefaultWidgetHeight int             `yaml:"default_widget_height,omitempty"`
	Spacing             *Spacing        `yaml:"spacing,omitempty"`
	ButtonCornerRadius  *int            `yaml:"button_corner_radius,omitempty"`
}

// Load parses a YAML theme. A theme may name a builtin in "extends"; fields
// it sets override the base.
func Load(r io.Reader) (*Style, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, configError("decode", err)
	}
	return doc.style()
}

// LoadFile reads a theme from path.
func LoadFile(path string) (*Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("read", err)
	}
	return Load(bytes.NewReader(data))
}

// Marshal encodes a theme as YAML. The font must be a bundled one or nil.
func Marshal(s *Style) ([]byte, error) {
	doc := document{
		Version:             FormatVersion,
		Name:                s.Name,
		BackgroundColor:     &s.BackgroundColor,
		TextColor:           &s.TextColor,
		Normal:              &s.NormalWidget,
		Primary:             s.PrimaryWidget,
		Secondary:           s.SecondaryWidget,
		DefaultWidgetHeight: s.DefaultWidgetHeight,
		Spacing:             &s.Spacing,
		ButtonCornerRadius:  &s.ButtonCornerRadius,
	}
	if s.DefaultFont != nil {
		if _, ok := LookupFont(s.DefaultFont.Name); !ok {
			return nil, configError("marshal", fmt.Errorf("font %q is not bundled", s.DefaultFont.Name))
		}
		doc.Font = s.DefaultFont.Name
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, configError("marshal", err)
	}
	if err := enc.Close(); err != nil {
		return nil, configError("marshal", err)
	}
	return buf.Bytes(), nil
}

// Validate checks the invariants a usable theme must hold.
func Validate(s *Style) error {
	if s.Name == "" {
		return configError("validate", fmt.Errorf("theme has no name"))
	}
	if s.DefaultFont == nil {
		return configError("validate", fmt.Errorf("theme %q has no font", s.Name))
	}
	if s.DefaultWidgetHeight < 0 || s.ButtonCornerRadius < 0 {
		return configError("validate", fmt.Errorf("theme %q has negative dimensions", s.Name))
	}
	check := func(ctx Context, cs *ContextStyle) error {
		if cs == nil {
			return nil
		}
		for _, ws := range []WidgetStyle{cs.Normal, cs.Hover, cs.Active, cs.Disabled} {
			if ws.BorderWidth < 0 {
				return configError("validate", fmt.Errorf("theme %q: %s context has negative border width", s.Name, ctx))
			}
		}
		return nil
	}
	if err := check(ContextNormal, &s.NormalWidget); err != nil {
		return err
	}
	if err := check(ContextPrimary, s.PrimaryWidget); err != nil {
		return err
	}
	return check(ContextSecondary, s.SecondaryWidget)
}

func (d *document) style() (*Style, error) {
	if err := checkVersion(d.Version); err != nil {
		return nil, err
	}
	s := &Style{}
	if d.Extends != "" {
		base, ok := Builtin(d.Extends)
		if !ok {
			return nil, configError("extends", fmt.Errorf("unknown builtin theme %q", d.Extends))
		}
		s = base
	}
	if d.Name != "" {
		s.Name = d.Name
	}
	if d.Font != "" {
		f, ok := LookupFont(d.Font)
		if !ok {
			return nil, configError("font", fmt.Errorf("unknown font %q (have %v)", d.Font, FontNames()))
		}
		s.DefaultFont = f
	}
	if d.BackgroundColor != nil {
		s.BackgroundColor = *d.BackgroundColor
	}
	if d.TextColor != nil {
		s.TextColor = *d.TextColor
	}
	if d.Normal != nil {
		s.NormalWidget = *d.Normal
	}
	if d.Primary != nil {
		p := *d.Primary
		s.PrimaryWidget = &p
	}
	if d.Secondary != nil {
		sec := *d.Secondary
		s.SecondaryWidget = &sec
	}
	if d.DefaultWidgetHeight != 0 {
		s.DefaultWidgetHeight = d.DefaultWidgetHeight
	}
	if d.Spacing != nil {
		s.Spacing = *d.Spacing
	}
	if d.ButtonCornerRadius != nil {
		s.ButtonCornerRadius = *d.ButtonCornerRadius
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return configError("version", fmt.Errorf("invalid version %q", v))
	}
	if semver.Major(v) != semver.Major(FormatVersion) {
		return configError("version", fmt.Errorf("unsupported theme format %s (want %s.x)", v, semver.Major(FormatVersion)))
	}
	return nil
}

func configError(op string, err error) error {
	return errors.New("theme."+op, errors.KindConfig, err)
}
