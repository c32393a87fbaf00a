// Package config loads the optional kolibri.yaml simulator configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ElectronicKiwi/kolibri/pkg/input"
	"github.com/ElectronicKiwi/kolibri/pkg/theme"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "kolibri.yaml"

// Defaults for a 240x135 ST7789 panel.
const (
	DefaultWidth    = 240
	DefaultHeight   = 135
	DefaultScale    = 1
	DefaultTheme    = "bootstrap"
	DefaultCapacity = 64

	maxDimension = 1024
	maxScale     = 8
)

// Config represents the optional kolibri.yaml configuration.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Display    DisplayConfig    `yaml:"display"`
	Theme      string           `yaml:"theme,omitempty"`
	Input      InputConfig      `yaml:"input"`
	Smartstate SmartstateConfig `yaml:"smartstate"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DisplayConfig describes the simulated panel.
type DisplayConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	Scale  int `yaml:"scale,omitempty"`
}

// InputConfig contains pointer handling settings.
type InputConfig struct {
	DragPolicy string `yaml:"drag_policy,omitempty"`
	Wrap       bool   `yaml:"wrap,omitempty"`
}

// SmartstateConfig sizes the smartstate cell pool.
type SmartstateConfig struct {
	Capacity int `yaml:"capacity,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Width      int
	Height     int
	Scale      int
	ThemeName  string
	Theme      *theme.Style
	DragPolicy input.DragPolicy
	Wrap       bool
	Capacity   int
}

// LoadOptional reads kolibri.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads kolibri.yaml (if present) and resolves defaults. A theme
// value is either a builtin theme name or a path to a theme file relative to
// dir.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	r := &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Width:      orDefault(cfg.Display.Width, DefaultWidth),
		Height:     orDefault(cfg.Display.Height, DefaultHeight),
		Scale:      orDefault(cfg.Display.Scale, DefaultScale),
		ThemeName:  strings.TrimSpace(cfg.Theme),
		Wrap:       cfg.Input.Wrap,
		Capacity:   orDefault(cfg.Smartstate.Capacity, DefaultCapacity),
	}
	if r.ThemeName == "" {
		r.ThemeName = DefaultTheme
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	r.DragPolicy, err = ParseDragPolicy(cfg.Input.DragPolicy)
	if err != nil {
		return nil, err
	}

	r.Theme, err = LoadTheme(dir, r.ThemeName)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// LoadTheme returns the builtin theme called name, or loads name as a theme
// file relative to dir.
func LoadTheme(dir, name string) (*theme.Style, error) {
	if s, ok := theme.Builtin(name); ok {
		return s, nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("theme %q is neither a builtin (%s) nor a readable file: %w",
			name, strings.Join(theme.BuiltinNames(), ", "), err)
	}
	return theme.LoadFile(path)
}

// ParseDragPolicy parses "follow" (the default) or "capture".
func ParseDragPolicy(s string) (input.DragPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "follow":
		return input.FollowPointer, nil
	case "capture":
		return input.CapturePress, nil
	default:
		return input.FollowPointer, fmt.Errorf("input.drag_policy must be follow or capture (got %q)", s)
	}
}

// FindProjectRoot walks up from the current directory to find go.mod. It
// returns the current directory when there is none.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func (r *Resolved) validate() error {
	if r.Width <= 0 || r.Height <= 0 || r.Width > maxDimension || r.Height > maxDimension {
		return fmt.Errorf("display size %dx%d out of range (1..%d)", r.Width, r.Height, maxDimension)
	}
	if r.Scale < 1 || r.Scale > maxScale {
		return fmt.Errorf("display.scale must be between 1 and %d (got %d)", maxScale, r.Scale)
	}
	if r.Capacity < 0 {
		return fmt.Errorf("smartstate.capacity cannot be negative (got %d)", r.Capacity)
	}
	return nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// modulePath returns the module path from dir/go.mod, or "" without one.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			if len(parts) > 0 {
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "kolibri_app"
	}
	return base
}
