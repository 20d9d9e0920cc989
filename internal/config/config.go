package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-themekit/internal/fileutil"
	"github.com/alnah/go-themekit/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxHandleLength      = 100
	MaxPathLength        = 1024
	MaxURLLength         = 2048 // Browser limit
	MaxTextDomainLength  = 100
	MaxAttrValueLength   = 512
	MaxDescriptionLength = 200
)

// Config holds the theme configuration read from a YAML file.
type Config struct {
	Theme       ThemeConfig     `yaml:"theme"`
	Scripts     []AssetConfig   `yaml:"scripts"`
	Styles      []AssetConfig   `yaml:"styles"`
	Admin       AdminConfig     `yaml:"admin"`
	AsyncStyles []string        `yaml:"asyncStyles"` // Style handles loaded with the print-swap technique
	Head        HeadConfig      `yaml:"head"`
	Support     SupportConfig   `yaml:"support"`
	Menus       []MenuConfig    `yaml:"menus"`
	Thumbnail   ThumbnailConfig `yaml:"thumbnail"`
}

// ThemeConfig locates the theme on disk and on the web.
type ThemeConfig struct {
	Path         string `yaml:"path"`         // Theme directory (holds dist/ and languages/)
	URL          string `yaml:"url"`          // Public base URL of the theme directory
	TextDomain   string `yaml:"textDomain"`   // Translation domain
	LanguagesDir string `yaml:"languagesDir"` // Relative to path (default: "languages")
}

// AssetConfig describes one enqueued script or style bundle.
type AssetConfig struct {
	Handle            string            `yaml:"handle"`
	Slug              string            `yaml:"slug"`              // Metadata slug (default: handle)
	Path              string            `yaml:"path"`              // Relative to theme URL
	Deps              []string          `yaml:"deps"`              // Static dependencies
	AssetDependencies bool              `yaml:"assetDependencies"` // Append dependencies from metadata
	InFooter          bool              `yaml:"inFooter"`          // Scripts only
	Media             string            `yaml:"media"`             // Styles only (default: "all")
	Attributes        []AttributeConfig `yaml:"attributes"`        // Scripts only, applied in order
}

// AttributeConfig is one script tag attribute. Value is a bool or a string;
// a number acts as a presence flag.
type AttributeConfig struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// AdminConfig lists bundles enqueued on admin screens.
type AdminConfig struct {
	Scripts []AssetConfig `yaml:"scripts"`
	Styles  []AssetConfig `yaml:"styles"`
}

// HeadConfig defines the resource hints emitted in the document head.
type HeadConfig struct {
	Manifest   string          `yaml:"manifest"`   // Relative to theme URL (empty = no manifest link)
	Preconnect []string        `yaml:"preconnect"` // Origins
	Preload    []PreloadConfig `yaml:"preload"`
}

// PreloadConfig is one <link rel="preload"> entry.
type PreloadConfig struct {
	As          string `yaml:"as"`          // font, style, script, image, fetch
	Href        string `yaml:"href"`        // Absolute URL or path relative to theme URL
	Type        string `yaml:"type"`        // MIME type (fonts default to font/woff2)
	Crossorigin *bool  `yaml:"crossorigin"` // nil = true for fonts, false otherwise
}

// SupportConfig lists host features the theme declares support for.
type SupportConfig struct {
	Features []string `yaml:"features"`
	HTML5    []string `yaml:"html5"`
}

// MenuConfig registers one navigation menu location.
type MenuConfig struct {
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
}

// ThumbnailConfig controls the featured image preload.
type ThumbnailConfig struct {
	Disabled bool     `yaml:"disabled"`
	Size     string   `yaml:"size"`  // Image size name (default: "full")
	Sizes    string   `yaml:"sizes"` // imagesizes value (default: "100vw")
	Extra    []string `yaml:"extra"` // Additional images preloaded on singular pages
}

var (
	handlePattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	attrNamePattern = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)
)

var preloadDestinations = map[string]bool{
	"audio": true, "document": true, "embed": true, "fetch": true, "font": true,
	"image": true, "object": true, "script": true, "style": true, "track": true,
	"video": true, "worker": true,
}

// Validate checks handles, attribute names, enums and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("theme.path", c.Theme.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.url", c.Theme.URL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("theme.textDomain", c.Theme.TextDomain, MaxTextDomainLength); err != nil {
		return err
	}
	if strings.Contains(c.Theme.LanguagesDir, "..") {
		return fmt.Errorf("%w: theme.languagesDir: must stay inside the theme directory", ErrInvalidField)
	}

	groups := []struct {
		field  string
		assets []AssetConfig
	}{
		{"scripts", c.Scripts},
		{"styles", c.Styles},
		{"admin.scripts", c.Admin.Scripts},
		{"admin.styles", c.Admin.Styles},
	}
	for _, g := range groups {
		if err := validateAssets(g.field, g.assets); err != nil {
			return err
		}
	}

	for i, h := range c.AsyncStyles {
		if err := validateHandle(fmt.Sprintf("asyncStyles[%d]", i), h); err != nil {
			return err
		}
	}

	if err := validateFieldLength("head.manifest", c.Head.Manifest, MaxURLLength); err != nil {
		return err
	}
	for i, origin := range c.Head.Preconnect {
		field := fmt.Sprintf("head.preconnect[%d]", i)
		if origin == "" {
			return fmt.Errorf("%w: %s: empty origin", ErrInvalidField, field)
		}
		if err := validateFieldLength(field, origin, MaxURLLength); err != nil {
			return err
		}
	}
	for i, p := range c.Head.Preload {
		field := fmt.Sprintf("head.preload[%d]", i)
		if !preloadDestinations[p.As] {
			return fmt.Errorf("%w: %s.as: unsupported destination %q", ErrInvalidField, field, p.As)
		}
		if p.Href == "" {
			return fmt.Errorf("%w: %s.href: required", ErrInvalidField, field)
		}
		if err := validateFieldLength(field+".href", p.Href, MaxURLLength); err != nil {
			return err
		}
	}

	for i, m := range c.Menus {
		field := fmt.Sprintf("menus[%d]", i)
		if err := validateHandle(field+".location", m.Location); err != nil {
			return err
		}
		if err := validateFieldLength(field+".description", m.Description, MaxDescriptionLength); err != nil {
			return err
		}
	}

	for i, extra := range c.Thumbnail.Extra {
		if err := validateFieldLength(fmt.Sprintf("thumbnail.extra[%d]", i), extra, MaxURLLength); err != nil {
			return err
		}
	}

	return nil
}

// validateAssets checks one list of bundles; handles must be unique within it.
func validateAssets(field string, list []AssetConfig) error {
	seen := make(map[string]bool, len(list))
	for i, a := range list {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		if err := validateHandle(prefix+".handle", a.Handle); err != nil {
			return err
		}
		if seen[a.Handle] {
			return fmt.Errorf("%w: %s.handle: duplicate %q", ErrInvalidField, prefix, a.Handle)
		}
		seen[a.Handle] = true

		if a.Slug != "" {
			if err := validateHandle(prefix+".slug", a.Slug); err != nil {
				return err
			}
		}
		if a.Path == "" {
			return fmt.Errorf("%w: %s.path: required", ErrInvalidField, prefix)
		}
		if err := validateFieldLength(prefix+".path", a.Path, MaxPathLength); err != nil {
			return err
		}
		for j, dep := range a.Deps {
			if err := validateHandle(fmt.Sprintf("%s.deps[%d]", prefix, j), dep); err != nil {
				return err
			}
		}
		for j, attr := range a.Attributes {
			if err := validateAttribute(fmt.Sprintf("%s.attributes[%d]", prefix, j), attr); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateHandle(field, handle string) error {
	if err := validateFieldLength(field, handle, MaxHandleLength); err != nil {
		return err
	}
	if !handlePattern.MatchString(handle) {
		return fmt.Errorf("%w: %s: %q is not a valid handle", ErrInvalidField, field, handle)
	}
	return nil
}

func validateAttribute(field string, attr AttributeConfig) error {
	if !attrNamePattern.MatchString(attr.Name) {
		return fmt.Errorf("%w: %s.name: %q is not a valid attribute name", ErrInvalidField, field, attr.Name)
	}
	switch v := attr.Value.(type) {
	case nil, bool:
		return nil
	case string:
		return validateFieldLength(field+".value", v, MaxAttrValueLength)
	case int, int64, uint64, float64:
		return nil
	default:
		return fmt.Errorf("%w: %s.value: must be a boolean or a string, got %T", ErrInvalidField, field, v)
	}
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the stock theme configuration: a frontend bundle,
// a nomodule polyfill, one stylesheet and the standard async style handles.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			TextDomain:   "themekit",
			LanguagesDir: "languages",
		},
		Scripts: []AssetConfig{
			{
				Handle:            "frontend",
				Path:              "dist/js/frontend.js",
				AssetDependencies: true,
				InFooter:          true,
			},
			{
				Handle:   "polyfill",
				Path:     "dist/js/polyfill.js",
				InFooter: true,
				Attributes: []AttributeConfig{
					{Name: "nomodule", Value: true},
				},
			},
		},
		Styles: []AssetConfig{
			{Handle: "styles", Slug: "style", Path: "dist/css/style.css"},
		},
		AsyncStyles: []string{
			"admin-bar",
			"dashicons",
			"single",
			"archive",
			"home",
			"front-page",
			"blocks",
		},
		Head: HeadConfig{Manifest: "manifest.json"},
		Support: SupportConfig{
			Features: []string{"automatic-feed-links", "title-tag", "post-thumbnails"},
			HTML5:    []string{"search-form", "gallery", "script", "style"},
		},
		Menus: []MenuConfig{
			{Location: "primary", Description: "Primary Menu"},
		},
		Thumbnail: ThumbnailConfig{Size: "full", Sizes: "100vw"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values; a present list
// replaces the default list entirely.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	// A relative theme path is relative to the config file, not the working directory
	if cfg.Theme.Path != "" && !filepath.IsAbs(cfg.Theme.Path) {
		cfg.Theme.Path = filepath.Join(filepath.Dir(configPath), cfg.Theme.Path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory then
// the user config directory (~/.config/go-themekit/).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-themekit", name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
