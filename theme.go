package themekit

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/alnah/go-themekit/internal/assets"
	"github.com/alnah/go-themekit/internal/fileutil"
)

// DefaultAsyncStyles lists the style handles loaded without blocking render.
var DefaultAsyncStyles = []string{
	"admin-bar",
	"dashicons",
	"single",
	"archive",
	"home",
	"front-page",
	"blocks",
}

// AssetSpec describes one bundle to enqueue.
type AssetSpec struct {
	Handle string
	Slug   string // Metadata lookup key, defaults to Handle
	Path   string // Relative to the template URL
	Deps   []string

	// AssetDependencies appends the dependencies recorded in the bundle
	// metadata to Deps.
	AssetDependencies bool

	InFooter   bool
	Media      string // Styles only, defaults to "all"
	Attributes Attributes
}

func (a AssetSpec) slug() string {
	if a.Slug != "" {
		return a.Slug
	}
	return a.Handle
}

// Preload is one resource hint emitted in the head.
type Preload struct {
	As   string
	Href string
	Type string // Fonts default to "font/woff2"

	// Crossorigin adds the crossorigin flag. Nil means "true for fonts".
	Crossorigin *bool
}

func (p Preload) resolved() (typ string, crossorigin bool) {
	typ = p.Type
	crossorigin = p.As == "font"
	if p.As == "font" && typ == "" {
		typ = "font/woff2"
	}
	if p.Crossorigin != nil {
		crossorigin = *p.Crossorigin
	}
	return typ, crossorigin
}

// Thumbnail configures the featured image preload.
type Thumbnail struct {
	Disabled bool
	Size     string   // Default "full"
	Sizes    string   // imagesizes value, default "100vw"
	Extra    []string // Additional images preloaded after the thumbnail
}

// Config is the theme configuration.
type Config struct {
	TemplateURL  string // Public URL of the theme directory, no trailing slash
	TemplatePath string // Filesystem path of the theme directory
	TextDomain   string
	LanguagesDir string // Relative to TemplatePath

	Scripts      []AssetSpec
	Styles       []AssetSpec
	AdminScripts []AssetSpec
	AdminStyles  []AssetSpec

	AsyncStyles []string

	Manifest   string // Relative to TemplateURL, empty disables the link
	Preconnect []string
	Preload    []Preload

	ThemeSupports []string
	HTML5         []string
	Menus         []NavMenu

	Thumbnail Thumbnail
}

// DefaultConfig returns the configuration the theme ships with.
func DefaultConfig() Config {
	return Config{
		TextDomain:   "themekit",
		LanguagesDir: "languages",
		Scripts: []AssetSpec{
			{
				Handle:            "frontend",
				Path:              "dist/js/frontend.js",
				AssetDependencies: true,
				InFooter:          true,
			},
			{
				Handle:     "polyfill",
				Path:       "dist/js/polyfill.js",
				InFooter:   true,
				Attributes: Attributes{{Name: "nomodule", Value: Bool(true)}},
			},
		},
		Styles: []AssetSpec{
			{Handle: "styles", Slug: "style", Path: "dist/css/style.css"},
		},
		AsyncStyles:   append([]string(nil), DefaultAsyncStyles...),
		Manifest:      "manifest.json",
		ThemeSupports: []string{"automatic-feed-links", "title-tag", "post-thumbnails"},
		HTML5:         []string{"search-form", "gallery", "script", "style"},
		Menus:         []NavMenu{{Location: "primary", Description: "Primary Menu"}},
		Thumbnail:     Thumbnail{Size: "full", Sizes: "100vw"},
	}
}

// Handles double as metadata slugs, so they follow the asset name rules.
var (
	handlePattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	attrNamePattern = regexp.MustCompile(`^[A-Za-z_:][-A-Za-z0-9_:.]*$`)
)

// Validate checks handles, slugs, attribute names and hint destinations.
func (c *Config) Validate() error {
	lists := []struct {
		name  string
		specs []AssetSpec
	}{
		{"scripts", c.Scripts},
		{"styles", c.Styles},
		{"admin scripts", c.AdminScripts},
		{"admin styles", c.AdminStyles},
	}
	for _, l := range lists {
		seen := make(map[string]bool, len(l.specs))
		for _, s := range l.specs {
			if !handlePattern.MatchString(s.Handle) {
				return fmt.Errorf("%w: %s handle %q", ErrInvalidConfig, l.name, s.Handle)
			}
			if seen[s.Handle] {
				return fmt.Errorf("%w: duplicate %s handle %q", ErrInvalidConfig, l.name, s.Handle)
			}
			seen[s.Handle] = true
			if s.Path == "" {
				return fmt.Errorf("%w: %s handle %q has no path", ErrInvalidConfig, l.name, s.Handle)
			}
			if s.Slug != "" && !handlePattern.MatchString(s.Slug) {
				return fmt.Errorf("%w: %s handle %q slug %q", ErrInvalidConfig, l.name, s.Handle, s.Slug)
			}
			for _, a := range s.Attributes {
				if !attrNamePattern.MatchString(a.Name) {
					return fmt.Errorf("%w: %s handle %q attribute name %q", ErrInvalidConfig, l.name, s.Handle, a.Name)
				}
			}
		}
	}
	for _, p := range c.Preload {
		if p.As == "" || p.Href == "" {
			return fmt.Errorf("%w: preload needs both as and href", ErrInvalidConfig)
		}
	}
	return nil
}

// Theme binds a configuration to a host. It is immutable after New and its
// tag rewriters are safe for concurrent use.
type Theme struct {
	cfg      Config
	host     Host
	async    HandleSet
	info     AssetInfoLoader
	snippets assets.SnippetLoader
	logger   *slog.Logger
}

// Option configures a Theme.
type Option func(*Theme)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(t *Theme) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithAssetInfoLoader replaces the metadata loader built from TemplatePath.
func WithAssetInfoLoader(l AssetInfoLoader) Option {
	return func(t *Theme) {
		if l != nil {
			t.info = l
		}
	}
}

// New creates a Theme.
// Returns ErrNilHost, ErrInvalidConfig, or ErrInvalidAssetPath when
// TemplatePath is set but not a readable directory.
func New(cfg Config, host Host, opts ...Option) (*Theme, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver, err := assets.NewAssetResolver(cfg.TemplatePath)
	if err != nil {
		return nil, convertAssetError(err)
	}

	t := &Theme{
		cfg:      cfg.clone(),
		host:     host,
		async:    NewHandleSet(cfg.AsyncStyles...),
		info:     &assetInfoAdapter{resolver: resolver},
		snippets: resolver,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Config returns a copy of the theme configuration.
func (t *Theme) Config() Config {
	return t.cfg.clone()
}

// clone copies c deeply enough that no slice or pointer is shared.
func (c Config) clone() Config {
	out := c
	out.Scripts = cloneSpecs(c.Scripts)
	out.Styles = cloneSpecs(c.Styles)
	out.AdminScripts = cloneSpecs(c.AdminScripts)
	out.AdminStyles = cloneSpecs(c.AdminStyles)
	out.AsyncStyles = slices.Clone(c.AsyncStyles)
	out.Preconnect = slices.Clone(c.Preconnect)
	out.ThemeSupports = slices.Clone(c.ThemeSupports)
	out.HTML5 = slices.Clone(c.HTML5)
	out.Menus = slices.Clone(c.Menus)
	out.Thumbnail.Extra = slices.Clone(c.Thumbnail.Extra)

	out.Preload = slices.Clone(c.Preload)
	for i, p := range out.Preload {
		if p.Crossorigin != nil {
			v := *p.Crossorigin
			out.Preload[i].Crossorigin = &v
		}
	}
	return out
}

func cloneSpecs(specs []AssetSpec) []AssetSpec {
	out := slices.Clone(specs)
	for i := range out {
		out[i].Deps = slices.Clone(out[i].Deps)
		out[i].Attributes = out[i].Attributes.Clone()
	}
	return out
}

// AsyncStyles returns the known-async-handle set.
func (t *Theme) AsyncStyles() HandleSet {
	return t.async
}

// themeURL resolves a theme-relative path against the template URL.
// Absolute URLs are returned as is.
func (t *Theme) themeURL(path string) string {
	if fileutil.IsURL(path) {
		return path
	}
	return strings.TrimRight(t.cfg.TemplateURL, "/") + "/" + strings.TrimLeft(path, "/")
}
