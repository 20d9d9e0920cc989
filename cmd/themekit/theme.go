package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/go-themekit"
	"github.com/alnah/go-themekit/internal/config"
	"github.com/alnah/go-themekit/internal/host"
	"github.com/alnah/go-themekit/internal/logging"
)

// thumbnailID is the attachment id the simulated post uses.
const thumbnailID = 1

// session bundles what a command needs: config, logger, and the log file
// to close when done.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	logFile io.Closer
}

func (s *session) Close() {
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// openSession loads the config and builds the logger.
func openSession(f *commonFlags, env *Environment) (*session, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	opts := logging.Options{
		Level: logging.LevelFor(f.verbose, f.quiet),
		Text:  env.Stderr,
	}
	if f.logFile != "" {
		file, err := env.OpenLog(f.logFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpenLog, err)
		}
		s.logFile = file
		opts.JSON = file
	}
	s.logger = logging.New(opts)
	return s, nil
}

// loadConfig loads the named config, or the defaults when none is given,
// then applies the path and URL overrides.
func loadConfig(f *commonFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.themePath != "" {
		cfg.Theme.Path = f.themePath
	}
	if f.themeURL != "" {
		cfg.Theme.URL = f.themeURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// toThemeConfig maps the file configuration onto the library configuration.
func toThemeConfig(c *config.Config) themekit.Config {
	menus := make([]themekit.NavMenu, 0, len(c.Menus))
	for _, m := range c.Menus {
		menus = append(menus, themekit.NavMenu{Location: m.Location, Description: m.Description})
	}
	preload := make([]themekit.Preload, 0, len(c.Head.Preload))
	for _, p := range c.Head.Preload {
		preload = append(preload, themekit.Preload{As: p.As, Href: p.Href, Type: p.Type, Crossorigin: p.Crossorigin})
	}

	return themekit.Config{
		TemplateURL:   c.Theme.URL,
		TemplatePath:  c.Theme.Path,
		TextDomain:    c.Theme.TextDomain,
		LanguagesDir:  c.Theme.LanguagesDir,
		Scripts:       toAssetSpecs(c.Scripts),
		Styles:        toAssetSpecs(c.Styles),
		AdminScripts:  toAssetSpecs(c.Admin.Scripts),
		AdminStyles:   toAssetSpecs(c.Admin.Styles),
		AsyncStyles:   c.AsyncStyles,
		Manifest:      c.Head.Manifest,
		Preconnect:    c.Head.Preconnect,
		Preload:       preload,
		ThemeSupports: c.Support.Features,
		HTML5:         c.Support.HTML5,
		Menus:         menus,
		Thumbnail: themekit.Thumbnail{
			Disabled: c.Thumbnail.Disabled,
			Size:     c.Thumbnail.Size,
			Sizes:    c.Thumbnail.Sizes,
			Extra:    c.Thumbnail.Extra,
		},
	}
}

func toAssetSpecs(list []config.AssetConfig) []themekit.AssetSpec {
	specs := make([]themekit.AssetSpec, 0, len(list))
	for _, a := range list {
		var attrs themekit.Attributes
		for _, attr := range a.Attributes {
			attrs = append(attrs, themekit.Attribute{Name: attr.Name, Value: themekit.AttrFromAny(attr.Value)})
		}
		specs = append(specs, themekit.AssetSpec{
			Handle:            a.Handle,
			Slug:              a.Slug,
			Path:              a.Path,
			Deps:              a.Deps,
			AssetDependencies: a.AssetDependencies,
			InFooter:          a.InFooter,
			Media:             a.Media,
			Attributes:        attrs,
		})
	}
	return specs
}

// newHost builds the reference host for the simulated request.
func newHost(req requestFlags, locale string, logger *slog.Logger) *host.Host {
	media := host.NewMedia()
	query := host.Query{Singular: req.singular}
	if req.thumbnail != "" {
		media.Add(thumbnailID, "full", themekit.Image{Src: req.thumbnail, SrcSet: req.thumbnailSrcset})
		query.ThumbnailID = thumbnailID
	}
	return host.New(host.Options{
		Admin:    req.admin,
		AdminBar: req.adminBar,
		Locale:   locale,
		Query:    query,
		Media:    media,
		Logger:   logger,
	})
}
