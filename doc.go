// Package themekit is the glue between a theme and a hook-driven CMS host.
// It enqueues the theme's bundles, emits head markup and rewrites asset
// tags so scripts and styles load without blocking render.
//
// # Quick Start
//
// Build a theme for a host and register its hooks:
//
//	theme, err := themekit.New(themekit.DefaultConfig(), host,
//	    themekit.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	theme.Setup(host)
//
// The host then calls back into the theme at its lifecycle points:
// after_setup_theme, wp_enqueue_scripts, wp_head and the
// script_loader_tag/style_loader_tag filters.
//
// # Hooks
//
// Theme.Hooks returns the registrations as plain Hook records, in order,
// so callers can inspect or filter them before calling Register. Nothing is
// registered globally.
//
// # Tag Rewriting
//
// RewriteStyleTag and RewriteScriptTag are pure functions usable without a
// host:
//
//	tag := themekit.RewriteScriptTag(`<script src="x.js"></script>`,
//	    themekit.Attributes{{Name: "defer", Value: themekit.Bool(true)}}, nil)
//	// <script src="x.js" defer></script>
//
// Styles whose handle is in the async set are print-swapped:
// media is switched to print, restored to all on load, and the original tag
// is kept inside <noscript>.
//
// # Asset Metadata
//
// Bundle versions and dependencies are read from
// dist/js/{slug}.asset.json or dist/css/{slug}.asset.json (YAML also
// accepted) under Config.TemplatePath. Missing metadata is not an error.
//
// # Errors
//
// Rewriters and emitters never fail. Construction errors use sentinel
// values that work with errors.Is:
//
//   - ErrNilHost, ErrInvalidConfig
//   - ErrInvalidAssetPath, ErrAssetInfoNotFound, ErrAssetInfoParse
package themekit
