// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-themekit/internal/fileutil"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-themekit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/theme.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-themekit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForAssetInfoNotFound returns hints when no metadata artifact exists for a slug.
// Points at the build output directory when it is missing entirely.
func ForAssetInfoNotFound(themePath, slug string) string {
	dist := filepath.Join(themePath, "dist")
	if !fileutil.DirExists(dist) {
		return format("no " + dist + " directory; run the asset build first")
	}
	return format("expected dist/js/" + slug + ".asset.json or dist/css/" + slug + ".asset.json")
}

// ForThemePath returns a hint for an unusable theme directory.
func ForThemePath() string {
	return format("set theme.path in the config or pass --theme-path")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
