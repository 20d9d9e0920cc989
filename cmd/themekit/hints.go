package main

import (
	"errors"

	"github.com/alnah/go-themekit"
	"github.com/alnah/go-themekit/internal/config"
	"github.com/alnah/go-themekit/internal/hints"
)

// hintFor returns an actionable hint for known errors, or "".
func hintFor(err error) string {
	var pathErr *assetInfoError
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths(defaultConfigName))
	case errors.Is(err, themekit.ErrInvalidAssetPath):
		return hints.ForThemePath()
	case errors.As(err, &pathErr):
		return hints.ForAssetInfoNotFound(pathErr.themePath, pathErr.slug)
	default:
		return ""
	}
}

// defaultConfigName is the name searched when hinting at config locations.
const defaultConfigName = "theme"

// assetInfoError carries the lookup context of a missing metadata artifact.
type assetInfoError struct {
	themePath string
	slug      string
	err       error
}

func (e *assetInfoError) Error() string { return e.err.Error() }
func (e *assetInfoError) Unwrap() error { return e.err }
