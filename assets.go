package themekit

import (
	"errors"

	"github.com/alnah/go-themekit/internal/assets"
)

// AssetInfo is the build metadata recorded beside a compiled bundle.
type AssetInfo struct {
	Dependencies []string
	Version      string
}

// AssetInfoLoader loads bundle metadata by slug.
// Implementations may read the theme directory, a build manifest, etc.
//
// The library provides NewAssetInfoLoader() for the theme directory layout.
type AssetInfoLoader interface {
	// LoadAssetInfo returns ErrAssetInfoNotFound if no metadata exists.
	LoadAssetInfo(slug string) (AssetInfo, error)
}

// NewAssetInfoLoader creates an AssetInfoLoader for a theme directory.
// If themePath is empty, every lookup reports ErrAssetInfoNotFound.
//
// The themePath directory may contain:
//   - dist/js/{slug}.asset.json (or .yaml, .yml) for scripts
//   - dist/css/{slug}.asset.json (or .yaml, .yml) for styles
//
// Returns ErrInvalidAssetPath if themePath is set but not a readable directory.
func NewAssetInfoLoader(themePath string) (AssetInfoLoader, error) {
	resolver, err := assets.NewAssetResolver(themePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetInfoAdapter{resolver: resolver}, nil
}

// assetInfoAdapter wraps internal AssetResolver to return public types.
type assetInfoAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetInfoAdapter) LoadAssetInfo(slug string) (AssetInfo, error) {
	info, err := a.resolver.LoadInfo(slug)
	if err != nil {
		return AssetInfo{}, convertAssetError(err)
	}
	return AssetInfo{
		Dependencies: info.Dependencies,
		Version:      info.Version,
	}, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrInfoNotFound):
		return wrapError(ErrAssetInfoNotFound, err)
	case errors.Is(err, assets.ErrInfoParse):
		return wrapError(ErrAssetInfoParse, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrInvalidAssetName, err)
	case errors.Is(err, assets.ErrInvalidBasePath),
		errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError creates an error that keeps the original message and matches
// the public sentinel under errors.Is.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel. Internal errors stay hidden.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
