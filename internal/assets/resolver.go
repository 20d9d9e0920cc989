package assets

import (
	"errors"
	"fmt"
)

// AssetResolver combines the theme directory with the embedded snippets.
// Metadata comes from the theme directory only; snippets try the theme
// directory first and fall back to the embedded copies.
type AssetResolver struct {
	custom   *FilesystemLoader // nil if no theme path configured
	embedded SnippetLoader
}

// NewAssetResolver creates an AssetResolver.
// If themePath is empty, only embedded snippets are available and every
// metadata lookup reports ErrInfoNotFound.
// Returns error if themePath is set but invalid.
func NewAssetResolver(themePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if themePath != "" {
		fsLoader, err := NewFilesystemLoader(themePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadInfo loads bundle metadata from the theme directory.
func (r *AssetResolver) LoadInfo(slug string) (*Info, error) {
	if r.custom == nil {
		if err := ValidateAssetName(slug); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %q (no theme path)", ErrInfoNotFound, slug)
	}
	return r.custom.LoadInfo(slug)
}

// LoadSnippet loads a snippet, trying the theme directory first if available.
func (r *AssetResolver) LoadSnippet(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadSnippet(name)
	}

	content, err := r.custom.LoadSnippet(name)
	if err == nil {
		return content, nil
	}

	// Only fall back for "not found" errors, not validation or I/O errors
	if !errors.Is(err, ErrSnippetNotFound) {
		return "", err
	}

	return r.embedded.LoadSnippet(name)
}

// Compile-time interface checks.
var (
	_ InfoLoader    = (*AssetResolver)(nil)
	_ SnippetLoader = (*AssetResolver)(nil)
)
