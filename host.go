package themekit

import (
	"context"
	"io"
)

// ActionFunc is a callback attached to an action point. Output written to w
// ends up wherever the host sends that point's output (the document head
// for wp_head, nowhere for setup points).
type ActionFunc func(ctx context.Context, w io.Writer)

// FilterFunc transforms value. args carries the extra arguments the host
// passes to the filter point, truncated to the accepted count.
type FilterFunc func(ctx context.Context, value any, args ...any) any

// Registrar attaches callbacks to named extension points.
type Registrar interface {
	AddAction(point, name string, fn ActionFunc, priority int)
	AddFilter(point, name string, fn FilterFunc, priority, acceptedArgs int)
}

// Host is the CMS the theme runs inside. The theme never dispatches hooks
// itself; it registers callbacks and queries the host from inside them.
type Host interface {
	Registrar

	// RemoveAction detaches every callback registered under name at point.
	RemoveAction(point, name string) bool

	// ApplyFilters runs the filters attached to point over value.
	ApplyFilters(ctx context.Context, point string, value any, args ...any) any

	Scripts() AssetRegistry
	Styles() AssetRegistry
	Features() FeatureRegistry
	Query() Query
	Media() MediaLibrary
	IsAdmin() bool
}

// Asset is a registered script or style.
type Asset struct {
	Handle   string
	Src      string
	Deps     []string
	Version  string
	InFooter bool   // scripts only
	Media    string // styles only
}

// AssetRegistry is the host's script or style registry.
type AssetRegistry interface {
	Enqueue(a Asset)

	// AddData attaches a value to a registered handle under key.
	// Returns false if the handle is not registered.
	AddData(handle, key string, value any) bool
	Data(handle, key string) (any, bool)

	// Registered lists every registered asset in registration order.
	Registered() []Asset
}

// NavMenu is a navigation menu location.
type NavMenu struct {
	Location    string
	Description string
}

// FeatureRegistry records what the theme supports.
type FeatureRegistry interface {
	AddThemeSupport(feature string, args ...string)
	RegisterNavMenus(menus []NavMenu)
	LoadThemeTextDomain(domain, path string) bool
	Translate(text, domain string) string
}

// Query describes the request being rendered.
type Query interface {
	// IsSingular reports whether a single post or page is being displayed.
	IsSingular() bool
	// PostThumbnailID returns the featured image of the current post, 0 if none.
	PostThumbnailID() int
}

// Image is a resolved attachment image.
type Image struct {
	Src    string
	Width  int
	Height int
	SrcSet string // Empty when the host has no responsive candidates
}

// MediaLibrary resolves attachments.
type MediaLibrary interface {
	AttachmentImage(id int, size string) (Image, bool)
}
