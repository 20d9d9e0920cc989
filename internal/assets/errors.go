package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrInfoNotFound indicates no metadata artifact exists for the slug.
	ErrInfoNotFound = errors.New("asset info not found")

	// ErrInfoParse indicates a metadata artifact exists but cannot be decoded.
	ErrInfoParse = errors.New("failed to parse asset info")

	// ErrSnippetNotFound indicates the requested head snippet does not exist.
	ErrSnippetNotFound = errors.New("snippet not found")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
