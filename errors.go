package themekit

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilHost       = errors.New("host cannot be nil")
	ErrInvalidConfig = errors.New("invalid theme config")

	// Asset loading errors.
	ErrAssetInfoNotFound = errors.New("asset info not found")
	ErrAssetInfoParse    = errors.New("asset info cannot be parsed")
	ErrInvalidAssetName  = errors.New("invalid asset name")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
)
