// Package assets loads build metadata and head snippets for a theme.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	InfoLoader / SnippetLoader (interfaces)
//	    │
//	    ├── EmbeddedLoader    - head snippets compiled in with go:embed
//	    ├── FilesystemLoader  - asset metadata and snippet overrides on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// FilesystemLoader reads the metadata artifacts the asset build writes next
// to each compiled bundle. AssetResolver is the loader used by the theme:
// metadata only ever comes from disk, while snippets fall back to the
// embedded copies when the theme does not override them.
//
// # Directory Structure
//
//	{themePath}/
//	├── dist/
//	│   ├── js/{slug}.asset.json     # {dependencies: [...], version: ...}
//	│   └── css/{slug}.asset.json
//	└── snippets/
//	    └── {name}.js                # optional head snippet override
//
// Metadata may also be written as .asset.yaml or .asset.yml. The js
// directory is searched before the css directory.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
