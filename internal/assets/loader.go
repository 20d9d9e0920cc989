package assets

// InfoLoader loads the build metadata recorded beside a compiled bundle.
type InfoLoader interface {
	// LoadInfo loads metadata for a bundle slug (e.g. "frontend").
	// Returns ErrInfoNotFound if no artifact exists.
	// Returns ErrInvalidAssetName if the slug contains invalid characters.
	LoadInfo(slug string) (*Info, error)
}

// SnippetLoader loads inline head scripts by name (without .js extension).
type SnippetLoader interface {
	// LoadSnippet returns ErrSnippetNotFound if the snippet doesn't exist.
	LoadSnippet(name string) (string, error)
}

// Info is the decoded content of a metadata artifact.
type Info struct {
	Dependencies []string `yaml:"dependencies"`
	Version      string   `yaml:"version"`
}

// Snippet names shipped with the package.
const (
	SnippetJSDetection     = "js-detection"
	SnippetModuleDetection = "module-detection"
)
