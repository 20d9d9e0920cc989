package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed snippets/*
var snippets embed.FS

// EmbeddedLoader loads head snippets from the embedded filesystem.
// Implements SnippetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadSnippet loads a snippet by name. Trailing newlines are trimmed so
// callers control the surrounding markup.
func (e *EmbeddedLoader) LoadSnippet(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := snippets.ReadFile("snippets/" + name + ".js")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSnippetNotFound, name)
	}

	return strings.TrimRight(string(content), "\r\n"), nil
}

// Compile-time interface check.
var _ SnippetLoader = (*EmbeddedLoader)(nil)
