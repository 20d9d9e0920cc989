package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-themekit/internal/fileutil"
	"github.com/alnah/go-themekit/internal/yamlutil"
)

// infoDirs are searched in order for metadata artifacts.
var infoDirs = []string{
	filepath.Join("dist", "js"),
	filepath.Join("dist", "css"),
}

// infoExtensions are tried in order within each directory.
var infoExtensions = []string{".asset.json", ".asset.yaml", ".asset.yml"}

// FilesystemLoader loads assets from a theme directory on the filesystem.
// Implements InfoLoader and SnippetLoader interfaces.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in base path so containment checks compare real paths
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved theme directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadInfo looks for {basePath}/dist/js/{slug}.asset.* first, then dist/css.
func (f *FilesystemLoader) LoadInfo(slug string) (*Info, error) {
	if err := ValidateAssetName(slug); err != nil {
		return nil, err
	}

	for _, dir := range infoDirs {
		for _, ext := range infoExtensions {
			filePath := filepath.Join(f.basePath, dir, slug+ext)
			if !fileutil.FileExists(filePath) {
				continue
			}

			// Path containment check: a symlinked artifact must stay inside the theme
			if err := f.verifyPathContainment(filePath); err != nil {
				return nil, err
			}
			return readInfo(filePath)
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrInfoNotFound, slug)
}

// rawInfo accepts numeric versions, which build tools emit for some bundles.
type rawInfo struct {
	Dependencies []string `yaml:"dependencies"`
	Version      any      `yaml:"version"`
}

func readInfo(filePath string) (*Info, error) {
	var raw rawInfo
	if err := yamlutil.UnmarshalFile(filePath, &raw); err != nil {
		if errors.Is(err, yamlutil.ErrNilData) {
			return &Info{}, nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInfoParse, filepath.Base(filePath), err)
	}

	info := &Info{Dependencies: raw.Dependencies}
	if raw.Version != nil {
		info.Version = fmt.Sprint(raw.Version)
	}
	return info, nil
}

// LoadSnippet loads {basePath}/snippets/{name}.js.
func (f *FilesystemLoader) LoadSnippet(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(f.basePath, "snippets", name+".js")

	if err := f.verifyPathContainment(filePath); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrSnippetNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return strings.TrimRight(string(content), "\r\n"), nil
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Resolves symlinks so a link pointing outside basePath is rejected.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file keeps its unresolved path; the prefix check still applies
	realPath, err := filepath.EvalSymlinks(absFilePath)
	if err == nil {
		absFilePath = realPath
	}

	// Separator suffix prevents /base/path matching /base/pathevil
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface checks.
var (
	_ InfoLoader    = (*FilesystemLoader)(nil)
	_ SnippetLoader = (*FilesystemLoader)(nil)
)
