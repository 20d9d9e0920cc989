package themekit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/alnah/go-themekit/internal/assets"
)

func writeTheme(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return dir
}

func TestNewAssetInfoLoader(t *testing.T) {
	t.Parallel()

	dir := writeTheme(t, map[string]string{
		"dist/js/frontend.asset.json": `{"dependencies":["wp-i18n"],"version":"f00"}`,
		"dist/css/style.asset.yaml":   "version: 12\n",
		"dist/js/broken.asset.json":   `{"dependencies": [`,
	})

	loader, err := NewAssetInfoLoader(dir)
	if err != nil {
		t.Fatalf("NewAssetInfoLoader() unexpected error: %v", err)
	}

	tests := []struct {
		slug    string
		want    AssetInfo
		wantErr error
	}{
		{slug: "frontend", want: AssetInfo{Dependencies: []string{"wp-i18n"}, Version: "f00"}},
		{slug: "style", want: AssetInfo{Version: "12"}},
		{slug: "missing", wantErr: ErrAssetInfoNotFound},
		{slug: "broken", wantErr: ErrAssetInfoParse},
		{slug: "../escape", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()
			got, err := loader.LoadAssetInfo(tt.slug)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadAssetInfo(%q) error = %v, want %v", tt.slug, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadAssetInfo(%q) unexpected error: %v", tt.slug, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("LoadAssetInfo(%q) mismatch (-want +got):\n%s", tt.slug, diff)
			}
		})
	}
}

func TestNewAssetInfoLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetInfoLoader("")
	if err != nil {
		t.Fatalf("NewAssetInfoLoader(\"\") unexpected error: %v", err)
	}
	if _, err := loader.LoadAssetInfo("frontend"); !errors.Is(err, ErrAssetInfoNotFound) {
		t.Errorf("error = %v, want ErrAssetInfoNotFound", err)
	}
}

func TestNewAssetInfoLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetInfoLoader(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestConvertAssetError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		internal error
		want     error
	}{
		{"info not found", assets.ErrInfoNotFound, ErrAssetInfoNotFound},
		{"info parse", assets.ErrInfoParse, ErrAssetInfoParse},
		{"invalid name", assets.ErrInvalidAssetName, ErrInvalidAssetName},
		{"invalid base path", assets.ErrInvalidBasePath, ErrInvalidAssetPath},
		{"path traversal", assets.ErrPathTraversal, ErrInvalidAssetPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := convertAssetError(tt.internal)
			if !errors.Is(got, tt.want) {
				t.Errorf("convertAssetError(%v) does not match %v", tt.internal, tt.want)
			}
			if got.Error() != tt.internal.Error() {
				t.Errorf("message = %q, want original %q", got.Error(), tt.internal.Error())
			}
		})
	}

	if convertAssetError(nil) != nil {
		t.Error("convertAssetError(nil) != nil")
	}
	other := errors.New("other")
	if convertAssetError(other) != other {
		t.Error("unknown errors should pass through")
	}
}
