package themekit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-themekit"
	"github.com/alnah/go-themekit/internal/host"
)

func newThemeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"dist/js/frontend.asset.json":   `{"dependencies":["vendor"],"version":"1a2b"}`,
		"dist/css/style.asset.json":     `{"dependencies":[],"version":"3c4d"}`,
		"languages/themekit-fr_FR.yaml": "Primary Menu: Menu principal\n",
	}
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestTheme_RenderThroughHost(t *testing.T) {
	t.Parallel()

	h := host.New(host.Options{AdminBar: true, Locale: "fr_FR"})
	cfg := themekit.DefaultConfig()
	cfg.TemplateURL = "https://example.com/theme"
	cfg.TemplatePath = newThemeDir(t)
	cfg.Scripts = append(cfg.Scripts, themekit.AssetSpec{
		Handle:     "vendor",
		Path:       "dist/js/vendor.js",
		InFooter:   true,
		Attributes: themekit.Attributes{{Name: "defer", Value: themekit.Bool(true)}},
	})
	cfg.Styles = append(cfg.Styles, themekit.AssetSpec{Handle: "blocks", Path: "dist/css/blocks.css"})

	theme, err := themekit.New(cfg, h)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	theme.Setup(h)

	var sb strings.Builder
	h.Render(t.Context(), &sb, "Home")
	page := sb.String()

	wantContains := []string{
		// Versioned style, not async.
		"<link rel='stylesheet' id='styles-css' href='https://example.com/theme/dist/css/style.css?ver=3c4d' media='all' />\n",
		// Async style print-swapped with noscript fallback.
		"<link rel='stylesheet' id='blocks-css' href='https://example.com/theme/dist/css/blocks.css' media='print' onload=\"this.media='all'\" />\n" +
			"<noscript><link rel='stylesheet' id='blocks-css' href='https://example.com/theme/dist/css/blocks.css' media='all' />\n</noscript>",
		// vendor is a dependency of frontend, so defer is withheld.
		"<script src='https://example.com/theme/dist/js/vendor.js' id='vendor-js'></script>\n",
		"<script src='https://example.com/theme/dist/js/frontend.js?ver=1a2b' id='frontend-js'></script>\n",
		"<script src='https://example.com/theme/dist/js/polyfill.js' id='polyfill-js' nomodule></script>\n",
		"<link rel='manifest' href='https://example.com/theme/manifest.json' />",
	}
	for _, want := range wantContains {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q\npage:\n%s", want, page)
		}
	}

	if strings.Contains(page, "margin-top: 32px") {
		t.Error("admin bar bump should be removed on get_header")
	}
	if strings.Index(page, "vendor-js") > strings.Index(page, "frontend-js") {
		t.Error("vendor must print before the script depending on it")
	}
	if strings.Index(page, "</head>") > strings.Index(page, "frontend-js") {
		t.Error("footer scripts printed in the head")
	}

	menus := h.FeatureSet().NavMenus()
	if len(menus) != 1 || menus[0].Description != "Menu principal" {
		t.Errorf("menus = %+v, want the translated primary menu", menus)
	}
}

func TestTheme_AdminKeepsStylesBlocking(t *testing.T) {
	t.Parallel()

	h := host.New(host.Options{Admin: true})
	cfg := themekit.DefaultConfig()
	cfg.TemplateURL = "https://example.com/theme"
	cfg.AdminStyles = []themekit.AssetSpec{{Handle: "dashicons", Path: "dist/css/dashicons.css"}}

	theme, err := themekit.New(cfg, h)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	theme.Setup(h)

	var sb strings.Builder
	h.Head(t.Context(), &sb)
	head := sb.String()

	if !strings.Contains(head, "id='dashicons-css'") {
		t.Fatalf("admin style not printed:\n%s", head)
	}
	if strings.Contains(head, "<noscript>") {
		t.Errorf("admin styles must not be print-swapped:\n%s", head)
	}
	if strings.Contains(head, "frontend-js") {
		t.Errorf("front-end scripts enqueued in the admin:\n%s", head)
	}
}
