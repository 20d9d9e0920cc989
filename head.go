package themekit

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alnah/go-themekit/internal/assets"
)

// JSDetection swaps the no-js class on <html> for js.
func (t *Theme) JSDetection(ctx context.Context, w io.Writer) {
	if ctx.Err() != nil {
		return
	}
	snippet, ok := t.snippet(assets.SnippetJSDetection)
	if !ok {
		return
	}
	writeString(w, "<script>"+snippet+"</script>\n")
}

// ModuleDetection emits the nomodule shim that stops browsers supporting
// ES modules from also running nomodule scripts.
func (t *Theme) ModuleDetection(ctx context.Context, w io.Writer) {
	if ctx.Err() != nil {
		return
	}
	snippet, ok := t.snippet(assets.SnippetModuleDetection)
	if !ok {
		return
	}
	writeString(w, "<script>\n"+snippet+"\n\t</script>")
}

func (t *Theme) snippet(name string) (string, bool) {
	content, err := t.snippets.LoadSnippet(name)
	if err != nil {
		t.logger.Warn("head snippet unavailable", "snippet", name, "error", err)
		return "", false
	}
	return content, true
}

// Manifest links the web app manifest.
func (t *Theme) Manifest(ctx context.Context, w io.Writer) {
	if ctx.Err() != nil || t.cfg.Manifest == "" {
		return
	}
	href := EscapeURL(t.themeURL(t.cfg.Manifest))
	if href == "" {
		t.logger.Warn("manifest URL rejected", "manifest", t.cfg.Manifest)
		return
	}
	fmt.Fprintf(w, "<link rel='manifest' href='%s' />", href)
}

// LinkPreloadPreconnect emits one preconnect hint per origin, then one
// preload hint per resource. Entries whose URL is rejected are skipped.
func (t *Theme) LinkPreloadPreconnect(ctx context.Context, w io.Writer) {
	if ctx.Err() != nil {
		return
	}
	for _, origin := range t.cfg.Preconnect {
		href := EscapeURL(origin)
		if href == "" {
			t.logger.Warn("preconnect URL rejected", "url", origin)
			continue
		}
		fmt.Fprintf(w, "<link rel='preconnect' href='%s' crossorigin>", href)
	}
	for _, p := range t.cfg.Preload {
		href := EscapeURL(t.themeURL(p.Href))
		if href == "" {
			t.logger.Warn("preload URL rejected", "url", p.Href)
			continue
		}
		typ, crossorigin := p.resolved()

		var extra strings.Builder
		if typ != "" {
			extra.WriteString(" type='" + html.EscapeString(typ) + "'")
		}
		if crossorigin {
			extra.WriteString(" crossorigin")
		}
		fmt.Fprintf(w, "<link rel='preload' as='%s' href='%s'%s>\n", html.EscapeString(p.As), href, extra.String())
	}
}

// PreloadPostThumbnail preloads the featured image of a singular page,
// with its srcset when the host knows one, then any extra images.
func (t *Theme) PreloadPostThumbnail(ctx context.Context, w io.Writer) {
	if ctx.Err() != nil || t.cfg.Thumbnail.Disabled {
		return
	}
	q := t.host.Query()
	if q == nil || !q.IsSingular() {
		return
	}

	size := t.cfg.Thumbnail.Size
	if size == "" {
		size = "full"
	}
	if v, ok := t.host.ApplyFilters(ctx, FilterThumbnailImageSize, size).(string); ok && v != "" {
		size = v
	}
	id := q.PostThumbnailID()
	if v, ok := t.host.ApplyFilters(ctx, FilterThumbnailID, id).(int); ok {
		id = v
	}
	if id <= 0 {
		return
	}

	media := t.host.Media()
	if media == nil {
		return
	}
	img, ok := media.AttachmentImage(id, size)
	if !ok {
		t.logger.Debug("thumbnail not found", "id", id, "size", size)
		return
	}
	src := EscapeURL(img.Src)
	if src == "" {
		return
	}

	responsive := ""
	if img.SrcSet != "" {
		sizes := t.cfg.Thumbnail.Sizes
		if sizes == "" {
			sizes = "100vw"
		}
		responsive = fmt.Sprintf(`imagesrcset="%s" imagesizes="%s" `,
			html.EscapeString(img.SrcSet), html.EscapeString(sizes))
	}
	fmt.Fprintf(w, `<link rel="preload" as="image" href="%s" %s/>`, src, responsive)

	for _, extra := range t.cfg.Thumbnail.Extra {
		href := EscapeURL(t.themeURL(extra))
		if href == "" {
			continue
		}
		fmt.Fprintf(w, `<link rel="preload" as="image" href="%s"/>`, href)
	}
}

func writeString(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
