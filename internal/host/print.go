package host

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/alnah/go-themekit"
)

// PrintStyles writes every registered style as a stylesheet link, passed
// through the style_loader_tag filter with (handle, href, media).
func (h *Host) PrintStyles(ctx context.Context, w io.Writer) {
	ordered, missing := h.styles.Resolve()
	h.logMissing("style", missing)
	for _, a := range ordered {
		href := versioned(a.Src, a.Version)
		media := a.Media
		if media == "" {
			media = "all"
		}
		tag := fmt.Sprintf("<link rel='stylesheet' id='%s-css' href='%s' media='%s' />\n",
			escapeAttr(a.Handle), themekit.EscapeURL(href), escapeAttr(media))
		writeFiltered(w, h.ApplyFilters(ctx, themekit.FilterStyleLoaderTag, tag, a.Handle, href, media), tag)
	}
}

func (h *Host) printHeadScripts(ctx context.Context, w io.Writer) {
	head, _ := h.splitScripts()
	h.printScripts(ctx, w, head)
}

func (h *Host) printFooterScripts(ctx context.Context, w io.Writer) {
	_, footer := h.splitScripts()
	h.printScripts(ctx, w, footer)
}

func (h *Host) splitScripts() (head, footer []themekit.Asset) {
	ordered, missing := h.scripts.Resolve()
	h.logMissing("script", missing)
	return Split(ordered)
}

// printScripts writes each script tag, passed through the
// script_loader_tag filter with (handle, src).
func (h *Host) printScripts(ctx context.Context, w io.Writer, scripts []themekit.Asset) {
	for _, a := range scripts {
		src := versioned(a.Src, a.Version)
		tag := fmt.Sprintf("<script src='%s' id='%s-js'></script>\n",
			themekit.EscapeURL(src), escapeAttr(a.Handle))
		writeFiltered(w, h.ApplyFilters(ctx, themekit.FilterScriptLoaderTag, tag, a.Handle, src), tag)
	}
}

func (h *Host) logMissing(kind string, missing []string) {
	for _, m := range missing {
		h.logger.Warn("unregistered dependency", "kind", kind, "handle", m)
	}
}

// writeFiltered writes the filtered tag, or the original when a filter
// returned something other than a string.
func writeFiltered(w io.Writer, filtered any, original string) {
	s, ok := filtered.(string)
	if !ok {
		s = original
	}
	_, _ = io.WriteString(w, s)
}

// versioned appends ?ver=version to src.
func versioned(src, version string) string {
	if version == "" {
		return src
	}
	u, err := url.Parse(src)
	if err != nil {
		return src
	}
	q := u.Query()
	q.Set("ver", version)
	u.RawQuery = q.Encode()
	return u.String()
}
