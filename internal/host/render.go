package host

import (
	"context"
	"html"
	"io"

	"github.com/alnah/go-themekit"
)

// Boot fires after_setup_theme once.
func (h *Host) Boot(ctx context.Context) {
	if h.booted {
		return
	}
	h.booted = true
	h.DoAction(ctx, themekit.PointAfterSetupTheme, io.Discard)
}

// Head boots the host, fires get_header and writes the wp_head output.
func (h *Host) Head(ctx context.Context, w io.Writer) {
	h.Boot(ctx)
	h.DoAction(ctx, themekit.PointGetHeader, io.Discard)
	h.DoAction(ctx, themekit.PointHead, w)
}

// Render writes a minimal document around the head and footer output.
func (h *Host) Render(ctx context.Context, w io.Writer, title string) {
	h.Boot(ctx)
	h.DoAction(ctx, themekit.PointGetHeader, io.Discard)

	write(w, "<!DOCTYPE html>\n<html class=\"no-js\">\n<head>\n")
	write(w, "<title>"+html.EscapeString(title)+"</title>\n")
	h.DoAction(ctx, themekit.PointHead, w)
	write(w, "\n</head>\n<body>\n")
	h.DoAction(ctx, themekit.PointFooter, w)
	write(w, "</body>\n</html>\n")
}

func write(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}

func escapeAttr(s string) string {
	return html.EscapeString(s)
}
