package themekit

import (
	"context"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// mediaAllPattern finds media="all" candidates, quoted or not. Group 1 is
// the value including its quotes.
var mediaAllPattern = regexp.MustCompile(`(?i)\smedia\s*=\s*('all'|"all"|all)`)

// printSwapOnload is appended after the rewritten media attribute.
const printSwapOnload = ` onload="this.media='all'"`

// RewriteStyleTag makes a known style load without blocking render. The
// tag's media is switched to print and restored to all once loaded, and the
// original tag is kept in a <noscript> fallback.
//
// Tags whose handle is not in known, or that carry no media="all", are
// returned unchanged.
func RewriteStyleTag(tag, handle string, known HandleSet) string {
	if !known.Contains(handle) {
		return tag
	}
	swapped, ok := swapMediaToPrint(tag)
	if !ok {
		return tag
	}
	return swapped + "<noscript>" + tag + "</noscript>"
}

// swapMediaToPrint rewrites the start tag's media attribute when its value
// is "all". The quoting of the original value is kept. Text matches that do
// not land on the real attribute, such as media=all inside a title, are
// skipped.
func swapMediaToPrint(tag string) (string, bool) {
	attrs, ok := startTagAttrs(tag)
	if !ok {
		return tag, false
	}
	media := slices.IndexFunc(attrs, func(a html.Attribute) bool { return a.Key == "media" })
	if media < 0 || !strings.EqualFold(attrs[media].Val, "all") {
		return tag, false
	}

	for _, m := range mediaAllPattern.FindAllStringSubmatchIndex(tag, -1) {
		start, end := m[2], m[3]
		value := tag[start:end]

		quote := ""
		if value[0] == '\'' || value[0] == '"' {
			quote = value[:1]
		} else if end < len(tag) && !isAttrBoundary(tag[end]) {
			// media=allx
			continue
		}
		head, tail := tag[:start]+quote+"print"+quote, tag[end:]
		if !onlyMediaChanged(attrs, media, head+tail) {
			continue
		}
		return head + printSwapOnload + tail, true
	}
	return tag, false
}

// startTagAttrs returns the attributes of the first start tag in s.
func startTagAttrs(s string) ([]html.Attribute, bool) {
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return nil, false
		case html.StartTagToken, html.SelfClosingTagToken:
			return z.Token().Attr, true
		}
	}
}

// onlyMediaChanged reports whether candidate carries the same attributes
// as attrs except for a media value of "print" at index media.
func onlyMediaChanged(attrs []html.Attribute, media int, candidate string) bool {
	got, ok := startTagAttrs(candidate)
	if !ok || len(got) != len(attrs) {
		return false
	}
	for i, a := range attrs {
		want := a.Val
		if i == media {
			want = "print"
		}
		if got[i].Key != a.Key || got[i].Val != want {
			return false
		}
	}
	return true
}

func isAttrBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '/', '>':
		return true
	}
	return false
}

// StyleLoaderTag rewrites a style tag rendered for handle.
func (t *Theme) StyleLoaderTag(tag, handle string) string {
	out := RewriteStyleTag(tag, handle, t.async)
	if out == tag && t.async.Contains(handle) {
		t.logger.Debug("style tag left blocking: no media=all attribute", "handle", handle)
	}
	return out
}

// styleLoaderTagFilter adapts StyleLoaderTag to the host filter signature:
// value is the tag, args[0] the handle.
func (t *Theme) styleLoaderTagFilter(_ context.Context, value any, args ...any) any {
	tag, ok := value.(string)
	if !ok {
		return value
	}
	return t.StyleLoaderTag(tag, stringArg(args, 0))
}

func stringArg(args []any, i int) string {
	if i >= len(args) {
		return ""
	}
	s, _ := args[i].(string)
	return s
}
