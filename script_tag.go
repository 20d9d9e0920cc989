package themekit

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// scriptClose is the insertion point for new attributes.
const scriptClose = "></script>"

// RewriteScriptTag adds attrs to a script tag, in order, immediately before
// the first "></script>".
//
// A falsy value stops the pass: it and every later attribute are skipped.
// Attributes the start tag already carries are skipped. async and defer are
// skipped when hasDependents reports that another script depends on this
// one; hasDependents may be nil and is called at most once.
func RewriteScriptTag(tag string, attrs Attributes, hasDependents func() bool) string {
	if len(attrs) == 0 {
		return tag
	}

	dependents := -1 // unknown
	depended := func() bool {
		if dependents < 0 {
			dependents = 0
			if hasDependents != nil && hasDependents() {
				dependents = 1
			}
		}
		return dependents == 1
	}

	out := tag
	for _, a := range attrs {
		if !a.Value.Truthy() {
			break
		}
		if isLoadingAttr(a.Name) && depended() {
			continue
		}
		idx := strings.Index(out, scriptClose)
		if idx < 0 {
			continue
		}
		if startTagHasAttr(out[:idx+1], a.Name) {
			continue
		}
		out = out[:idx] + a.render() + out[idx:]
	}
	return out
}

func isLoadingAttr(name string) bool {
	return strings.EqualFold(name, "async") || strings.EqualFold(name, "defer")
}

// startTagHasAttr reports whether the last <script start tag in head
// declares name. head must end with the start tag's closing '>'.
func startTagHasAttr(head, name string) bool {
	start := strings.LastIndex(strings.ToLower(head), "<script")
	if start < 0 {
		return false
	}

	z := html.NewTokenizer(strings.NewReader(head[start:]))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "script" {
				continue
			}
			return slices.ContainsFunc(tok.Attr, func(a html.Attribute) bool {
				return strings.EqualFold(a.Key, name)
			})
		}
	}
}

// ScriptLoaderTag rewrites a script tag rendered for handle using the
// Attributes stored on the handle under AttributesKey.
func (t *Theme) ScriptLoaderTag(tag, handle string) string {
	scripts := t.host.Scripts()
	if scripts == nil {
		return tag
	}
	raw, ok := scripts.Data(handle, AttributesKey)
	if !ok {
		return tag
	}
	attrs := attributesFrom(raw)
	if len(attrs) == 0 {
		return tag
	}

	out := RewriteScriptTag(tag, attrs, func() bool {
		return hasDependents(scripts, handle)
	})
	if out != tag {
		t.logger.Debug("script tag rewritten", "handle", handle)
	}
	return out
}

// scriptLoaderTagFilter adapts ScriptLoaderTag to the host filter signature:
// value is the tag, args[0] the handle.
func (t *Theme) scriptLoaderTagFilter(_ context.Context, value any, args ...any) any {
	tag, ok := value.(string)
	if !ok {
		return value
	}
	return t.ScriptLoaderTag(tag, stringArg(args, 0))
}

func attributesFrom(v any) Attributes {
	switch x := v.(type) {
	case Attributes:
		return x
	case []Attribute:
		return x
	default:
		return nil
	}
}

// hasDependents reports whether any registered script depends on handle.
func hasDependents(reg AssetRegistry, handle string) bool {
	for _, a := range reg.Registered() {
		if a.Handle != handle && slices.Contains(a.Deps, handle) {
			return true
		}
	}
	return false
}
