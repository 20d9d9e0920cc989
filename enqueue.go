package themekit

import (
	"context"
	"errors"
	"io"
	"slices"
)

// Scripts enqueues the front-end scripts.
func (t *Theme) Scripts(ctx context.Context, _ io.Writer) {
	t.enqueueAll(ctx, t.host.Scripts(), t.cfg.Scripts, false)
}

// Styles enqueues the front-end styles.
func (t *Theme) Styles(ctx context.Context, _ io.Writer) {
	t.enqueueAll(ctx, t.host.Styles(), t.cfg.Styles, true)
}

// AdminScripts enqueues the admin scripts.
func (t *Theme) AdminScripts(ctx context.Context, _ io.Writer) {
	t.enqueueAll(ctx, t.host.Scripts(), t.cfg.AdminScripts, false)
}

// AdminStyles enqueues the admin styles.
func (t *Theme) AdminStyles(ctx context.Context, _ io.Writer) {
	t.enqueueAll(ctx, t.host.Styles(), t.cfg.AdminStyles, true)
}

func (t *Theme) enqueueAll(ctx context.Context, reg AssetRegistry, specs []AssetSpec, style bool) {
	if reg == nil {
		return
	}
	for _, spec := range specs {
		if ctx.Err() != nil {
			return
		}
		reg.Enqueue(t.resolveAsset(spec, style))
		if len(spec.Attributes) > 0 {
			reg.AddData(spec.Handle, AttributesKey, spec.Attributes.Clone())
		}
	}
}

// resolveAsset builds the registry entry for spec. Missing metadata leaves
// the version empty and adds no dependencies.
func (t *Theme) resolveAsset(spec AssetSpec, style bool) Asset {
	info, err := t.info.LoadAssetInfo(spec.slug())
	switch {
	case errors.Is(err, ErrAssetInfoNotFound):
		t.logger.Debug("no asset info", "handle", spec.Handle, "slug", spec.slug())
	case err != nil:
		t.logger.Warn("asset info unreadable", "handle", spec.Handle, "error", err)
	}

	deps := slices.Clone(spec.Deps)
	if spec.AssetDependencies {
		for _, d := range info.Dependencies {
			if !slices.Contains(deps, d) {
				deps = append(deps, d)
			}
		}
	}

	a := Asset{
		Handle:   spec.Handle,
		Src:      t.themeURL(spec.Path),
		Deps:     deps,
		Version:  info.Version,
		InFooter: spec.InFooter,
	}
	if style {
		a.Media = spec.Media
		if a.Media == "" {
			a.Media = "all"
		}
		a.InFooter = false
	}
	return a
}
