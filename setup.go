package themekit

import (
	"context"
	"html"
	"io"
	"path/filepath"
)

// I18n loads the theme's translations.
func (t *Theme) I18n(_ context.Context, _ io.Writer) {
	features := t.host.Features()
	if features == nil || t.cfg.TextDomain == "" {
		return
	}
	dir := t.cfg.LanguagesDir
	if dir == "" {
		dir = "languages"
	}
	path := filepath.Join(t.cfg.TemplatePath, dir)
	if !features.LoadThemeTextDomain(t.cfg.TextDomain, path) {
		t.logger.Debug("no translations loaded", "domain", t.cfg.TextDomain, "path", path)
	}
}

// ThemeSetup declares theme supports and registers navigation menus.
func (t *Theme) ThemeSetup(_ context.Context, _ io.Writer) {
	features := t.host.Features()
	if features == nil {
		return
	}
	for _, f := range t.cfg.ThemeSupports {
		features.AddThemeSupport(f)
	}
	if len(t.cfg.HTML5) > 0 {
		features.AddThemeSupport("html5", t.cfg.HTML5...)
	}

	if len(t.cfg.Menus) == 0 {
		return
	}
	menus := make([]NavMenu, 0, len(t.cfg.Menus))
	for _, m := range t.cfg.Menus {
		menus = append(menus, NavMenu{
			Location:    m.Location,
			Description: html.EscapeString(features.Translate(m.Description, t.cfg.TextDomain)),
		})
	}
	features.RegisterNavMenus(menus)
}

// RemoveAdminBarLayoutStyles stops the host from pushing the page down to
// make room for the admin bar.
func (t *Theme) RemoveAdminBarLayoutStyles(_ context.Context, _ io.Writer) {
	if t.host.RemoveAction(PointHead, AdminBarBumpAction) {
		t.logger.Debug("admin bar bump removed")
	}
}
