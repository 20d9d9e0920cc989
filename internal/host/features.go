package host

import (
	"path/filepath"
	"slices"

	"github.com/alnah/go-themekit"
	"github.com/alnah/go-themekit/internal/yamlutil"
)

// Features records theme supports, menus and loaded translations.
type Features struct {
	locale       string
	supports     map[string][]string
	order        []string
	menus        []themekit.NavMenu
	translations map[string]map[string]string
}

// NewFeatures creates an empty registry for locale.
func NewFeatures(locale string) *Features {
	return &Features{
		locale:       locale,
		supports:     make(map[string][]string),
		translations: make(map[string]map[string]string),
	}
}

// AddThemeSupport declares feature. Arguments of repeated calls accumulate.
func (f *Features) AddThemeSupport(feature string, args ...string) {
	if _, ok := f.supports[feature]; !ok {
		f.order = append(f.order, feature)
		f.supports[feature] = nil
	}
	for _, a := range args {
		if !slices.Contains(f.supports[feature], a) {
			f.supports[feature] = append(f.supports[feature], a)
		}
	}
}

// Supports returns the arguments of feature and whether it is declared.
func (f *Features) Supports(feature string) ([]string, bool) {
	args, ok := f.supports[feature]
	return slices.Clone(args), ok
}

// SupportedFeatures lists declared features in declaration order.
func (f *Features) SupportedFeatures() []string {
	return slices.Clone(f.order)
}

// RegisterNavMenus adds menu locations. A location registered twice keeps
// the latest description.
func (f *Features) RegisterNavMenus(menus []themekit.NavMenu) {
	for _, m := range menus {
		i := slices.IndexFunc(f.menus, func(x themekit.NavMenu) bool { return x.Location == m.Location })
		if i >= 0 {
			f.menus[i] = m
			continue
		}
		f.menus = append(f.menus, m)
	}
}

// NavMenus lists registered menu locations.
func (f *Features) NavMenus() []themekit.NavMenu {
	return slices.Clone(f.menus)
}

// LoadThemeTextDomain loads {path}/{domain}-{locale}.yaml, a flat map of
// source strings to translations. Returns false if the catalog is missing
// or unreadable.
func (f *Features) LoadThemeTextDomain(domain, path string) bool {
	file := filepath.Join(path, domain+"-"+f.locale+".yaml")
	var catalog map[string]string
	if err := yamlutil.UnmarshalFile(file, &catalog); err != nil {
		return false
	}
	if f.translations[domain] == nil {
		f.translations[domain] = make(map[string]string, len(catalog))
	}
	for k, v := range catalog {
		f.translations[domain][k] = v
	}
	return true
}

// Translate returns the translation of text in domain, or text itself.
func (f *Features) Translate(text, domain string) string {
	if t, ok := f.translations[domain][text]; ok && t != "" {
		return t
	}
	return text
}

// Compile-time interface check.
var _ themekit.FeatureRegistry = (*Features)(nil)
