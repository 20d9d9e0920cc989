package themekit

import (
	"context"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake host
// ---------------------------------------------------------------------------

// fakeRegistration records one Registrar call.
type fakeRegistration struct {
	kind         HookKind
	point        string
	name         string
	priority     int
	acceptedArgs int
}

// fakeRegistry is a minimal AssetRegistry.
type fakeRegistry struct {
	assets []Asset
	data   map[string]map[string]any
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{data: make(map[string]map[string]any)}
}

func (r *fakeRegistry) Enqueue(a Asset) { r.assets = append(r.assets, a) }

func (r *fakeRegistry) AddData(handle, key string, value any) bool {
	if !slices.ContainsFunc(r.assets, func(a Asset) bool { return a.Handle == handle }) {
		return false
	}
	if r.data[handle] == nil {
		r.data[handle] = make(map[string]any)
	}
	r.data[handle][key] = value
	return true
}

func (r *fakeRegistry) Data(handle, key string) (any, bool) {
	v, ok := r.data[handle][key]
	return v, ok
}

func (r *fakeRegistry) Registered() []Asset { return slices.Clone(r.assets) }

// fakeFeatures records feature calls.
type fakeFeatures struct {
	supports     map[string][]string
	menus        []NavMenu
	domain, path string
	loadOK       bool
	translations map[string]string
}

func (f *fakeFeatures) AddThemeSupport(feature string, args ...string) {
	if f.supports == nil {
		f.supports = make(map[string][]string)
	}
	f.supports[feature] = append(f.supports[feature], args...)
}

func (f *fakeFeatures) RegisterNavMenus(menus []NavMenu) { f.menus = append(f.menus, menus...) }

func (f *fakeFeatures) LoadThemeTextDomain(domain, path string) bool {
	f.domain, f.path = domain, path
	return f.loadOK
}

func (f *fakeFeatures) Translate(text, _ string) string {
	if t, ok := f.translations[text]; ok {
		return t
	}
	return text
}

type fakeQuery struct {
	singular    bool
	thumbnailID int
}

func (q fakeQuery) IsSingular() bool     { return q.singular }
func (q fakeQuery) PostThumbnailID() int { return q.thumbnailID }

type fakeMedia map[int]Image

func (m fakeMedia) AttachmentImage(id int, _ string) (Image, bool) {
	img, ok := m[id]
	return img, ok
}

// fakeHost records registrations and serves canned lookups. Filters passed
// to ApplyFilters come from the filters map, keyed by point.
type fakeHost struct {
	admin         bool
	registrations []fakeRegistration
	removed       []string
	scripts       *fakeRegistry
	styles        *fakeRegistry
	features      *fakeFeatures
	query         Query
	media         MediaLibrary
	filters       map[string]func(value any) any
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		scripts:  newFakeRegistry(),
		styles:   newFakeRegistry(),
		features: &fakeFeatures{},
	}
}

func (h *fakeHost) AddAction(point, name string, _ ActionFunc, priority int) {
	h.registrations = append(h.registrations, fakeRegistration{KindAction, point, name, priority, 0})
}

func (h *fakeHost) AddFilter(point, name string, _ FilterFunc, priority, acceptedArgs int) {
	h.registrations = append(h.registrations, fakeRegistration{KindFilter, point, name, priority, acceptedArgs})
}

func (h *fakeHost) RemoveAction(point, name string) bool {
	h.removed = append(h.removed, point+"/"+name)
	return true
}

func (h *fakeHost) ApplyFilters(_ context.Context, point string, value any, _ ...any) any {
	if fn, ok := h.filters[point]; ok {
		return fn(value)
	}
	return value
}

func (h *fakeHost) Scripts() AssetRegistry    { return h.scripts }
func (h *fakeHost) Styles() AssetRegistry     { return h.styles }
func (h *fakeHost) Features() FeatureRegistry { return h.features }
func (h *fakeHost) Query() Query              { return h.query }
func (h *fakeHost) Media() MediaLibrary       { return h.media }
func (h *fakeHost) IsAdmin() bool             { return h.admin }

// fakeInfoLoader serves AssetInfo from a map.
type fakeInfoLoader map[string]AssetInfo

func (l fakeInfoLoader) LoadAssetInfo(slug string) (AssetInfo, error) {
	info, ok := l[slug]
	if !ok {
		return AssetInfo{}, ErrAssetInfoNotFound
	}
	return info, nil
}

// newTestTheme builds a Theme over a fake host with no theme directory.
func newTestTheme(t *testing.T, cfg Config, h *fakeHost, opts ...Option) *Theme {
	t.Helper()
	theme, err := New(cfg, h, opts...)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return theme
}
