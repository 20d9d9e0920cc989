package host

import (
	"slices"

	"github.com/alnah/go-themekit"
)

// Registry holds scripts or styles by handle in registration order.
type Registry struct {
	assets []themekit.Asset
	index  map[string]int
	data   map[string]map[string]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
		data:  make(map[string]map[string]any),
	}
}

// Enqueue registers a. A handle is registered once; later calls with the
// same handle are ignored.
func (r *Registry) Enqueue(a themekit.Asset) {
	if a.Handle == "" {
		return
	}
	if _, ok := r.index[a.Handle]; ok {
		return
	}
	a.Deps = slices.Clone(a.Deps)
	r.index[a.Handle] = len(r.assets)
	r.assets = append(r.assets, a)
}

// AddData attaches value to handle under key.
func (r *Registry) AddData(handle, key string, value any) bool {
	if _, ok := r.index[handle]; !ok {
		return false
	}
	if r.data[handle] == nil {
		r.data[handle] = make(map[string]any)
	}
	r.data[handle][key] = value
	return true
}

// Data returns the value stored on handle under key.
func (r *Registry) Data(handle, key string) (any, bool) {
	v, ok := r.data[handle][key]
	return v, ok
}

// Registered returns every asset in registration order.
func (r *Registry) Registered() []themekit.Asset {
	return slices.Clone(r.assets)
}

// Resolve returns the assets in print order: every asset after its
// dependencies, otherwise in registration order. Unknown dependencies are
// reported in missing and ignored. A dependency cycle is broken at the edge
// that closes it.
func (r *Registry) Resolve() (ordered []themekit.Asset, missing []string) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(r.assets))

	var visit func(handle string)
	visit = func(handle string) {
		i, ok := r.index[handle]
		if !ok {
			if !slices.Contains(missing, handle) {
				missing = append(missing, handle)
			}
			return
		}
		if state[handle] != unvisited {
			return
		}
		state[handle] = visiting
		for _, dep := range r.assets[i].Deps {
			visit(dep)
		}
		state[handle] = done
		ordered = append(ordered, r.assets[i])
	}

	for _, a := range r.assets {
		visit(a.Handle)
	}
	return ordered, missing
}

// Split partitions resolved scripts into head and footer groups. A footer
// script that a head script depends on is moved to the head.
func Split(ordered []themekit.Asset) (head, footer []themekit.Asset) {
	byHandle := make(map[string]themekit.Asset, len(ordered))
	for _, a := range ordered {
		byHandle[a.Handle] = a
	}

	inHead := make(map[string]bool)
	var pull func(handle string)
	pull = func(handle string) {
		if inHead[handle] {
			return
		}
		a, ok := byHandle[handle]
		if !ok {
			return
		}
		inHead[handle] = true
		for _, d := range a.Deps {
			pull(d)
		}
	}
	for _, a := range ordered {
		if !a.InFooter {
			pull(a.Handle)
		}
	}

	for _, a := range ordered {
		if inHead[a.Handle] {
			head = append(head, a)
		} else {
			footer = append(footer, a)
		}
	}
	return head, footer
}

// Compile-time interface check.
var _ themekit.AssetRegistry = (*Registry)(nil)
