package host

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"

	"github.com/alnah/go-themekit"
)

// Core action names registered by New.
const (
	ActionEnqueueScripts     = "wp_enqueue_scripts"
	ActionPrintStyles        = "wp_print_styles"
	ActionPrintHeadScripts   = "wp_print_head_scripts"
	ActionPrintFooterScripts = "wp_print_footer_scripts"
)

// Core action priorities.
const (
	enqueuePriority            = 1
	printStylesPriority        = 8
	printHeadScriptsPriority   = 9
	printFooterScriptsPriority = 20
)

const (
	adminBarBumpStyle = "<style media=\"screen\">html { margin-top: 32px !important; }</style>\n"
	defaultLocale     = "en_US"
)

// Options configures a Host.
type Options struct {
	Admin    bool // Admin screen: admin_enqueue_scripts replaces wp_enqueue_scripts
	AdminBar bool // Logged-in toolbar: registers the admin bar bump
	Locale   string

	Query  Query
	Media  *Media
	Logger *slog.Logger
}

// Registration describes one attached callback.
type Registration struct {
	Kind         themekit.HookKind
	Point        string
	Name         string
	Priority     int
	AcceptedArgs int
}

type callback struct {
	Registration
	seq    int
	action themekit.ActionFunc
	filter themekit.FilterFunc
}

// Host implements themekit.Host in memory.
type Host struct {
	admin    bool
	booted   bool
	seq      int
	points   []string
	hooks    map[string][]*callback
	scripts  *Registry
	styles   *Registry
	features *Features
	query    Query
	media    *Media
	logger   *slog.Logger
}

// New creates a Host with the core printing actions attached.
func New(opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	locale := opts.Locale
	if locale == "" {
		locale = defaultLocale
	}
	media := opts.Media
	if media == nil {
		media = NewMedia()
	}

	h := &Host{
		admin:    opts.Admin,
		hooks:    make(map[string][]*callback),
		scripts:  NewRegistry(),
		styles:   NewRegistry(),
		features: NewFeatures(locale),
		query:    opts.Query,
		media:    media,
		logger:   logger,
	}

	h.AddAction(themekit.PointHead, ActionEnqueueScripts, h.enqueueScripts, enqueuePriority)
	h.AddAction(themekit.PointHead, ActionPrintStyles, h.PrintStyles, printStylesPriority)
	h.AddAction(themekit.PointHead, ActionPrintHeadScripts, h.printHeadScripts, printHeadScriptsPriority)
	h.AddAction(themekit.PointFooter, ActionPrintFooterScripts, h.printFooterScripts, printFooterScriptsPriority)
	if opts.AdminBar {
		h.AddAction(themekit.PointHead, themekit.AdminBarBumpAction, adminBarBump, themekit.DefaultPriority)
	}
	return h
}

// AddAction attaches fn to point.
func (h *Host) AddAction(point, name string, fn themekit.ActionFunc, priority int) {
	if fn == nil {
		return
	}
	h.add(&callback{
		Registration: Registration{Kind: themekit.KindAction, Point: point, Name: name, Priority: priority},
		action:       fn,
	})
}

// AddFilter attaches fn to point. acceptedArgs counts the filtered value.
func (h *Host) AddFilter(point, name string, fn themekit.FilterFunc, priority, acceptedArgs int) {
	if fn == nil {
		return
	}
	h.add(&callback{
		Registration: Registration{
			Kind:         themekit.KindFilter,
			Point:        point,
			Name:         name,
			Priority:     priority,
			AcceptedArgs: max(acceptedArgs, 1),
		},
		filter: fn,
	})
}

func (h *Host) add(cb *callback) {
	h.seq++
	cb.seq = h.seq
	if _, ok := h.hooks[cb.Point]; !ok {
		h.points = append(h.points, cb.Point)
	}
	h.hooks[cb.Point] = append(h.hooks[cb.Point], cb)
}

// RemoveAction detaches every action registered under name at point.
func (h *Host) RemoveAction(point, name string) bool {
	return h.remove(point, name, themekit.KindAction)
}

func (h *Host) remove(point, name string, kind themekit.HookKind) bool {
	before := len(h.hooks[point])
	h.hooks[point] = slices.DeleteFunc(h.hooks[point], func(cb *callback) bool {
		return cb.Name == name && cb.Kind == kind
	})
	removed := len(h.hooks[point]) < before
	if removed {
		h.logger.Debug("hook removed", "point", point, "name", name)
	}
	return removed
}

// HasAction reports whether an action named name is attached to point.
func (h *Host) HasAction(point, name string) bool {
	return slices.ContainsFunc(h.hooks[point], func(cb *callback) bool {
		return cb.Name == name && cb.Kind == themekit.KindAction
	})
}

// Registrations lists the callbacks attached to point in dispatch order.
// An empty point lists every point in first-use order.
func (h *Host) Registrations(point string) []Registration {
	points := h.points
	if point != "" {
		points = []string{point}
	}
	var out []Registration
	for _, p := range points {
		for _, cb := range h.ordered(p, themekit.KindAction, themekit.KindFilter) {
			out = append(out, cb.Registration)
		}
	}
	return out
}

// ordered snapshots the callbacks of the given kinds at point, sorted by
// priority then registration order.
func (h *Host) ordered(point string, kinds ...themekit.HookKind) []*callback {
	cbs := slices.DeleteFunc(slices.Clone(h.hooks[point]), func(cb *callback) bool {
		return !slices.Contains(kinds, cb.Kind)
	})
	slices.SortStableFunc(cbs, func(a, b *callback) int {
		return cmp.Or(cmp.Compare(a.Priority, b.Priority), cmp.Compare(a.seq, b.seq))
	})
	return cbs
}

// DoAction runs the actions attached to point. Output goes to w.
func (h *Host) DoAction(ctx context.Context, point string, w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	for _, cb := range h.ordered(point, themekit.KindAction) {
		if ctx.Err() != nil {
			return
		}
		cb.action(ctx, w)
	}
}

// ApplyFilters runs the filters attached to point over value. Each filter
// receives at most AcceptedArgs-1 of args.
func (h *Host) ApplyFilters(ctx context.Context, point string, value any, args ...any) any {
	for _, cb := range h.ordered(point, themekit.KindFilter) {
		if ctx.Err() != nil {
			break
		}
		n := min(len(args), cb.AcceptedArgs-1)
		value = cb.filter(ctx, value, args[:n]...)
	}
	return value
}

func (h *Host) Scripts() themekit.AssetRegistry    { return h.scripts }
func (h *Host) Styles() themekit.AssetRegistry     { return h.styles }
func (h *Host) Features() themekit.FeatureRegistry { return h.features }
func (h *Host) Media() themekit.MediaLibrary       { return h.media }
func (h *Host) IsAdmin() bool                      { return h.admin }

func (h *Host) Query() themekit.Query { return h.query }

// ScriptRegistry returns the concrete script registry.
func (h *Host) ScriptRegistry() *Registry { return h.scripts }

// StyleRegistry returns the concrete style registry.
func (h *Host) StyleRegistry() *Registry { return h.styles }

// FeatureSet returns the concrete feature registry.
func (h *Host) FeatureSet() *Features { return h.features }

func (h *Host) enqueueScripts(ctx context.Context, w io.Writer) {
	if h.admin {
		h.DoAction(ctx, themekit.PointAdminEnqueueScripts, w)
		return
	}
	h.DoAction(ctx, themekit.PointEnqueueScripts, w)
}

func adminBarBump(_ context.Context, w io.Writer) {
	_, _ = io.WriteString(w, adminBarBumpStyle)
}

// Compile-time interface check.
var _ themekit.Host = (*Host)(nil)
