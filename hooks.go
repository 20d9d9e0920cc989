package themekit

// Host extension points used by the theme.
const (
	PointAfterSetupTheme     = "after_setup_theme"
	PointEnqueueScripts      = "wp_enqueue_scripts"
	PointAdminEnqueueScripts = "admin_enqueue_scripts"
	PointHead                = "wp_head"
	PointFooter              = "wp_footer"
	PointGetHeader           = "get_header"

	FilterScriptLoaderTag    = "script_loader_tag"
	FilterStyleLoaderTag     = "style_loader_tag"
	FilterThumbnailImageSize = "preload_post_thumbnail_image_size"
	FilterThumbnailID        = "preload_post_thumbnail_id"
)

// DefaultPriority is the host's priority when none is given.
const DefaultPriority = 10

// AdminBarBumpAction is the host action that adds the admin bar's top margin.
const AdminBarBumpAction = "_admin_bar_bump_cb"

// AttributesKey is the script data key holding a handle's Attributes.
const AttributesKey = "attributes"

// HookKind distinguishes actions from filters.
type HookKind int

const (
	KindAction HookKind = iota
	KindFilter
)

func (k HookKind) String() string {
	if k == KindFilter {
		return "filter"
	}
	return "action"
}

// Hook is one registration record. Exactly one of Action or Filter is set,
// matching Kind.
type Hook struct {
	Kind         HookKind
	Point        string
	Name         string
	Priority     int
	AcceptedArgs int // Filters only
	Action       ActionFunc
	Filter       FilterFunc
}

// Hooks returns the theme's registrations in order. The style filter is
// left out in the admin, where print-swapping would delay admin styles.
func (t *Theme) Hooks(admin bool) []Hook {
	hooks := []Hook{
		action(PointAfterSetupTheme, "i18n", t.I18n, DefaultPriority),
		action(PointAfterSetupTheme, "theme_setup", t.ThemeSetup, DefaultPriority),
		action(PointEnqueueScripts, "scripts", t.Scripts, DefaultPriority),
		action(PointEnqueueScripts, "styles", t.Styles, DefaultPriority),
		action(PointAdminEnqueueScripts, "admin_styles", t.AdminStyles, DefaultPriority),
		action(PointAdminEnqueueScripts, "admin_scripts", t.AdminScripts, DefaultPriority),
		action(PointHead, "js_detection", t.JSDetection, 0),
		action(PointHead, "module_detection", t.ModuleDetection, 0),
		action(PointHead, "preload_post_thumbnail", t.PreloadPostThumbnail, 2),
		action(PointHead, "link_preload_preconnect", t.LinkPreloadPreconnect, 3),
		action(PointHead, "add_manifest", t.Manifest, DefaultPriority),
		action(PointGetHeader, "remove_admin_bar_layout_styles", t.RemoveAdminBarLayoutStyles, DefaultPriority),
		filter(FilterScriptLoaderTag, "script_loader_tag", t.scriptLoaderTagFilter, DefaultPriority, 2),
	}
	if !admin {
		hooks = append(hooks, filter(FilterStyleLoaderTag, "style_loader_tag", t.styleLoaderTagFilter, 99, 2))
	}
	return hooks
}

// Setup registers the theme's hooks for the host's current context.
func (t *Theme) Setup(reg Registrar) {
	Register(reg, t.Hooks(t.host.IsAdmin()))
}

// Register hands each hook to reg in order.
func Register(reg Registrar, hooks []Hook) {
	for _, h := range hooks {
		switch h.Kind {
		case KindAction:
			reg.AddAction(h.Point, h.Name, h.Action, h.Priority)
		case KindFilter:
			reg.AddFilter(h.Point, h.Name, h.Filter, h.Priority, h.AcceptedArgs)
		}
	}
}

func action(point, name string, fn ActionFunc, priority int) Hook {
	return Hook{Kind: KindAction, Point: point, Name: name, Priority: priority, Action: fn}
}

func filter(point, name string, fn FilterFunc, priority, acceptedArgs int) Hook {
	return Hook{Kind: KindFilter, Point: point, Name: name, Priority: priority, AcceptedArgs: acceptedArgs, Filter: fn}
}
