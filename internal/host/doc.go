// Package host is an in-memory CMS host for driving a theme outside a real
// CMS. It dispatches actions and filters by priority, keeps script and
// style registries, prints them in dependency order through the loader-tag
// filters, and renders a page skeleton around wp_head and wp_footer.
//
// It is a reference for the host contract, not a CMS: there is no database,
// no routing, and a Host is not safe for concurrent use.
package host
