// Package router maps a logical page name to the visible view and tells
// listeners when the page changes.
package router

import (
	"github.com/campusmind/client/internal/models"
)

// Router tracks the current page. Exactly one page is current at any time;
// navigation to a page outside the known set is a deliberate no-op.
type Router struct {
	current  models.Page
	known    map[models.Page]struct{}
	onChange []func(models.Page)
}

// New builds a Router knowing the given pages, starting on the dashboard.
func New(pages ...models.Page) *Router {
	known := make(map[models.Page]struct{}, len(pages))
	for _, p := range pages {
		known[p] = struct{}{}
	}
	return &Router{current: models.PageDashboard, known: known}
}

// OnChange registers a listener invoked with the new page after every
// successful navigation.
func (r *Router) OnChange(fn func(models.Page)) {
	r.onChange = append(r.onChange, fn)
}

// Navigate switches to page and fires the page-change listeners. Unknown
// pages leave all state untouched and report false.
func (r *Router) Navigate(page models.Page) bool {
	if _, ok := r.known[page]; !ok {
		return false
	}
	r.current = page
	for _, fn := range r.onChange {
		fn(page)
	}
	return true
}

// Current returns the page currently shown.
func (r *Router) Current() models.Page {
	return r.current
}
