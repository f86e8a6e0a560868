package rafters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"

	"github.com/a-h/templ"
)

// Renderable is anything that can name its template and expose its
// attributes. Every type embedding *Component[C] satisfies it.
type Renderable interface {
	TemplateName() string
	Attributes() (*Attributes, error)
}

// ViewFunc builds the templ output for a component from its attributes.
type ViewFunc func(attrs *Attributes) templ.Component

// Views maps template names to the templ views that render them. It is the
// bridge between a component's TemplateName/Attributes and templ.
//
//	views := rafters.NewViews()
//	views.Register("widget_card", func(a *rafters.Attributes) templ.Component {
//	    return widgetCard(a.Value("title").(string))
//	})
//	views.Write(w, r, NewWidgetCard(settings))
type Views struct {
	mu    sync.RWMutex
	views map[string]ViewFunc
}

// NewViews creates an empty view registry.
func NewViews() *Views {
	return &Views{views: make(map[string]ViewFunc)}
}

// Register adds a view under a template name.
// Panics if the name is already registered.
func (v *Views) Register(name string, fn ViewFunc) *Views {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.views[name]; exists {
		panic(fmt.Sprintf("rafters: view collision for %q", name))
	}
	v.views[name] = fn
	return v
}

// Lookup returns the view registered under name.
func (v *Views) Lookup(name string) (ViewFunc, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fn, ok := v.views[name]
	return fn, ok
}

// Names returns the registered template names, sorted.
func (v *Views) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	names := make([]string, 0, len(v.views))
	for name := range v.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component resolves the templ component for r: the view registered under
// r.TemplateName() applied to r.Attributes(). Returns ErrViewNotFound
// (wrapped with the name) when no view matches.
func (v *Views) Component(r Renderable) (templ.Component, error) {
	name := r.TemplateName()
	fn, ok := v.Lookup(name)
	if !ok {
		logger().Warn("rafters: no view for template", "template", name)
		return nil, fmt.Errorf("%w: %q", ErrViewNotFound, name)
	}

	attrs, err := r.Attributes()
	if err != nil {
		return nil, err
	}
	return fn(attrs), nil
}

// Render writes r's view to w.
func (v *Views) Render(ctx context.Context, w io.Writer, r Renderable) error {
	c, err := v.Component(r)
	if err != nil {
		return err
	}
	return c.Render(ctx, w)
}

// Write renders r into an HTTP response using the request's context.
//
// Sets Content-Type to text/html before writing. Resolution errors are
// returned before anything is written, so the caller can still send an
// error response.
func (v *Views) Write(w http.ResponseWriter, req *http.Request, r Renderable) error {
	c, err := v.Component(r)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return c.Render(req.Context(), w)
}
