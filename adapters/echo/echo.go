// Package rafterecho provides Echo framework integration for rafters
// components.
//
// Attach the request as the component's controller and render it:
//
//	func show(c echo.Context) error {
//	    card := components.NewCard(settings)
//	    card.SetController(rafterecho.Controller(c))
//	    return rafterecho.Render(c, views, card)
//	}
//
// Values stored on the context with c.Set are visible to Current under
// their key, ahead of the request accessors.
//
// echo.Context.Get returns nil both for unset keys and for keys set to nil,
// so a context value set to nil counts as absent here. This differs from
// rafters.Scope, where Set(name, nil) still defines name. Store a non-nil
// sentinel, or use WithAccessor, when "defined but nil" matters.
package rafterecho

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pthm/rafters"
)

// Option configures Controller.
type Option func(*options)

type options struct {
	accessors map[string]func(echo.Context) any
	params    bool
}

// WithAccessor exposes an extra value computed from the echo context.
// Accessors are consulted after context values.
func WithAccessor(name string, fn func(echo.Context) any) Option {
	return func(o *options) {
		o.accessors[name] = fn
	}
}

// WithParams exposes path parameters under "param:<name>".
func WithParams() Option {
	return func(o *options) {
		o.params = true
	}
}

// Controller adapts an echo.Context into a rafters.Controller.
//
// Lookups resolve, in order: values stored with c.Set, accessors added
// with WithAccessor, the built-in accessors ("request", "response",
// "path", "real_ip", "echo") and, with WithParams, "param:<name>".
func Controller(c echo.Context, opts ...Option) rafters.Controller {
	o := &options{accessors: builtinAccessors()}
	for _, opt := range opts {
		opt(o)
	}
	return &controller{ctx: c, opts: o}
}

func builtinAccessors() map[string]func(echo.Context) any {
	return map[string]func(echo.Context) any{
		"request":  func(c echo.Context) any { return c.Request() },
		"response": func(c echo.Context) any { return c.Response() },
		"path":     func(c echo.Context) any { return c.Path() },
		"real_ip":  func(c echo.Context) any { return c.RealIP() },
		"echo":     func(c echo.Context) any { return c.Echo() },
	}
}

type controller struct {
	ctx  echo.Context
	opts *options
}

// Lookup implements rafters.Controller. Context values set to nil are
// treated as absent.
func (c *controller) Lookup(name string) (any, bool) {
	if v := c.ctx.Get(name); v != nil {
		return v, true
	}
	if fn, ok := c.opts.accessors[name]; ok {
		return fn(c.ctx), true
	}
	if c.opts.params {
		if p, ok := paramName(name); ok {
			for _, n := range c.ctx.ParamNames() {
				if n == p {
					return c.ctx.Param(p), true
				}
			}
		}
	}
	return nil, false
}

// String names the controller in rafters error messages.
func (c *controller) String() string {
	return "echo.Context"
}

func paramName(name string) (string, bool) {
	const prefix = "param:"
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		return name[len(prefix):], true
	}
	return "", false
}

// Render writes the component's view to the Echo response.
//
// A missing view becomes a 500 echo.HTTPError; other resolution errors
// (invalid settings, failed Current lookups) are returned unchanged for
// Echo's error handler.
func Render(c echo.Context, views *rafters.Views, r rafters.Renderable) error {
	err := views.Write(c.Response(), c.Request(), r)
	if err != nil && rafters.IsViewNotFound(err) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
	}
	return err
}
