// Package rafters provides declarative, settings-driven components for
// server-rendered Go applications.
//
// A component type declares the attributes it exposes to its template and
// the settings it accepts. Each instance is built from a raw settings map
// and resolves, once, the validated settings and the attribute values a
// renderer needs.
//
// # Core Concepts
//
// Components embed *Component[C] where C is the component type itself:
//
//	type WidgetCard struct {
//	    *rafters.Component[*WidgetCard]
//	}
//
// The static side of a component is a Definition, built once at package
// level:
//
//	var widgetCardDef = rafters.Define[*WidgetCard]().
//	    Setting("color", rafters.SettingOptions{Default: "red", Accepts: []any{"red", "blue"}}).
//	    Setting("title", rafters.SettingOptions{Required: true}).
//	    Attribute("title", (*WidgetCard).title).
//	    Attribute("user", (*WidgetCard).user)
//
//	func NewWidgetCard(s rafters.Settings) *WidgetCard {
//	    c := &WidgetCard{}
//	    c.Component = widgetCardDef.New(c, s)
//	    return c
//	}
//
// # Settings
//
// Settings returns every declared setting: the raw value when the key was
// supplied, the default otherwise. Required settings that end up nil fail
// with *SettingRequiredError; values outside a non-empty Accepts list fail
// with *InvalidSettingError, defaults included. The first failure in
// declaration order is returned and nothing is cached, so a later call
// runs the resolution again.
//
// # Attributes
//
// Attributes calls every declared getter with the instance and returns the
// results in declaration order. Getters are plain functions or method
// expressions, so no reflection happens at render time:
//
//	func (c *WidgetCard) title() (any, error) {
//	    return c.Setting("title")
//	}
//
// # Current
//
// A host attaches a Controller after construction. Current reads ambient
// values (the signed-in user, the request) from it on every call:
//
//	card.SetController(rafters.NewScope().Set("current_user", user))
//
//	func (c *WidgetCard) user() (any, error) {
//	    return c.Current("current_user")
//	}
//
// Scope resolves plain values before accessor functions. Lookups that
// fail return *CurrentMissingError naming the key and the controller.
//
// # Rendering
//
// Rendering belongs to templ. TemplateName names the template, derived
// from the component identifier unless overridden (WidgetCard renders
// "widget_card"), and Views maps those names to templ views:
//
//	views := rafters.NewViews().Register("widget_card", widgetCardView)
//	err := views.Write(w, r, card)
//
// # Memoization
//
// TemplateName, Settings and Attributes are computed at most once per
// instance and are safe for concurrent first access. Current is never
// cached.
package rafters
