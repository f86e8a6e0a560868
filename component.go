package rafters

import (
	"fmt"
	"sync"
)

// Component[C] is the per-instance state embedded by user components.
// C is the concrete component type, normally a pointer to the embedding
// struct.
//
// Components embed *Component[C] to gain settings resolution, the
// attributes view, template name resolution and Current lookups. The
// embedding pattern promotes these methods onto the user's type.
//
// Example:
//
//	type Card struct {
//	    *rafters.Component[*Card]
//	}
//
//	var cardDef = rafters.Define[*Card]().
//	    Setting("color", rafters.SettingOptions{Default: "red"}).
//	    Attribute("color", func(c *Card) (any, error) { return c.Setting("color") })
//
//	func NewCard(s rafters.Settings) *Card {
//	    c := &Card{}
//	    c.Component = cardDef.New(c, s)
//	    return c
//	}
//
// Settings, Attributes and TemplateName are computed once per instance and
// then never change, even if the controller would now yield different
// values. Current is evaluated on every call.
type Component[C any] struct {
	def  *Definition[C]
	self C
	raw  Settings

	mu         sync.RWMutex
	controller Controller

	templateName memo[string]
	settings     memo[Settings]
	attributes   memo[*Attributes]
}

// Definition returns the definition the component was created from.
func (c *Component[C]) Definition() *Definition[C] {
	return c.def
}

// RawSettings returns a copy of the settings the component was created
// with.
func (c *Component[C]) RawSettings() Settings {
	return cloneSettings(c.raw)
}

// SetController attaches the controller Current reads from. It is expected
// to be called once, right after construction.
func (c *Component[C]) SetController(ctrl Controller) {
	c.mu.Lock()
	c.controller = ctrl
	c.mu.Unlock()
}

// Controller returns the attached controller, or nil.
func (c *Component[C]) Controller() Controller {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.controller
}

// TemplateName returns the name of the template that renders this
// component: the definition's function override, its literal override, or
// the name derived from the component identifier.
func (c *Component[C]) TemplateName() string {
	name, _ := c.templateName.get(func() (string, error) {
		return c.def.resolveTemplateName(c.self), nil
	})
	return name
}

// Settings returns the effective settings: every declared setting, taken
// from the raw settings when present and from its default otherwise, and
// validated against Required and Accepts.
//
// Settings are resolved in declaration order and the first invalid setting
// is returned as a *SettingRequiredError or *InvalidSettingError. A
// successful result is cached; the returned map is a copy.
func (c *Component[C]) Settings() (Settings, error) {
	if len(c.def.settingOrder) == 0 {
		return Settings{}, nil
	}

	s, err := c.settings.get(func() (Settings, error) {
		s, err := resolveSettings(c.def.id, c.def.settingOrder, c.def.settings, c.raw)
		if err != nil {
			logger().Debug("rafters: settings resolution failed",
				"component", c.def.id,
				"error", err)
			return nil, err
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneSettings(s), nil
}

// Setting returns a single resolved setting. Names that were never declared
// return an *UnknownSettingError, so they cannot be mistaken for a setting
// without a default.
func (c *Component[C]) Setting(name string) (any, error) {
	if _, ok := c.def.settings[name]; !ok {
		return nil, &UnknownSettingError{Component: c.def.id, Setting: name}
	}
	s, err := c.Settings()
	if err != nil {
		return nil, err
	}
	return s[name], nil
}

// Attributes returns the values of the declared attributes, in declaration
// order. Each getter is called with the component instance; the first
// getter error is returned unchanged. A successful result is cached.
//
// Getters may call Settings, Setting and Current, but not Attributes.
func (c *Component[C]) Attributes() (*Attributes, error) {
	if len(c.def.attributes) == 0 {
		return newAttributes(0), nil
	}

	return c.attributes.get(func() (*Attributes, error) {
		attrs := newAttributes(len(c.def.attributes))
		for _, a := range c.def.attributes {
			v, err := c.attribute(a)
			if err != nil {
				logger().Debug("rafters: attribute resolution failed",
					"component", c.def.id,
					"attribute", a.Name,
					"error", err)
				return nil, err
			}
			attrs.set(a.Name, v)
		}
		return attrs, nil
	})
}

func (c *Component[C]) attribute(a AttributeDef[C]) (any, error) {
	if a.resolvedSettings {
		return c.Settings()
	}
	return a.Get(c.self)
}

// Current looks name up on the attached controller. The result is not
// cached. A missing controller or an unknown name returns a
// *CurrentMissingError.
func (c *Component[C]) Current(name string) (any, error) {
	ctrl := c.Controller()
	if ctrl != nil {
		if v, ok := ctrl.Lookup(name); ok {
			return v, nil
		}
	}
	err := &CurrentMissingError{Name: name, Controller: controllerName(ctrl)}
	logger().Debug("rafters: current lookup failed",
		"component", c.def.id,
		"name", name,
		"error", err)
	return nil, err
}

// CurrentAs looks name up with Current and asserts the result to T.
//
//	user, err := rafters.CurrentAs[*User](c, "current_user")
func CurrentAs[T any](c interface{ Current(string) (any, error) }, name string) (T, error) {
	var zero T
	v, err := c.Current(name)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("rafters: current %s is %T, not %T", name, v, zero)
	}
	return t, nil
}
