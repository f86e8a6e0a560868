package rafters

import (
	"reflect"
	"slices"
)

// AttributeFunc reads one attribute from a component instance.
type AttributeFunc[C any] func(c C) (any, error)

// AttributeDef pairs an attribute name with its getter.
type AttributeDef[C any] struct {
	Name string
	Get  AttributeFunc[C]

	// resolvedSettings marks the attribute added by ExposeSettings.
	resolvedSettings bool
}

// Attr builds an AttributeDef for use with Definition.Attributes.
func Attr[C any](name string, get func(C) (any, error)) AttributeDef[C] {
	return AttributeDef[C]{Name: name, Get: get}
}

// Definition is the static metadata of a component type: its attributes,
// its settings and an optional template name override. It is built once,
// usually in a package-level var, and shared by every instance.
//
//	var cardDef = rafters.Define[*Card]().
//	    Setting("color", rafters.SettingOptions{Default: "red", Accepts: []any{"red", "blue"}}).
//	    Attribute("title", (*Card).title)
//
// Declarations must be complete before the first instance resolves its
// settings or attributes; a Definition is not safe to modify concurrently
// with use.
type Definition[C any] struct {
	id             string
	attributes     []AttributeDef[C]
	settingOrder   []string
	settings       map[string]SettingOptions
	templateName   string
	templateNameFn func(C) string
}

// Define creates a definition for component type C. Its identifier is the
// name of C with pointers unwrapped and type parameters stripped, so
// Define[*WidgetCard]() is identified as "WidgetCard".
func Define[C any]() *Definition[C] {
	return &Definition[C]{
		id:       typeIdentifier(reflect.TypeOf((*C)(nil)).Elem()),
		settings: make(map[string]SettingOptions),
	}
}

// Named overrides the identifier. Dots separate namespaces:
// "admin.WidgetCard" derives the template name "admin/widget_card".
func (d *Definition[C]) Named(id string) *Definition[C] {
	d.id = id
	return d
}

// Attribute declares an attribute. Declaring the same name twice appends a
// second entry; the resolved view keeps the first position and the value
// of the last getter.
func (d *Definition[C]) Attribute(name string, get AttributeFunc[C]) *Definition[C] {
	d.attributes = append(d.attributes, AttributeDef[C]{Name: name, Get: get})
	return d
}

// Attributes declares each attribute in argument order.
//
//	def.Attributes(
//	    rafters.Attr("title", (*Card).title),
//	    rafters.Attr("subtitle", (*Card).subtitle),
//	)
func (d *Definition[C]) Attributes(attrs ...AttributeDef[C]) *Definition[C] {
	for _, a := range attrs {
		d.Attribute(a.Name, a.Get)
	}
	return d
}

// ExposeSettings declares a "settings" attribute holding the resolved
// settings, so renderers see them alongside the other attributes. The
// value comes from the instance's own Component, so C needs no Settings
// method of its own.
func (d *Definition[C]) ExposeSettings() *Definition[C] {
	d.attributes = append(d.attributes, AttributeDef[C]{Name: "settings", resolvedSettings: true})
	return d
}

// Setting declares a setting. Redeclaring a name replaces its options but
// keeps its original position in resolution order.
func (d *Definition[C]) Setting(name string, opts SettingOptions) *Definition[C] {
	if _, exists := d.settings[name]; !exists {
		d.settingOrder = append(d.settingOrder, name)
	}
	d.settings[name] = opts
	return d
}

// TemplateName overrides the derived template name with a literal.
func (d *Definition[C]) TemplateName(name string) *Definition[C] {
	d.templateName = name
	d.templateNameFn = nil
	return d
}

// TemplateNameFunc overrides the derived template name with a function of
// the instance. It must not call TemplateName on the same instance.
func (d *Definition[C]) TemplateNameFunc(fn func(C) string) *Definition[C] {
	d.templateNameFn = fn
	d.templateName = ""
	return d
}

// ID returns the component identifier.
func (d *Definition[C]) ID() string {
	return d.id
}

// AttributeNames returns the declared attribute names, duplicates included.
func (d *Definition[C]) AttributeNames() []string {
	names := make([]string, len(d.attributes))
	for i, a := range d.attributes {
		names[i] = a.Name
	}
	return names
}

// SettingNames returns the declared setting names in resolution order.
func (d *Definition[C]) SettingNames() []string {
	return slices.Clone(d.settingOrder)
}

// SettingOptions returns the options declared for name.
func (d *Definition[C]) SettingOptions(name string) (SettingOptions, bool) {
	opts, ok := d.settings[name]
	return opts, ok
}

// New creates an instance bound to self. raw may be nil.
//
//	func NewCard(s rafters.Settings) *Card {
//	    c := &Card{}
//	    c.Component = cardDef.New(c, s)
//	    return c
//	}
func (d *Definition[C]) New(self C, raw Settings) *Component[C] {
	return &Component[C]{
		def:  d,
		self: self,
		raw:  cloneSettings(raw),
	}
}

func (d *Definition[C]) resolveTemplateName(self C) string {
	if d.templateNameFn != nil {
		return d.templateNameFn(self)
	}
	if d.templateName != "" {
		return d.templateName
	}
	return DeriveTemplateName(d.id)
}
