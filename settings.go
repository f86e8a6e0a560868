package rafters

import (
	"fmt"
	"maps"
	"math"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Settings maps setting names to values. It is used both for the raw input
// a component is constructed with and for the resolved result of
// Component.Settings.
type Settings map[string]any

// Get returns the value stored under name.
func (s Settings) Get(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

// String returns the value stored under name if it is a string.
func (s Settings) String(name string) string {
	v, _ := s[name].(string)
	return v
}

// Bool returns the value stored under name if it is a bool.
func (s Settings) Bool(name string) bool {
	v, _ := s[name].(bool)
	return v
}

// SettingOptions configures how a declared setting is resolved.
//
//	rafters.SettingOptions{Default: "red", Accepts: []any{"red", "blue"}}
//
// A nil Default means there is no default. Accepts is only enforced when it
// is non-empty, and it is enforced on defaulted values too.
type SettingOptions struct {
	Default  any   `yaml:"default"`
	Required bool  `yaml:"required"`
	Accepts  []any `yaml:"accepts"`
}

// ParseSettings decodes a YAML mapping into raw settings.
//
//	settings, err := rafters.ParseSettings(data)
//	card := NewCard(settings)
//
// An empty document yields an empty, non-nil map.
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("rafters: parse settings: %w", err)
	}
	if s == nil {
		s = Settings{}
	}
	return s, nil
}

// resolveSettings computes the effective settings for raw against the
// declared specs, in declaration order. The first failing setting aborts.
func resolveSettings(component string, order []string, specs map[string]SettingOptions, raw Settings) (Settings, error) {
	resolved := make(Settings, len(order))
	for _, name := range order {
		opts := specs[name]
		value, err := valueForSetting(component, name, opts, raw)
		if err != nil {
			return nil, err
		}
		resolved[name] = value
	}
	return resolved, nil
}

// valueForSetting picks the raw value when the key is present (even if nil)
// and the default otherwise, then validates it.
func valueForSetting(component, name string, opts SettingOptions, raw Settings) (any, error) {
	value, ok := raw[name]
	if !ok {
		value = opts.Default
	}
	if err := validateSetting(component, name, value, opts); err != nil {
		return nil, err
	}
	return value, nil
}

func validateSetting(component, name string, value any, opts SettingOptions) error {
	if err := validateSettingRequired(component, name, value, opts.Required); err != nil {
		return err
	}
	return validateSettingAccepts(component, name, value, opts.Accepts)
}

func validateSettingRequired(component, name string, value any, required bool) error {
	if !required || !isNil(value) {
		return nil
	}
	return &SettingRequiredError{Component: component, Setting: name}
}

func validateSettingAccepts(component, name string, value any, accepts []any) error {
	if len(accepts) == 0 {
		return nil
	}
	for _, a := range accepts {
		if sameValue(a, value) {
			return nil
		}
	}
	return &InvalidSettingError{
		Component: component,
		Setting:   name,
		Value:     value,
		Accepts:   accepts,
	}
}

// isNil reports whether v is nil or a typed nil pointer, map, slice,
// channel, func or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// sameValue compares setting values. Numbers compare by value across Go
// numeric types, so an int64 decoded from a token matches an int declared
// in Accepts. Integers compare exactly; a float only matches an integer it
// represents exactly. Everything else uses deep equality.
func sameValue(a, b any) bool {
	na, aok := asNumber(a)
	nb, bok := asNumber(b)
	if aok || bok {
		return aok && bok && na.equal(nb)
	}
	return reflect.DeepEqual(a, b)
}

type numberKind uint8

const (
	signedNumber numberKind = iota
	unsignedNumber
	floatNumber
)

// number holds a numeric setting value without losing integer precision.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

func asNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: signedNumber, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: unsignedNumber, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: floatNumber, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) equal(m number) bool {
	if n.kind > m.kind {
		n, m = m, n
	}
	switch {
	case n.kind == signedNumber && m.kind == signedNumber:
		return n.i == m.i
	case n.kind == unsignedNumber && m.kind == unsignedNumber:
		return n.u == m.u
	case n.kind == signedNumber && m.kind == unsignedNumber:
		return n.i >= 0 && uint64(n.i) == m.u
	case n.kind == floatNumber:
		return n.f == m.f
	case n.kind == signedNumber:
		return floatIsInt(m.f, n.i)
	default:
		return floatIsUint(m.f, n.u)
	}
}

// floatIsInt reports whether f is exactly the integer i.
func floatIsInt(f float64, i int64) bool {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= 1<<63 {
		return false
	}
	return int64(f) == i
}

// floatIsUint reports whether f is exactly the unsigned integer u.
func floatIsUint(f float64, u uint64) bool {
	if f != math.Trunc(f) || f < 0 || f >= 1<<64 {
		return false
	}
	return uint64(f) == u
}

// cloneSettings returns a shallow copy that callers may modify freely.
func cloneSettings(s Settings) Settings {
	if s == nil {
		return Settings{}
	}
	return maps.Clone(s)
}
