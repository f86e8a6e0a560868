package rafters

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Attributes is the resolved, ordered view of a component's declared
// attributes. Iteration order is declaration order.
type Attributes struct {
	keys   []string
	values map[string]any
}

func newAttributes(n int) *Attributes {
	return &Attributes{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// set stores value under name. A name seen before keeps its original
// position and takes the new value.
func (a *Attributes) set(name string, value any) {
	if _, exists := a.values[name]; !exists {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Get returns the attribute value stored under name.
func (a *Attributes) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Value returns the attribute value stored under name, or nil.
func (a *Attributes) Value(name string) any {
	v, _ := a.Get(name)
	return v
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the attribute names in declaration order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// All iterates name/value pairs in declaration order.
//
//	for name, value := range attrs.All() {
//	    fmt.Println(name, value)
//	}
func (a *Attributes) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the attributes.
func (a *Attributes) Map() map[string]any {
	m := make(map[string]any, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}

// MarshalJSON encodes the attributes as a JSON object with keys in
// declaration order.
func (a *Attributes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range a.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
