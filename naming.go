package rafters

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// typeIdentifier returns the bare name of t, unwrapping pointers and
// stripping generic instantiation parameters: "*Card[int]" -> "Card".
func typeIdentifier(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

// DeriveTemplateName converts a component identifier into its conventional
// template name. Namespace segments separated by "." become path segments
// and each segment is snake cased:
//
//	DeriveTemplateName("WidgetCard")       // "widget_card"
//	DeriveTemplateName("admin.WidgetCard") // "admin/widget_card"
func DeriveTemplateName(id string) string {
	parts := strings.Split(id, ".")
	for i, p := range parts {
		parts[i] = strcase.ToSnake(p)
	}
	return strings.Join(parts, "/")
}
