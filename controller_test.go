package rafters

import "testing"

func TestScope_Lookup(t *testing.T) {
	scope := NewScope().
		Set("user", "ann").
		Set("empty", nil).
		Accessor("request_id", func() any { return "r-1" })

	tests := []struct {
		name   string
		key    string
		want   any
		wantOK bool
	}{
		{"value", "user", "ann", true},
		{"nil value is defined", "empty", nil, true},
		{"accessor", "request_id", "r-1", true},
		{"missing", "nope", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scope.Lookup(tt.key)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q) = %v, %v, want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScope_UnsetExposesAccessor(t *testing.T) {
	scope := NewScope().
		Accessor("user", func() any { return "accessor" }).
		Set("user", "value")

	if v, _ := scope.Lookup("user"); v != "value" {
		t.Fatalf("Lookup(user) = %v, want value", v)
	}
	scope.Unset("user")
	if v, _ := scope.Lookup("user"); v != "accessor" {
		t.Errorf("Lookup(user) after Unset = %v, want accessor", v)
	}
}

func TestScope_String(t *testing.T) {
	if got := NewScope().String(); got != "rafters.Scope" {
		t.Errorf("String() = %q", got)
	}
	if got := NewScope().Named("PagesController").String(); got != "PagesController" {
		t.Errorf("String() = %q", got)
	}
}

func TestControllerFunc(t *testing.T) {
	ctrl := ControllerFunc(func(name string) (any, bool) {
		return "v:" + name, name != ""
	})
	if v, ok := ctrl.Lookup("x"); !ok || v != "v:x" {
		t.Errorf("Lookup(x) = %v, %v", v, ok)
	}
}
