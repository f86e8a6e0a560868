package rafters

import (
	"reflect"
	"testing"
)

func TestAttributes_JSONKeepsOrder(t *testing.T) {
	a := newAttributes(3)
	a.set("zeta", 1)
	a.set("alpha", "two")
	a.set("mid", []string{"x"})

	got, err := a.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if want := `{"zeta":1,"alpha":"two","mid":["x"]}`; string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestAttributes_AllStopsEarly(t *testing.T) {
	a := newAttributes(3)
	a.set("a", 1)
	a.set("b", 2)
	a.set("c", 3)

	var seen []string
	for k := range a.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Errorf("seen = %v", seen)
	}
}

func TestAttributes_MapAndKeysAreCopies(t *testing.T) {
	a := newAttributes(1)
	a.set("a", 1)

	a.Keys()[0] = "changed"
	a.Map()["a"] = 2

	if a.Keys()[0] != "a" || a.Value("a") != 1 {
		t.Error("Keys() or Map() exposed internal state")
	}
}

func TestAttributes_Nil(t *testing.T) {
	var a *Attributes
	if a.Len() != 0 || a.Keys() != nil || a.Value("x") != nil {
		t.Error("nil Attributes should behave as empty")
	}
	if len(a.Map()) != 0 {
		t.Error("nil Attributes Map() should be empty")
	}
}
