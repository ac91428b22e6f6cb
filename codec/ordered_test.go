package codec

import (
	"reflect"
	"testing"

	"github.com/meadmaker/jsonfield/ordered"
)

func TestOrderedObjects(t *testing.T) {
	o := &Options{OrderedObjects: true}
	text := `{"number": [1, 2, 3, 4], "notes": true, "alpha": true, "romeo": true, "juliet": true, "bravo": true}`
	v, err := Decode(text, o)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(*ordered.Map)
	if !ok {
		t.Fatalf("want *ordered.Map, got %T", v)
	}
	expect := []string{"number", "notes", "alpha", "romeo", "juliet", "bravo"}
	if !reflect.DeepEqual(m.Keys(), expect) {
		t.Errorf("want key order %v, got %v", expect, m.Keys())
	}
	// Insertion order survives re-encoding, so the document
	// round-trips to the byte
	encoded, err := Encode(m, &Options{OrderedObjects: true})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"number":[1,2,3,4],"notes":true,"alpha":true,"romeo":true,"juliet":true,"bravo":true}`
	if encoded != want {
		t.Errorf("want %q, got %q", want, encoded)
	}
}

func TestOrderedObjectsNested(t *testing.T) {
	o := &Options{OrderedObjects: true}
	v, err := Decode(`{"outer": {"b": 1, "a": 2}}`, o)
	if err != nil {
		t.Fatal(err)
	}
	outer := v.(*ordered.Map)
	inner, _ := outer.Get("outer")
	im, ok := inner.(*ordered.Map)
	if !ok {
		t.Fatalf("nested object not ordered: %T", inner)
	}
	if !reflect.DeepEqual(im.Keys(), []string{"b", "a"}) {
		t.Errorf("nested key order lost: %v", im.Keys())
	}
}

func TestOrderedEncodeIndent(t *testing.T) {
	m := ordered.NewMap()
	m.Set("b", int64(1))
	m.Set("a", int64(2))
	text, err := Encode(m, &Options{Indent: 4})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"b\": 1,\n    \"a\": 2\n}"
	if text != want {
		t.Errorf("want %q, got %q", want, text)
	}
}
