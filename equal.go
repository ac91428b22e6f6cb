package jsonfield

import (
	"reflect"

	"github.com/meadmaker/jsonfield/ordered"
)

// Equal reports whether two JSON values are structurally equal.
// Objects compare by content regardless of representation, so an
// *ordered.Map equals a plain map with the same pairs, and key
// order is ignored. Numbers compare by numeric value across int,
// int64 and float64. Values outside the JSON domain compare with
// ==, which means hook-reconstructed comparable types (e.g.
// complex128) work too; non-comparable hook types fall back to
// reflect.DeepEqual.
func Equal(a, b interface{}) bool {
	switch x := a.(type) {
	case *ordered.Map:
		return equalObject(x.Plain(), b)
	case map[string]interface{}:
		return equalObject(x, b)
	case []interface{}:
		y, ok := b.([]interface{})
		if !ok || len(x) != len(y) {
			return false
		}
		for ii := range x {
			if !Equal(x[ii], y[ii]) {
				return false
			}
		}
		return true
	case int, int64, float64:
		bf, ok := asFloat(b)
		if !ok {
			return false
		}
		af, _ := asFloat(a)
		return af == bf
	default:
		// string, bool, nil, NoValue and hook-reconstructed
		// extended types. Comparing two values of the same
		// non-comparable type with == would panic, so those go
		// through reflect.
		if ta := reflect.TypeOf(a); ta != nil && ta == reflect.TypeOf(b) && !ta.Comparable() {
			return reflect.DeepEqual(a, b)
		}
		return a == b
	}
}

func equalObject(a map[string]interface{}, b interface{}) bool {
	var bm map[string]interface{}
	switch y := b.(type) {
	case *ordered.Map:
		bm = y.Plain()
	case map[string]interface{}:
		bm = y
	default:
		return false
	}
	if len(a) != len(bm) {
		return false
	}
	for k, av := range a {
		bv, ok := bm[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

// deepCopy returns an independent copy of a JSON value. Containers
// are cloned recursively, scalars are returned as is. Used when
// materializing literal defaults, so mutating one record's value
// never leaks into another record.
func deepCopy(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, mv := range x {
			m[k] = deepCopy(mv)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(x))
		for ii, av := range x {
			a[ii] = deepCopy(av)
		}
		return a
	case *ordered.Map:
		m := ordered.NewMap()
		for _, k := range x.Keys() {
			mv, _ := x.Get(k)
			m.Set(k, deepCopy(mv))
		}
		return m
	}
	return v
}
