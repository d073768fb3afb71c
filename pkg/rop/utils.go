package rop

import "reflect"

// IsAbsent reports whether v is Go's representation of "no value": a nil
// interface, pointer, map, chan, func or unsafe pointer. Nil slices are
// empty sequences and are not absent.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
