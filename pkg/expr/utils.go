package expr

import (
	"reflect"
)

// IsNil reports whether i is the absence marker: a nil interface or a nil
// pointer, map, slice, channel, function or interface value.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
