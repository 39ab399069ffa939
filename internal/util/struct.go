package util

import (
	"fmt"
	"reflect"
)

// IsStructInitialized returns an error naming the first nil-able field of s
// that is still nil. Fields tagged `wire:"-"` are skipped.
func IsStructInitialized(s interface{}) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return fmt.Errorf("struct %T is nil", s)
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return fmt.Errorf("%T is not a struct", s)
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if field.Tag.Get("wire") == "-" || !field.IsExported() {
			continue
		}

		//nolint:exhaustive // only nil-able kinds are checked
		switch val.Field(i).Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if val.Field(i).IsNil() {
				return fmt.Errorf("struct field %s.%s is not initialized", typ.Name(), field.Name)
			}
		}
	}

	return nil
}
