package code

import "reflect"

// Clone returns a deep copy of node, the copy can be attached to a new parent
func Clone[T any](node *T) *T {
	if node == nil {
		return nil
	}
	return deepCopy(reflect.ValueOf(node)).Interface().(*T)
}

func deepCopy(value reflect.Value) reflect.Value {
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return reflect.Zero(value.Type())
		}
		ret := reflect.New(value.Type().Elem())
		ret.Elem().Set(deepCopy(value.Elem()))
		return ret
	case reflect.Slice:
		if value.IsNil() {
			return reflect.Zero(value.Type())
		}
		ret := reflect.MakeSlice(value.Type(), value.Len(), value.Len())
		for i := 0; i < value.Len(); i++ {
			ret.Index(i).Set(deepCopy(value.Index(i)))
		}
		return ret
	case reflect.Struct:
		ret := reflect.New(value.Type()).Elem()
		for i := 0; i < value.NumField(); i++ {
			if !ret.Field(i).CanSet() {
				continue
			}
			ret.Field(i).Set(deepCopy(value.Field(i)))
		}
		return ret
	}
	return value
}
