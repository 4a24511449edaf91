package match

import (
	"reflect"
	"strings"
)

// lookupIndex returns actual[i], or nil when actual is not a sequence or is
// too short.
func lookupIndex(actual any, i int) any {
	v, ok := indirect(reflect.ValueOf(actual))
	if !ok {
		return nil
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if i < 0 || i >= v.Len() {
			return nil
		}

		return valueOf(v.Index(i))
	}

	return nil
}

// lookupKey returns the child of actual named by an expected map key. Maps are
// looked up indifferently: a key matches directly or by its string form, so
// `string` keys and keys of named string types are interchangeable. Structs
// are looked up by field name, then by json name, then by normalized name.
func lookupKey(actual any, key reflect.Value, name string) any {
	v, ok := indirect(reflect.ValueOf(actual))
	if !ok {
		return nil
	}

	switch v.Kind() {
	case reflect.Map:
		return lookupMapKey(v, key, name)
	case reflect.Struct:
		return lookupField(v, name)
	}

	return nil
}

func lookupMapKey(v reflect.Value, key reflect.Value, name string) any {
	keyType := v.Type().Key()

	if key.IsValid() && key.Type().AssignableTo(keyType) {
		if child := v.MapIndex(key); child.IsValid() {
			return valueOf(child)
		}
	}

	if keyType.Kind() == reflect.String {
		if child := v.MapIndex(reflect.ValueOf(name).Convert(keyType)); child.IsValid() {
			return valueOf(child)
		}

		return nil
	}

	iter := v.MapRange()
	for iter.Next() {
		if keyString(iter.Key()) == name {
			return valueOf(iter.Value())
		}
	}

	return nil
}

func lookupField(v reflect.Value, name string) any {
	t := v.Type()

	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return fieldValue(v, f.Index)
	}

	normName := Normalize(name)
	var normMatch *reflect.StructField

	for i := 0; i < t.NumField(); i += 1 {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		if n := jsonName(f); n != "" && n == name {
			return valueOf(v.Field(i))
		}

		if normMatch == nil && Normalize(f.Name) == normName {
			normMatch = &f
		}
	}

	if normMatch != nil {
		return fieldValue(v, normMatch.Index)
	}

	return nil
}

// fieldValue returns nil for fields promoted through a nil embedded pointer.
func fieldValue(v reflect.Value, index []int) any {
	f, err := v.FieldByIndexErr(index)
	if err != nil {
		return nil
	}

	return valueOf(f)
}

// Normalize folds the key styles `first_name`, `firstName` and `FirstName`
// into one.
func Normalize(prop string) string {
	return strings.ToLower(strings.ReplaceAll(prop, "_", ""))
}

func jsonName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	return name
}

func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, false
		}

		v = v.Elem()
	}

	return v, v.IsValid()
}

// valueOf turns a looked up child into the actual value compared against the
// expected one. Nil pointers and interfaces become the untyped nil that also
// stands for missing children.
func valueOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}

	return untypedNil(v.Interface())
}

// untypedNil replaces nil pointers with nil. Both sides of a comparison go
// through it so that a nil pointer, a missing child and nil are all equal.
func untypedNil(v any) any {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}

	return v
}

// leafActual follows pointers in an actual leaf unless the expected leaf is a
// pointer itself or a type class the pointer can satisfy. This lets `*string`
// fields match expected strings while pointers still equal identical pointers.
func leafActual(actual any, expected Shape) any {
	v := reflect.ValueOf(actual)
	if v.Kind() != reflect.Pointer {
		return actual
	}

	switch s := expected.(type) {
	case TypeClass:
		if s.Type == nil || v.Type().AssignableTo(s.Type) {
			return actual
		}
	case Scalar:
		if reflect.ValueOf(s.Value).Kind() == reflect.Pointer {
			return actual
		}
	}

	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	return valueOf(v)
}
