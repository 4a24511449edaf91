package model

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Type is the name of a type class usable in fixtures, for example
// `!kind string`.
type Type string

const (
	TypeAny     Type = "any"
	TypeBool    Type = "bool"
	TypeString  Type = "string"
	TypeFloat32 Type = "float32"
	TypeFloat64 Type = "float64"
	TypeFloat   Type = "float"
	TypeInt     Type = "int"
	TypeInt32   Type = "int32"
	TypeInt64   Type = "int64"
	TypeMap     Type = "map"
	TypeSeq     Type = "seq"
	TypeTime    Type = "time"
	TypeError   Type = "error"
)

var types = map[Type]reflect.Type{
	TypeAny:     reflect.TypeOf((*any)(nil)).Elem(),
	TypeBool:    reflect.TypeOf(false),
	TypeString:  reflect.TypeOf(""),
	TypeFloat32: reflect.TypeOf(float32(0)),
	TypeFloat64: reflect.TypeOf(float64(0)),
	TypeFloat:   reflect.TypeOf(float64(0)),
	TypeInt:     reflect.TypeOf(0),
	TypeInt32:   reflect.TypeOf(int32(0)),
	TypeInt64:   reflect.TypeOf(int64(0)),
	TypeMap:     reflect.TypeOf(map[string]any(nil)),
	TypeSeq:     reflect.TypeOf([]any(nil)),
	TypeTime:    reflect.TypeOf(time.Time{}),
	TypeError:   reflect.TypeOf((*error)(nil)).Elem(),
}

// Lookup resolves a type class name.
func Lookup(name string) (reflect.Type, error) {
	t, ok := types[Type(name)]
	if !ok {
		return nil, fmt.Errorf(`unknown kind "%s" (known kinds: %v)`, name, Names())
	}

	return t, nil
}

// Names returns the registered names in sorted order.
func Names() []Type {
	names := make([]Type, 0, len(types))

	for n := range types {
		names = append(names, n)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
