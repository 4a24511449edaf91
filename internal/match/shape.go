package match

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
)

// Shape is the closed set of forms an expected value can take. The concrete
// types are Sequence, Mapping, Pattern, TypeClass and Scalar.
type Shape interface {
	shape()
}

// Sequence is an expected slice or array. []byte is a Scalar.
type Sequence struct {
	value reflect.Value
}

// Mapping is an expected map. Entries are ordered by the string form of their
// keys.
type Mapping struct {
	value   reflect.Value
	entries []mappingEntry
}

type mappingEntry struct {
	key   reflect.Value
	name  string
	value any
}

// Pattern is an expected regular expression.
type Pattern struct {
	Regexp *regexp.Regexp
}

// TypeClass is an expected type. Used as a value inside expected structures
// it asserts that the actual value is of that type.
type TypeClass struct {
	Type reflect.Type
}

// Scalar is any other expected value. Scalars are compared for equality.
type Scalar struct {
	Value any
}

func (Sequence) shape()  {}
func (Mapping) shape()   {}
func (Pattern) shape()   {}
func (TypeClass) shape() {}
func (Scalar) shape()    {}

var bytesType = reflect.TypeOf([]byte(nil))

// ShapeOf classifies an expected value.
func ShapeOf(expected any) Shape {
	switch e := expected.(type) {
	case nil:
		return Scalar{}
	case TypeClass:
		return e
	case *TypeClass:
		if e != nil {
			return *e
		}
	case *regexp.Regexp:
		if e != nil {
			return Pattern{Regexp: e}
		}
	}

	v := reflect.ValueOf(expected)

	switch v.Kind() {
	case reflect.Slice:
		if v.Type().ConvertibleTo(bytesType) {
			return Scalar{Value: expected}
		}

		return Sequence{value: v}
	case reflect.Array:
		return Sequence{value: v}
	case reflect.Map:
		return newMapping(v)
	}

	return Scalar{Value: expected}
}

func newMapping(v reflect.Value) Mapping {
	entries := make([]mappingEntry, 0, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, mappingEntry{
			key:   iter.Key(),
			name:  keyString(iter.Key()),
			value: iter.Value().Interface(),
		})
	}

	slices.SortFunc(entries, func(a, b mappingEntry) int {
		return strings.Compare(a.name, b.name)
	})

	return Mapping{value: v, entries: entries}
}

func (s Sequence) Len() int {
	return s.value.Len()
}

func (s Sequence) Elem(i int) any {
	return s.value.Index(i).Interface()
}

func (m Mapping) Len() int {
	return len(m.entries)
}

func (t TypeClass) String() string {
	if t.Type == nil {
		return "nil"
	}

	return t.Type.String()
}

// identity tells apart expected containers for the cycle guard. Arrays held
// by value cannot be part of a cycle and have no identity.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

func (s Sequence) identity() (identity, bool) {
	if s.value.Kind() != reflect.Slice || s.value.Len() == 0 {
		return identity{}, false
	}

	return identity{typ: s.value.Type(), ptr: s.value.Pointer(), len: s.value.Len()}, true
}

func (m Mapping) identity() (identity, bool) {
	if m.value.Len() == 0 {
		return identity{}, false
	}

	return identity{typ: m.value.Type(), ptr: m.value.Pointer(), len: m.value.Len()}, true
}

func keyString(k reflect.Value) string {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}

	if k.Kind() == reflect.String {
		return k.String()
	}

	return fmt.Sprint(k.Interface())
}
