package model

import (
	"reflect"
	"testing"

	assert "github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	typ, err := Lookup("string")
	assert.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), typ)

	typ, err = Lookup("any")
	assert.NoError(t, err)
	assert.Equal(t, reflect.Interface, typ.Kind())

	_, err = Lookup("uuid")
	assert.ErrorContains(t, err, `unknown kind "uuid"`)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, TypeTime)
	assert.Equal(t, TypeAny, names[0])
	assert.Equal(t, TypeTime, names[len(names)-1])
}
