package match

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sync"
	"testing"

	assert "github.com/stretchr/testify/require"
)

type species string

func (s species) String() string {
	return "species:" + string(s)
}

func TestRecorderComparisons(t *testing.T) {
	rec := NewRecorder("test")
	m := func(expected, actual any) *Mismatch {
		return &Mismatch{Expected: expected, Actual: actual}
	}

	assert.True(t, rec.Equal(m(1, 1)))
	assert.True(t, rec.Equal(m([]byte("a"), []byte("a"))))
	assert.False(t, rec.Equal(m(1, int64(1))))

	assert.True(t, rec.Match(m(nil, "abc"), regexp.MustCompile("b")))
	assert.True(t, rec.Match(m(nil, []byte("abc")), regexp.MustCompile("b")))
	assert.True(t, rec.Match(m(nil, species("cat")), regexp.MustCompile("^species:cat$")))
	assert.False(t, rec.Match(m(nil, nil), regexp.MustCompile(".*")))

	assert.True(t, rec.BeA(m(nil, "x"), reflect.TypeOf("")))
	assert.True(t, rec.BeA(m(nil, species("x")), reflect.TypeOf((*fmt.Stringer)(nil)).Elem()))
	assert.False(t, rec.BeA(m(nil, species("x")), reflect.TypeOf("")))
	assert.False(t, rec.BeA(m(nil, nil), reflect.TypeOf((*any)(nil)).Elem()))

	assert.Equal(t, 4, rec.Len())
}

func TestRecorderWithoutFailures(t *testing.T) {
	rec := NewRecorder("test")

	assert.Equal(t, 0, rec.Len())
	assert.Nil(t, rec.Errors())
	assert.NoError(t, rec.ErrorOrNil())
}

func TestRecorderSingleFailureReport(t *testing.T) {
	rec := NewRecorder("fixtures")
	rec.Fail(errors.New("boom"))

	assert.Equal(t, "Got 1 failure from failure aggregation block \"fixtures\":\n\n  1) boom", rec.ErrorOrNil().Error())
}

func TestRecorderIsSafeForConcurrentUse(t *testing.T) {
	rec := NewRecorder("test")
	wg := sync.WaitGroup{}

	for i := 0; i < 20; i += 1 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Assert(map[string]any{"a": i}, map[string]any{"a": -1}, NewParams(rec))
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 20, rec.Len())
}

func TestIsA(t *testing.T) {
	assert.True(t, IsA(1, reflect.TypeOf(0)))
	assert.False(t, IsA(1, nil))
	assert.False(t, IsA(int32(1), reflect.TypeOf(0)))
	assert.True(t, IsA(errors.New("x"), reflect.TypeOf((*error)(nil)).Elem()))
}
