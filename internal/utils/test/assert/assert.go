// Package assert provides test assertions built on go-cmp
package assert

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts sync.Map
var errorCompareFn = func(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e1 == nil && e2 == nil
	}

	return e1.Error() == e2.Error()
}
var errorCompareOpts = cmp.Options{cmp.Comparer(errorCompareFn)}

// RegisterOpts registers go-cmp options for a given type
// to be used when calling cmp.Diff or cmp.Equal
func RegisterOpts(t reflect.Type, opts ...cmp.Option) {
	cmpOpts.Store(t, cmp.Options(opts))
}

// Equal compares expected and actual for equality
// and fails the test if not
func Equal(t testing.TB, expected, actual interface{}) {
	t.Helper()
	switch expected.(type) {
	case string:
		equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%q\n\t%q", actual, expected)
	default:
		equalf(t, expected, actual, "failed to assert equals ( actual, expected )\n\t%T{%+v}\n\t%T{%+v}", actual, actual, expected, expected)
	}
}

func equalf(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if !cmp.Equal(expected, actual, getCmpOpts(expected)...) {
		t.Fatalf("\n"+format, args...)
	}
}

// NotEqual compares expected and actual for inequality
// and fails the test with the provided formatted message if not
func NotEqual(t testing.TB, expected, actual interface{}, format string, args ...interface{}) {
	t.Helper()
	if cmp.Equal(expected, actual, getCmpOpts(expected)...) {
		t.Fatalf("\n"+format, args...)
	}
}

// Contains asserts that s contains substr
// and fails the test if not
func Contains(t testing.TB, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Fatalf("\nfailed to assert contains ( actual, expected )\n\t%q\n\t%q", s, substr)
	}
}

// True asserts that o is a boolean with value true
// and fails the test with the provided formatted message if not
func True(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	b, ok := o.(bool)
	if !ok || !b {
		t.Fatalf("\n"+format, args...)
	}
}

// False asserts that o is a boolean with value false
// and fails the test with the provided formatted message if not
func False(t testing.TB, o interface{}, format string, args ...interface{}) {
	t.Helper()
	b, ok := o.(bool)
	if !ok || b {
		t.Fatalf("\n"+format, args...)
	}
}

// Nil asserts that o is nil
// and fails the test if not
func Nil(t testing.TB, o interface{}) {
	t.Helper()
	if !isNil(o) {
		t.Fatalf("\nfailed to assert nil: %T{%+v}", o, o)
	}
}

// NotNil asserts that o is not nil
// and fails the test if not
func NotNil(t testing.TB, o interface{}) {
	t.Helper()
	if isNil(o) {
		t.Fatalf("\nfailed to assert not nil: %T", o)
	}
}

func getCmpOpts(o interface{}) cmp.Options {
	if opts, ok := cmpOpts.Load(reflect.TypeOf(o)); ok {
		return opts.(cmp.Options)
	}
	if _, ok := o.(error); ok {
		return errorCompareOpts
	}
	return nil
}

func isNil(o interface{}) bool {
	if o == nil {
		return true
	}

	val := reflect.ValueOf(o)
	switch val.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return val.IsNil()
	default:
		return false
	}
}
