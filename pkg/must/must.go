// Package must provides assertion helpers for code which treats an
// unexpected value as a programming error rather than a recoverable
// condition. The helpers panic with the location of the call site:
//
//	f := must.Get(os.Open(path))
//	must.NoError(f.Close(), "close %s", path)
//
// Recoverable errors should be returned as usual. [Try] turns an error into
// the absence of a value for callers that do not care about the reason.
package must

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Error is the panic value of the helpers in this package.
type Error struct {
	// Location is the "file:line" of the call site.
	Location string
	Msg      string

	// Err is the unexpected error, if any.
	Err error
}

func (e *Error) Error() string {
	s := e.Location + ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the unexpected error.
func (e *Error) Unwrap() error { return e.Err }

// Absent panics if v is not nil. The panic message includes the pointed
// value.
func Absent[T any](v *T, msgAndArgs ...any) {
	if v == nil {
		return
	}
	msg := message("unexpected value", msgAndArgs)
	panic(&Error{Location: caller(), Msg: fmt.Sprintf("%s: %#v", msg, *v)})
}

// NoError panics if err is not nil.
func NoError(err error, msgAndArgs ...any) {
	if err == nil {
		return
	}
	panic(&Error{Location: caller(), Msg: message("unexpected error", msgAndArgs), Err: err})
}

// Get returns v if err is nil. Otherwise, it panics.
func Get[T any](v T, err error) T {
	if err != nil {
		panic(&Error{Location: caller(), Msg: "unexpected error", Err: err})
	}
	return v
}

// Getf is like [Get] but describes the panic with a formatted message. The
// message is given to the returned function so that a call result can be
// passed as is:
//
//	n := must.Getf(strconv.Atoi(s))("parse %q", s)
func Getf[T any](v T, err error) func(format string, args ...any) T {
	return func(format string, args ...any) T {
		if err != nil {
			panic(&Error{Location: caller(), Msg: fmt.Sprintf(format, args...), Err: err})
		}
		return v
	}
}

// Try returns v and true if err is nil. Otherwise, it returns the zero value
// and false.
func Try[T any](v T, err error) (T, bool) {
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// caller returns the location of the function calling a helper.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "???"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func message(fallback string, msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return fallback
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
