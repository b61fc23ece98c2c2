// Package apperr defines the error-kind taxonomy surfaced to the reducer and,
// ultimately, to state.AppState.Error as a single-line message.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is one of the fixed error categories the reducer can produce.
type Kind int

const (
	// KindParse covers bad command syntax, unknown format tokens, and bad
	// numeric arguments.
	KindParse Kind = iota
	// KindNotFound covers unknown catalog names, no selected tab, no
	// selected schema row.
	KindNotFound
	// KindNameInUse covers register() naming conflicts.
	KindNameInUse
	// KindIO covers read/write/clipboard failures.
	KindIO
	// KindSQL covers query engine errors, including a missing current frame.
	KindSQL
	// KindUnsupportedFormat covers unrecognized export/import formats and
	// reserved-but-unimplemented actions such as TabRename.
	KindUnsupportedFormat
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "ParseError"
	case KindNotFound:
		return "NotFound"
	case KindNameInUse:
		return "NameInUse"
	case KindIO:
		return "IoError"
	case KindSQL:
		return "SqlError"
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	default:
		return "Error"
	}
}

// Error is a sentinel-wrapped error carrying a Kind, compatible with
// errors.Is/errors.As.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches against another *Error by Kind only, so errors.Is(err,
// apperr.Parse("")) tests the category regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Parse builds a KindParse error.
func Parse(format string, args ...any) *Error { return newf(KindParse, format, args...) }

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error { return newf(KindNotFound, format, args...) }

// NameInUse builds a KindNameInUse error.
func NameInUse(name string) *Error {
	return newf(KindNameInUse, "name %q is already in use", name)
}

// IO wraps an I/O failure as a KindIO error.
func IO(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Err: err}
}

// SQL wraps a query-engine failure as a KindSQL error.
func SQL(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindSQL, Err: err}
}

// NoCurrentFrame is the specific KindSQL error for a query that references
// `_` with no frame bound.
func NoCurrentFrame() *Error {
	return &Error{Kind: KindSQL, Msg: "no current frame bound to `_`"}
}

// UnsupportedFormat builds a KindUnsupportedFormat error for an unrecognized
// import/export format token.
func UnsupportedFormat(format string) *Error {
	return &Error{Kind: KindUnsupportedFormat, Msg: fmt.Sprintf("unsupported format %q", format)}
}

// Unsupported builds a KindUnsupportedFormat error for a reserved but
// unimplemented action (TabRename).
func Unsupported(what string) *Error {
	return &Error{Kind: KindUnsupportedFormat, Msg: fmt.Sprintf("%s is not supported", what)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
