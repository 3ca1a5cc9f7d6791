// Package errenumerrors defines the errors reported by the errenum generator.
//
// Every diagnostic wraps one of the sentinel errors below, so callers can
// classify a failure with [errors.Is] regardless of the position information
// attached to it:
//
//	if errors.Is(err, errenumerrors.ErrAmbiguousConversion) {
//		// two auto variants of an enum convert from the same type
//	}
//
// [errors.As] retrieves the details as a [*SyntaxError] or a
// [*ValidationError].
package errenumerrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax is the rule violated by malformed directive text.
var ErrSyntax = errors.New("syntax error")

// Validation rules.
var (
	// ErrDuplicateVariantName reports two variants of an enum with the same
	// name.
	ErrDuplicateVariantName = errors.New("duplicate variant name")

	// ErrArityMismatch reports an auto variant without exactly one payload
	// type.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrAmbiguousConversion reports two auto variants of an enum converting
	// from the same type.
	ErrAmbiguousConversion = errors.New("ambiguous conversion")

	// ErrUnknownType reports a payload type expression which does not
	// resolve to a type.
	ErrUnknownType = errors.New("unknown type")

	// ErrDuplicateEnumName reports two enums of a package with the same name.
	ErrDuplicateEnumName = errors.New("duplicate enum name")

	// ErrNameConflict reports a generated identifier colliding with another
	// declaration.
	ErrNameConflict = errors.New("name conflict")

	// ErrUnknownTarget reports a from declaration referring to an enum or a
	// variant which is not declared.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrConversionMismatch reports a from declaration whose type does not
	// match the payload of its variant.
	ErrConversionMismatch = errors.New("conversion mismatch")
)

// SyntaxError describes malformed directive text. Token is the offending
// token as written, or "EOF".
type SyntaxError struct {
	Token string
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", quoteToken(e.Token), e.Msg)
}

// Unwrap returns [ErrSyntax].
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

func quoteToken(tok string) string {
	if tok == "EOF" {
		return tok
	}
	return fmt.Sprintf("%q", tok)
}

// ValidationError describes a structurally invalid declaration. Rule is one of
// the sentinel errors of this package. Enum and Variants name the
// declarations involved in the violation, if any.
type ValidationError struct {
	Rule     error
	Enum     string
	Variants []string
	Msg      string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Enum != "" {
		b.WriteString("enum ")
		b.WriteString(e.Enum)
		b.WriteString(": ")
	}
	b.WriteString(e.Rule.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

// Unwrap returns the violated rule.
func (e *ValidationError) Unwrap() error { return e.Rule }
