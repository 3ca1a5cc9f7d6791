package parse

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/internal/lcs"
	"github.com/sublee/errenum/internal/typeinfo"
)

// Mode decides whether a variant gets a conversion from its payload.
type Mode int

const (
	// ModeAuto emits a one-argument conversion into the variant.
	ModeAuto Mode = iota + 1
	// ModeBare emits no conversion.
	ModeBare
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeBare:
		return "bare"
	}
	return "invalid"
}

// Enum is an enum declaration.
//
//	enum Name { auto A(T), bare B(U, V) }
type Enum struct {
	Name    string
	NamePos token.Pos

	// Pos and End span the declaration from the "enum" keyword to the closing
	// brace.
	Pos, End token.Pos

	// Shorthand is true if the variants were declared without mode keywords.
	// All variants of a shorthand enum are auto.
	Shorthand bool

	Variants []*Variant

	// File is the Go file holding the directive. Payload types are resolved
	// in its scope.
	File *ast.File
}

// Exported reports whether the generated identifiers of the enum are
// exported.
func (e *Enum) Exported() bool { return token.IsExported(e.Name) }

// MarkerName returns the name of the unexported method which seals the union
// interface.
//
//	GenEnum => isGenEnum
func (e *Enum) MarkerName() string { return "is" + codefmt.Export(e.Name, true) }

// SourceName returns the name of the type set constraint listing the source
// types of auto variants.
//
//	GenEnum => GenEnumSource
func (e *Enum) SourceName() string { return e.Name + "Source" }

// FromName returns the name of the generic conversion function.
//
//	GenEnum => GenEnumFrom
func (e *Enum) FromName() string { return e.Name + "From" }

// HasGenericFrom reports whether the enum gets the generic conversion
// function. It needs at least one auto variant whose source type can be a
// term of the type set constraint.
func (e *Enum) HasGenericFrom() bool {
	for _, v := range e.Variants {
		if p, ok := v.Source(); ok && p.Type.IsUnionTerm() {
			return true
		}
	}
	return false
}

// DeclNames returns the package-level identifiers declared by the generated
// code of the enum.
func (e *Enum) DeclNames() []string {
	names := []string{e.Name}
	if e.HasGenericFrom() {
		names = append(names, e.SourceName(), e.FromName())
	}
	for _, v := range e.Variants {
		names = append(names, v.TypeName())
		if v.IsAuto() {
			names = append(names, v.ConstructorName())
		}
	}
	return names
}

// Variant finds a variant by name.
func (e *Enum) Variant(name string) (*Variant, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// VariantNames returns the names of the variants in order.
func (e *Enum) VariantNames() []string {
	names := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		names[i] = v.Name
	}
	return names
}

// Variant is a variant of an enum.
type Variant struct {
	Enum *Enum

	Name    string
	NamePos token.Pos

	Mode Mode
	// ModePos is the position of the mode keyword. It is invalid if the mode
	// is implicit.
	ModePos token.Pos

	Payloads []*Payload

	// From is the from declaration which made the variant auto, if any.
	From *From
}

func (v *Variant) Pos() token.Pos { return v.NamePos }
func (v *Variant) End() token.Pos { return v.NamePos + token.Pos(len(v.Name)) }

// IsAuto reports whether the variant gets a conversion.
func (v *Variant) IsAuto() bool { return v.Mode == ModeAuto }

// Source returns the payload converted into an auto variant. It returns false
// if the variant is bare or does not have exactly one payload.
func (v *Variant) Source() (*Payload, bool) {
	if !v.IsAuto() || len(v.Payloads) != 1 {
		return nil, false
	}
	return v.Payloads[0], true
}

// TypeName returns the name of the struct type of the variant. The enum name
// is prepended unless the variant name already starts with it.
//
//	GenEnum.Foo        => GenEnumFoo
//	GenEnum.GenEnumFoo => GenEnumFoo
//	err.IO             => errIO
func (v *Variant) TypeName() string {
	exported := v.Enum.Exported()
	if lcs.HasWordPrefix(v.Name, v.Enum.Name) {
		return codefmt.Export(v.Name, exported)
	}
	return v.Enum.Name + codefmt.Export(v.Name, true)
}

// ConstructorName returns the name of the function converting the payload
// into the variant.
//
//	GenEnum.Foo => NewGenEnumFoo
//	err.IO      => newErrIO
func (v *Variant) ConstructorName() string {
	name := "new" + codefmt.Export(v.TypeName(), true)
	return codefmt.Export(name, v.Enum.Exported())
}

// Payload is a payload type of a variant.
type Payload struct {
	// Expr is the type expression without parentheses. Its positions are not
	// related to the host file.
	Expr ast.Expr

	// Text is the type expression as written.
	Text string

	// Pos and End span the type expression in the host file.
	Pos, End token.Pos

	// Type is the resolved type. It is valid only after resolution.
	Type typeinfo.Type
}

func (p *Payload) String() string { return types.ExprString(p.Expr) }

// TypeInfo implements [codefmt.TypeInfoer].
func (p *Payload) TypeInfo() typeinfo.Type { return p.Type }

// From is a standalone conversion declaration. It makes a variant of an enum
// auto.
//
//	from Name => Variant(T)
type From struct {
	Pos, End token.Pos

	Enum    string
	EnumPos token.Pos

	Variant    string
	VariantPos token.Pos

	Payload *Payload

	File *ast.File
}

// Decls is the result of reading a directive.
type Decls struct {
	Enums []*Enum
	Froms []*From
}
