// Package typeinfo inspects payload types of errenum variants.
package typeinfo

import "go/types"

// Type describes a type information. It holds information of [types.Type] that
// is necessary from the errenum's perspective.
type Type struct {
	T types.Type

	Interface *types.Interface
	TypeParam *types.TypeParam
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string {
	if t.T == nil {
		return "<nil>"
	}
	return t.T.String()
}

func (t Type) IsValid() bool     { return t.T != nil && t.T != types.Typ[types.Invalid] }
func (t Type) IsInterface() bool { return t.Interface != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// errorIface is the underlying interface of the predeclared error type.
var errorIface = types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

// ImplementsError reports whether a value of the type can be used as an error.
// Interfaces qualify only if their method set includes Error.
func (t Type) ImplementsError() bool {
	if !t.IsValid() {
		return false
	}
	return types.Implements(t.T, errorIface)
}

// IsUnionTerm reports whether the type can be a term of a type set union such
// as "interface{ A | B }". Interfaces with methods and type parameters cannot.
func (t Type) IsUnionTerm() bool {
	if !t.IsValid() {
		return false
	}
	if t.TypeParam != nil {
		return false
	}
	if t.IsInterface() {
		return false
	}
	return !IsGeneric(t.T)
}

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	info := Type{T: t}
	switch tt := types.Unalias(t).(type) {
	case *types.Interface:
		info.Interface = tt
	case *types.TypeParam:
		info.TypeParam = tt
	case *types.Named:
		info = TypeOf(tt.Underlying())
		info.T = t
	}
	return info
}

// IsConstraint reports whether the type is an interface which can be used
// only as a type constraint, such as comparable or interface{ ~int }.
func IsConstraint(t types.Type) bool {
	iface, ok := t.Underlying().(*types.Interface)
	return ok && !iface.IsMethodSet()
}

// IsGeneric reports whether the type is generic or has any generic type
// parameters. Even though the type has type parameters, if all type arguments
// are concrete types, it returns false.
func IsGeneric(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			// No type parameters
			// e.g., Foo
			return false
		}

		targs := t.TypeArgs()
		if targs.Len() == 0 {
			// Have type parameters but no arguments
			// e.g., Foo[T]
			return true
		}

		for i := 0; i < targs.Len(); i++ {
			if IsGeneric(targs.At(i)) {
				// Some type argument is generic
				// e.g., Foo[int, T]
				return true
			}
		}
	case *types.Pointer:
		return IsGeneric(t.Elem())
	case *types.Slice:
		return IsGeneric(t.Elem())
	case *types.Array:
		return IsGeneric(t.Elem())
	case *types.Map:
		return IsGeneric(t.Key()) || IsGeneric(t.Elem())
	case *types.TypeParam:
		return true
	}
	return false
}
