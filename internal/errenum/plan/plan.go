// Package plan decides which variants of an enum get conversions from their
// payload types.
package plan

import (
	"github.com/sublee/errenum/internal/errenum/parse"
	"github.com/sublee/errenum/internal/typeinfo"
)

// Kind is the conversion policy of a variant.
type Kind int

const (
	// NoConversion emits nothing for the variant. Its payload cannot be
	// converted into the enum implicitly.
	NoConversion Kind = iota
	// EmitConversion emits a constructor converting the source type into the
	// variant.
	EmitConversion
)

func (k Kind) String() string {
	if k == EmitConversion {
		return "EmitConversion"
	}
	return "NoConversion"
}

// Conversion is the conversion policy of a variant.
type Conversion struct {
	Kind    Kind
	Variant *parse.Variant

	// Source is the type converted into the variant. It is valid only for
	// EmitConversion.
	Source typeinfo.Type

	// FuncName is the name of the constructor. It is empty for NoConversion.
	FuncName string

	// Generic reports whether Source is a term of the type set constraint of
	// the generic conversion function. Interfaces are not.
	Generic bool
}

// Resolve returns the conversion policy of each variant of a validated enum
// in declaration order. Auto variants get EmitConversion. Bare variants get
// NoConversion.
func Resolve(enum *parse.Enum) []Conversion {
	convs := make([]Conversion, len(enum.Variants))
	for i, v := range enum.Variants {
		payload, ok := v.Source()
		if !ok {
			convs[i] = Conversion{Kind: NoConversion, Variant: v}
			continue
		}
		convs[i] = Conversion{
			Kind:     EmitConversion,
			Variant:  v,
			Source:   payload.Type,
			FuncName: v.ConstructorName(),
			Generic:  payload.Type.IsUnionTerm(),
		}
	}
	return convs
}

// Emitted filters the conversions to emit.
func Emitted(convs []Conversion) []Conversion {
	var out []Conversion
	for _, conv := range convs {
		if conv.Kind == EmitConversion {
			out = append(out, conv)
		}
	}
	return out
}

// Generic filters the conversions dispatched by the generic conversion
// function. If it is empty, the function is not emitted.
func Generic(convs []Conversion) []Conversion {
	var out []Conversion
	for _, conv := range Emitted(convs) {
		if conv.Generic {
			out = append(out, conv)
		}
	}
	return out
}
