// Package emit writes Go code of enums.
//
// For an enum
//
//	enum GenEnum { auto Foo(*os.PathError), bare Bar(int, string) }
//
// it writes a sealed interface, a struct type per variant and conversions of
// auto variants:
//
//	type GenEnum interface {
//		error
//		isGenEnum()
//	}
//
//	type GenEnumFoo struct{ Value *os.PathError }
//	type GenEnumBar struct{ V0 int; V1 string }
//
//	func NewGenEnumFoo(v *os.PathError) GenEnum
//
//	type GenEnumSource interface{ *os.PathError }
//	func GenEnumFrom[T GenEnumSource](v T) GenEnum
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/internal/errenum/parse"
	"github.com/sublee/errenum/internal/errenum/plan"
)

// Enum writes the code of an enum and its conversions. convs must be the
// result of [plan.Resolve] for the enum.
func Enum(w *codefmt.Writer, enum *parse.Enum, convs []plan.Conversion) {
	writeUnion(w, enum)
	for _, v := range enum.Variants {
		writeVariant(w, v)
	}
	for _, conv := range plan.Emitted(convs) {
		writeConstructor(w, conv)
	}
	if generic := plan.Generic(convs); len(generic) != 0 {
		writeGenericFrom(w, enum, generic)
	}
}

// writeUnion writes the sealed interface of the enum.
func writeUnion(w *codefmt.Writer, enum *parse.Enum) {
	w.Printf("// %s is an error enum of %s.\n", enum.Name, joinNames(enum.VariantNames()))
	w.Printf("type %s interface {\n", enum.Name)
	w.Printf("error\n")
	w.Printf("%s()\n", enum.MarkerName())
	w.Printf("}\n\n")
}

// writeVariant writes the struct type of a variant and its methods.
func writeVariant(w *codefmt.Writer, v *parse.Variant) {
	enum := v.Enum
	name := v.TypeName()
	fields := fieldNames(len(v.Payloads))

	w.Printf("// %s is the %s variant of [%s].\n", name, v.Name, enum.Name)
	switch len(v.Payloads) {
	case 0:
		w.Printf("type %s struct{}\n\n", name)
	default:
		w.Printf("type %s struct {\n", name)
		for i, payload := range v.Payloads {
			w.Printf("%s %t\n", fields[i], payload.Type)
		}
		w.Printf("}\n\n")
	}

	w.Printf("func (%s) %s() {}\n\n", name, enum.MarkerName())

	display := enum.Name + "." + v.Name
	if len(v.Payloads) == 0 {
		w.Printf("func (%s) Error() string {\n", name)
		w.Printf("return %s\n", strconv.Quote(display))
		w.Printf("}\n\n")

		w.Printf("func (%s) GoString() string {\n", name)
		w.Printf("return %s\n", strconv.Quote(display))
		w.Printf("}\n\n")
		return
	}

	fmtPkg := w.Import("fmt", "fmt")
	args := make([]string, len(fields))
	for i, field := range fields {
		args[i] = "e." + field
	}

	w.Printf("func (e %s) Error() string {\n", name)
	w.Printf("return %s.Sprintf(%s, %s)\n", fmtPkg, strconv.Quote(display+verbs("%v", len(fields))), strings.Join(args, ", "))
	w.Printf("}\n\n")

	w.Printf("func (e %s) GoString() string {\n", name)
	w.Printf("return %s.Sprintf(%s, %s)\n", fmtPkg, strconv.Quote(display+verbs("%#v", len(fields))), strings.Join(args, ", "))
	w.Printf("}\n\n")

	writeUnwrap(w, v, fields)
}

// writeUnwrap writes the Unwrap method of a variant if any payload is an
// error. A single payload is unwrapped as is. Multiple payloads are unwrapped
// as a slice of errors.
func writeUnwrap(w *codefmt.Writer, v *parse.Variant, fields []string) {
	var errs []string
	for i, payload := range v.Payloads {
		if payload.Type.ImplementsError() {
			errs = append(errs, "e."+fields[i])
		}
	}
	if len(errs) == 0 {
		return
	}

	if len(v.Payloads) == 1 {
		w.Printf("func (e %s) Unwrap() error {\n", v.TypeName())
		w.Printf("return %s\n", errs[0])
		w.Printf("}\n\n")
		return
	}

	w.Printf("func (e %s) Unwrap() []error {\n", v.TypeName())
	w.Printf("return []error{%s}\n", strings.Join(errs, ", "))
	w.Printf("}\n\n")
}

// writeConstructor writes the function converting the source type into an
// auto variant.
func writeConstructor(w *codefmt.Writer, conv plan.Conversion) {
	v := conv.Variant
	w.Printf("// %s converts %t into [%s].\n", conv.FuncName, conv.Source, v.Enum.Name)
	w.Printf("func %s(v %t) %s {\n", conv.FuncName, conv.Source, v.Enum.Name)
	w.Printf("return %s{Value: v}\n", v.TypeName())
	w.Printf("}\n\n")
}

// writeGenericFrom writes the type set constraint of the source types and the
// generic function dispatching to the constructors. Passing a value of any
// other type fails to compile.
func writeGenericFrom(w *codefmt.Writer, enum *parse.Enum, convs []plan.Conversion) {
	terms := make([]string, len(convs))
	for i, conv := range convs {
		terms[i] = w.Type(conv.Source.Type())
	}

	w.Printf("// %s lists the types convertible into [%s] by [%s].\n", enum.SourceName(), enum.Name, enum.FromName())
	w.Printf("type %s interface {\n", enum.SourceName())
	w.Printf("%s\n", strings.Join(terms, " | "))
	w.Printf("}\n\n")

	fmtPkg := w.Import("fmt", "fmt")

	// The type parameter and the parameter must not shadow any name referred
	// in the body.
	ns := w.NS()
	ns.Reserve(enum.Name)
	ns.Reserve(enum.SourceName())
	ns.Reserve(enum.FromName())
	for _, conv := range convs {
		ns.Reserve(conv.FuncName)
	}
	for _, imp := range w.Imports() {
		ns.Reserve(imp.Name)
	}
	tparam := ns.Name("T")
	param := ns.Name("v")

	w.Printf("// %s converts %s into [%s].\n", enum.FromName(), param, enum.Name)
	w.Printf("func %s[%s %s](%s %s) %s {\n", enum.FromName(), tparam, enum.SourceName(), param, tparam, enum.Name)
	w.Printf("switch %s := any(%s).(type) {\n", param, param)
	for _, conv := range convs {
		w.Printf("case %t:\n", conv.Source)
		w.Printf("return %s(%s)\n", conv.FuncName, param)
	}
	w.Printf("}\n")
	w.Printf("panic(%s.Sprintf(%s, %s))\n", fmtPkg, strconv.Quote("errenum: %T is not a "+enum.Name+" source"), param)
	w.Printf("}\n\n")
}

// fieldNames returns the field names of a variant struct with n payloads.
func fieldNames(n int) []string {
	if n == 1 {
		return []string{"Value"}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("V%d", i)
	}
	return names
}

// verbs returns "(verb, verb, ...)" with n verbs.
func verbs(verb string, n int) string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = verb
	}
	return "(" + strings.Join(vs, ", ") + ")"
}

// joinNames joins names in English.
//
//	[]            => "no variants"
//	[A]           => "A"
//	[A, B]        => "A and B"
//	[A, B, C]     => "A, B and C"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return "no variants"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
