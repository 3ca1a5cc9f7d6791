// Package errenum generates error enums: sealed sets of error variants with
// conversions from their payload types.
//
// Errenum eliminates the boilerplate of wrapping errors from different
// sources into one error type of a package. Declare an enum in a directive
// comment once, and the generator produces the union type, a struct per
// variant and the conversion functions:
//
//	/*errenum
//	enum GenEnum {
//		auto Foo(*strconv.NumError),
//		bare Bar(int),
//	}
//	*/
//
// After declaring enums, run the errenum command. It will generate
// errenum_gen.go for your package:
//
//	go run github.com/sublee/errenum/cmd/errenum
//
// The generated code for GenEnum is: (simplified)
//
//	type GenEnum interface {
//		error
//		isGenEnum()
//	}
//
//	type GenEnumFoo struct{ Value *strconv.NumError }
//	type GenEnumBar struct{ Value int }
//
//	func NewGenEnumFoo(v *strconv.NumError) GenEnum
//	func GenEnumFrom[T GenEnumSource](v T) GenEnum
//
// # Variants
//
// A variant is auto or bare. An auto variant has exactly one payload type and
// gets a conversion from it. The payload of a bare variant can be any number
// of types, including none, and is constructed explicitly:
//
//	var err GenEnum = GenEnumBar{Value: 3}
//	fmt.Println(err) // GenEnum.Bar(3)
//
// Every variant implements error and fmt.GoStringer, printing the variant and
// its payload. A variant unwraps its payloads implementing error, so
// [errors.Is] and [errors.As] see through it.
//
// When all variants of an enum are auto, the modes may be omitted:
//
//	/*errenum enum FooEnum { Foo(StringSlice), Bar(*os.PathError) } */
//
// # Conversions
//
// Conversions make propagating an error of a payload type well-typed without
// a manual wrap:
//
//	func parse(s string) (int, GenEnum) {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return 0, GenEnumFrom(err.(*strconv.NumError))
//		}
//		return n, nil
//	}
//
// GenEnumFrom accepts only the payload types of auto variants. Passing the
// payload of a bare variant does not compile. Interface payloads, such as
// error, are converted only by their constructor, like NewGenEnumFoo.
//
// Two auto variants of an enum cannot share a payload type because the
// conversion would be ambiguous. Aliases are the same type. The same type may
// be converted into different enums.
//
// A bare variant can be made auto by a from declaration, even in another
// directive of the package:
//
//	/*errenum from GenEnum => Bar(int) */
//
// # Diagnostics
//
// Malformed directives are reported with their positions. All violations of
// a package are reported together:
//
//	main.go:8:9: enum Bad: ambiguous conversion: auto variants X and Y both convert from StringSlice
//	main.go:12:7: enum Bad2: arity mismatch: auto variant Z must have exactly one payload type, got 2
//
// The errors are classified by [github.com/sublee/errenum/pkg/errenumerrors].
// The same diagnostics and stale generated files are reported by the analyzer
// in [github.com/sublee/errenum/pkg/errenumanalysis].
package errenum
