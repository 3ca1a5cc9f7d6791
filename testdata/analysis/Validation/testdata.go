package testdata

import "strconv"

var _ = strconv.Itoa

// All violations are reported together.

/*errenum enum Bad { auto X(string), auto Y(string) } // want `enum Bad: ambiguous conversion: auto variants X and Y both convert from string` */

/*errenum enum Bad2 { auto Z(string, int) } // want `enum Bad2: arity mismatch: auto variant Z must have exactly one payload type, got 2` */

/*errenum enum Dup { bare A(), bare A(int) } // want `enum Dup: duplicate variant name: variant A is already declared at .+` */

// Aliases are the same type.
/*errenum enum Alias { auto B(byte), auto U(uint8) } // want `enum Alias: ambiguous conversion: auto variants B and U both convert from uint8` */

// The same type may be converted into different enums.
/*errenum enum Ok1 { auto S(string) } */
/*errenum enum Ok2 { auto S(string) } */

// Generated names must not shadow imports.
/*errenum enum strconv { bare Foo(int) } // want `enum strconv: name conflict: strconv of enum strconv conflicts with the import at .+` */
