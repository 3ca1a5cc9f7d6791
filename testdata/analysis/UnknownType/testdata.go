package testdata

import "strconv"

var _ = strconv.Itoa

/*errenum enum E { auto Foo(Nope) } // want `enum E: unknown type: Nope: undefined: Nope` */

/*errenum enum F { bare Bar(strconv.Itoa) } // want `enum F: unknown type: strconv.Itoa: not a type` */

/*errenum enum G { bare Baz(*strconv.NumError, strconv.NumError) } */

type Number interface{ ~int | ~float64 }

/*errenum enum H { auto Foo(Number), bare Bar(comparable) } // want `enum H: unknown type: Number: constraint interface cannot be a payload type` `enum H: unknown type: comparable: constraint interface cannot be a payload type` */
