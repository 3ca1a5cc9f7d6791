package main

import (
	"fmt"
	"strings"
)

type StringSlice []string

func (s StringSlice) Error() string { return strings.Join(s, "; ") }

/*errenum
enum GenEnum {
	auto Foo(StringSlice),
	bare Bar(uint),
}
*/

func main() {
	var err GenEnum = GenEnumFrom(StringSlice{"bad"})
	fmt.Println(err)

	// Bar has no conversion. It is constructed explicitly.
	err = GenEnumBar{Value: 3}
	fmt.Println(err)
	fmt.Printf("%#v\n", err)

	switch err := err.(type) {
	case GenEnumFoo:
		fmt.Println("foo", err.Value)
	case GenEnumBar:
		fmt.Println("bar", err.Value)
	}
}
