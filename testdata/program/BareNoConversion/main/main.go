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
	// uint is the payload of a bare variant. It cannot be converted.
	fmt.Println(GenEnumFrom(uint(3)))
}
