package main

import (
	"fmt"
	"strings"
)

type StringSlice []string

func (s StringSlice) Error() string { return strings.Join(s, "; ") }

/*errenum
enum NoopEnum {
	bare Noop(uint),
	auto Foo(StringSlice),
}
*/

func main() {
	fmt.Println(NoopEnumFrom(StringSlice{"x"}))
	fmt.Println(NewNoopEnumFoo(StringSlice{"y"}))
	fmt.Println(NoopEnum(NoopEnumNoop{Value: 1}))
}
