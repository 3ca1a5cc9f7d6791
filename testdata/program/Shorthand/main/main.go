package main

import (
	"fmt"
	"strings"
)

type StringSlice []string

func (s StringSlice) Error() string { return strings.Join(s, "; ") }

// Variants without modes are all auto.
/*errenum enum FooEnum { Foo(StringSlice) } */

func register(name string) FooEnum {
	if name == "" {
		return FooEnumFrom(StringSlice{"name is empty"})
	}
	return nil
}

func main() {
	err := register("")
	fmt.Println(err)
	fmt.Println(NewFooEnumFoo(StringSlice{"a", "b"}))

	foo := err.(FooEnumFoo)
	fmt.Println(foo.Value[0])
}
