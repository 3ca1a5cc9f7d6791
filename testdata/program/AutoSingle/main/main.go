package main

import (
	"errors"
	"fmt"
	"strings"
)

// StringSlice is a failure with several messages.
type StringSlice []string

func (s StringSlice) Error() string { return strings.Join(s, "; ") }

/*errenum
enum AnError {
	auto Foo(StringSlice),
}
*/

func validate(name string) StringSlice {
	var errs StringSlice
	if name == "" {
		errs = append(errs, "name is empty")
	}
	if strings.ContainsRune(name, ' ') {
		errs = append(errs, "name has spaces")
	}
	return errs
}

func register(name string) AnError {
	if err := validate(name); err != nil {
		return AnErrorFrom(err)
	}
	return nil
}

func main() {
	err := register("")
	fmt.Println(err)
	fmt.Printf("%#v\n", err)

	var foo AnErrorFoo
	if errors.As(err, &foo) {
		fmt.Println(len(foo.Value), foo.Value[0])
	}

	fmt.Println(NewAnErrorFoo(StringSlice{"a", "b"}))
	fmt.Println(register("gopher") == nil)
}
