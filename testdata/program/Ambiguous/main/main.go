package main

type StringSlice []string

/*errenum
enum Bad {
	auto X(StringSlice),
	auto Y(StringSlice),
}
*/

func main() {
	panic("errenum will fail")
}
