package main

type StringSlice []string

/*errenum
enum Bad2 {
	auto Z(StringSlice, uint),
}
*/

func main() {
	panic("errenum will fail")
}
