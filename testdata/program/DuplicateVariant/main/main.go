package main

/*errenum
enum Dup {
	auto A(int),
	bare B(string),
	bare A(string),
}
*/

func main() {
	panic("errenum will fail")
}
