package testdata

import (
	"io/fs"
	"strconv"
)

/*errenum
enum GenEnum {
	auto Foo(*strconv.NumError),
	auto Path(*fs.PathError),
	bare Bar(int),
	bare Empty(),
}
*/

/*errenum
enum Shorthand {
	Num(*strconv.NumError),
	Any(error),
}
*/

func parse(s string) (int, error) {
	return strconv.Atoi(s)
}

func open(fsys fs.FS, name string) (fs.File, error) {
	return fsys.Open(name)
}
