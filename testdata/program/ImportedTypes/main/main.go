package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
)

/*errenum
enum ParseError {
	auto Num(*strconv.NumError),
	auto Path(*fs.PathError),
	bare Other(string, int),
}
*/

func readFile(path string) ([]byte, ParseError) {
	data, err := os.ReadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, ParseErrorFrom(pathErr)
		}
		return nil, ParseErrorOther{V0: err.Error(), V1: -1}
	}
	return data, nil
}

func parseNumber(s string) (int, ParseError) {
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, ParseErrorFrom(numErr)
		}
		return 0, ParseErrorOther{V0: err.Error(), V1: -1}
	}
	return n, nil
}

func main() {
	_, err := readFile("/nonexistent/number.txt")
	fmt.Println(err)
	fmt.Println(errors.Is(err, fs.ErrNotExist))

	_, err = parseNumber("x")
	fmt.Println(err)
	fmt.Println(errors.Is(err, strconv.ErrSyntax))

	err = ParseErrorOther{V0: "eof", V1: 3}
	fmt.Println(err)
	fmt.Printf("%#v\n", err)
}
