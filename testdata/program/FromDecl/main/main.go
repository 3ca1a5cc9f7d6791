package main

import (
	"fmt"
	"strconv"
	"time"
)

/*errenum
enum AppError {
	bare Timeout(time.Duration),
	bare Parse(*strconv.NumError),
}
*/

// Parse becomes an auto variant.
/*errenum from AppError => Parse(*strconv.NumError) */

func parsePort(s string) (int, AppError) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, AppErrorFrom(err.(*strconv.NumError))
	}
	return n, nil
}

func main() {
	_, err := parsePort("http")
	fmt.Println(err)
	fmt.Println(AppError(AppErrorTimeout{Value: 2 * time.Second}))
	fmt.Println(NewAppErrorParse(&strconv.NumError{Func: "ParseInt", Num: "0x", Err: strconv.ErrSyntax}))
}
