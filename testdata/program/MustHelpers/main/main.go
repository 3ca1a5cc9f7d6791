package main

import (
	"fmt"
	"strconv"

	"github.com/sublee/errenum/pkg/must"
)

/*errenum
enum ConfigError {
	auto Num(*strconv.NumError),
	bare Missing(string),
}
*/

func lookup(env map[string]string, key string) (int, error) {
	s, ok := env[key]
	if !ok {
		return 0, ConfigErrorMissing{Value: key}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ConfigErrorFrom(err.(*strconv.NumError))
	}
	return n, nil
}

func main() {
	env := map[string]string{"PORT": "8080", "WORKERS": "many"}

	fmt.Println(must.Get(lookup(env, "PORT")))
	fmt.Println(must.Getf(lookup(env, "PORT"))("lookup %s", "PORT") + 1)

	if _, ok := must.Try(lookup(env, "WORKERS")); !ok {
		fmt.Println("WORKERS is not a number")
	}

	func() {
		defer func() {
			fmt.Println(recover().(*must.Error).Err)
		}()
		must.Get(lookup(env, "HOST"))
	}()

	func() {
		defer func() {
			fmt.Println(recover().(*must.Error).Msg)
		}()
		must.Getf(lookup(env, "WORKERS"))("lookup %s", "WORKERS")
	}()
}
