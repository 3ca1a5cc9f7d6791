// Command example reads port numbers from files and reports failures as
// ConfigError.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sublee/errenum/pkg/must"
)

/*errenum
enum ConfigError {
	auto Read(*fs.PathError),
	auto Parse(*strconv.NumError),
	bare Range(string, int),
}
*/

func readPort(path string) (int, ConfigError) {
	data, err := os.ReadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			panic(err)
		}
		return 0, ConfigErrorFrom(pathErr)
	}

	port, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, ConfigErrorFrom(err.(*strconv.NumError))
	}
	if port < 1 || port > 65535 {
		return 0, ConfigErrorRange{V0: "port", V1: port}
	}
	return port, nil
}

func main() {
	dir := must.Get(os.MkdirTemp("", "errenum-example"))
	defer os.RemoveAll(dir)

	for i, content := range []string{"8080", "http", "70000"} {
		path := filepath.Join(dir, strconv.Itoa(i))
		must.NoError(os.WriteFile(path, []byte(content), 0o644))

		port, err := readPort(path)
		if err != nil {
			// Output: ConfigError.Parse(strconv.Atoi: parsing "http": invalid syntax)
			// Output: ConfigError.Range(port, 70000)
			fmt.Println(err)
			continue
		}
		// Output: 8080
		fmt.Println(port)
	}

	_, err := readPort(filepath.Join(dir, "missing"))
	switch err := err.(type) {
	case ConfigErrorRead:
		// Output: missing file: true
		fmt.Println("missing file:", errors.Is(err, fs.ErrNotExist))
	default:
		fmt.Printf("%#v\n", err)
	}
}
