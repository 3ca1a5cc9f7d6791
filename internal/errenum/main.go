package errenuminternal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/errenum/internal/codefmt"
)

var Version string

// Main is the main entry point for errenum. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. If any error occurs,
// it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded packages", "count", len(pkgs))

	// Packages are independent of each other. Each goroutine owns its
	// generator.
	type result struct {
		out   string
		code  []byte
		files int
		err   error
	}
	results := make([]result, len(pkgs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, pkg := range pkgs {
		g.Go(func() error {
			code, err := generate(pkg, outFile)
			if err != nil {
				results[i].err = err
				return nil
			}
			if len(code) == 0 {
				slog.Debug("no enums", "pkg", pkg.ID)
				return nil
			}

			outDir := filepath.Dir(pkg.GoFiles[0])
			if rel, err := filepath.Rel(wd, outDir); err == nil {
				outDir = rel
			}
			results[i].out = filepath.Join(outDir, outFile)
			results[i].code = code
			results[i].files = len(pkg.GoFiles)
			slog.Debug("generated", "pkg", pkg.ID, "out", results[i].out, "bytes", len(code))
			return nil
		})
	}
	_ = g.Wait()

	// A package and its test variant share the output file. The variant with
	// more files, which includes the _test.go files, wins.
	outs := make(map[string][]byte)
	files := make(map[string]int)
	var errs error
	for _, r := range results {
		if r.err != nil {
			errs = errors.Join(errs, r.err)
			continue
		}
		if r.out == "" || files[r.out] > r.files {
			continue
		}
		outs[r.out] = r.code
		files[r.out] = r.files
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// generate runs the generator for a package.
func generate(pkg *packages.Package, outFile string) ([]byte, error) {
	if len(pkg.GoFiles) == 0 {
		return nil, nil
	}

	eg, err := New(pkg, outFile)
	if err != nil {
		return nil, fmt.Errorf("pkg %q: %w", pkg.ID, err)
	}
	if err := eg.Build(); err != nil {
		return nil, err
	}

	// The generated file of an external test package would share the
	// directory of the package under test without a _test.go suffix.
	if enums := eg.Enums(); len(enums) != 0 && isExternalTest(pkg) {
		return nil, codefmt.Errorf(eg.p, codefmt.Pos(enums[0].NamePos),
			"enum %s: enums in external test package %s are not supported", enums[0].Name, pkg.Name)
	}
	return eg.Generate(), nil
}

// isExternalTest reports whether pkg is an external test package such as
// "p_test [p.test]".
func isExternalTest(pkg *packages.Package) bool {
	if !strings.HasSuffix(pkg.Name, "_test") {
		return false
	}
	for _, file := range pkg.GoFiles {
		if !strings.HasSuffix(file, "_test.go") {
			return false
		}
	}
	return true
}

// load loads packages. Type errors are tolerated because packages may refer
// to declarations which are not generated yet. Other errors are fatal.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError {
				slog.Debug("tolerated type error", "pkg", pkg.ID, "err", err.Error())
				continue
			}

			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// reorderErrors flattens joined errors and sorts them by message. Identical
// messages, reported by test variants of a package, are merged.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having Unwrap()
			// []error method. The underlying errors could be retrieved using
			// the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the original
			// error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	list = slices.CompactFunc(list, func(a, b error) bool {
		return a.Error() == b.Error()
	})
	return errors.Join(list...)
}
