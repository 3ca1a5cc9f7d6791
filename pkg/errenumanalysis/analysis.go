// Package errenumanalysis provides an analyzer reporting errenum directive
// errors and stale generated files. It can run under any driver of the Go
// analysis protocol, such as singlechecker or golangci-lint.
package errenumanalysis

import (
	"bytes"
	"path/filepath"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/errenum/internal/codefmt"
	errenuminternal "github.com/sublee/errenum/internal/errenum"
)

// Analyzer validates the errenum directives in the package.
var Analyzer = &analysis.Analyzer{
	Name:             "errenum",
	Doc:              "linter for errenum directives and generated files",
	Run:              run,
	RunDespiteErrors: true,
}

var outFile string

func init() {
	Analyzer.Flags.StringVar(&outFile, "out", errenuminternal.DefaultOutFile, "name of the generated file in each package")
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	eg, err := errenuminternal.New(pkg, outFile)
	if err != nil {
		return nil, err
	}

	if err := eg.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
		return nil, nil
	}

	checkStale(pass, eg.Generate())
	return nil, nil
}

// checkStale reports the generated file of the package if its content differs
// from code. Packages without a generated file are not reported.
func checkStale(pass *analysis.Pass, code []byte) {
	for _, f := range pass.Files {
		filename := pass.Fset.File(f.Pos()).Name()
		if filepath.Base(filename) != outFile {
			continue
		}

		have, err := pass.ReadFile(filename)
		if err != nil {
			return
		}
		if stale(have, code) {
			pass.Report(analysis.Diagnostic{
				Pos:     f.Package,
				End:     f.Name.End(),
				Message: "generated file is stale; run errenum to regenerate",
			})
		}
		return
	}
}

// stale reports whether the generated file is different from the code to
// generate. The header line is ignored because it carries the version of the
// generator.
func stale(have, want []byte) bool {
	return !bytes.Equal(stripHeader(have), stripHeader(want))
}

var header = []byte("// Code generated ")

func stripHeader(code []byte) []byte {
	if !bytes.HasPrefix(code, header) {
		return code
	}
	if i := bytes.IndexByte(code, '\n'); i >= 0 {
		return code[i+1:]
	}
	return nil
}
