// Package errenumtest loads Go sources into type-checked packages for tests.
package errenumtest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// PkgPath is the import path of packages loaded by this package.
const PkgPath = "example.com/p"

// File is a Go source file.
type File struct {
	Name string
	Src  string
}

// Load parses and type-checks the files as a package. Type errors are
// ignored because the files usually refer to declarations which are not
// generated yet.
func Load(t testing.TB, files ...File) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	var syntax []*ast.File
	for _, f := range files {
		file, err := parser.ParseFile(fset, f.Name, f.Src, parser.ParseComments|parser.SkipObjectResolution)
		require.NoError(t, err)
		syntax = append(syntax, file)
	}
	require.NotEmpty(t, syntax)

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	conf := types.Config{
		Importer: importer.Default(),
		Error:    func(error) {},
	}
	pkg, _ := conf.Check(PkgPath, fset, syntax, info)

	return &packages.Package{
		ID:        PkgPath,
		Name:      pkg.Name(),
		PkgPath:   PkgPath,
		Fset:      fset,
		Syntax:    syntax,
		Types:     pkg,
		TypesInfo: info,
	}
}

// LoadSrc loads a package of a single file named "p.go".
func LoadSrc(t testing.TB, src string) *packages.Package {
	t.Helper()
	return Load(t, File{Name: "p.go", Src: src})
}
