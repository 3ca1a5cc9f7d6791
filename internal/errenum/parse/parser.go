// Package parse reads errenum directives of a package into enum declarations
// and validates them.
//
// A directive is a block comment starting with "/*errenum":
//
//	/*errenum
//	enum GenEnum {
//		auto Foo(*os.PathError),
//		bare Bar(int),
//	}
//	*/
package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Parser reads and validates enum declarations of a package.
type Parser struct {
	pkg     *packages.Package
	outFile string
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. outFile is the base name of the generated file.
// Declarations in the generated file are ignored.
func New(pkg *packages.Package, outFile string) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg, outFile: outFile}, nil
}

// Parse reads all directives of the package and validates the declarations.
// Enums are returned in declaration order with from declarations applied.
//
// Syntax errors stop parsing. Otherwise, all violations are collected and
// returned together.
func (p *Parser) Parse() ([]*Enum, error) {
	decls, err := p.ReadDirectives()
	if err != nil {
		return nil, err
	}

	errs := p.Resolve(decls)
	errs = errors.Join(errs, p.ApplyFroms(decls.Enums, decls.Froms))
	errs = errors.Join(errs, p.Validate(decls.Enums))
	if errs != nil {
		return nil, errs
	}
	return decls.Enums, nil
}

// IsOutFile reports whether the position is in the generated file.
func (p *Parser) IsOutFile(pos token.Pos) bool {
	if p.outFile == "" || !pos.IsValid() {
		return false
	}
	return filepath.Base(p.pkg.Fset.Position(pos).Filename) == p.outFile
}

// isOutObj reports whether the object is declared in the generated file.
func (p *Parser) isOutObj(obj types.Object) bool { return p.IsOutFile(obj.Pos()) }

// files returns the Go files of the package except the generated file.
func (p *Parser) files() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if p.IsOutFile(file.Pos()) {
			continue
		}
		files = append(files, file)
	}
	return files
}
