package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/sublee/errenum/internal/codefmt"
)

const directivePrefix = "/*errenum"

// Directive is a block comment holding errenum declarations.
type Directive struct {
	Comment *ast.Comment
	File    *ast.File
}

// IsDirective reports whether the comment is an errenum directive. The prefix
// must be followed by white space or the end of the comment.
//
//	/*errenum enum E { A(int) } */  => true
//	/*errenumerate */                => false
//	// errenum                       => false
func IsDirective(c *ast.Comment) bool {
	rest, ok := strings.CutPrefix(c.Text, directivePrefix)
	if !ok {
		return false
	}
	if rest == "" || rest == "*/" {
		return true
	}
	switch rest[0] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Body returns the declaration text and its position in the host file.
func (d Directive) Body() (string, token.Pos) {
	body := strings.TrimPrefix(d.Comment.Text, directivePrefix)
	body = strings.TrimSuffix(body, "*/")
	return body, d.Comment.Slash + token.Pos(len(directivePrefix))
}

// Directives finds all directives in the package in file order.
func (p *Parser) Directives() []Directive {
	var dirs []Directive
	for _, file := range p.files() {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if IsDirective(c) {
					dirs = append(dirs, Directive{Comment: c, File: file})
				}
			}
		}
	}
	return dirs
}

// ReadDirectives reads all directives in the package. Each directive reports
// at most one syntax error.
func (p *Parser) ReadDirectives() (Decls, error) {
	var all Decls
	var errs error
	for _, dir := range p.Directives() {
		body, base := dir.Body()
		decls, err := Read(body, base)
		if err != nil {
			var rerr *ReadError
			if errors.As(err, &rerr) {
				err = codefmt.Wrap(p, codefmt.Span(rerr.Pos, rerr.End), rerr.Err)
			}
			errs = errors.Join(errs, err)
			continue
		}

		for _, enum := range decls.Enums {
			enum.File = dir.File
		}
		for _, from := range decls.Froms {
			from.File = dir.File
		}
		all.Enums = append(all.Enums, decls.Enums...)
		all.Froms = append(all.Froms, decls.Froms...)
	}
	return all, errs
}
