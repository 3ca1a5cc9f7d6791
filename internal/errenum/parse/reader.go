package parse

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/errenum/internal/lcs"
	"github.com/sublee/errenum/pkg/errenumerrors"
)

// ReadError is a syntax error at a position of the host file.
type ReadError struct {
	Pos, End token.Pos
	Err      *errenumerrors.SyntaxError
}

func (e *ReadError) Error() string { return e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// Read reads the declarations in src. base is the position of src[0] in the
// host file. It stops at the first syntax error and returns it as a
// [*ReadError].
//
// Declarations are:
//
//	enum Name { [auto|bare] Variant(T, ...), ... }
//	from Name => Variant(T)
func Read(src string, base token.Pos) (Decls, error) {
	r := newReader(src, base)
	decls, err := r.readDecls()
	if err != nil {
		return Decls{}, err
	}
	return decls, nil
}

// item is a scanned token.
type item struct {
	off int // byte offset in src
	tok token.Token
	lit string
}

// text returns the token as written.
func (it item) text() string {
	switch {
	case it.tok == token.EOF:
		return "EOF"
	case it.lit != "":
		return it.lit
	}
	return it.tok.String()
}

type reader struct {
	src   string
	base  token.Pos
	items []item
	i     int
}

func newReader(src string, base token.Pos) *reader {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(src))

	var s scanner.Scanner
	s.Init(file, []byte(src), nil, 0)

	r := &reader{src: src, base: base}
	for {
		pos, tok, lit := s.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			// Automatic semicolons are insignificant.
			continue
		}
		r.items = append(r.items, item{off: file.Offset(pos), tok: tok, lit: lit})
		if tok == token.EOF {
			break
		}
	}
	return r
}

func (r *reader) peek() item { return r.items[r.i] }

func (r *reader) peekAt(n int) item {
	if r.i+n >= len(r.items) {
		return r.items[len(r.items)-1] // EOF
	}
	return r.items[r.i+n]
}

func (r *reader) next() item {
	it := r.items[r.i]
	if it.tok != token.EOF {
		r.i++
	}
	return it
}

// pos converts an offset in src into a position of the host file.
func (r *reader) pos(off int) token.Pos { return r.base + token.Pos(off) }

func (r *reader) end(it item) token.Pos {
	if it.tok == token.EOF {
		return r.pos(it.off)
	}
	return r.pos(it.off + len(it.text()))
}

func (r *reader) errorf(it item, format string, args ...any) error {
	return &ReadError{
		Pos: r.pos(it.off),
		End: r.end(it),
		Err: &errenumerrors.SyntaxError{Token: it.text(), Msg: fmt.Sprintf(format, args...)},
	}
}

func (r *reader) expect(tok token.Token) (item, error) {
	it := r.next()
	if it.tok != tok {
		return it, r.errorf(it, "expected %q", tok.String())
	}
	return it, nil
}

func (r *reader) expectIdent(what string) (item, error) {
	it := r.next()
	if it.tok != token.IDENT {
		return it, r.errorf(it, "expected %s", what)
	}
	if it.lit == "_" {
		return it, r.errorf(it, "%s must not be blank", what)
	}
	return it, nil
}

func (r *reader) readDecls() (Decls, error) {
	var decls Decls
	for {
		it := r.peek()
		switch {
		case it.tok == token.EOF:
			return decls, nil

		case it.tok == token.IDENT && it.lit == "enum":
			enum, err := r.readEnum()
			if err != nil {
				return decls, err
			}
			decls.Enums = append(decls.Enums, enum)

		case it.tok == token.IDENT && it.lit == "from":
			from, err := r.readFrom()
			if err != nil {
				return decls, err
			}
			decls.Froms = append(decls.Froms, from)

		default:
			if it.tok == token.IDENT {
				if s, ok := lcs.Suggest(it.lit, []string{"enum", "from"}); ok {
					return decls, r.errorf(it, "expected declaration; did you mean %q?", s)
				}
			}
			return decls, r.errorf(it, `expected "enum" or "from"`)
		}
	}
}

// readEnum reads:
//
//	enum Name { [auto|bare] Variant(T, ...), ... }
func (r *reader) readEnum() (*Enum, error) {
	kw := r.next() // enum

	name, err := r.expectIdent("enum name")
	if err != nil {
		return nil, err
	}
	if _, err := r.expect(token.LBRACE); err != nil {
		return nil, err
	}

	enum := &Enum{
		Name:    name.lit,
		NamePos: r.pos(name.off),
		Pos:     r.pos(kw.off),
	}

	first := true
	for r.peek().tok != token.RBRACE {
		v, explicit, err := r.readVariant()
		if err != nil {
			return nil, err
		}

		if first {
			enum.Shorthand = !explicit
			first = false
		} else if explicit == enum.Shorthand {
			// Mixing keyword and keyword-less variants is ambiguous.
			if enum.Shorthand {
				return nil, &ReadError{
					Pos: v.ModePos,
					End: v.ModePos + token.Pos(len(v.Mode.String())),
					Err: &errenumerrors.SyntaxError{
						Token: v.Mode.String(),
						Msg:   fmt.Sprintf("unexpected mode in enum %s declared without modes", enum.Name),
					},
				}
			}
			return nil, &ReadError{
				Pos: v.NamePos,
				End: v.End(),
				Err: &errenumerrors.SyntaxError{
					Token: v.Name,
					Msg:   fmt.Sprintf(`expected "auto" or "bare" in enum %s declared with modes`, enum.Name),
				},
			}
		}

		if !explicit {
			v.Mode = ModeAuto
		}
		v.Enum = enum
		enum.Variants = append(enum.Variants, v)

		if r.peek().tok == token.RBRACE {
			break
		}
		if _, err := r.expect(token.COMMA); err != nil {
			return nil, err
		}
	}

	rbrace := r.next()
	enum.End = r.end(rbrace)
	return enum, nil
}

// readVariant reads:
//
//	[auto|bare] Variant(T, ...)
//
// explicit reports whether the mode keyword was given.
func (r *reader) readVariant() (v *Variant, explicit bool, err error) {
	v = &Variant{}

	// "auto" and "bare" are keywords only when followed by an identifier.
	// "auto(string)" is a variant named "auto".
	if it := r.peek(); it.tok == token.IDENT && r.peekAt(1).tok == token.IDENT {
		switch it.lit {
		case "auto":
			v.Mode = ModeAuto
		case "bare":
			v.Mode = ModeBare
		default:
			if s, ok := lcs.Suggest(it.lit, []string{"auto", "bare"}); ok {
				return nil, false, r.errorf(it, "unknown mode; did you mean %q?", s)
			}
			return nil, false, r.errorf(it, `unknown mode; expected "auto" or "bare"`)
		}
		v.ModePos = r.pos(it.off)
		explicit = true
		r.next()
	}

	name, err := r.expectIdent("variant name")
	if err != nil {
		return nil, false, err
	}
	v.Name = name.lit
	v.NamePos = r.pos(name.off)

	if _, err := r.expect(token.LPAREN); err != nil {
		return nil, false, err
	}
	for r.peek().tok != token.RPAREN {
		p, err := r.readTypeRef()
		if err != nil {
			return nil, false, err
		}
		v.Payloads = append(v.Payloads, p)

		if r.peek().tok == token.RPAREN {
			break
		}
		if _, err := r.expect(token.COMMA); err != nil {
			return nil, false, err
		}
	}
	r.next() // )

	return v, explicit, nil
}

// readFrom reads:
//
//	from Name => Variant(T)
func (r *reader) readFrom() (*From, error) {
	kw := r.next() // from

	name, err := r.expectIdent("enum name")
	if err != nil {
		return nil, err
	}

	// "=>" is scanned as "=" and ">".
	assign := r.next()
	gtr := r.peek()
	if assign.tok != token.ASSIGN || gtr.tok != token.GTR || gtr.off != assign.off+1 {
		return nil, r.errorf(assign, `expected "=>"`)
	}
	r.next()

	variant, err := r.expectIdent("variant name")
	if err != nil {
		return nil, err
	}
	if _, err := r.expect(token.LPAREN); err != nil {
		return nil, err
	}
	p, err := r.readTypeRef()
	if err != nil {
		return nil, err
	}
	if r.peek().tok == token.COMMA {
		r.next()
	}
	rparen, err := r.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}

	return &From{
		Pos:        r.pos(kw.off),
		End:        r.end(rparen),
		Enum:       name.lit,
		EnumPos:    r.pos(name.off),
		Variant:    variant.lit,
		VariantPos: r.pos(variant.off),
		Payload:    p,
	}, nil
}

// readTypeRef reads a Go type expression. It consumes tokens until a comma or
// a closing parenthesis outside of any brackets.
func (r *reader) readTypeRef() (*Payload, error) {
	first := r.peek()
	last := first
	depth, n := 0, 0

loop:
	for {
		it := r.peek()
		switch it.tok {
		case token.EOF:
			return nil, r.errorf(it, `expected ")"`)
		case token.ILLEGAL:
			return nil, r.errorf(it, "illegal character")
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if depth == 0 {
				break loop
			}
			depth--
		case token.COMMA:
			if depth == 0 {
				break loop
			}
		}
		last = r.next()
		n++
	}

	if n == 0 {
		return nil, r.errorf(first, "expected type")
	}

	start, end := first.off, last.off+len(last.text())
	text := r.src[start:end]

	expr, err := parser.ParseExpr(text)
	if err != nil {
		return nil, &ReadError{
			Pos: r.pos(start),
			End: r.pos(end),
			Err: &errenumerrors.SyntaxError{Token: text, Msg: "invalid type expression"},
		}
	}

	return &Payload{
		Expr: unparen(expr),
		Text: text,
		Pos:  r.pos(start),
		End:  r.pos(end),
	}, nil
}

// unparen removes all parentheses in the expression.
//
//	(*os.PathError) => *os.PathError
//	[](string)      => []string
func unparen(expr ast.Expr) ast.Expr {
	return astutil.Apply(expr, func(c *astutil.Cursor) bool {
		if paren, ok := c.Node().(*ast.ParenExpr); ok {
			c.Replace(unparen(paren.X))
			return false
		}
		return true
	}, nil).(ast.Expr)
}
