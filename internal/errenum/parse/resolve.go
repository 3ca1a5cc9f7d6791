package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/internal/typeinfo"
	"github.com/sublee/errenum/pkg/errenumerrors"
)

// Resolve resolves the payload types of all declarations. Payloads which
// cannot be resolved keep an invalid type.
func (p *Parser) Resolve(decls Decls) error {
	var errs error
	for _, enum := range decls.Enums {
		for _, v := range enum.Variants {
			for _, payload := range v.Payloads {
				if err := p.resolvePayload(payload); err != nil {
					errs = errors.Join(errs, p.unknownType(payload, enum.Name, v.Name, err))
				}
			}
		}
	}
	for _, from := range decls.Froms {
		if err := p.resolvePayload(from.Payload); err != nil {
			errs = errors.Join(errs, p.unknownType(from.Payload, from.Enum, from.Variant, err))
		}
	}
	return errs
}

func (p *Parser) unknownType(payload *Payload, enum, variant string, err error) error {
	return codefmt.Wrap(p, codefmt.Span(payload.Pos, payload.End), &errenumerrors.ValidationError{
		Rule:     errenumerrors.ErrUnknownType,
		Enum:     enum,
		Variants: []string{variant},
		Msg:      fmt.Sprintf("%s: %s", payload.Text, err.Error()),
	})
}

func (p *Parser) resolvePayload(payload *Payload) error {
	typ, err := p.ResolveType(payload.Pos, payload.Expr)
	if err != nil {
		return err
	}
	payload.Type = typeinfo.TypeOf(typ)
	return nil
}

// ResolveType evaluates a type expression in the innermost scope containing
// pos. Imports of the file at pos are visible.
func (p *Parser) ResolveType(pos token.Pos, expr ast.Expr) (types.Type, error) {
	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	if err := types.CheckExpr(p.pkg.Fset, p.pkg.Types, pos, expr, info); err != nil {
		// Positions of expr are not related to the file set. Drop them.
		var terr types.Error
		if errors.As(err, &terr) {
			return nil, errors.New(terr.Msg)
		}
		return nil, err
	}

	tv := info.Types[expr]
	switch {
	case !tv.IsType():
		return nil, errors.New("not a type")
	case tv.Type == nil || tv.Type == types.Typ[types.Invalid]:
		return nil, errors.New("invalid type")
	case typeinfo.IsGeneric(tv.Type):
		return nil, errors.New("generic type must be instantiated")
	case typeinfo.IsConstraint(tv.Type):
		return nil, errors.New("constraint interface cannot be a payload type")
	}
	return tv.Type, nil
}
