package parse

import (
	"errors"
	"go/ast"
	"go/token"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/internal/typeinfo"
	"github.com/sublee/errenum/pkg/errenumerrors"
)

// Validate checks the structural rules of the enums. It collects all
// violations instead of stopping at the first one.
//
// Payload types must be resolved and from declarations applied before
// validation.
func (p *Parser) Validate(enums []*Enum) error {
	var errs error
	errs = errors.Join(errs, p.validateEnumNames(enums))
	for _, enum := range enums {
		errs = errors.Join(errs, p.validateVariantNames(enum))
		errs = errors.Join(errs, p.validateArity(enum))
		errs = errors.Join(errs, p.validateConversions(enum))
	}
	errs = errors.Join(errs, p.validateNameConflicts(enums))
	return errs
}

func (p *Parser) errorf(poser codefmt.Poser, rule error, enum string, variants []string, format string, args ...any) error {
	return codefmt.Wrap(p, poser, &errenumerrors.ValidationError{
		Rule:     rule,
		Enum:     enum,
		Variants: variants,
		Msg:      codefmt.Sprintf(p, format, args...),
	})
}

// validateEnumNames checks that enum names are unique in the package.
func (p *Parser) validateEnumNames(enums []*Enum) error {
	var errs error
	seen := linkedhashmap.New() // name -> *Enum
	for _, enum := range enums {
		if first, ok := seen.Get(enum.Name); ok {
			err := p.errorf(enumNameSpan(enum), errenumerrors.ErrDuplicateEnumName, "", nil,
				"%s is already declared at %b", enum.Name, first.(*Enum).NamePos)
			errs = errors.Join(errs, err)
			continue
		}
		seen.Put(enum.Name, enum)
	}
	return errs
}

// validateVariantNames checks that variant names are unique in the enum.
func (p *Parser) validateVariantNames(enum *Enum) error {
	var errs error
	seen := linkedhashmap.New() // name -> *Variant
	for _, v := range enum.Variants {
		if first, ok := seen.Get(v.Name); ok {
			err := p.errorf(v, errenumerrors.ErrDuplicateVariantName, enum.Name, []string{v.Name},
				"variant %s is already declared at %b", v.Name, first.(*Variant).NamePos)
			errs = errors.Join(errs, err)
			continue
		}
		seen.Put(v.Name, v)
	}
	return errs
}

// validateArity checks that auto variants have exactly one payload type.
func (p *Parser) validateArity(enum *Enum) error {
	var errs error
	for _, v := range enum.Variants {
		if !v.IsAuto() || len(v.Payloads) == 1 {
			continue
		}
		err := p.errorf(v, errenumerrors.ErrArityMismatch, enum.Name, []string{v.Name},
			"auto variant %s must have exactly one payload type, got %d", v.Name, len(v.Payloads))
		errs = errors.Join(errs, err)
	}
	return errs
}

// validateConversions checks that no two auto variants convert from the same
// type. Aliases of a type are the same type.
func (p *Parser) validateConversions(enum *Enum) error {
	var errs error
	idx := typeinfo.NewIndex[*Variant]()
	for _, v := range enum.Variants {
		payload, ok := v.Source()
		if !ok || !payload.Type.IsValid() {
			continue
		}

		first, ok := idx.Put(payload.Type, v)
		if ok {
			continue
		}
		err := p.errorf(codefmt.Span(payload.Pos, payload.End), errenumerrors.ErrAmbiguousConversion, enum.Name, []string{first.Name, v.Name},
			"auto variants %s and %s both convert from %t", first.Name, v.Name, payload.Type)
		errs = errors.Join(errs, err)
	}
	return errs
}

// generated is an identifier which the generated code declares at the
// package level.
type generated struct {
	owner string
	span  codefmt.Poser
	enum  string
	vars  []string
}

// validateNameConflicts checks that the generated identifiers collide
// neither with each other nor with declarations of the package. Declarations
// in the generated file do not count.
func (p *Parser) validateNameConflicts(enums []*Enum) error {
	ns := codefmt.NewNS(p.pkg.Types.Scope(), p.isOutObj)

	names := linkedhashmap.New() // name -> []generated
	add := func(name string, g generated) {
		var gs []generated
		if v, ok := names.Get(name); ok {
			gs = v.([]generated)
		}
		names.Put(name, append(gs, g))
	}

	for _, enum := range enums {
		span := enumNameSpan(enum)
		add(enum.Name, generated{"enum " + enum.Name, span, enum.Name, nil})
		if enum.HasGenericFrom() {
			add(enum.SourceName(), generated{"source constraint of enum " + enum.Name, span, enum.Name, nil})
			add(enum.FromName(), generated{"conversion function of enum " + enum.Name, span, enum.Name, nil})
		}
		for _, v := range enum.Variants {
			owner := "variant " + enum.Name + "." + v.Name
			add(v.TypeName(), generated{owner, v, enum.Name, []string{v.Name}})
			if v.IsAuto() {
				add(v.ConstructorName(), generated{"constructor of " + owner, v, enum.Name, []string{v.Name}})
			}
		}
	}

	imports := p.importNames()

	var errs error
	it := names.Iterator()
	for it.Next() {
		name := it.Key().(string)
		gs := it.Value().([]generated)

		if ns.Has(name) {
			obj := p.pkg.Types.Scope().Lookup(name)
			err := p.errorf(gs[0].span, errenumerrors.ErrNameConflict, gs[0].enum, gs[0].vars,
				"%s of %s is already declared at %b", name, gs[0].owner, obj.Pos())
			errs = errors.Join(errs, err)
		} else if spec, ok := imports[name]; ok {
			err := p.errorf(gs[0].span, errenumerrors.ErrNameConflict, gs[0].enum, gs[0].vars,
				"%s of %s conflicts with the import at %b", name, gs[0].owner, spec.Pos())
			errs = errors.Join(errs, err)
		}

		for _, g := range gs[1:] {
			if g.owner == gs[0].owner {
				// The same declaration is repeated. It is reported as a
				// duplicate name.
				continue
			}
			err := p.errorf(g.span, errenumerrors.ErrNameConflict, g.enum, g.vars,
				"%s of %s conflicts with %s", name, g.owner, gs[0].owner)
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// importNames maps the names of imported packages in the files of the package
// to their first import spec. Blank and dot imports are excluded.
func (p *Parser) importNames() map[string]*ast.ImportSpec {
	names := make(map[string]*ast.ImportSpec)
	for _, file := range p.files() {
		for _, spec := range file.Imports {
			var name string
			if pkgName := p.pkg.TypesInfo.PkgNameOf(spec); pkgName != nil {
				name = pkgName.Name()
			} else if spec.Name != nil {
				name = spec.Name.Name
			}
			if name == "" || name == "_" || name == "." {
				continue
			}
			if _, ok := names[name]; !ok {
				names[name] = spec
			}
		}
	}
	return names
}

func enumNameSpan(enum *Enum) codefmt.Poser {
	return codefmt.Span(enum.NamePos, enum.NamePos+tokenLen(enum.Name))
}

func tokenLen(s string) token.Pos { return token.Pos(len(s)) }
