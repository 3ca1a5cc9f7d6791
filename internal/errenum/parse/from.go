package parse

import (
	"errors"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/internal/lcs"
	"github.com/sublee/errenum/pkg/errenumerrors"
)

// ApplyFroms makes the variants named by from declarations auto. A from
// declaration may refer to an enum declared in another directive of the
// package.
//
//	/*errenum
//	enum GenEnum { bare Foo(*os.PathError) }
//	from GenEnum => Foo(*os.PathError)
//	*/
func (p *Parser) ApplyFroms(enums []*Enum, froms []*From) error {
	byName := make(map[string]*Enum)
	var names []string
	for _, enum := range enums {
		if _, ok := byName[enum.Name]; ok {
			// Reported as a duplicate enum name.
			continue
		}
		byName[enum.Name] = enum
		names = append(names, enum.Name)
	}

	var errs error
	for _, from := range froms {
		enum, ok := byName[from.Enum]
		if !ok {
			err := p.fromErrorf(from, codefmt.Span(from.EnumPos, from.EnumPos+tokenLen(from.Enum)), errenumerrors.ErrUnknownTarget,
				"enum %s is not declared%s", from.Enum, didYouMean(from.Enum, names))
			errs = errors.Join(errs, err)
			continue
		}

		v, ok := enum.Variant(from.Variant)
		if !ok {
			err := p.fromErrorf(from, codefmt.Span(from.VariantPos, from.VariantPos+tokenLen(from.Variant)), errenumerrors.ErrUnknownTarget,
				"variant %s is not declared%s", from.Variant, didYouMean(from.Variant, enum.VariantNames()))
			errs = errors.Join(errs, err)
			continue
		}

		if len(v.Payloads) != 1 {
			err := p.fromErrorf(from, codefmt.Span(from.Pos, from.End), errenumerrors.ErrConversionMismatch,
				"variant %s must have exactly one payload type to convert from %s, got %d", v.Name, from.Payload.Text, len(v.Payloads))
			errs = errors.Join(errs, err)
			continue
		}

		want, got := v.Payloads[0].Type, from.Payload.Type
		if !want.IsValid() || !got.IsValid() {
			// Reported as an unknown type.
			continue
		}
		if !want.Identical(got) {
			err := p.fromErrorf(from, codefmt.Span(from.Payload.Pos, from.Payload.End), errenumerrors.ErrConversionMismatch,
				"cannot convert from %t into variant %s with payload %t", got, v.Name, want)
			errs = errors.Join(errs, err)
			continue
		}

		v.Mode = ModeAuto
		v.From = from
	}
	return errs
}

func (p *Parser) fromErrorf(from *From, poser codefmt.Poser, rule error, format string, args ...any) error {
	return codefmt.Wrap(p, poser, &errenumerrors.ValidationError{
		Rule:     rule,
		Enum:     from.Enum,
		Variants: []string{from.Variant},
		Msg:      codefmt.Sprintf(p, format, args...),
	})
}

// didYouMean returns a suggestion suffix for an unknown name.
func didYouMean(name string, candidates []string) string {
	if s, ok := lcs.Suggest(name, candidates); ok {
		return "; did you mean " + s + "?"
	}
	return ""
}
