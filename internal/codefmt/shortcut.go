package codefmt

import "go/token"

// Sprintf is a shorthand for [Formatter.Sprintf].
func Sprintf(pkger Pkger, format string, args ...any) string {
	return newByPkger(pkger).Sprintf(format, args...)
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}

// Wrap is a shorthand for [Formatter.Wrap].
func Wrap(pkger Pkger, poser Poser, err error) error {
	return newByPkger(pkger).Wrap(poser, err)
}

type poser struct{ pos token.Pos }

func (p poser) Pos() token.Pos { return p.pos }
func Pos(pos token.Pos) Poser  { return poser{pos} }

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

// Span returns a [Poser] which also implements [Ender].
func Span(pos, end token.Pos) Poser { return span{pos, end} }
