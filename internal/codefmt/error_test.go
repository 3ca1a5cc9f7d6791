package codefmt_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/errenum/internal/codefmt"
	"github.com/sublee/errenum/pkg/errenumerrors"
)

type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("test.go", -1, 100).AddLine(10)
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "simple error")
	assert.Equal(t, "simple error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "error")
	assert.Equal(t, "test.go:1:1: error", err.Error())
}

func TestErrorfSecondLine(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{13}, "error")
	assert.Equal(t, "test.go:2:3: error", err.Error())
}

func TestErrorfTokenPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, codefmt.Pos(12), "enum %s: error", "E")
	assert.Equal(t, "test.go:2:2: enum E: error", err.Error())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "error: %w", assert.AnError)
	})
}

func TestWrap(t *testing.T) {
	verr := &errenumerrors.ValidationError{
		Rule: errenumerrors.ErrArityMismatch,
		Enum: "Bad2",
	}
	err := codefmt.Wrap(pkger{}, poser{1}, verr)
	assert.Equal(t, "test.go:1:1: enum Bad2: arity mismatch", err.Error())
	assert.ErrorIs(t, err, errenumerrors.ErrArityMismatch)

	var codeErr *codefmt.CodeError
	if assert.True(t, errors.As(err, &codeErr)) {
		assert.Equal(t, token.Pos(1), codeErr.Pos())
	}
}
