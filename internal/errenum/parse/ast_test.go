package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/errenum/internal/errenum/parse"
)

func TestNames(t *testing.T) {
	tests := []struct {
		enum, variant  string
		typeName, ctor string
		marker, source string
		exported       bool
	}{
		{"GenEnum", "Foo", "GenEnumFoo", "NewGenEnumFoo", "isGenEnum", "GenEnumSource", true},
		{"GenEnum", "foo", "GenEnumFoo", "NewGenEnumFoo", "isGenEnum", "GenEnumSource", true},
		{"Err", "ErrIO", "ErrIO", "NewErrIO", "isErr", "ErrSource", true},
		{"Err", "Errors", "ErrErrors", "NewErrErrors", "isErr", "ErrSource", true},
		{"err", "IO", "errIO", "newErrIO", "isErr", "errSource", false},
		{"err", "errIO", "errIO", "newErrIO", "isErr", "errSource", false},
	}
	for _, tt := range tests {
		t.Run(tt.enum+"."+tt.variant, func(t *testing.T) {
			decls, err := parse.Read("enum "+tt.enum+" { "+tt.variant+"(int) }", 1)
			require.NoError(t, err)
			enum := decls.Enums[0]
			v := enum.Variants[0]

			assert.Equal(t, tt.exported, enum.Exported())
			assert.Equal(t, tt.typeName, v.TypeName())
			assert.Equal(t, tt.ctor, v.ConstructorName())
			assert.Equal(t, tt.marker, enum.MarkerName())
			assert.Equal(t, tt.source, enum.SourceName())
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "auto", parse.ModeAuto.String())
	assert.Equal(t, "bare", parse.ModeBare.String())
	assert.Equal(t, "invalid", parse.Mode(0).String())
}

func TestVariantSource(t *testing.T) {
	decls, err := parse.Read("enum E { auto A(int), bare B(int), auto C(int, string) }", 1)
	require.NoError(t, err)
	enum := decls.Enums[0]

	p, ok := enum.Variants[0].Source()
	assert.True(t, ok)
	assert.Equal(t, "int", p.Text)

	_, ok = enum.Variants[1].Source()
	assert.False(t, ok)

	_, ok = enum.Variants[2].Source()
	assert.False(t, ok)
}
