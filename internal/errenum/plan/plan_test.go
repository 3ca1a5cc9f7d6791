package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/errenum/internal/errenum/errenumtest"
	"github.com/sublee/errenum/internal/errenum/parse"
	"github.com/sublee/errenum/internal/errenum/plan"
)

func parseEnum(t *testing.T, src string) *parse.Enum {
	t.Helper()
	p, err := parse.New(errenumtest.LoadSrc(t, src), "errenum_gen.go")
	require.NoError(t, err)
	enums, err := p.Parse()
	require.NoError(t, err)
	require.Len(t, enums, 1)
	return enums[0]
}

func TestResolve(t *testing.T) {
	enum := parseEnum(t, `package p

/*errenum
enum GenEnum {
	auto Foo(string),
	bare Bar(int),
	auto Baz(error),
	bare Qux(),
}
*/
`)
	convs := plan.Resolve(enum)
	require.Len(t, convs, 4)

	assert.Equal(t, plan.EmitConversion, convs[0].Kind)
	assert.Equal(t, "Foo", convs[0].Variant.Name)
	assert.Equal(t, "string", convs[0].Source.String())
	assert.Equal(t, "NewGenEnumFoo", convs[0].FuncName)
	assert.True(t, convs[0].Generic)

	assert.Equal(t, plan.NoConversion, convs[1].Kind)
	assert.Equal(t, "Bar", convs[1].Variant.Name)
	assert.Empty(t, convs[1].FuncName)
	assert.False(t, convs[1].Source.IsValid())

	assert.Equal(t, plan.EmitConversion, convs[2].Kind)
	assert.False(t, convs[2].Generic)

	assert.Equal(t, plan.NoConversion, convs[3].Kind)
}

func TestResolveShorthand(t *testing.T) {
	enum := parseEnum(t, `package p

/*errenum enum AnError { Foo(string), Bar(int) } */
`)
	convs := plan.Resolve(enum)
	assert.Len(t, plan.Emitted(convs), 2)
	assert.Len(t, plan.Generic(convs), 2)
}

func TestResolveAllBare(t *testing.T) {
	enum := parseEnum(t, `package p

/*errenum enum NoopEnum { bare Foo(string), bare Bar(int) } */
`)
	convs := plan.Resolve(enum)
	assert.Len(t, convs, 2)
	assert.Empty(t, plan.Emitted(convs))
	assert.Empty(t, plan.Generic(convs))
}

func TestResolveOnlyInterfaces(t *testing.T) {
	enum := parseEnum(t, `package p

/*errenum enum E { auto Foo(error), auto Bar(interface{ Timeout() bool }) } */
`)
	convs := plan.Resolve(enum)
	assert.Len(t, plan.Emitted(convs), 2)
	assert.Empty(t, plan.Generic(convs))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "EmitConversion", plan.EmitConversion.String())
	assert.Equal(t, "NoConversion", plan.NoConversion.String())
}
