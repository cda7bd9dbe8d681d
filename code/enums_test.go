package code

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowType_Lookup(t *testing.T) {
	actual, ok := WindowTypeByLiteral("sliding")
	assert.True(t, ok)
	assert.Equal(t, WindowTypeSliding, actual)

	_, ok = WindowTypeByLiteral("unknown-literal")
	assert.False(t, ok)

	actual, ok = WindowTypeByValue(1)
	assert.True(t, ok)
	assert.Equal(t, WindowTypeSliding, actual)

	_, ok = WindowTypeByValue(2)
	assert.False(t, ok)
	_, ok = WindowTypeByValue(-1)
	assert.False(t, ok)

	actual, ok = WindowTypeByName("tumbling")
	assert.True(t, ok)
	assert.Equal(t, WindowTypeTumbling, actual)
	assert.Equal(t, 0, actual.Value())
}

func TestEnums_LiteralSets(t *testing.T) {
	var testCases = []struct {
		description string
		actual      []string
		expect      []string
	}{
		{description: "composite modifier", actual: literalsOf(CompositeModifierKinds()), expect: []string{"public"}},
		{description: "expression mode", actual: literalsOf(CompositeParameterExpressionModeKinds()), expect: []string{"operator", "function", "attribute", "expression", "type"}},
		{description: "function modifier", actual: literalsOf(FunctionModifierKinds()), expect: []string{"public", "stateful"}},
		{description: "function parameter modifier", actual: literalsOf(FunctionParameterModifierKinds()), expect: []string{"mutable"}},
		{description: "type modifier", actual: literalsOf(TypeModifierKinds()), expect: []string{"public", "static"}},
		{description: "window policy kind", actual: literalsOf(WindowPolicyKinds()), expect: []string{"count", "time", "delta", "punct"}},
		{description: "window type", actual: literalsOf(WindowTypes()), expect: []string{"tumbling", "sliding"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, testCase.actual)
		})
	}
}

func literalsOf[E interface{ Literal() string }](values []E) []string {
	var ret []string
	for _, value := range values {
		ret = append(ret, value.Literal())
	}
	return ret
}

func TestEnums_Text(t *testing.T) {
	var kind WindowPolicyKind
	assert.Nil(t, kind.UnmarshalText([]byte("delta")))
	assert.Equal(t, WindowPolicyDelta, kind)

	err := kind.UnmarshalText([]byte("sliding"))
	assert.True(t, errors.Is(err, ErrUnknownLiteral))
	var literalErr *UnknownLiteralError
	assert.True(t, errors.As(err, &literalErr))
	assert.Equal(t, "windowPolicyKindEnumType", literalErr.Enum)

	_, err = WindowPolicyKind(9).MarshalText()
	assert.NotNil(t, err)

	text, err := ExpressionModeAttribute.MarshalText()
	assert.Nil(t, err)
	assert.Equal(t, "attribute", string(text))
	assert.Equal(t, "stateful", FunctionModifierStateful.String())
}

func TestEnums_Registry(t *testing.T) {
	enum := Schema().Enum("windowPolicyKindEnumType")
	if !assert.NotNil(t, enum) {
		return
	}
	assert.Equal(t, []string{"count", "time", "delta", "punct"}, enum.Literals)
	assert.Len(t, Schema().Enums(), 7)
}
