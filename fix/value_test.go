package fix_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/go-fix/fix"
)

func TestValue_Wire(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		description string
		value       fix.Value
		expected    string
	}{
		{description: "string", value: fix.String("BTC-USD"), expected: "BTC-USD"},
		{description: "empty string", value: fix.String(""), expected: ""},
		{description: "int", value: fix.Int(42), expected: "42"},
		{description: "negative int", value: fix.Int(-7), expected: "-7"},
		{description: "decimal", value: fix.Decimal(decimal.RequireFromString("0.001")), expected: "0.001"},
		{description: "decimal with exponent", value: fix.Decimal(decimal.New(42000, -1)), expected: "4200"},
		{description: "group renders its count", value: fix.GroupOf(fix.Element{}, fix.Element{}), expected: "2"},
		{description: "empty group", value: fix.GroupOf(), expected: "0"},
	}

	for _, test := range tests {
		require.Equal(test.expected, test.value.Wire(), test.description)
	}
}

func TestValue_Kind(t *testing.T) {
	require := require.New(t)

	require.Equal(fix.KindString, fix.String("x").Kind())
	require.Equal(fix.KindInt, fix.Int(1).Kind())
	require.Equal(fix.KindDecimal, fix.Decimal(decimal.Zero).Kind())
	require.Equal(fix.KindGroup, fix.GroupOf().Kind())
}

func TestValue_Group(t *testing.T) {
	require := require.New(t)

	elem := fix.Element{{Name: "Symbol", Value: fix.String("BTC-USD")}}
	group, ok := fix.GroupOf(elem).Group()
	require.True(ok)
	require.Len(group, 1)
	require.Equal("Symbol", group[0][0].Name)

	_, ok = fix.String("x").Group()
	require.False(ok)
}

func TestFieldMap(t *testing.T) {
	require := require.New(t)

	fm := make(fix.FieldMap)
	fm.Set("Symbol", fix.String("BTC-USD"))

	v, ok := fm.Get("Symbol")
	require.True(ok)
	require.Equal("BTC-USD", v.Wire())
	require.Equal("", fm.GetString("Missing"))

	clone := fm.Clone()
	clone.Set("Symbol", fix.String("ETH-USD"))
	require.Equal("BTC-USD", fm.GetString("Symbol"))
	require.Equal("ETH-USD", clone.GetString("Symbol"))
}
