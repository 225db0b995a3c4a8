package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquare_Notation(t *testing.T) {
	tests := []struct {
		field string
		index int
	}{
		{field: "a1", index: 0},
		{field: "h1", index: 7},
		{field: "d3", index: 19},
		{field: "e6", index: 44},
		{field: "h8", index: 63},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			square, err := SquareFromString(test.field)
			require.NoError(t, err)
			require.Equal(t, test.index, square.Index())
			require.Equal(t, test.field, square.String())
			require.Equal(t, square, SquareFromIndex(test.index))
		})
	}
}

func TestSquareFromString_Invalid(t *testing.T) {
	for _, field := range []string{"", "a", "a9", "i1", "11", "aa", "d33"} {
		t.Run(field, func(t *testing.T) {
			_, err := SquareFromString(field)
			require.Error(t, err)
		})
	}
}

func TestSide_OpponentIsInvolutive(t *testing.T) {
	for _, side := range []Side{Black, White} {
		require.NotEqual(t, side, side.Opponent())
		require.Equal(t, side, side.Opponent().Opponent())
	}
}

func TestParseSide(t *testing.T) {
	for _, test := range []struct {
		input string
		want  Side
	}{
		{"B", Black}, {"b", Black}, {"W", White}, {"w", White},
	} {
		side, err := ParseSide(test.input)
		require.NoError(t, err)
		require.Equal(t, test.want, side)
	}

	_, err := ParseSide("X")
	require.Error(t, err)
}
