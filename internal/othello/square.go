package othello

import (
	"fmt"
	"strings"
)

// Square is a cell on the 8x8 board. Row 0 is the top row ("1" in algebraic
// notation), column 0 is the leftmost column ("a").
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SquareFromIndex converts a bitboard index (0-63) to a Square.
func SquareFromIndex(index int) Square {
	if index < 0 || index >= 64 {
		panic(fmt.Sprintf("invalid square index: %d", index))
	}
	return Square{Row: index / 8, Col: index % 8}
}

// Index returns the bitboard index (0-63) of the square.
func (s Square) Index() int {
	return s.Row*8 + s.Col
}

// String returns the algebraic notation of the square, e.g. "d3".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// SquareFromString parses algebraic notation (e.g. "d3", "h8").
func SquareFromString(field string) (Square, error) {
	field = strings.ToLower(field)

	if len(field) != 2 {
		return Square{}, fmt.Errorf("invalid square: %q", field)
	}

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("invalid square: %q", field)
	}

	return Square{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}
