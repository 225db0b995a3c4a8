package othello

import "fmt"

// Side identifies one of the two disc colors.
type Side int

const (
	Black Side = iota
	White
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return Black + White - s
}

// String returns the single letter notation used in serialized boards.
func (s Side) String() string {
	if s == White {
		return "W"
	}
	return "B"
}

// ParseSide parses the single letter notation ("B" or "W").
func ParseSide(s string) (Side, error) {
	switch s {
	case "B", "b":
		return Black, nil
	case "W", "w":
		return White, nil
	}
	return Black, fmt.Errorf("invalid side: %q", s)
}
