package othello

import (
	"fmt"
	"math/bits"
	"strings"
)

// Move is a legal placement for the side to move of the board it was
// generated from, together with the discs it flips. It is meaningless
// detached from that board.
type Move struct {
	Square Square
	Flips  []Square
}

// String returns the algebraic notation of the move target, e.g. "d3".
func (m Move) String() string {
	return m.Square.String()
}

// Board represents an Othello board with position and turn information. Like
// Position it is a pure value: Apply and Pass return new boards.
type Board struct {
	position Position
	turn     Side
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	return Board{
		position: NewPositionStart(),
		turn:     Black,
	}
}

// NewBoardFromGrid creates a board from an 8-row grid string using '.' for
// empty, 'B' for black and 'W' for white, rows separated by newlines.
func NewBoardFromGrid(grid string, turn Side) (Board, error) {
	rows := strings.Split(strings.TrimSpace(grid), "\n")
	if len(rows) != 8 {
		return Board{}, fmt.Errorf("grid must have 8 rows, got %d", len(rows))
	}

	var black, white uint64
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != 8 {
			return Board{}, fmt.Errorf("grid row %d must have 8 cells, got %d", y+1, len(row))
		}

		for x, cell := range row {
			bit := uint64(1) << (8*y + x)
			switch cell {
			case 'B':
				black |= bit
			case 'W':
				white |= bit
			case '.':
			default:
				return Board{}, fmt.Errorf("invalid cell %q at %s", cell, Square{Row: y, Col: x})
			}
		}
	}

	player, opponent := black, white
	if turn == White {
		player, opponent = white, black
	}

	position, err := NewPosition(player, opponent)
	if err != nil {
		return Board{}, err
	}

	return Board{position: position, turn: turn}, nil
}

// Position returns the underlying position.
func (b Board) Position() Position {
	return b.position
}

// Turn returns the side to move.
func (b Board) Turn() Side {
	return b.turn
}

// discs returns the black and white bitboards in absolute colors.
func (b Board) discs() (black, white uint64) {
	if b.turn == White {
		return b.position.opponent, b.position.player
	}
	return b.position.player, b.position.opponent
}

// LegalMoves returns all legal moves for the side to move, in board order.
func (b Board) LegalMoves() []Move {
	movesBits := b.position.Moves()

	moves := make([]Move, 0, bits.OnesCount64(movesBits))
	for index := 0; index < 64; index++ {
		if movesBits&(uint64(1)<<index) == 0 {
			continue
		}

		flippedBits := b.position.flipped(index)
		flips := make([]Square, 0, bits.OnesCount64(flippedBits))
		for flip := 0; flip < 64; flip++ {
			if flippedBits&(uint64(1)<<flip) != 0 {
				flips = append(flips, SquareFromIndex(flip))
			}
		}

		moves = append(moves, Move{
			Square: SquareFromIndex(index),
			Flips:  flips,
		})
	}

	return moves
}

// HasMoves returns whether the side to move has any legal move.
func (b Board) HasMoves() bool {
	return b.position.HasMoves()
}

// IsTerminal returns whether neither side has a legal move. A full board is
// always terminal.
func (b Board) IsTerminal() bool {
	return b.position.IsTerminal()
}

// Apply plays a move for the side to move and returns the new board. The move
// must come from LegalMoves: applying an illegal move panics, it is a bug in
// the caller, not a runtime condition.
func (b Board) Apply(move Move) Board {
	return Board{
		position: b.position.DoMove(move.Square.Index()),
		turn:     b.turn.Opponent(),
	}
}

// Pass passes the turn without placing a disc. Only legal when the side to
// move has no moves.
func (b Board) Pass() Board {
	return Board{
		position: b.position.DoMove(PassMove),
		turn:     b.turn.Opponent(),
	}
}

// CountEmpty returns the number of empty squares.
func (b Board) CountEmpty() int {
	return b.position.CountEmpty()
}

// CountDiscs returns the number of discs of the given side.
func (b Board) CountDiscs(side Side) int {
	black, white := b.discs()
	if side == White {
		return bits.OnesCount64(white)
	}
	return bits.OnesCount64(black)
}

// Differential returns the disc differential for the given side: its disc
// count minus the opponent's.
func (b Board) Differential(side Side) int {
	return b.CountDiscs(side) - b.CountDiscs(side.Opponent())
}

// Grid returns the 8-row grid string representation of the board, the
// counterpart of NewBoardFromGrid.
func (b Board) Grid() string {
	black, white := b.discs()

	var sb strings.Builder
	for y := 0; y < 8; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < 8; x++ {
			bit := uint64(1) << (8*y + x)
			switch {
			case black&bit != 0:
				sb.WriteByte('B')
			case white&bit != 0:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}

// ASCIIArtLines returns the ascii art lines for the board, marking the legal
// moves of the side to move.
func (b Board) ASCIIArtLines() []string {
	moves := b.position.Moves()
	black, white := b.discs()

	lines := make([]string, 10)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := 0; y < 8; y++ {
		line := fmt.Sprintf("%d ", y+1)

		for x := 0; x < 8; x++ {
			mask := uint64(1) << (8*y + x)

			switch {
			case white&mask != 0:
				line += "○ "
			case black&mask != 0:
				line += "● "
			case moves&mask != 0:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[9] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}
