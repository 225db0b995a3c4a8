package othello

import (
	"fmt"
	"math/bits"
)

// PassMove is the move index used when the player to move has no legal move.
const PassMove = -1

// directions holds the (column, row) deltas of the 8 rays along which discs
// can be enclosed.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Position holds the discs of both players as bitboards, seen from the
// perspective of the player to move. It is a pure value: DoMove returns a new
// Position and never mutates the receiver.
type Position struct {
	player   uint64
	opponent uint64
}

// NewPosition creates a new position from a player and opponent bitboard.
func NewPosition(player, opponent uint64) (Position, error) {
	if player&opponent != 0 {
		return Position{}, fmt.Errorf("invalid position: player and opponent discs cannot overlap")
	}

	return Position{
		player:   player,
		opponent: opponent,
	}, nil
}

// NewPositionMust creates a new position from a player and opponent bitboard
// and panics if the position is invalid.
func NewPositionMust(player, opponent uint64) Position {
	p, err := NewPosition(player, opponent)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionStart creates the starting position with black to move.
func NewPositionStart() Position {
	return NewPositionMust(0x0000000810000000, 0x0000001008000000)
}

// Player returns the bitboard of the player to move.
func (p Position) Player() uint64 {
	return p.player
}

// Opponent returns the bitboard of the opponent.
func (p Position) Opponent() uint64 {
	return p.opponent
}

// CountDiscs returns the number of discs on the board.
func (p Position) CountDiscs() int {
	return bits.OnesCount64(p.player | p.opponent)
}

// CountEmpty returns the number of empty squares.
func (p Position) CountEmpty() int {
	return 64 - p.CountDiscs()
}

// HasMoves returns whether the player to move has any legal move.
func (p Position) HasMoves() bool {
	return p.Moves() != 0
}

// Moves returns a bitset of all legal moves for the player to move.
func (p Position) Moves() uint64 {
	moves := uint64(0)

	empty := ^(p.player | p.opponent)
	for index := 0; index < 64; index++ {
		bit := uint64(1) << index
		if empty&bit == 0 {
			continue
		}
		if p.flipped(index) != 0 {
			moves |= bit
		}
	}

	return moves
}

// flipped returns a bitset of the opponent discs that playing on the given
// square would flip. It returns 0 if the move is not legal.
func (p Position) flipped(move int) uint64 {
	if (p.player|p.opponent)&(uint64(1)<<move) != 0 {
		return 0
	}

	moveCol := move % 8
	moveRow := move / 8

	flipped := uint64(0)

	for _, dir := range directions {
		dCol, dRow := dir[0], dir[1]

		// Walk over the opponent run in this direction.
		steps := 0
		col := moveCol + dCol
		row := moveRow + dRow
		for col >= 0 && col < 8 && row >= 0 && row < 8 {
			bit := uint64(1) << (8*row + col)

			if p.opponent&bit != 0 {
				steps++
				col += dCol
				row += dRow
				continue
			}

			// The run only flips when it ends on one of our own discs.
			if p.player&bit != 0 && steps > 0 {
				for dist := 1; dist <= steps; dist++ {
					flipIndex := move + dist*(8*dRow+dCol)
					flipped |= uint64(1) << flipIndex
				}
			}
			break
		}
	}

	return flipped
}

// IsValidMove checks whether a move index is legal for the player to move.
// PassMove is only valid when there are no other moves.
func (p Position) IsValidMove(move int) bool {
	if move == PassMove {
		return !p.HasMoves()
	}

	if move < 0 || move >= 64 {
		return false
	}

	return p.Moves()&(uint64(1)<<move) != 0
}

// DoMove plays a move and returns the resulting position, seen from the
// opponent's perspective. Passing an illegal move is a bug in the caller and
// panics: moves must come from Moves().
func (p Position) DoMove(move int) Position {
	if move == PassMove {
		if p.HasMoves() {
			panic("illegal pass: player has moves")
		}
		return Position{
			player:   p.opponent,
			opponent: p.player,
		}
	}

	moveBit := uint64(1) << move

	flipped := p.flipped(move)
	if flipped == 0 {
		panic(fmt.Sprintf("illegal move: %s", SquareFromIndex(move)))
	}

	mover := p.player | flipped | moveBit

	return Position{
		player:   p.opponent &^ mover,
		opponent: mover,
	}
}

// FinalScore returns the disc differential for the player to move. Spec'd for
// terminal positions, but well-defined on any position.
func (p Position) FinalScore() int {
	return bits.OnesCount64(p.player) - bits.OnesCount64(p.opponent)
}

// IsTerminal returns whether neither player has a legal move. A full board is
// always terminal.
func (p Position) IsTerminal() bool {
	if p.HasMoves() {
		return false
	}
	passed := Position{player: p.opponent, opponent: p.player}
	return !passed.HasMoves()
}
