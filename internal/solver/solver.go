// Package solver implements exhaustive endgame search: minimax with
// alpha-beta pruning, evaluated on the final disc differential. There is no
// depth cutoff and no heuristic, so it must only be used on positions with
// few empty squares. The puzzle generator guarantees at most 10.
package solver

import (
	"github.com/lk16/othello-puzzles/internal/othello"
)

// Score bounds: a wipeout is 64 discs against 0.
const (
	MinScore = -64
	MaxScore = 64
)

// Solver evaluates othello endgame positions exactly.
type Solver struct {
	nodes uint64
}

// New creates a new solver.
func New() *Solver {
	return &Solver{}
}

// Nodes returns the number of nodes searched since creation.
func (s *Solver) Nodes() uint64 {
	return s.nodes
}

// BestScore returns the disc differential for the given side at the end of
// the game, assuming optimal play by both sides from the given board. The
// result is antisymmetric: BestScore(b, side) == -BestScore(b, side.Opponent()).
func (s *Solver) BestScore(board othello.Board, side othello.Side) int {
	score := s.negamax(board.Position(), MinScore-1, MaxScore+1)

	if side != board.Turn() {
		return -score
	}
	return score
}

// negamax returns the exact final score for the player to move, searching
// until a terminal position. A player without moves passes; when neither
// player has a move the position is scored as-is.
func (s *Solver) negamax(pos othello.Position, alpha, beta int) int {
	s.nodes++

	moves := pos.Moves()

	if moves == 0 {
		passed := pos.DoMove(othello.PassMove)

		if !passed.HasMoves() {
			return pos.FinalScore()
		}

		return -s.negamax(passed, -beta, -alpha)
	}

	for move := 0; move < 64; move++ {
		if moves&(uint64(1)<<move) == 0 {
			continue
		}

		score := -s.negamax(pos.DoMove(move), -beta, -alpha)

		if score >= beta {
			return beta
		}

		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
