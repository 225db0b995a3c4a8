package puzzle

import (
	"sort"

	"github.com/lk16/othello-puzzles/internal/othello"
	"github.com/lk16/othello-puzzles/internal/solver"
)

// Validate scores every legal move of the board exactly and accepts the
// position as a puzzle iff exactly one move attains the maximum score. Ties
// and positions without moves are rejected, which is a routine outcome of
// random generation, not an error.
func Validate(board othello.Board) (Puzzle, bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Puzzle{}, false
	}

	side := board.Turn()
	s := solver.New()

	evaluations := make([]Evaluation, len(moves))
	for i, move := range moves {
		// Score from the mover's perspective, with the opponent to move in
		// the child position.
		score := s.BestScore(board.Apply(move), side)
		evaluations[i] = Evaluation{Move: move, Score: score}
	}

	best := evaluations[0]
	bestCount := 1
	for _, eval := range evaluations[1:] {
		switch {
		case eval.Score > best.Score:
			best = eval
			bestCount = 1
		case eval.Score == best.Score:
			bestCount++
		}
	}

	if bestCount != 1 {
		return Puzzle{}, false
	}

	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].Score > evaluations[j].Score
	})

	return Puzzle{
		Board:       board,
		Evaluations: evaluations,
		Best:        best,
	}, true
}
