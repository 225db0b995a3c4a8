// Package puzzle generates Othello endgame puzzles that are guaranteed to
// have exactly one best move. Candidate positions come from random legal play
// down to a small number of empty squares; the solver then scores every legal
// move exactly and a candidate is only accepted when a single move attains
// the maximum score.
package puzzle

import (
	"encoding/json"
	"fmt"

	"github.com/lk16/othello-puzzles/internal/othello"
)

// Evaluation pairs a legal move with its exact score: the mover's final disc
// differential under optimal play by both sides after the move.
type Evaluation struct {
	Move  othello.Move
	Score int
}

// Puzzle is an accepted endgame position: exactly one legal move attains the
// maximum score.
type Puzzle struct {
	Board othello.Board

	// Evaluations holds every legal move, sorted by descending score.
	Evaluations []Evaluation

	// Best is the unique evaluation with the maximum score.
	Best Evaluation
}

// SideToMove returns the side the puzzle is posed for.
func (p Puzzle) SideToMove() othello.Side {
	return p.Board.Turn()
}

type evaluationJSON struct {
	Move       string `json:"move"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Evaluation int    `json:"evaluation"`
}

type puzzleJSON struct {
	Board      string           `json:"board"`
	SideToMove string           `json:"side_to_move"`
	LegalMoves []evaluationJSON `json:"legal_moves"`
	BestMove   evaluationJSON   `json:"best_move"`
}

func toEvaluationJSON(eval Evaluation) evaluationJSON {
	return evaluationJSON{
		Move:       eval.Move.String(),
		Row:        eval.Move.Square.Row,
		Col:        eval.Move.Square.Col,
		Evaluation: eval.Score,
	}
}

// MarshalJSON serializes the puzzle with the board as a grid string and moves
// in algebraic notation.
func (p Puzzle) MarshalJSON() ([]byte, error) {
	legalMoves := make([]evaluationJSON, len(p.Evaluations))
	for i, eval := range p.Evaluations {
		legalMoves[i] = toEvaluationJSON(eval)
	}

	return json.Marshal(puzzleJSON{
		Board:      p.Board.Grid(),
		SideToMove: p.SideToMove().String(),
		LegalMoves: legalMoves,
		BestMove:   toEvaluationJSON(p.Best),
	})
}

// UnmarshalJSON rebuilds a puzzle from its serialized form. Move flips are
// not serialized; they are recomputed from the board, so every listed move
// must be legal.
func (p *Puzzle) UnmarshalJSON(data []byte) error {
	var raw puzzleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	side, err := othello.ParseSide(raw.SideToMove)
	if err != nil {
		return err
	}

	board, err := othello.NewBoardFromGrid(raw.Board, side)
	if err != nil {
		return err
	}

	legalMoves := make(map[string]othello.Move)
	for _, move := range board.LegalMoves() {
		legalMoves[move.String()] = move
	}

	evaluations := make([]Evaluation, len(raw.LegalMoves))
	for i, rawEval := range raw.LegalMoves {
		move, ok := legalMoves[rawEval.Move]
		if !ok {
			return fmt.Errorf("move %s is not legal on the puzzle board", rawEval.Move)
		}
		evaluations[i] = Evaluation{Move: move, Score: rawEval.Evaluation}
	}

	bestMove, ok := legalMoves[raw.BestMove.Move]
	if !ok {
		return fmt.Errorf("best move %s is not legal on the puzzle board", raw.BestMove.Move)
	}

	*p = Puzzle{
		Board:       board,
		Evaluations: evaluations,
		Best:        Evaluation{Move: bestMove, Score: raw.BestMove.Evaluation},
	}
	return nil
}

// PrettyLines returns a human-readable rendering of the puzzle.
func (p Puzzle) PrettyLines() []string {
	lines := []string{"Board:"}
	lines = append(lines, p.Board.ASCIIArtLines()...)
	lines = append(lines,
		fmt.Sprintf("Side to move: %s", p.SideToMove()),
		fmt.Sprintf("Best move for %s: %s (score %+d)", p.SideToMove(), p.Best.Move, p.Best.Score),
		"All moves:",
	)

	for _, eval := range p.Evaluations {
		marker := ""
		if eval.Move.Square == p.Best.Move.Square {
			marker = "  <-- best"
		}
		lines = append(lines, fmt.Sprintf("  %s: %+d%s", eval.Move, eval.Score, marker))
	}

	return lines
}
