package puzzle //nolint:testpackage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk16/othello-puzzles/internal/othello"
)

func acceptedPuzzle(t *testing.T) Puzzle {
	t.Helper()

	grid := `.WBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBW
BBBBBBBB
BBBBBBB.`

	p, ok := Validate(boardFromGrid(t, grid, othello.Black))
	require.True(t, ok)
	return p
}

func TestPuzzle_JSONRoundTrip(t *testing.T) {
	p := acceptedPuzzle(t)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded Puzzle
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Equal(t, p.Board, decoded.Board)
	require.Equal(t, p.Best, decoded.Best)
	require.Equal(t, p.Evaluations, decoded.Evaluations)
}

func TestPuzzle_JSONShape(t *testing.T) {
	p := acceptedPuzzle(t)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	require.Equal(t, p.Board.Grid(), raw["board"])
	require.Equal(t, "B", raw["side_to_move"])

	best, ok := raw["best_move"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "a1", best["move"])
	require.Equal(t, float64(0), best["row"])
	require.Equal(t, float64(0), best["col"])
}

func TestPuzzle_UnmarshalRejectsIllegalMove(t *testing.T) {
	p := acceptedPuzzle(t)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["best_move"].(map[string]any)["move"] = "d4"

	tampered, err := json.Marshal(raw)
	require.NoError(t, err)

	var decoded Puzzle
	err = json.Unmarshal(tampered, &decoded)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not legal")
}

func TestPuzzle_PrettyLines(t *testing.T) {
	p := acceptedPuzzle(t)

	lines := p.PrettyLines()
	require.Equal(t, "Board:", lines[0])
	require.Contains(t, lines, "Side to move: B")

	foundBest := false
	for _, line := range lines {
		if line == "  a1: +58  <-- best" {
			foundBest = true
		}
	}
	require.True(t, foundBest)
}
