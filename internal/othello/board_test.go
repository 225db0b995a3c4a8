package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startGrid = `........
........
........
...WB...
...BW...
........
........
........`

func TestNewBoardStart(t *testing.T) {
	board := NewBoardStart()

	require.Equal(t, Black, board.Turn())
	require.Equal(t, 60, board.CountEmpty())
	require.Equal(t, 2, board.CountDiscs(Black))
	require.Equal(t, 2, board.CountDiscs(White))
	require.Equal(t, startGrid, board.Grid())
}

func TestNewBoardFromGrid(t *testing.T) {
	tests := []struct {
		name    string
		grid    string
		turn    Side
		wantErr string
	}{
		{
			name: "start position",
			grid: startGrid,
			turn: Black,
		},
		{
			name:    "wrong row count",
			grid:    "........\n........",
			turn:    Black,
			wantErr: "grid must have 8 rows, got 2",
		},
		{
			name:    "wrong row length",
			grid:    "........\n........\n........\n...WB...\n...BW..\n........\n........\n........",
			turn:    Black,
			wantErr: "grid row 5 must have 8 cells, got 7",
		},
		{
			name:    "invalid cell",
			grid:    "X.......\n........\n........\n...WB...\n...BW...\n........\n........\n........",
			turn:    Black,
			wantErr: `invalid cell 'X' at a1`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoardFromGrid(test.grid, test.turn)
			if test.wantErr != "" {
				require.Error(t, err)
				require.Equal(t, test.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.grid, board.Grid())
			require.Equal(t, test.turn, board.Turn())
		})
	}
}

func TestBoard_GridRoundTrip(t *testing.T) {
	board := NewBoardStart()
	for _, move := range board.LegalMoves() {
		child := board.Apply(move)

		parsed, err := NewBoardFromGrid(child.Grid(), child.Turn())
		require.NoError(t, err)
		require.Equal(t, child, parsed)
	}
}

func TestBoard_LegalMovesStartPosition(t *testing.T) {
	board := NewBoardStart()
	moves := board.LegalMoves()

	gotSquares := make([]string, len(moves))
	for i, move := range moves {
		gotSquares[i] = move.String()
		assert.Len(t, move.Flips, 1)
	}

	require.ElementsMatch(t, []string{"d3", "c4", "f5", "e6"}, gotSquares)
}

func TestBoard_ApplyFlipsDiscs(t *testing.T) {
	board := NewBoardStart()

	var d3 Move
	found := false
	for _, move := range board.LegalMoves() {
		if move.String() == "d3" {
			d3 = move
			found = true
		}
	}
	require.True(t, found)

	// d3 flips the white disc on d4.
	require.Equal(t, []Square{{Row: 3, Col: 3}}, d3.Flips)

	child := board.Apply(d3)
	require.Equal(t, White, child.Turn())
	require.Equal(t, 4, child.CountDiscs(Black))
	require.Equal(t, 1, child.CountDiscs(White))
	require.Equal(t, 59, child.CountEmpty())
}

func TestBoard_ApplyIllegalMovePanics(t *testing.T) {
	board := NewBoardStart()

	// a1 is empty but flips nothing.
	illegal := Move{Square: Square{Row: 0, Col: 0}}
	require.Panics(t, func() { board.Apply(illegal) })

	// d4 is occupied.
	occupied := Move{Square: Square{Row: 3, Col: 3}}
	require.Panics(t, func() { board.Apply(occupied) })
}

func TestBoard_MoveLandsOnOwnDisc(t *testing.T) {
	board := NewBoardStart()

	for _, move := range board.LegalMoves() {
		child := board.Apply(move)

		// The target square holds the mover's disc and every flipped disc
		// changed color.
		mover := board.Turn()
		childGrid := child.Grid()
		require.Equal(t, byte(mover.String()[0]), gridCell(childGrid, move.Square))
		for _, flip := range move.Flips {
			require.Equal(t, byte(mover.String()[0]), gridCell(childGrid, flip))
		}
	}
}

func gridCell(grid string, square Square) byte {
	// Rows are 8 cells plus a newline.
	return grid[square.Row*9+square.Col]
}

func TestBoard_PassAndTerminal(t *testing.T) {
	// Black has one move (a1). After it, white cannot move anywhere but black
	// can still finish at h1.
	grid := `.WBBBBW.
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB`

	board, err := NewBoardFromGrid(grid, Black)
	require.NoError(t, err)
	require.False(t, board.IsTerminal())

	moves := board.LegalMoves()
	require.Len(t, moves, 2)

	var a1 Move
	for _, move := range moves {
		if move.String() == "a1" {
			a1 = move
		}
	}
	require.Equal(t, "a1", a1.String())

	afterA1 := board.Apply(a1)
	require.Equal(t, White, afterA1.Turn())
	require.False(t, afterA1.HasMoves())
	require.False(t, afterA1.IsTerminal())

	passed := afterA1.Pass()
	require.Equal(t, Black, passed.Turn())
	require.True(t, passed.HasMoves())
}

func TestBoard_FullBoardIsTerminal(t *testing.T) {
	grid := `BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
BBBBBBBB
WWWWWWWW
WWWWWWWW
WWWWWWWW`

	board, err := NewBoardFromGrid(grid, Black)
	require.NoError(t, err)

	require.True(t, board.IsTerminal())
	require.Equal(t, 0, board.CountEmpty())
	require.Equal(t, 16, board.Differential(Black))
	require.Equal(t, -16, board.Differential(White))
}

func TestBoard_ASCIIArtLines(t *testing.T) {
	board := NewBoardStart()
	lines := board.ASCIIArtLines()

	require.Len(t, lines, 10)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "+-----------------+", lines[9])
}
