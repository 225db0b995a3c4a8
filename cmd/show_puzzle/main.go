package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk16/othello-puzzles/internal/othello"
	"github.com/lk16/othello-puzzles/internal/puzzle"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 8 rows of '.', 'B' and 'W' separated by '/'")
	sideString := flag.String("side", "B", "the side to move (B or W)")
	solve := flag.Bool("solve", false, "solve the position and show all move scores")
	flag.Parse()

	side, err := othello.ParseSide(*sideString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	grid := strings.ReplaceAll(*boardString, "/", "\n")
	board, err := othello.NewBoardFromGrid(grid, side)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if !*solve {
		board.Print()
		return
	}

	p, ok := puzzle.Validate(board)
	if !ok {
		board.Print()
		fmt.Println("No unique best move in this position")
		os.Exit(1)
	}

	for _, line := range p.PrettyLines() {
		fmt.Println(line)
	}
}
