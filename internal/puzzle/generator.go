package puzzle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lk16/othello-puzzles/internal/othello"
)

// Defaults used when Config fields are left zero.
const (
	DefaultMinEmpty    = 4
	DefaultMaxEmpty    = 10
	DefaultMaxAttempts = 50
)

// ErrBudgetExhausted is returned when no acceptable puzzle was found within
// the configured number of attempts.
var ErrBudgetExhausted = errors.New("no puzzle found within attempt budget")

// Config holds the parameters of puzzle generation.
type Config struct {
	// MinEmpty and MaxEmpty bound the number of empty squares at the
	// decision point. They also bound the search depth, so MaxEmpty should
	// stay small. The playout removes one empty square per move and stops as
	// soon as the count reaches MaxEmpty, so MinEmpty is a validity check on
	// the configuration, not a second target.
	MinEmpty int
	MaxEmpty int

	// Side restricts accepted puzzles to ones where this side is to move.
	// When nil, whichever side is to move at the generated position is used.
	Side *othello.Side

	// MaxAttempts is the number of candidate positions tried per Generate
	// call before giving up.
	MaxAttempts int
}

func (cfg *Config) applyDefaults() {
	if cfg.MinEmpty == 0 {
		cfg.MinEmpty = DefaultMinEmpty
	}
	if cfg.MaxEmpty == 0 {
		cfg.MaxEmpty = DefaultMaxEmpty
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
}

func (cfg Config) validate() error {
	if cfg.MinEmpty < 1 {
		return fmt.Errorf("min empty must be at least 1, got %d", cfg.MinEmpty)
	}
	if cfg.MaxEmpty < cfg.MinEmpty {
		return fmt.Errorf("max empty (%d) must not be below min empty (%d)", cfg.MaxEmpty, cfg.MinEmpty)
	}
	if cfg.MaxEmpty > 60 {
		return fmt.Errorf("max empty must be at most 60, got %d", cfg.MaxEmpty)
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", cfg.MaxAttempts)
	}
	return nil
}

// Generator produces endgame puzzles from random playouts. It is not safe for
// concurrent use: give every goroutine its own Generator and random source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a generator. Zero config fields get defaults. The
// random source is passed in explicitly so that callers control seeding.
func NewGenerator(cfg Config, rng *rand.Rand) (*Generator, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Generator{cfg: cfg, rng: rng}, nil
}

// Generate produces one puzzle, retrying rejected candidates until the
// attempt budget runs out.
func (g *Generator) Generate() (Puzzle, error) {
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		board, ok := g.playout()
		if !ok {
			continue
		}

		if g.cfg.Side != nil && board.Turn() != *g.cfg.Side {
			continue
		}

		p, ok := Validate(board)
		if !ok {
			continue
		}

		return p, nil
	}

	return Puzzle{}, ErrBudgetExhausted
}

// playout plays uniformly random legal moves from the starting position until
// the empty square count enters the configured range, passing when only one
// side is blocked. It reports failure when the game dead-ends early.
func (g *Generator) playout() (othello.Board, bool) {
	board := othello.NewBoardStart()

	for board.CountEmpty() > g.cfg.MaxEmpty {
		moves := board.LegalMoves()
		if len(moves) == 0 {
			if board.IsTerminal() {
				return othello.Board{}, false
			}
			board = board.Pass()
			continue
		}

		board = board.Apply(moves[g.rng.Intn(len(moves))])
	}

	// The decision point must offer at least one legal move.
	if !board.HasMoves() {
		if board.IsTerminal() {
			return othello.Board{}, false
		}
		board = board.Pass()
	}

	return board, true
}
