package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/lk16/othello-puzzles/internal/config"
	"github.com/lk16/othello-puzzles/internal/othello"
	"github.com/lk16/othello-puzzles/internal/puzzle"
)

var flags struct {
	count    int
	minEmpty int
	maxEmpty int
	side     string
	seed     int64
	workers  int
	attempts int
	output   string
	pretty   bool
}

func main() {
	config.SetLogLevel()

	rootCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate Othello endgame puzzles with a unique best move",
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().IntVar(&flags.count, "count", 1, "number of puzzles to generate")
	rootCmd.Flags().IntVar(&flags.minEmpty, "min-empty", puzzle.DefaultMinEmpty, "minimum number of empty squares (validity check only, playouts stop at max-empty)")
	rootCmd.Flags().IntVar(&flags.maxEmpty, "max-empty", puzzle.DefaultMaxEmpty, "maximum number of empty squares")
	rootCmd.Flags().StringVar(&flags.side, "side", "", "side to move (B or W), any side when empty")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed, a time based seed when 0")
	rootCmd.Flags().IntVar(&flags.workers, "workers", 1, "number of parallel workers")
	rootCmd.Flags().IntVar(&flags.attempts, "attempts", puzzle.DefaultMaxAttempts, "attempts per puzzle before giving up")
	rootCmd.Flags().StringVar(&flags.output, "output", "", "write puzzles as JSON to this file")
	rootCmd.Flags().BoolVar(&flags.pretty, "pretty", false, "print puzzles in human-readable format")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := puzzle.Config{
		MinEmpty:    flags.minEmpty,
		MaxEmpty:    flags.maxEmpty,
		MaxAttempts: flags.attempts,
	}

	if flags.side != "" {
		side, err := othello.ParseSide(flags.side)
		if err != nil {
			return err
		}
		cfg.Side = &side
	}

	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bar := progressbar.Default(int64(flags.count), "generating")

	puzzles, err := puzzle.GenerateBatch(cfg, flags.count, flags.workers, seed, func() {
		_ = bar.Add(1)
	})
	if len(puzzles) == 0 {
		if err != nil {
			return err
		}
		return fmt.Errorf("no puzzles generated")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}

	if flags.pretty {
		for i, p := range puzzles {
			fmt.Printf("\nPuzzle %d\n", i+1)
			for _, line := range p.PrettyLines() {
				fmt.Println(line)
			}
		}
	}

	data, err := json.MarshalIndent(puzzles, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing puzzles: %w", err)
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, 0o644); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d puzzle(s) to %s\n", len(puzzles), flags.output)
		return nil
	}

	if !flags.pretty {
		fmt.Println(string(data))
	}

	return nil
}
