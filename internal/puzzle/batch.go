package puzzle

import (
	"fmt"
	"math/rand"
	"sync"
)

// GenerateBatch produces count puzzles using the given number of parallel
// workers. Every job runs its own generator with a random source derived
// from seed and the job index, so which worker picks up a job does not
// matter: batches are reproducible for a fixed seed, regardless of worker
// count. The progress callback, when non-nil, is invoked once per finished
// attempt, successful or not.
//
// When some attempts exhaust their budget, the puzzles that were generated
// are returned together with an error.
func GenerateBatch(cfg Config, count, workers int, seed int64, progress func()) ([]Puzzle, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}
	if workers < 1 {
		workers = 1
	}

	// Validate the config once, before spawning workers.
	if _, err := NewGenerator(cfg, rand.New(rand.NewSource(seed))); err != nil {
		return nil, err
	}

	type result struct {
		puzzle Puzzle
		err    error
	}

	jobs := make(chan int, count)
	for job := 0; job < count; job++ {
		jobs <- job
	}
	close(jobs)

	results := make(chan result, count)

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for job := range jobs {
				rng := rand.New(rand.NewSource(seed + int64(job)))
				gen, err := NewGenerator(cfg, rng)
				if err != nil {
					panic(err) // config was validated above
				}

				p, err := gen.Generate()
				results <- result{puzzle: p, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	puzzles := make([]Puzzle, 0, count)
	var lastErr error
	for r := range results {
		if progress != nil {
			progress()
		}

		if r.err != nil {
			lastErr = r.err
			continue
		}
		puzzles = append(puzzles, r.puzzle)
	}

	if len(puzzles) < count {
		return puzzles, fmt.Errorf("generated %d of %d puzzles: %w", len(puzzles), count, lastErr)
	}

	return puzzles, nil
}
