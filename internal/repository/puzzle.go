package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lk16/othello-puzzles/internal/puzzle"
	"github.com/lk16/othello-puzzles/internal/services"
)

const (
	recentPuzzlesKey      = "puzzles:recent"
	recentPuzzlesMaxCount = 100
	statsKey              = "puzzles:stats"
)

// ErrPuzzleNotFound is returned when a puzzle id does not exist.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// StoredPuzzle is a puzzle persisted in Postgres. Data holds the full puzzle
// in its serialized form, the other columns are denormalized for listing.
type StoredPuzzle struct {
	ID         uuid.UUID       `json:"id"           db:"id"`
	CreatedAt  time.Time       `json:"created_at"   db:"created_at"`
	Empties    int             `json:"empties"      db:"empties"`
	SideToMove string          `json:"side_to_move" db:"side_to_move"`
	BestMove   string          `json:"best_move"    db:"best_move"`
	Score      int             `json:"score"        db:"score"`
	Data       json.RawMessage `json:"data"         db:"data"`
}

// PuzzleRepository handles database operations for puzzles.
type PuzzleRepository struct {
	services *services.Services
}

// NewPuzzleRepository creates a new PuzzleRepository from a fiber context.
func NewPuzzleRepository(c *fiber.Ctx) *PuzzleRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &PuzzleRepository{
		services: services,
	}
}

// NewPuzzleRepositoryFromServices creates a new PuzzleRepository.
func NewPuzzleRepositoryFromServices(services *services.Services) *PuzzleRepository {
	return &PuzzleRepository{
		services: services,
	}
}

// SavePuzzle stores an accepted puzzle and updates the Redis stats counters.
func (repo *PuzzleRepository) SavePuzzle(ctx context.Context, p puzzle.Puzzle) (StoredPuzzle, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return StoredPuzzle{}, fmt.Errorf("error serializing puzzle: %w", err)
	}

	stored := StoredPuzzle{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Empties:    p.Board.CountEmpty(),
		SideToMove: p.SideToMove().String(),
		BestMove:   p.Best.Move.String(),
		Score:      p.Best.Score,
		Data:       data,
	}

	query := `
		INSERT INTO puzzles (id, created_at, empties, side_to_move, best_move, score, data)
		VALUES (:id, :created_at, :empties, :side_to_move, :best_move, :score, :data)
	`

	if _, err := repo.services.Postgres.NamedExecContext(ctx, query, stored); err != nil {
		return StoredPuzzle{}, fmt.Errorf("error storing puzzle: %w", err)
	}

	// Track recent ids and per-empties counters in a single pipeline.
	pipe := repo.services.Redis.Pipeline()
	pipe.LPush(ctx, recentPuzzlesKey, stored.ID.String())
	pipe.LTrim(ctx, recentPuzzlesKey, 0, recentPuzzlesMaxCount-1)
	pipe.HIncrBy(ctx, statsKey, fmt.Sprintf("empties:%d", stored.Empties), 1)
	if _, err := pipe.Exec(ctx); err != nil {
		return StoredPuzzle{}, fmt.Errorf("error updating Redis stats: %w", err)
	}

	return stored, nil
}

// GetPuzzle fetches a puzzle by id.
func (repo *PuzzleRepository) GetPuzzle(ctx context.Context, id uuid.UUID) (StoredPuzzle, error) {
	var stored StoredPuzzle

	query := `
		SELECT id, created_at, empties, side_to_move, best_move, score, data
		FROM puzzles
		WHERE id = $1
	`

	err := repo.services.Postgres.GetContext(ctx, &stored, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredPuzzle{}, ErrPuzzleNotFound
	}
	if err != nil {
		return StoredPuzzle{}, fmt.Errorf("error fetching puzzle: %w", err)
	}

	return stored, nil
}

// ListPuzzles returns the most recently stored puzzles.
func (repo *PuzzleRepository) ListPuzzles(ctx context.Context, limit int) ([]StoredPuzzle, error) {
	query := `
		SELECT id, created_at, empties, side_to_move, best_move, score, data
		FROM puzzles
		ORDER BY created_at DESC
		LIMIT $1
	`

	stored := make([]StoredPuzzle, 0, limit)
	if err := repo.services.Postgres.SelectContext(ctx, &stored, query, limit); err != nil {
		return nil, fmt.Errorf("error listing puzzles: %w", err)
	}

	return stored, nil
}

// GetStats returns the per-empties puzzle counters from Redis.
func (repo *PuzzleRepository) GetStats(ctx context.Context) (map[string]string, error) {
	stats, err := repo.services.Redis.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error fetching stats: %w", err)
	}

	return stats, nil
}
