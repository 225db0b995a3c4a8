package api

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lk16/othello-puzzles/internal/config"
	"github.com/lk16/othello-puzzles/internal/othello"
	"github.com/lk16/othello-puzzles/internal/puzzle"
	"github.com/lk16/othello-puzzles/internal/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GeneratePuzzleRequest is the payload for puzzle generation.
type GeneratePuzzleRequest struct {
	MinEmpty    int    `json:"min_empty"`
	MaxEmpty    int    `json:"max_empty"`
	Side        string `json:"side"`
	MaxAttempts int    `json:"max_attempts"`
}

// GeneratePuzzle generates one puzzle, stores it and returns it.
func GeneratePuzzle(c *fiber.Ctx) error {
	var payload GeneratePuzzleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	cfg := puzzle.Config{
		MinEmpty:    payload.MinEmpty,
		MaxEmpty:    payload.MaxEmpty,
		MaxAttempts: payload.MaxAttempts,
	}

	if payload.Side != "" {
		side, err := othello.ParseSide(payload.Side)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		cfg.Side = &side
	}

	serverCfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck
	if cfg.MaxEmpty > serverCfg.MaxEmptyLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "max_empty exceeds server limit",
		})
	}

	gen, err := puzzle.NewGenerator(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	p, err := gen.Generate()
	if errors.Is(err, puzzle.ErrBudgetExhausted) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewPuzzleRepository(c)
	stored, err := repo.SavePuzzle(c.Context(), p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(stored)
}

// ListPuzzles returns the most recently generated puzzles.
func ListPuzzles(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit is out of range",
		})
	}

	repo := repository.NewPuzzleRepository(c)
	puzzles, err := repo.ListPuzzles(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(puzzles)
}

// GetPuzzle returns one puzzle by id.
func GetPuzzle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid puzzle id",
		})
	}

	repo := repository.NewPuzzleRepository(c)
	stored, err := repo.GetPuzzle(c.Context(), id)
	if errors.Is(err, repository.ErrPuzzleNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Puzzle not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stored)
}

// GetStats returns generation statistics.
func GetStats(c *fiber.Ctx) error {
	repo := repository.NewPuzzleRepository(c)
	stats, err := repo.GetStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
