package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lk16/othello-puzzles/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Generating puzzles burns CPU, so it requires credentials.
	apiGroup.Post("/puzzles", middleware.AuthOrToken(), GeneratePuzzle)

	apiGroup.Get("/puzzles", ListPuzzles)
	apiGroup.Get("/puzzles/stats", GetStats)
	apiGroup.Get("/puzzles/:id", GetPuzzle)
}
