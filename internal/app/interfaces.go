package app

import (
	"context"

	"hanoi/internal/game"
	"hanoi/internal/state"
)

// Frontend owns the terminal and drives the game until quit or solved.
type Frontend interface {
	Run(ctx context.Context) error
}

type FrontendFactory func(g *game.State) Frontend

// Store is the run history backing App.
type Store = state.Store
