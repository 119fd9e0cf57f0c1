package state

import (
	"context"
	"time"
)

// Store records finished runs. Board positions are never stored.
type Store interface {
	EnsureSchema(ctx context.Context) error
	StartRun(ctx context.Context, run Run) (int64, error)
	FinishRun(ctx context.Context, runID int64, out Outcome) error
	Summary(ctx context.Context) ([]DiskSummary, error)
	Close() error
}

type Run struct {
	SessionID string
	Disks     int
	StartTS   time.Time
}

type Outcome struct {
	Moves   uint64
	Resets  int
	Solved  bool
	Perfect bool
	EndTS   time.Time
}

// DiskSummary aggregates runs for one disk count.
type DiskSummary struct {
	Disks     int
	Runs      int
	Solved    int
	Perfect   int
	BestMoves uint64
	LastTS    time.Time
}
