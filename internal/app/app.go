package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hanoi/internal/game"
	"hanoi/internal/state"
	"hanoi/internal/telemetry"
	"hanoi/internal/term"
	"hanoi/internal/ui"
)

type App struct {
	cfg Config

	logger *telemetry.Logger
	store  Store
	game   *game.State

	newFrontend FrontendFactory
	sessionID   string
}

// New builds the app from a validated config.
func New(cfg Config) (*App, error) {
	logger, err := telemetry.NewJSONLogger(cfg.LogPath, cfg.Debug)
	if err != nil {
		return nil, err
	}

	var store Store
	if !cfg.NoStats {
		s, err := state.NewSQLite(cfg.StatePath())
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		if err := s.EnsureSchema(context.Background()); err != nil {
			_ = s.Close()
			_ = logger.Close()
			return nil, err
		}
		store = s
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		game:      game.New(cfg.Disks),
		sessionID: uuid.NewString(),
	}
	a.newFrontend = a.defaultFrontend
	return a, nil
}

func (a *App) defaultFrontend(g *game.State) Frontend {
	if a.cfg.Frontend == FrontendTcell {
		return term.New(g, nil, term.Options{
			Color:        !a.cfg.NoColor,
			StyleVariant: a.cfg.UI.StyleVariant,
			Logger:       a.logger,
		})
	}
	return ui.New(g, ui.Options{
		Color:        !a.cfg.NoColor,
		StyleVariant: a.cfg.UI.StyleVariant,
		Logger:       a.logger,
	})
}

func (a *App) Game() *game.State { return a.game }

// Run plays one game to completion and records it in the run history.
func (a *App) Run(ctx context.Context) (Result, error) {
	a.logger.Info("app.start", map[string]any{
		"session":  a.sessionID,
		"disks":    a.cfg.Disks,
		"frontend": a.cfg.Frontend,
		"color":    !a.cfg.NoColor,
	})

	runID := a.startRun(ctx)
	err := a.newFrontend(a.game).Run(ctx)
	res := a.result()
	a.finishRun(ctx, runID, res)
	if err != nil {
		a.logger.Error("frontend.failed", map[string]any{"error": err.Error()})
		return res, err
	}
	return res, nil
}

func (a *App) result() Result {
	msg, solved := a.game.Completion()
	return Result{
		Solved:  solved,
		Perfect: a.game.Perfect(),
		Moves:   a.game.Moves,
		Resets:  a.game.Resets,
		Message: msg,
	}
}

func (a *App) startRun(ctx context.Context) int64 {
	if a.store == nil {
		return 0
	}
	id, err := a.store.StartRun(ctx, state.Run{
		SessionID: a.sessionID,
		Disks:     a.cfg.Disks,
		StartTS:   time.Now().UTC(),
	})
	if err != nil {
		a.logger.Error("stats.record_failed", map[string]any{"stage": "start", "error": err.Error()})
		return 0
	}
	return id
}

func (a *App) finishRun(ctx context.Context, runID int64, res Result) {
	if a.store == nil || runID == 0 {
		return
	}
	// the frontend may have ended because ctx was cancelled
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	err := a.store.FinishRun(ctx, runID, state.Outcome{
		Moves:   res.Moves,
		Resets:  res.Resets,
		Solved:  res.Solved,
		Perfect: res.Perfect,
		EndTS:   time.Now().UTC(),
	})
	if err != nil {
		a.logger.Error("stats.record_failed", map[string]any{"stage": "finish", "run": runID, "error": err.Error()})
		return
	}
	a.logger.Info("stats.recorded", map[string]any{"run": runID, "solved": res.Solved, "moves": res.Moves})
}

func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = a.logger.Close()
}

// Stats opens the run history named by cfg and returns its summary.
func Stats(ctx context.Context, cfg Config) ([]state.DiskSummary, error) {
	s, err := state.NewSQLite(cfg.StatePath())
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s.Summary(ctx)
}
