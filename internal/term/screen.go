package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"hanoi/internal/game"
	"hanoi/internal/layout"
	"hanoi/internal/telemetry"
	"hanoi/internal/theme"
)

type Options struct {
	Color        bool
	StyleVariant string
	Logger       *telemetry.Logger
}

// Screen draws the game on a tcell screen and runs the input loop.
type Screen struct {
	screen tcell.Screen
	owned  bool
	state  *game.State
	color  bool
	logger *telemetry.Logger
	styles map[layout.Class]tcell.Style
}

// New wraps screen. When screen is nil, Run opens and finalises the real
// terminal; a caller-provided screen must already be initialised.
func New(state *game.State, screen tcell.Screen, opts Options) *Screen {
	return &Screen{
		screen: screen,
		state:  state,
		color:  opts.Color,
		logger: opts.Logger,
		styles: stylesFor(opts.StyleVariant, opts.Color),
	}
}

func stylesFor(variant string, color bool) map[layout.Class]tcell.Style {
	base := tcell.StyleDefault
	if !color {
		return map[layout.Class]tcell.Style{
			layout.ClassNeutral: base,
			layout.ClassEven:    base,
			layout.ClassOdd:     base,
		}
	}
	p := theme.ForVariant(variant)
	return map[layout.Class]tcell.Style{
		layout.ClassNeutral: base.Foreground(tcell.GetColor(p.Neutral)),
		layout.ClassEven:    base.Foreground(tcell.GetColor(p.Even)).Bold(true),
		layout.ClassOdd:     base.Foreground(tcell.GetColor(p.Odd)).Bold(true),
	}
}

func (s *Screen) Run(ctx context.Context) error {
	if s.screen == nil {
		sc, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		if err := sc.Init(); err != nil {
			return fmt.Errorf("init terminal: %w", err)
		}
		s.screen = sc
		s.owned = true
	}
	if s.owned {
		defer s.screen.Fini()
	}
	s.screen.HideCursor()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if s.HandleEvent(ev) {
				return nil
			}
			s.Draw()
		}
	}
}

// HandleEvent applies one event and reports whether the loop should stop.
func (s *Screen) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		s.logger.Debug("frontend.resize", map[string]any{"cols": w, "rows": h})
		s.screen.Sync()
	case *tcell.EventKey:
		action := ActionForEvent(e)
		if action == game.ActionQuit {
			s.logger.Info("game.quit", map[string]any{"moves": s.state.Moves, "solved": s.state.Solved()})
			return true
		}
		if action == game.ActionNone {
			return false
		}
		s.state.Dispatch(action)
		s.logger.Debug("game.action", map[string]any{
			"action": action.String(),
			"cursor": s.state.CursorScalar(),
			"moves":  s.state.Moves,
		})
		if action == game.ActionReset {
			s.logger.Info("game.reset", map[string]any{"resets": s.state.Resets})
		}
		if s.state.Solved() {
			s.logger.Info("game.solved", map[string]any{"moves": s.state.Moves, "perfect": s.state.Perfect()})
			return true
		}
	}
	return false
}

// Draw renders one full frame from the current state and terminal size.
func (s *Screen) Draw() {
	w, h := s.screen.Size()
	plan := layout.Compute(s.state, w, h, layout.Options{Color: s.color})

	s.screen.Clear()
	neutral := s.styles[layout.ClassNeutral]
	if plan.TooSmall {
		drawText(s.screen, 0, 0, layout.TooSmallText, neutral)
	}
	for _, g := range plan.Glyphs {
		drawText(s.screen, g.Col, g.Row, g.Text, s.styles[g.Class])
	}
	drawText(s.screen, 0, h-1, plan.Status, neutral)
	s.screen.Show()
}

func drawText(sc tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		sc.SetContent(x+i, y, ch, nil, st)
	}
}
