package term

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"hanoi/internal/game"
	"hanoi/internal/layout"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sc := tcell.NewSimulationScreen("UTF-8")
	if err := sc.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sc.Fini)
	sc.SetSize(w, h)
	return sc
}

func rowText(sc tcell.SimulationScreen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := sc.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func TestDrawMatchesPlan(t *testing.T) {
	sc := newSimScreen(t, 26, 8)
	st := game.New(3)
	s := New(st, sc, Options{})
	s.Draw()

	want := layout.Compute(st, 26, 8, layout.Options{}).Lines()
	for y := range want {
		if got := rowText(sc, y, 26); got != want[y] {
			t.Fatalf("row %d = %q, want %q", y, got, want[y])
		}
	}
}

func TestDrawTooSmall(t *testing.T) {
	sc := newSimScreen(t, 40, 6)
	s := New(game.New(3), sc, Options{})
	s.Draw()
	if got := rowText(sc, 0, 40); !strings.HasPrefix(got, layout.TooSmallText) {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(sc, 5, 40); !strings.HasPrefix(got, "MOVES: 0/7") {
		t.Fatalf("status row = %q", got)
	}
}

func TestColorStylesFollowParity(t *testing.T) {
	sc := newSimScreen(t, 26, 8)
	s := New(game.New(3), sc, Options{Color: true, StyleVariant: "classic"})
	s.Draw()

	_, _, even, _ := sc.GetContent(2, 4)
	_, _, odd, _ := sc.GetContent(3, 3)
	if even == odd {
		t.Fatalf("even and odd disks share a style")
	}
	ch, _, _, _ := sc.GetContent(3, 3)
	if ch != layout.DiskChar {
		t.Fatalf("coloured disk glyph = %q, want %q", ch, layout.DiskChar)
	}
}

func TestHandleEventStopsWhenSolved(t *testing.T) {
	sc := newSimScreen(t, 26, 8)
	st := game.New(1)
	s := New(st, sc, Options{})
	steps := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
	}
	for _, ev := range steps {
		if s.HandleEvent(ev) {
			t.Fatalf("stopped before solving")
		}
	}
	if !s.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Fatalf("expected stop once solved")
	}
	if !st.Perfect() {
		t.Fatalf("expected perfect solve")
	}
}

func TestRunProcessesInjectedKeys(t *testing.T) {
	sc := tcell.NewSimulationScreen("UTF-8")
	if err := sc.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sc.Fini)
	st := game.New(3)
	s := New(st, sc, Options{})

	sc.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sc.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sc.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sc.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sc.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Moves != 1 {
		t.Fatalf("expected one move, got %d", st.Moves)
	}
	if got := st.Board.Slots(game.GoalPole); len(got) != 1 || got[0] != 1 {
		t.Fatalf("goal pole = %v", got)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	sc := newSimScreen(t, 30, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(game.New(3), sc, Options{}).Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
}
