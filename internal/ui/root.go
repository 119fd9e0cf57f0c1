package ui

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"hanoi/internal/game"
	"hanoi/internal/layout"
	"hanoi/internal/telemetry"
)

type Options struct {
	Color        bool
	StyleVariant string
	Logger       *telemetry.Logger
}

// Root is the Bubble Tea model. The game state is only touched from
// Update, which Bubble Tea runs on a single goroutine.
type Root struct {
	state  *game.State
	theme  Theme
	color  bool
	logger *telemetry.Logger

	mu      sync.Mutex
	program *tea.Program
	running bool

	cols int
	rows int

	helpOpen bool
	help     help.Model
	keymap   gameKeyMap
	helpText string
}

func New(state *game.State, opts Options) *Root {
	h := help.New()
	h.Styles = help.DefaultDarkStyles()
	h.ShowAll = true

	r := &Root{
		state:  state,
		theme:  ThemeForVariant(opts.StyleVariant),
		color:  opts.Color,
		logger: opts.Logger,
		cols:   80,
		rows:   24,
		help:   h,
		keymap: defaultKeyMap(),
	}
	r.helpText = renderControls(state.Disks(), opts.Color)
	return r
}

func (r *Root) Init() tea.Cmd {
	return nil
}

func (r *Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.cols = msg.Width
		r.rows = msg.Height
		r.logger.Debug("frontend.resize", map[string]any{"cols": msg.Width, "rows": msg.Height})
		return r, nil
	case tea.KeyPressMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *Root) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	action := r.keymap.actionFor(msg)
	if action == game.ActionQuit {
		r.logger.Info("game.quit", map[string]any{"moves": r.state.Moves, "solved": r.state.Solved()})
		return r, tea.Quit
	}
	if r.helpOpen {
		if key.Matches(msg, r.keymap.Close) {
			r.helpOpen = false
		}
		return r, nil
	}
	if key.Matches(msg, r.keymap.Help) {
		r.helpOpen = true
		return r, nil
	}
	if action == game.ActionNone {
		return r, nil
	}

	r.state.Dispatch(action)
	r.logger.Debug("game.action", map[string]any{
		"action": action.String(),
		"cursor": r.state.CursorScalar(),
		"moves":  r.state.Moves,
	})
	if action == game.ActionReset {
		r.logger.Info("game.reset", map[string]any{"resets": r.state.Resets})
	}
	if r.state.Solved() {
		r.logger.Info("game.solved", map[string]any{"moves": r.state.Moves, "perfect": r.state.Perfect()})
		return r, tea.Quit
	}
	return r, nil
}

func (r *Root) View() (view tea.View) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("ui.view_panic", map[string]any{"panic": fmt.Sprint(rec), "stack": string(debug.Stack())})
			view = tea.NewView("render failed")
		}
	}()
	v := tea.NewView(r.frame())
	v.AltScreen = true
	return v
}

// frame renders the current screen as text.
func (r *Root) frame() string {
	if r.helpOpen {
		return r.renderHelp()
	}
	plan := layout.Compute(r.state, r.cols, r.rows, layout.Options{Color: r.color})
	if !r.color {
		return strings.Join(plan.Lines(), "\n")
	}
	return strings.Join(r.styledLines(plan), "\n")
}

// styledLines groups each row into runs of one class and styles each run.
func (r *Root) styledLines(plan layout.Plan) []string {
	cells := plan.Cells()
	out := make([]string, len(cells))
	for y, row := range cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].Class == row[start].Class {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.Ch)
			}
			style := r.theme.ForClass(row[start].Class)
			if y == len(cells)-1 {
				style = r.theme.Status
			}
			b.WriteString(style.Render(string(run)))
			start = x
		}
		out[y] = b.String()
	}
	return out
}

func (r *Root) renderHelp() string {
	title := fmt.Sprintf("TOWER OF HANOI · %d disks", r.state.Disks())
	footer := "Press ? or esc to return."
	if r.color {
		title = r.theme.HelpTitle.Render(title)
		footer = r.theme.Muted.Render(footer)
	}
	lines := []string{title}
	lines = append(lines, strings.Split(strings.TrimRight(r.helpText, "\n"), "\n")...)
	lines = append(lines, "", r.help.View(r.keymap), "", footer)
	if len(lines) > r.rows && r.rows > 0 {
		lines = lines[:r.rows]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, max(1, r.cols), "")
	}
	return strings.Join(lines, "\n")
}

func (r *Root) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	p := tea.NewProgram(r, tea.WithContext(ctx))
	r.program = p
	r.running = true
	r.mu.Unlock()

	_, err := p.Run()

	r.mu.Lock()
	r.program = nil
	r.running = false
	r.mu.Unlock()
	return err
}

func (r *Root) Stop() {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}

const controlsMD = `# Tower of Hanoi

Move the tower of **%d** disks from the left pole to the right pole.
A disk may only rest on an empty pole or on a larger disk.

| Key | Action |
| --- | --- |
| ← → | move the cursor |
| ↑ | raise the top disk |
| ↓ | lower the held disk |
| r | reset |
| q | quit |

The best possible solution takes **%d** moves.
`

func renderControls(disks int, color bool) string {
	md := fmt.Sprintf(controlsMD, disks, game.MinMoves(disks))
	style := "dark"
	if !color {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
