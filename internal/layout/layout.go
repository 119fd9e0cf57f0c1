package layout

import (
	"fmt"
	"strings"

	"hanoi/internal/game"
)

const (
	Padding    = 2
	DiskMargin = 2

	PoleChar   = '|'
	DiskChar   = 'X'
	CursorChar = '+'
	EvenChar   = 'E'
	OddChar    = 'O'

	TooSmallText = "window is too small to render"
)

type Class int

const (
	ClassNeutral Class = iota
	ClassEven
	ClassOdd
)

func (c Class) String() string {
	switch c {
	case ClassEven:
		return "even"
	case ClassOdd:
		return "odd"
	default:
		return "neutral"
	}
}

// Glyph is a horizontal run of identical cells starting at (Row, Col).
type Glyph struct {
	Row   int
	Col   int
	Text  string
	Class Class
}

type Options struct {
	Color bool
}

// Plan is everything a drawer needs for one frame.
type Plan struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
	TooSmall  bool
	Glyphs    []Glyph
	Status    string
}

func MinWidth(disks int) int {
	return game.Poles*(disks*DiskMargin) + (game.Poles+1)*Padding
}

func MinHeight(disks int) int {
	return disks + Padding*2 + 1
}

func DiskWidth(size int) int {
	return size*DiskMargin + 1
}

// Compute lays out the board for a width x height terminal. Margins are
// derived from the current size on every call.
func Compute(s *game.State, width, height int, opts Options) Plan {
	disks := s.Disks()
	p := Plan{
		Width:     width,
		Height:    height,
		MinWidth:  MinWidth(disks),
		MinHeight: MinHeight(disks),
		Status:    StatusLine(s, width, height),
	}
	if width < p.MinWidth || height < p.MinHeight {
		p.TooSmall = true
		return p
	}

	g := geometry{
		disks:   disks,
		maxDisk: DiskWidth(disks),
		xm:      (width-p.MinWidth)/2 - 1,
		ym:      (height-p.MinHeight)/2 - 2,
		color:   opts.Color,
	}
	p.Glyphs = make([]Glyph, 0, game.Poles*disks+1)
	for pole := 0; pole < game.Poles; pole++ {
		slots := s.Board.Slots(pole)
		for h := 0; h < disks; h++ {
			size := 0
			if h < len(slots) {
				size = slots[h]
			}
			p.Glyphs = append(p.Glyphs, g.slot(pole, h, size, PoleChar))
		}
	}
	p.Glyphs = append(p.Glyphs, g.slot(s.Cursor.Pole, disks+1, s.Cursor.Lifted, CursorChar))
	return p
}

// StatusLine reports moves, the minimum, the packed cursor and the terminal size.
func StatusLine(s *game.State, width, height int) string {
	return fmt.Sprintf("MOVES: %d/%d, CURSOR: %d. WIDTH: %d, HEIGHT: %d.",
		s.Moves, s.MinMoves(), s.CursorScalar(), width, height)
}

type geometry struct {
	disks   int
	maxDisk int
	xm      int
	ym      int
	color   bool
}

func (g geometry) slot(pole, height, size int, empty rune) Glyph {
	x := g.xm + pole*g.maxDisk + (pole+1)*Padding
	y := g.ym + Padding + (g.disks - height) + 2
	if size == 0 {
		return Glyph{Row: y, Col: x + g.maxDisk/2, Text: string(empty), Class: ClassNeutral}
	}
	w := DiskWidth(size)
	return Glyph{
		Row:   y,
		Col:   x + (g.maxDisk-w)/2,
		Text:  strings.Repeat(string(g.diskChar(size)), w),
		Class: ParityClass(size),
	}
}

func (g geometry) diskChar(size int) rune {
	if g.color {
		return DiskChar
	}
	if size%2 == 1 {
		return OddChar
	}
	return EvenChar
}

func ParityClass(size int) Class {
	if size%2 == 1 {
		return ClassOdd
	}
	return ClassEven
}
