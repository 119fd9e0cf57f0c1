package game

import (
	"fmt"
	"math"
)

type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionRaise
	ActionLower
	ActionReset
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRaise:
		return "raise"
	case ActionLower:
		return "lower"
	case ActionReset:
		return "reset"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// State is the whole game: board, cursor and counters. It is owned by a
// single event loop and is not safe for concurrent use.
type State struct {
	Board  *Board
	Cursor Cursor
	Moves  uint64
	Resets int
}

func New(disks int) *State {
	return &State{Board: NewBoard(disks)}
}

func (s *State) Disks() int { return s.Board.Disks() }

// Reset restores the starting stack and clears the cursor and move counter.
func (s *State) Reset() {
	s.Board.Reset()
	s.Cursor = Cursor{}
	s.Moves = 0
	s.Resets++
}

func (s *State) MoveLeft()  { s.Cursor = s.Cursor.left() }
func (s *State) MoveRight() { s.Cursor = s.Cursor.right() }

// Raise lifts the topmost disk of the cursor pole. Only one disk can be
// held at a time.
func (s *State) Raise() {
	if s.Cursor.Holding() {
		return
	}
	size, ok := s.Board.Take(s.Cursor.Pole)
	if !ok {
		return
	}
	s.Cursor.Lifted = size
}

// Lower drops the held disk on the cursor pole when the stacking rule
// allows it; otherwise the disk stays lifted.
func (s *State) Lower() {
	if !s.Cursor.Holding() {
		return
	}
	if !s.Board.Place(s.Cursor.Pole, s.Cursor.Lifted) {
		return
	}
	s.Cursor.Lifted = 0
	s.Moves++
}

// Dispatch applies one action. Quit and None leave the state untouched.
func (s *State) Dispatch(a Action) {
	switch a {
	case ActionLeft:
		s.MoveLeft()
	case ActionRight:
		s.MoveRight()
	case ActionRaise:
		s.Raise()
	case ActionLower:
		s.Lower()
	case ActionReset:
		s.Reset()
	}
}

func (s *State) Solved() bool { return s.Board.IsSolved() }

// CursorScalar is the packed cursor reported in the status line.
func (s *State) CursorScalar() int {
	return s.Cursor.Encode(Power(s.Disks()))
}

func (s *State) MinMoves() uint64 { return MinMoves(s.Disks()) }

func (s *State) Perfect() bool {
	return s.Solved() && s.Moves == s.MinMoves()
}

// Completion returns the farewell line for a solved board.
func (s *State) Completion() (string, bool) {
	if !s.Solved() {
		return "", false
	}
	verdict := "Well done"
	if s.Perfect() {
		verdict = "Perfect"
	}
	return fmt.Sprintf("%s! Completed in %d moves!", verdict, s.Moves), true
}

// MinMoves is 2^disks - 1, saturating for 64 disks and above.
func MinMoves(disks int) uint64 {
	if disks <= 0 {
		return 0
	}
	if disks >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(disks) - 1
}
