package game

// MaxSolveDisks bounds OptimalMoves; the move list grows as 2^disks.
const MaxSolveDisks = 20

// Move transfers the top disk of From onto To.
type Move struct {
	From int
	To   int
}

// OptimalMoves returns the classical minimal solution moving the whole
// tower from pole 0 to the goal pole.
func OptimalMoves(disks int) []Move {
	if disks <= 0 || disks > MaxSolveDisks {
		return nil
	}
	out := make([]Move, 0, MinMoves(disks))
	return towers(disks, 0, GoalPole, 1, out)
}

func towers(n, from, to, spare int, out []Move) []Move {
	if n == 0 {
		return out
	}
	out = towers(n-1, from, spare, to, out)
	out = append(out, Move{From: from, To: to})
	return towers(n-1, spare, to, from, out)
}

// Actions expands a move into cursor actions starting from pole at.
func (m Move) Actions(at int) []Action {
	var out []Action
	out = append(out, steer(at, m.From)...)
	out = append(out, ActionRaise)
	out = append(out, steer(m.From, m.To)...)
	return append(out, ActionLower)
}

func steer(from, to int) []Action {
	var out []Action
	for ; from < to; from++ {
		out = append(out, ActionRight)
	}
	for ; from > to; from-- {
		out = append(out, ActionLeft)
	}
	return out
}
