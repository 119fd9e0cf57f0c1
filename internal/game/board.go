package game

// Poles is fixed; pole 0 is the source and the last pole is the goal.
const Poles = 3

const GoalPole = Poles - 1

// MaxDisks is the largest tower whose minimal move count fits in a uint64.
const MaxDisks = 63

// Pole is one stack of disks, base first.
type Pole struct {
	disks []int
}

func (p *Pole) Push(size int) {
	p.disks = append(p.disks, size)
}

func (p *Pole) Pop() (int, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	top := p.disks[len(p.disks)-1]
	p.disks = p.disks[:len(p.disks)-1]
	return top, true
}

func (p *Pole) Peek() (int, bool) {
	if len(p.disks) == 0 {
		return 0, false
	}
	return p.disks[len(p.disks)-1], true
}

func (p *Pole) Len() int { return len(p.disks) }

// Board holds the three poles. Each disk size 1..Disks lives on exactly one
// pole or is held by the cursor; Place is the only stacking gate.
type Board struct {
	disks int
	poles [Poles]Pole
}

// NewBoard stacks disks on pole 0. Counts above MaxDisks are clamped.
func NewBoard(disks int) *Board {
	b := &Board{disks: min(disks, MaxDisks)}
	b.Reset()
	return b
}

// Reset stacks every disk on pole 0, largest at the base.
func (b *Board) Reset() {
	for i := range b.poles {
		b.poles[i].disks = make([]int, 0, b.disks)
	}
	for size := b.disks; size > 0; size-- {
		b.poles[0].Push(size)
	}
}

func (b *Board) Disks() int { return b.disks }

// Topmost returns the slot index and size of the highest disk on pole.
func (b *Board) Topmost(pole int) (slot, size int, ok bool) {
	if !validPole(pole) {
		return 0, 0, false
	}
	size, ok = b.poles[pole].Peek()
	if !ok {
		return 0, 0, false
	}
	return b.poles[pole].Len() - 1, size, true
}

// CanPlace reports whether size may go on top of pole.
func (b *Board) CanPlace(pole, size int) bool {
	if !validPole(pole) || size < 1 || size > b.disks {
		return false
	}
	p := &b.poles[pole]
	if p.Len() >= b.disks {
		return false
	}
	top, ok := p.Peek()
	return !ok || top > size
}

// Place stacks size on pole. An illegal placement changes nothing.
func (b *Board) Place(pole, size int) bool {
	if !b.CanPlace(pole, size) {
		return false
	}
	b.poles[pole].Push(size)
	return true
}

// Take removes the topmost disk from pole.
func (b *Board) Take(pole int) (int, bool) {
	if !validPole(pole) {
		return 0, false
	}
	return b.poles[pole].Pop()
}

// Slots returns a copy of the occupied slots of pole, base first.
func (b *Board) Slots(pole int) []int {
	if !validPole(pole) {
		return nil
	}
	return append([]int(nil), b.poles[pole].disks...)
}

// IsSolved only inspects the goal pole.
func (b *Board) IsSolved() bool {
	goal := b.poles[GoalPole].disks
	if len(goal) != b.disks {
		return false
	}
	for i, size := range goal {
		if size != b.disks-i {
			return false
		}
	}
	return true
}

func validPole(pole int) bool {
	return pole >= 0 && pole < Poles
}
