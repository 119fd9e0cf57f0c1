package game

import "math"

// Cursor selects a pole and optionally carries a lifted disk.
// Lifted == 0 means nothing is held.
type Cursor struct {
	Pole   int
	Lifted int
}

func (c Cursor) Holding() bool { return c.Lifted != 0 }

// Power is the smallest power of ten strictly greater than disks. It is only
// used to report the cursor as a single decimal number, and stops at the
// largest power of ten an int can hold.
func Power(disks int) int {
	p := 10
	for p <= disks && p <= math.MaxInt/10 {
		p *= 10
	}
	return p
}

// Encode packs the cursor as Pole*power + Lifted.
func (c Cursor) Encode(power int) int {
	return c.Pole*power + c.Lifted
}

func Decode(scalar, power int) Cursor {
	return Cursor{Pole: scalar / power, Lifted: scalar % power}
}

func (c Cursor) left() Cursor {
	if c.Pole > 0 {
		c.Pole--
	}
	return c
}

func (c Cursor) right() Cursor {
	if c.Pole < Poles-1 {
		c.Pole++
	}
	return c
}
