package game

import (
	"math"
	"reflect"
	"testing"
)

func TestNewBoardStacksEverythingOnFirstPole(t *testing.T) {
	b := NewBoard(3)
	if got := b.Slots(0); !reflect.DeepEqual(got, []int{3, 2, 1}) {
		t.Fatalf("pole 0 = %v, want [3 2 1]", got)
	}
	for pole := 1; pole < Poles; pole++ {
		if got := b.Slots(pole); len(got) != 0 {
			t.Fatalf("pole %d = %v, want empty", pole, got)
		}
	}
}

func TestNewBoardClampsHugeTowers(t *testing.T) {
	b := NewBoard(math.MaxInt)
	if b.Disks() != MaxDisks {
		t.Fatalf("disks = %d, want %d", b.Disks(), MaxDisks)
	}
	if got := len(b.Slots(0)); got != MaxDisks {
		t.Fatalf("pole 0 holds %d disks", got)
	}
	if MinMoves(MaxDisks) == math.MaxUint64 {
		t.Fatalf("MinMoves(MaxDisks) must not saturate")
	}
}

func TestTopmost(t *testing.T) {
	b := NewBoard(4)
	slot, size, ok := b.Topmost(0)
	if !ok || slot != 3 || size != 1 {
		t.Fatalf("topmost(0) = (%d, %d, %v), want (3, 1, true)", slot, size, ok)
	}
	if _, _, ok := b.Topmost(1); ok {
		t.Fatalf("expected empty pole 1")
	}
	if _, _, ok := b.Topmost(7); ok {
		t.Fatalf("expected out-of-range pole to report empty")
	}
}

func TestPlaceEnforcesStackingRule(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Board)
		pole  int
		size  int
		want  bool
	}{
		{name: "empty pole", setup: func(b *Board) { _, _ = b.Take(0) }, pole: 2, size: 1, want: true},
		{name: "smaller on larger", setup: func(b *Board) {
			_, _ = b.Take(0)
			_, _ = b.Take(0)
			b.Place(1, 2)
		}, pole: 1, size: 1, want: true},
		{name: "larger on smaller", setup: func(b *Board) { _, _ = b.Take(0) }, pole: 0, size: 3, want: false},
		{name: "zero size", setup: func(*Board) {}, pole: 1, size: 0, want: false},
		{name: "size above disks", setup: func(*Board) {}, pole: 1, size: 4, want: false},
		{name: "bad pole", setup: func(*Board) {}, pole: -1, size: 1, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(3)
			tt.setup(b)
			before := b.Slots(tt.pole)
			got := b.Place(tt.pole, tt.size)
			if got != tt.want {
				t.Fatalf("Place(%d, %d) = %v, want %v", tt.pole, tt.size, got, tt.want)
			}
			if !got && !reflect.DeepEqual(before, b.Slots(tt.pole)) {
				t.Fatalf("rejected placement changed pole: %v -> %v", before, b.Slots(tt.pole))
			}
		})
	}
}

func TestTakeFromEmptyPole(t *testing.T) {
	b := NewBoard(2)
	if size, ok := b.Take(1); ok || size != 0 {
		t.Fatalf("Take(1) = (%d, %v), want (0, false)", size, ok)
	}
	size, ok := b.Take(0)
	if !ok || size != 1 {
		t.Fatalf("Take(0) = (%d, %v), want (1, true)", size, ok)
	}
}

func TestIsSolvedOnlyForCanonicalGoalStack(t *testing.T) {
	b := NewBoard(3)
	if b.IsSolved() {
		t.Fatalf("fresh board must not be solved")
	}
	for b.poles[0].Len() > 0 {
		size, _ := b.poles[0].Pop()
		b.poles[GoalPole].disks = append(b.poles[GoalPole].disks, size)
	}
	// goal pole is now [1 2 3] base to top: wrong order
	if b.IsSolved() {
		t.Fatalf("inverted stack must not count as solved")
	}
	b.poles[GoalPole].disks = []int{3, 2, 1}
	if !b.IsSolved() {
		t.Fatalf("expected [3 2 1] on goal pole to be solved")
	}
}
