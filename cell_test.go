package spacehash

import (
	"math"
	"testing"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		lo, hi, dim float64
		x0, x1      float64
	}{
		{0, 5, 10, 0, 0},
		{0, 10, 10, 0, 0},
		{0, 10.5, 10, 0, 1},
		{10, 10, 10, 1, 1},
		// the float just below 0 divides to -0, which floors into cell 0
		{-0.5, 0, 10, -1, 0},
		{-10, -10, 10, -1, -1},
		{-25, 5, 10, -3, 0},
		{3, 3.0000001, 1, 3, 3},
	}
	for _, tt := range tests {
		x0, x1 := span(tt.lo, tt.hi, tt.dim)
		if x0 != tt.x0 || x1 != tt.x1 {
			t.Errorf("span(%v, %v, %v) = %v, %v, want %v, %v", tt.lo, tt.hi, tt.dim, x0, x1, tt.x0, tt.x1)
		}
	}
}

func TestSpan_RoundedQuotient(t *testing.T) {
	// e/dim rounds to exactly 777 and so does the float just below e
	dim, e := 2.522375635733854, 1959.8858689652045
	a := math.Nextafter(e, 0)

	_, last := span(0, e, dim)
	first, _ := span(a, a+1, dim)
	if last < first {
		t.Errorf("span of [0, %v) ends at cell %v, before cell %v holding %v", e, last, first, a)
	}
}

func TestRangeFor_OutOfRange(t *testing.T) {
	if _, ok := rangeFor(NewBB(0, 0, 1, 1), 1); !ok {
		t.Error("Small box should map")
	}
	if _, ok := rangeFor(NewBB(-1e10, 0, 1, 1), 1); ok {
		t.Error("Box beyond int32 cells should not map")
	}
	r := queryRangeFor(NewBB(-1e10, 0, 1e10, 1), 1)
	if r.min.X != minCell || r.max.X != maxCell {
		t.Errorf("Query range not clipped: %v-%v", r.min, r.max)
	}
}

func TestCellRange_Subtract(t *testing.T) {
	ranges := []cellRange{
		{Cell{0, 0}, Cell{3, 3}},
		{Cell{1, 1}, Cell{4, 4}},
		{Cell{-2, 1}, Cell{5, 2}},
		{Cell{2, -3}, Cell{2, 7}},
		{Cell{10, 10}, Cell{11, 11}},
		{Cell{1, 1}, Cell{2, 2}},
	}
	for _, a := range ranges {
		for _, b := range ranges {
			visited := map[Cell]int{}
			a.subtract(b, func(c Cell) {
				visited[c]++
			})

			want := 0
			a.each(func(c Cell) {
				if b.contains(c) {
					return
				}
				want++
				if visited[c] != 1 {
					t.Errorf("%v minus %v visited %v %d times", a, b, c, visited[c])
				}
			})
			if len(visited) != want {
				t.Errorf("%v minus %v visited %d cells, want %d", a, b, len(visited), want)
			}
		}
	}
}

func TestCellRange_Exceeds(t *testing.T) {
	r := cellRange{Cell{0, 0}, Cell{2, 3}}
	if r.count() != 12 {
		t.Errorf("count = %d", r.count())
	}
	if !r.exceeds(11) || r.exceeds(12) {
		t.Error("exceeds disagrees with count")
	}
	huge := cellRange{Cell{minCell, minCell}, Cell{maxCell, maxCell}}
	if !huge.exceeds(1 << 40) {
		t.Error("huge range should exceed")
	}
}
