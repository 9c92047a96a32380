package spacehash

import (
	"math"
	"testing"
)

func TestBB_Intersects(t *testing.T) {
	box := NewBB(0, 0, 10, 10)

	tests := []struct {
		name  string
		other BB
		want  bool
	}{
		{"inside", NewBB(2, 2, 4, 4), true},
		{"overlap corner", NewBB(9, 9, 12, 12), true},
		{"touch right edge", NewBB(10, 0, 20, 10), false},
		{"touch top edge", NewBB(0, 10, 10, 20), false},
		{"touch left edge", NewBB(-5, 0, 0, 10), false},
		{"apart", NewBB(20, 20, 30, 30), false},
		{"point at min corner", NewBBForPoint(Vector{0, 0}), true},
		{"point at max corner", NewBBForPoint(Vector{10, 10}), false},
		{"point inside", NewBBForPoint(Vector{5, 9.999}), true},
		{"vertical segment on left edge", NewBB(0, 2, 0, 8), true},
		{"vertical segment on right edge", NewBB(10, 2, 10, 8), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Intersects(tt.other); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", box, tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(box); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.other, box, got, tt.want)
			}
		})
	}
}

func TestBB_PointsIntersect(t *testing.T) {
	a := NewBBForPoint(Vector{3, 4})
	if !a.Intersects(a) {
		t.Error("Point should intersect itself")
	}
	if a.Intersects(NewBBForPoint(Vector{3, 5})) {
		t.Error("Distinct points should not intersect")
	}
}

func TestBB_Valid(t *testing.T) {
	if !NewBB(0, 0, 0, 0).Valid() {
		t.Error("Zero box should be valid")
	}
	if NewBB(1, 0, 0, 1).Valid() {
		t.Error("Inverted box should be invalid")
	}
	if NewBB(0, 0, math.NaN(), 1).Valid() {
		t.Error("NaN box should be invalid")
	}
	if NewBB(math.Inf(-1), 0, 1, 1).Valid() {
		t.Error("Infinite box should be invalid")
	}
}

func TestBB_ContainsVect(t *testing.T) {
	bb := NewBBForCircle(Vector{5, 5}, 5)
	if !bb.ContainsVect(Vector{0, 0}) {
		t.Error("Min corner is inside")
	}
	if bb.ContainsVect(Vector{10, 5}) {
		t.Error("Right edge is outside")
	}
	if c := bb.Center(); !c.Equal(Vector{5, 5}) {
		t.Errorf("Center = %v", c)
	}
}

func TestBB_MergeExpand(t *testing.T) {
	bb := NewBB(0, 0, 1, 1).Merge(NewBB(-1, 2, 0, 3))
	if bb != NewBB(-1, 0, 1, 3) {
		t.Errorf("Merge = %v", bb)
	}
	bb = bb.Expand(Vector{4, -2})
	if bb != NewBB(-1, -2, 4, 3) {
		t.Errorf("Expand = %v", bb)
	}
	if area := bb.Area(); area != 25 {
		t.Errorf("Area = %v", area)
	}
	if off := bb.Offset(Vector{1, 1}); off != NewBB(0, -1, 5, 4) {
		t.Errorf("Offset = %v", off)
	}
}
