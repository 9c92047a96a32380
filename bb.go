package spacehash

import (
	"fmt"
	"math"
)

// BB is an axis-aligned bounding box. Each axis is the half-open interval
// [L, R) and [B, T). An axis with zero extent is the single coordinate L (or B),
// which lets points be indexed and queried like any other box.
type BB struct {
	L, B, R, T float64
}

func NewBB(l, b, r, t float64) BB {
	return BB{l, b, r, t}
}

func NewBBForExtents(c Vector, hw, hh float64) BB {
	return BB{
		L: c.X - hw,
		B: c.Y - hh,
		R: c.X + hw,
		T: c.Y + hh,
	}
}

func NewBBForCircle(p Vector, r float64) BB {
	return NewBBForExtents(p, r, r)
}

// NewBBForPoint returns a zero-extent box at p.
func NewBBForPoint(p Vector) BB {
	return BB{p.X, p.Y, p.X, p.Y}
}

// Valid reports whether every edge is finite and the box is not inverted.
func (bb BB) Valid() bool {
	return finite(bb.L) && finite(bb.B) && finite(bb.R) && finite(bb.T) &&
		bb.L <= bb.R && bb.B <= bb.T
}

func (a BB) Intersects(b BB) bool {
	return overlaps(a.L, a.R, b.L, b.R) && overlaps(a.B, a.T, b.B, b.T)
}

// overlaps tests two axis intervals under the half-open convention.
func overlaps(a0, a1, b0, b1 float64) bool {
	if a0 == a1 {
		if b0 == b1 {
			return a0 == b0
		}
		return b0 <= a0 && a0 < b1
	}
	if b0 == b1 {
		return a0 <= b0 && b0 < a1
	}
	return a0 < b1 && b0 < a1
}

func (bb BB) Contains(other BB) bool {
	return bb.L <= other.L && bb.R >= other.R && bb.B <= other.B && bb.T >= other.T
}

func (bb BB) ContainsVect(v Vector) bool {
	return bb.Intersects(NewBBForPoint(v))
}

func (a BB) Merge(b BB) BB {
	return BB{
		math.Min(a.L, b.L),
		math.Min(a.B, b.B),
		math.Max(a.R, b.R),
		math.Max(a.T, b.T),
	}
}

func (bb BB) Expand(v Vector) BB {
	return BB{
		math.Min(bb.L, v.X),
		math.Min(bb.B, v.Y),
		math.Max(bb.R, v.X),
		math.Max(bb.T, v.Y),
	}
}

func (bb BB) Center() Vector {
	return Vector{bb.L, bb.B}.Lerp(Vector{bb.R, bb.T}, 0.5)
}

func (bb BB) Area() float64 {
	return (bb.R - bb.L) * (bb.T - bb.B)
}

func (bb BB) Offset(v Vector) BB {
	return BB{
		bb.L + v.X,
		bb.B + v.Y,
		bb.R + v.X,
		bb.T + v.Y,
	}
}

func (bb BB) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", bb.L, bb.B, bb.R, bb.T)
}
