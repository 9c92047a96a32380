package spacehash

import (
	"fmt"
	"math"
)

// Cell is a grid coordinate: floor(x / cellSize), floor(y / cellSize).
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell coordinates are kept inside the int32 range so that range arithmetic
// never overflows.
const (
	minCell = math.MinInt32
	maxCell = math.MaxInt32
)

// cellRange is the inclusive rectangle of cells [min.X..max.X] x [min.Y..max.Y].
type cellRange struct {
	min, max Cell
}

func (r cellRange) empty() bool {
	return r.min.X > r.max.X || r.min.Y > r.max.Y
}

func (r cellRange) count() int {
	if r.empty() {
		return 0
	}
	return (r.max.X - r.min.X + 1) * (r.max.Y - r.min.Y + 1)
}

// exceeds reports whether the range holds more than n cells.
func (r cellRange) exceeds(n int) bool {
	if r.empty() {
		return false
	}
	w := int64(r.max.X) - int64(r.min.X) + 1
	h := int64(r.max.Y) - int64(r.min.Y) + 1
	return w > int64(n)/h
}

func (r cellRange) contains(c Cell) bool {
	return r.min.X <= c.X && c.X <= r.max.X && r.min.Y <= c.Y && c.Y <= r.max.Y
}

func (a cellRange) intersect(b cellRange) cellRange {
	return cellRange{
		min: Cell{max(a.min.X, b.min.X), max(a.min.Y, b.min.Y)},
		max: Cell{min(a.max.X, b.max.X), min(a.max.Y, b.max.Y)},
	}
}

// first is the lowest cell of the range. For two overlapping ranges,
// a.intersect(b).first() is the lowest cell they share.
func (r cellRange) first() Cell {
	return r.min
}

func (r cellRange) each(f func(c Cell)) {
	for y := r.min.Y; y <= r.max.Y; y++ {
		for x := r.min.X; x <= r.max.X; x++ {
			f(Cell{x, y})
		}
	}
}

func (r cellRange) cells() []Cell {
	cells := make([]Cell, 0, r.count())
	r.each(func(c Cell) {
		cells = append(cells, c)
	})
	return cells
}

// subtract visits every cell of a that is not in b, touching no other cell.
func (a cellRange) subtract(b cellRange, f func(c Cell)) {
	i := a.intersect(b)
	if i.empty() {
		a.each(f)
		return
	}

	// rows below and above the shared band
	cellRange{a.min, Cell{a.max.X, i.min.Y - 1}}.each(f)
	cellRange{Cell{a.min.X, i.max.Y + 1}, a.max}.each(f)

	// columns left and right of the shared band
	cellRange{Cell{a.min.X, i.min.Y}, Cell{i.min.X - 1, i.max.Y}}.each(f)
	cellRange{Cell{i.max.X + 1, i.min.Y}, Cell{a.max.X, i.max.Y}}.each(f)
}

// span maps the axis interval [lo, hi) onto cell indexes. The last cell is the
// one holding the largest float below hi, so any point inside [lo, hi) falls in
// the span even when rounding puts two distinct coordinates on the same
// quotient. A zero-width interval maps onto the single cell containing lo.
func span(lo, hi, dim float64) (float64, float64) {
	ql, fh := math.Floor(lo/dim), math.Floor(hi/dim)
	if hi > lo {
		fh = math.Floor(math.Nextafter(hi, math.Inf(-1)) / dim)
	}
	if fh < ql {
		fh = ql
	}
	return ql, fh
}

// rangeFor maps a valid box onto the cells it covers. ok is false when the
// box reaches outside the representable cell space.
func rangeFor(bb BB, dim float64) (r cellRange, ok bool) {
	x0, x1 := span(bb.L, bb.R, dim)
	y0, y1 := span(bb.B, bb.T, dim)
	if x0 < minCell || y0 < minCell || x1 > maxCell || y1 > maxCell {
		return r, false
	}
	return cellRange{Cell{int(x0), int(y0)}, Cell{int(x1), int(y1)}}, true
}

// queryRangeFor is rangeFor for query regions: instead of failing, it clips
// the region to the representable cell space since no object lives outside it.
func queryRangeFor(bb BB, dim float64) cellRange {
	x0, x1 := span(bb.L, bb.R, dim)
	y0, y1 := span(bb.B, bb.T, dim)
	x0, y0 = Clamp(x0, minCell, maxCell), Clamp(y0, minCell, maxCell)
	x1, y1 = Clamp(x1, x0, maxCell), Clamp(y1, y0, maxCell)
	return cellRange{Cell{int(x0), int(y0)}, Cell{int(x1), int(y1)}}
}
