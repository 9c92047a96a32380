// Package spacehash indexes a dynamic set of identified axis-aligned boxes in
// a sparse grid of square cells and answers region queries and broad-phase
// pair enumeration.
//
// Boxes are half-open on both axes: [L, R) x [B, T). Boxes that only touch
// along an edge do not intersect and do not share the cell beyond that edge.
package spacehash

import (
	"fmt"
	"iter"
	"math"
)

// poolLimit caps how many emptied cell bins are kept for reuse.
const poolLimit = 256

// SpaceHash is a sparse spatial hash over axis-aligned boxes. Cells exist only
// while at least one object overlaps them.
//
// A SpaceHash does no locking. Mutations must be serialized by the caller;
// read-only calls may run concurrently with each other while no mutation is
// in flight.
type SpaceHash[K comparable] struct {
	celldim float64

	table     map[Cell]*hashSet[*handle[K]]
	handleSet map[K]*handle[K]

	pooledBins []*hashSet[*handle[K]]
}

// handle is the membership record of one object: its last known box and the
// exact range of cells it occupies.
type handle[K comparable] struct {
	obj   K
	bb    BB
	cells cellRange
}

// New creates an empty SpaceHash. celldim is the side of a square cell and
// must be finite and positive. capacity is a hint for the number of objects.
func New[K comparable](celldim float64, capacity int) (*SpaceHash[K], error) {
	if !(celldim > 0) || math.IsInf(celldim, 1) {
		return nil, fmt.Errorf("spacehash: cell size %v: %w", celldim, ErrInvalidConfiguration)
	}
	capacity = max(capacity, 0)
	return &SpaceHash[K]{
		celldim:   celldim,
		table:     make(map[Cell]*hashSet[*handle[K]], capacity),
		handleSet: make(map[K]*handle[K], capacity),
	}, nil
}

func (hash *SpaceHash[K]) CellSize() float64 {
	return hash.celldim
}

// Count returns the number of objects in the index.
func (hash *SpaceHash[K]) Count() int {
	return len(hash.handleSet)
}

// CellCount returns the number of occupied cells.
func (hash *SpaceHash[K]) CellCount() int {
	return len(hash.table)
}

func (hash *SpaceHash[K]) Contains(obj K) bool {
	_, ok := hash.handleSet[obj]
	return ok
}

// BB returns the stored box of obj.
func (hash *SpaceHash[K]) BB(obj K) (BB, bool) {
	hand, ok := hash.handleSet[obj]
	if !ok {
		return BB{}, false
	}
	return hand.bb, true
}

// Cells returns the cells obj currently occupies.
func (hash *SpaceHash[K]) Cells(obj K) ([]Cell, bool) {
	hand, ok := hash.handleSet[obj]
	if !ok {
		return nil, false
	}
	return hand.cells.cells(), true
}

func (hash *SpaceHash[K]) cellsFor(op string, obj K, bb BB) (cellRange, error) {
	if !bb.Valid() {
		return cellRange{}, &ObjectError{op, obj, ErrInvalidBB}
	}
	r, ok := rangeFor(bb, hash.celldim)
	if !ok {
		return cellRange{}, &ObjectError{op, obj, ErrInvalidBB}
	}
	return r, nil
}

// Insert adds obj with the box bb. It fails with ErrDuplicateObject if obj is
// already present and with ErrInvalidBB if bb cannot be indexed; in both cases
// the index is left untouched.
func (hash *SpaceHash[K]) Insert(obj K, bb BB) error {
	if _, ok := hash.handleSet[obj]; ok {
		return &ObjectError{"insert", obj, ErrDuplicateObject}
	}
	r, err := hash.cellsFor("insert", obj, bb)
	if err != nil {
		return err
	}

	hand := &handle[K]{obj: obj, bb: bb, cells: r}
	hash.handleSet[obj] = hand
	r.each(func(c Cell) {
		hash.hashHandle(c, hand)
	})

	hash.checkInvariants("insert")
	return nil
}

// Remove drops obj from every cell it occupies. It fails with
// ErrUnknownObject if obj is not present.
func (hash *SpaceHash[K]) Remove(obj K) error {
	hand, ok := hash.handleSet[obj]
	if !ok {
		return &ObjectError{"remove", obj, ErrUnknownObject}
	}

	hand.cells.each(func(c Cell) {
		hash.unhashHandle(c, hand)
	})
	delete(hash.handleSet, obj)

	hash.checkInvariants("remove")
	return nil
}

// Move replaces the box of obj. Only cells that gain or lose obj are touched;
// if the new box covers the same cells, only the stored box changes.
func (hash *SpaceHash[K]) Move(obj K, bb BB) error {
	hand, ok := hash.handleSet[obj]
	if !ok {
		return &ObjectError{"move", obj, ErrUnknownObject}
	}
	r, err := hash.cellsFor("move", obj, bb)
	if err != nil {
		return err
	}

	if r != hand.cells {
		hand.cells.subtract(r, func(c Cell) {
			hash.unhashHandle(c, hand)
		})
		r.subtract(hand.cells, func(c Cell) {
			hash.hashHandle(c, hand)
		})
		hand.cells = r
	}
	hand.bb = bb

	hash.checkInvariants("move")
	return nil
}

// Clear removes every object and cell.
func (hash *SpaceHash[K]) Clear() {
	for _, bin := range hash.table {
		hash.recycleBin(bin)
	}
	clear(hash.table)
	clear(hash.handleSet)
}

// Query returns every object whose box intersects bb, each exactly once.
// The result is nil when nothing intersects or bb is not a valid box.
func (hash *SpaceHash[K]) Query(bb BB) []K {
	if !bb.Valid() {
		return nil
	}

	r := queryRangeFor(bb, hash.celldim)
	var result []K
	visit := func(c Cell, bin *hashSet[*handle[K]]) {
		for _, hand := range bin.Elements() {
			// report each object from the lowest cell it shares with the region
			if hand.cells.intersect(r).first() != c {
				continue
			}
			if hand.bb.Intersects(bb) {
				result = append(result, hand.obj)
			}
		}
	}

	if r.exceeds(len(hash.table)) {
		for c, bin := range hash.table {
			if r.contains(c) {
				visit(c, bin)
			}
		}
	} else {
		r.each(func(c Cell) {
			if bin := hash.table[c]; bin != nil {
				visit(c, bin)
			}
		})
	}
	return result
}

// QueryPoint returns every object whose box contains p.
func (hash *SpaceHash[K]) QueryPoint(p Vector) []K {
	return hash.Query(NewBBForPoint(p))
}

// CandidatePairs yields every unordered pair of objects that share at least
// one cell, exactly once. Which object of a pair comes first is unspecified.
// The index must not be mutated until the iteration is finished.
func (hash *SpaceHash[K]) CandidatePairs() iter.Seq2[K, K] {
	return hash.pairs(nil)
}

// OverlappingPairs is CandidatePairs restricted to pairs whose boxes intersect.
func (hash *SpaceHash[K]) OverlappingPairs() iter.Seq2[K, K] {
	return hash.pairs(func(a, b *handle[K]) bool {
		return a.bb.Intersects(b.bb)
	})
}

func (hash *SpaceHash[K]) pairs(filter func(a, b *handle[K]) bool) iter.Seq2[K, K] {
	return func(yield func(K, K) bool) {
		for c, bin := range hash.table {
			elts := bin.Elements()
			for i, a := range elts {
				for _, b := range elts[i+1:] {
					// a pair sharing several cells is only reported from the lowest one
					if a.cells.intersect(b.cells).first() != c {
						continue
					}
					if filter != nil && !filter(a, b) {
						continue
					}
					if !yield(a.obj, b.obj) {
						return
					}
				}
			}
		}
	}
}

// Each calls f for every object in the index, in no particular order.
func (hash *SpaceHash[K]) Each(f func(obj K, bb BB)) {
	for _, hand := range hash.handleSet {
		f(hand.obj, hand.bb)
	}
}

// IDs yields every object in the index, in no particular order.
func (hash *SpaceHash[K]) IDs() iter.Seq[K] {
	return func(yield func(K) bool) {
		for obj := range hash.handleSet {
			if !yield(obj) {
				return
			}
		}
	}
}

func (hash *SpaceHash[K]) String() string {
	return fmt.Sprintf("<SpaceHash: cell=%g, %d object%s, %d cell%s>",
		hash.celldim, len(hash.handleSet), plural(len(hash.handleSet)), len(hash.table), plural(len(hash.table)))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (hash *SpaceHash[K]) hashHandle(c Cell, hand *handle[K]) {
	bin := hash.table[c]
	if bin == nil {
		bin = hash.getEmptyBin()
		hash.table[c] = bin
	}
	bin.Insert(hand)
}

func (hash *SpaceHash[K]) unhashHandle(c Cell, hand *handle[K]) {
	bin := hash.table[c]
	if bin == nil {
		return
	}
	bin.Remove(hand)
	if bin.Count() == 0 {
		delete(hash.table, c)
		hash.recycleBin(bin)
	}
}

func (hash *SpaceHash[K]) recycleBin(bin *hashSet[*handle[K]]) {
	if len(hash.pooledBins) >= poolLimit {
		return
	}
	bin.Free()
	hash.pooledBins = append(hash.pooledBins, bin)
}

func (hash *SpaceHash[K]) getEmptyBin() *hashSet[*handle[K]] {
	if n := len(hash.pooledBins); n > 0 {
		bin := hash.pooledBins[n-1]
		hash.pooledBins[n-1] = nil
		hash.pooledBins = hash.pooledBins[:n-1]
		return bin
	}
	return newHashSet[*handle[K]]()
}

// verify recomputes every membership record from its box and checks it
// against both the handle and the cell table.
func (hash *SpaceHash[K]) verify() error {
	memberships := 0
	for obj, hand := range hash.handleSet {
		if hand.obj != obj {
			return fmt.Errorf("handle for %v records object %v", obj, hand.obj)
		}
		want, ok := rangeFor(hand.bb, hash.celldim)
		if !ok || want != hand.cells {
			return fmt.Errorf("object %v with box %v records cells %v-%v, want %v-%v",
				obj, hand.bb, hand.cells.min, hand.cells.max, want.min, want.max)
		}
		var err error
		hand.cells.each(func(c Cell) {
			if bin := hash.table[c]; err == nil && (bin == nil || !bin.Contains(hand)) {
				err = fmt.Errorf("object %v missing from cell %v", obj, c)
			}
		})
		if err != nil {
			return err
		}
		memberships += hand.cells.count()
	}

	entries := 0
	for c, bin := range hash.table {
		if bin.Count() == 0 {
			return fmt.Errorf("empty cell %v retained", c)
		}
		for _, hand := range bin.Elements() {
			if hash.handleSet[hand.obj] != hand {
				return fmt.Errorf("cell %v holds stale object %v", c, hand.obj)
			}
			if !hand.cells.contains(c) {
				return fmt.Errorf("cell %v holds object %v outside its cells", c, hand.obj)
			}
		}
		entries += bin.Count()
	}
	if entries != memberships {
		return fmt.Errorf("cells hold %d entries, objects record %d", entries, memberships)
	}
	return nil
}
