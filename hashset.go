package spacehash

// indexThreshold is the size at which a hashSet starts keeping an index
// alongside its elements. Most cells hold a handful of objects, where a linear
// scan beats a map.
const indexThreshold = 16

// hashSet is an unordered set kept as a dense slice. Elements are removed by
// swapping the last element into their slot, so Elements stays packed.
type hashSet[T comparable] struct {
	elts  []T
	index map[T]int
}

func newHashSet[T comparable]() *hashSet[T] {
	return &hashSet[T]{}
}

func (set *hashSet[T]) Count() int {
	return len(set.elts)
}

func (set *hashSet[T]) find(elt T) int {
	if set.index != nil {
		if i, ok := set.index[elt]; ok {
			return i
		}
		return -1
	}
	for i, e := range set.elts {
		if e == elt {
			return i
		}
	}
	return -1
}

func (set *hashSet[T]) Contains(elt T) bool {
	return set.find(elt) >= 0
}

// Insert adds elt and reports whether it was not already present.
func (set *hashSet[T]) Insert(elt T) bool {
	if set.find(elt) >= 0 {
		return false
	}

	set.elts = append(set.elts, elt)
	if set.index != nil {
		set.index[elt] = len(set.elts) - 1
	} else if len(set.elts) > indexThreshold {
		set.index = make(map[T]int, len(set.elts)*2)
		for i, e := range set.elts {
			set.index[e] = i
		}
	}
	return true
}

// Remove deletes elt and reports whether it was present.
func (set *hashSet[T]) Remove(elt T) bool {
	i := set.find(elt)
	if i < 0 {
		return false
	}

	last := len(set.elts) - 1
	if i < last {
		set.elts[i] = set.elts[last]
		if set.index != nil {
			set.index[set.elts[i]] = i
		}
	}

	var zero T
	set.elts[last] = zero
	set.elts = set.elts[:last]
	if set.index != nil {
		delete(set.index, elt)
	}
	return true
}

// Elements returns the backing slice. It is only valid until the next
// Insert or Remove and must not be modified.
func (set *hashSet[T]) Elements() []T {
	if set == nil {
		return nil
	}
	return set.elts
}

// Free empties the set, keeping the slice capacity for reuse.
func (set *hashSet[T]) Free() {
	clear(set.elts)
	set.elts = set.elts[:0]
	set.index = nil
}
