package spacehash

// Tenants returns the objects occupying any of the given cells, each once.
func (hash *SpaceHash[K]) Tenants(cells ...Cell) []K {
	var result []K
	seen := map[*handle[K]]struct{}{}
	for _, c := range cells {
		bin := hash.table[c]
		if bin == nil {
			continue
		}
		for _, hand := range bin.Elements() {
			if _, ok := seen[hand]; !ok {
				seen[hand] = struct{}{}
				result = append(result, hand.obj)
			}
		}
	}
	return result
}

// Neighbors returns the objects sharing at least one cell with any of objs.
// The given objects are never part of the result and unknown ids are ignored.
func (hash *SpaceHash[K]) Neighbors(objs ...K) []K {
	seen := map[*handle[K]]struct{}{}
	given := make([]*handle[K], 0, len(objs))
	for _, obj := range objs {
		if hand, ok := hash.handleSet[obj]; ok {
			if _, dup := seen[hand]; !dup {
				seen[hand] = struct{}{}
				given = append(given, hand)
			}
		}
	}

	var result []K
	for _, hand := range given {
		hand.cells.each(func(c Cell) {
			for _, other := range hash.table[c].Elements() {
				if _, ok := seen[other]; !ok {
					seen[other] = struct{}{}
					result = append(result, other.obj)
				}
			}
		})
	}
	return result
}

// Community follows shared cells outward from objs until nothing new is
// reachable. It returns every cell and every object found, including the
// starting objects. Unknown ids are ignored.
func (hash *SpaceHash[K]) Community(objs ...K) ([]Cell, []K) {
	var (
		cells   []Cell
		result  []K
		queue   []*handle[K]
		visited = map[*handle[K]]struct{}{}
		walked  = map[Cell]struct{}{}
	)
	for _, obj := range objs {
		if hand, ok := hash.handleSet[obj]; ok {
			if _, dup := visited[hand]; !dup {
				visited[hand] = struct{}{}
				queue = append(queue, hand)
				result = append(result, obj)
			}
		}
	}

	for len(queue) > 0 {
		hand := queue[0]
		queue = queue[1:]
		hand.cells.each(func(c Cell) {
			if _, ok := walked[c]; ok {
				return
			}
			walked[c] = struct{}{}
			cells = append(cells, c)
			for _, other := range hash.table[c].Elements() {
				if _, ok := visited[other]; !ok {
					visited[other] = struct{}{}
					queue = append(queue, other)
					result = append(result, other.obj)
				}
			}
		})
	}
	return cells, result
}
