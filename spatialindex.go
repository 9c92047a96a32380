package spacehash

// SpatialIndexer is the contract shared by spatial indexes over identified boxes.
type SpatialIndexer[K comparable] interface {
	Count() int
	Contains(obj K) bool
	Each(f func(obj K, bb BB))
	Insert(obj K, bb BB) error
	Remove(obj K) error
	Move(obj K, bb BB) error
	Query(bb BB) []K
	Clear()
}

var _ SpatialIndexer[int] = (*SpaceHash[int])(nil)

// CollideStatic reports every object of staticIndex whose box intersects an
// object of dynamicIndex. It lets rarely moving geometry live in its own index
// with a coarser cell size.
func CollideStatic[K comparable](dynamicIndex, staticIndex SpatialIndexer[K], f func(dynamicObj, staticObj K)) {
	if staticIndex == nil || staticIndex.Count() == 0 {
		return
	}
	dynamicIndex.Each(func(obj K, bb BB) {
		for _, other := range staticIndex.Query(bb) {
			f(obj, other)
		}
	})
}
