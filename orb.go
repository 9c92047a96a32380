package spacehash

import "github.com/paulmach/orb"

// BBFromBound converts an orb.Bound. orb treats bounds as closed, so a
// geometry lying exactly on the max edge of the bound is outside the
// resulting BB.
func BBFromBound(b orb.Bound) BB {
	return BB{b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y()}
}

func (bb BB) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{bb.L, bb.B},
		Max: orb.Point{bb.R, bb.T},
	}
}

// InsertBound inserts obj using the bound of an orb geometry.
func (hash *SpaceHash[K]) InsertBound(obj K, b orb.Bound) error {
	return hash.Insert(obj, BBFromBound(b))
}

// MoveBound moves obj to the bound of an orb geometry.
func (hash *SpaceHash[K]) MoveBound(obj K, b orb.Bound) error {
	return hash.Move(obj, BBFromBound(b))
}

// QueryBound returns the objects intersecting an orb bound.
func (hash *SpaceHash[K]) QueryBound(b orb.Bound) []K {
	return hash.Query(BBFromBound(b))
}
