//go:build debug

package spacehash

import "fmt"

func assert(truth bool, msg ...interface{}) {
	if !truth {
		panic(fmt.Sprint("Assertion failed: ", msg))
	}
}

// checkInvariants rebuilds the membership bookkeeping from scratch after
// every mutation in debug builds.
func (hash *SpaceHash[K]) checkInvariants(op string) {
	err := hash.verify()
	assert(err == nil, op, ": ", err)
}
