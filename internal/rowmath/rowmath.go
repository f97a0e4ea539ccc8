// Package rowmath holds the small integer bookkeeping shared by the
// gadgets that lay witness cells out in fixed-size row groups (pack,
// scalar-mul, endo, and the circuit.Scalar/EndoScalar length checks) —
// generic over the row-count type via golang.org/x/exp/constraints so
// the same helper serves both int counters and, if a caller ever packs
// a uint-sized bit length, that type too.
package rowmath

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ExactChunks divides total into groups of size chunk, panicking if
// total does not split evenly — every one of this module's fixed-width
// row-group gadgets (EndoScalar, Scalar, ScalarMul, Endo, AssertPack)
// requires its input length to be an exact multiple of its row width.
func ExactChunks[T constraints.Integer](total, chunk T) T {
	if chunk <= 0 {
		panic("rowmath: chunk size must be positive")
	}
	if total%chunk != 0 {
		panic(fmt.Sprintf("rowmath: %d is not an exact multiple of %d", total, chunk))
	}
	return total / chunk
}
