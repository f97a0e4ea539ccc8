// Package poseidon supplies the two things the Poseidon gadget in package
// gadgets relies on but doesn't own: a round-parameter bundle and a
// full-round permutation step. Keeping the permutation math in its own
// package keeps package gadgets free of field-specific round constants.
package poseidon

import "github.com/kimchi-zk/circuit/field"

// Width is the sponge width the Kimchi Poseidon gate is specialised for:
// a fixed permutation over width 3.
const Width = 3

// RoundsPerRow is the number of full rounds folded into a single gate row.
// Mirrors PlonkSpongeConstantsKimchi::ROUNDS_PER_ROW = 5: a row's 15 cells
// only have room for 5 states (the initial state plus 4 intermediate
// round outputs), so the row's 5th round's output is carried forward
// silently as the next row's initial state rather than placed in a cell
// of its own.
const RoundsPerRow = 5

// RowsPerHash is the number of Poseidon gate rows one full permutation
// call emits. Mirrors PlonkSpongeConstantsKimchi::POS_ROWS_PER_HASH = 11.
const RowsPerHash = 11

// TotalRounds is the number of full rounds the permutation performs.
// Mirrors PlonkSpongeConstantsKimchi::PERM_ROUNDS_FULL = 55.
const TotalRounds = RowsPerHash * RoundsPerRow

// Alpha is the S-box exponent (state[i] <- state[i]^Alpha).
const Alpha = 7

// Params bundles the round constants and MDS matrix for one concrete
// field. Mirrors oracle::poseidon::ArithmeticSpongeParams<F>.
type Params[F field.Element[F]] struct {
	// RoundConstants has TotalRounds rows of Width entries each.
	RoundConstants [][Width]F
	// MDS is the Width x Width maximum-distance-separable mixing matrix.
	MDS [Width][Width]F
}

// Validate checks the params bundle has the shape FullRound expects; it
// is cheap and is called once at Constants-construction time rather than
// per permutation call.
func (p Params[F]) Validate() bool {
	return len(p.RoundConstants) == TotalRounds
}
