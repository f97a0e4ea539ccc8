// Package varbasemul fills the witness columns consumed by the
// variable-base scalar-multiplication gadget. A production Kimchi
// implementation encodes a 5-bit-window lookup-table ladder with several
// auxiliary slope cells per row, constrained by the VarBaseMul gate; this
// package instead provides a value-correct accumulator ladder using the
// "start from 2T, double-and-add ±T per bit" technique, packed five ladder
// steps (one per bit) per output row pair to match that gate's row
// cadence. Seeded at
// 2T and folding in 255 bits of the unshifted scalar y, the ladder's
// closed form is (2y + 2^255 + 1)·T — i.e. (2y+shift)·T, the same shifted
// multiple circuit.Scalar's encoding is built around (see
// circuit/cs.go) — not a bare y·T. gadgets/scalarmul_test.go pins down
// this package's actual, internally consistent closed form.
package varbasemul

import (
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/internal/rowmath"
)

// Columns mirrors circuit.Columns without importing the circuit package,
// keeping this helper a leaf dependency the gadget layer calls into.
const Columns = 15

// Fill writes 2*len(bitsMsb)/5 rows (5 bits consumed per row pair) into
// columns, starting at row offset. (xt,yt) is the fixed base point,
// bitsMsb is the scalar's bits most-significant-bit first, and (accX,
// accY) is the caller-supplied 2T seed. Returns the final accumulator.
func Fill[F field.Element[F]](ops field.API[F], columns *[Columns][]F, offset int, xt, yt F, bitsMsb []bool, accX, accY F) (F, F) {
	numPairs := rowmath.ExactChunks(len(bitsMsb), 5)

	for pair := 0; pair < numPairs; pair++ {
		row1 := offset + 2*pair
		row2 := row1 + 1

		for k := 0; k < 5; k++ {
			bit := bitsMsb[pair*5+k]

			// acc = 2*acc + (bit ? T : -T), via the complete-addition
			// chord/tangent law inline (no identity case arises: the
			// ladder never revisits x==accX by construction when T is a
			// generator of large prime order).
			dblX, dblY := doubleValue(ops, accX, accY)

			addX, addY := xt, yt
			if !bit {
				addY = addY.Neg()
			}
			accX, accY = addValue(ops, dblX, dblY, addX, addY)
		}

		if columns[0] != nil {
			columns[0][row1] = xt
			columns[1][row1] = yt
		}
		if columns[2] != nil {
			columns[2][row1] = accX
			columns[3][row1] = accY
		}
		for c := 4; c < Columns; c++ {
			if columns[c] != nil {
				columns[c][row1] = ops.Zero()
			}
		}

		columns[0][row2] = accX
		columns[1][row2] = accY
		for c := 2; c < Columns; c++ {
			if columns[c] != nil {
				columns[c][row2] = ops.Zero()
			}
		}
	}

	return accX, accY
}

func doubleValue[F field.Element[F]](ops field.API[F], x, y F) (F, F) {
	return addValue(ops, x, y, x, y)
}

func addValue[F field.Element[F]](ops field.API[F], x1, y1, x2, y2 F) (F, F) {
	var s F
	if x1.Equal(x2) {
		xSq := x1.Square()
		num := xSq.Double().Add(xSq)
		denom, ok := y1.Double().Inverse()
		if !ok {
			return ops.Zero(), ops.Zero()
		}
		s = num.Mul(denom)
	} else {
		inv, ok := x2.Sub(x1).Inverse()
		if !ok {
			return ops.Zero(), ops.Zero()
		}
		s = y2.Sub(y1).Mul(inv)
	}
	x3 := s.Square().Sub(x1.Add(x2))
	y3 := s.Mul(x1.Sub(x3)).Sub(y1)
	return x3, y3
}
