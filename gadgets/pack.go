package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/internal/rowmath"
)

// AssertPack asserts that x equals the integer packed from bitsLsb
// (LSB-first), processing two-bit crumbs MSB-first, 8 crumbs per row.
// bitsLsb's length must be a multiple of 16. a and b are auxiliary
// running accumulators whose recurrence disambiguates the crumb's two
// bits from the packed running total n; only n (renamed to x on the
// final row) is asserted to equal the target value.
func AssertPack[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], zero, x circuit.Var[F], bitsLsb []circuit.Var[F]) {
	const crumbsPerRow = 8
	const bitsPerRow = 2 * crumbsPerRow
	numRows := rowmath.ExactChunks(len(bitsLsb), bitsPerRow)

	bitsMsb := make([]circuit.Var[F], len(bitsLsb))
	for i, b := range bitsLsb {
		bitsMsb[len(bitsLsb)-1-i] = b
	}

	a := sys.Var(func() F { return ops.FromUint64(2) })
	b := sys.Var(func() F { return ops.FromUint64(2) })
	n := zero

	one := ops.One()
	negOne := one.Neg()

	for i := 0; i < numRows; i++ {
		rowBits := bitsMsb[i*bitsPerRow : (i+1)*bitsPerRow]

		row := fillRow(sys, ops)
		row[0] = n
		row[2] = a
		row[3] = b
		for j := 0; j < crumbsPerRow; j++ {
			b1 := rowBits[2*j]
			b0 := rowBits[2*j+1]

			crumb := sys.Var(func() F { return b0.Value().Add(b1.Value().Double()) })
			row[6+j] = crumb

			aCapture := a
			a = sys.Var(func() F {
				doubled := aCapture.Value().Double()
				if b1.Value().IsZero() {
					return doubled
				}
				if b0.Value().IsOne() {
					return doubled.Add(one)
				}
				return doubled.Add(negOne)
			})

			bCapture := b
			b = sys.Var(func() F {
				doubled := bCapture.Value().Double()
				if b1.Value().IsZero() {
					if b0.Value().IsOne() {
						return doubled.Add(one)
					}
					return doubled.Add(negOne)
				}
				return doubled
			})

			nCapture := n
			n = sys.Var(func() F { return nCapture.Value().Double().Double().Add(crumb.Value()) })
		}

		if i == numRows-1 {
			row[1] = x
		} else {
			row[1] = n
		}
		row[4] = a
		row[5] = b
		row[14] = sys.Var(func() F { return ops.Zero() })

		sys.Gate(circuit.GateSpec[F]{Typ: circuit.Zero, Row: row, Coeffs: nil})
	}
}
