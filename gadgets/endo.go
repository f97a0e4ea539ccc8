package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/internal/rowmath"
)

// Endo multiplies T=(xt,yt) by the endomorphism-encoded scalar:
// lengthInBits/4 EndoMul rows, each consuming 4 bits and selecting
// between ±T and ±φ·T per pair via the curve endomorphism φ=endo. A
// trailing Zero row pins the reconstructed scalar against the caller's
// scalar Var.
func Endo[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], zero circuit.Var[F], endo F, xt, yt, scalar circuit.Var[F], lengthInBits int) (circuit.Var[F], circuit.Var[F]) {
	rows := rowmath.ExactChunks(lengthInBits, 4)

	var bitsCache []bool
	bits := make([]circuit.Var[F], lengthInBits)
	for i := range bits {
		idx := i
		bits[i] = sys.Var(func() F {
			if bitsCache == nil {
				bitsCache = bitsMSB(ops, scalar.Value(), lengthInBits)
			}
			if bitsCache[idx] {
				return ops.One()
			}
			return ops.Zero()
		})
	}

	one := ops.One()

	phiP := Scale(sys, ops, endo, xt)
	phiPP1X, phiPP1Y := AddGroup(sys, ops, zero, phiP, yt, xt, yt)
	accX, accY := Double(sys, ops, zero, phiPP1X, phiPP1Y)

	nAcc := zero

	for i := 0; i < rows; i++ {
		b1 := bits[i*4]
		b2 := bits[i*4+1]
		b3 := bits[i*4+2]
		b4 := bits[i*4+3]

		xp, yp := accX, accY

		xq1 := sys.Var(func() F { return one.Add(endo.Sub(one).Mul(b1.Value())).Mul(xt.Value()) })
		yq1 := sys.Var(func() F { return b2.Value().Double().Sub(one).Mul(yt.Value()) })

		s1 := sys.Var(func() F {
			denom := xq1.Value().Sub(xp.Value())
			inv, ok := denom.Inverse()
			if !ok {
				return ops.Zero()
			}
			return yq1.Value().Sub(yp.Value()).Mul(inv)
		})
		s1Sq := sys.Var(func() F { return s1.Value().Square() })

		s2 := sys.Var(func() F {
			denom := xp.Value().Double().Add(xq1.Value()).Sub(s1Sq.Value())
			inv, ok := denom.Inverse()
			if !ok {
				return ops.Zero()
			}
			return yp.Value().Double().Mul(inv).Sub(s1.Value())
		})

		xr := sys.Var(func() F { return xq1.Value().Add(s2.Value().Square()).Sub(s1Sq.Value()) })
		yr := sys.Var(func() F { return xp.Value().Sub(xr.Value()).Mul(s2.Value()).Sub(yp.Value()) })

		xq2 := sys.Var(func() F { return one.Add(endo.Sub(one).Mul(b3.Value())).Mul(xt.Value()) })
		yq2 := sys.Var(func() F { return b4.Value().Double().Sub(one).Mul(yt.Value()) })

		s3 := sys.Var(func() F {
			denom := xq2.Value().Sub(xr.Value())
			inv, ok := denom.Inverse()
			if !ok {
				return ops.Zero()
			}
			return yq2.Value().Sub(yr.Value()).Mul(inv)
		})
		s3Sq := sys.Var(func() F { return s3.Value().Square() })

		s4 := sys.Var(func() F {
			denom := xr.Value().Double().Add(xq2.Value()).Sub(s3Sq.Value())
			inv, ok := denom.Inverse()
			if !ok {
				return ops.Zero()
			}
			return yr.Value().Double().Mul(inv).Sub(s3.Value())
		})

		xs := sys.Var(func() F { return xq2.Value().Add(s4.Value().Square()).Sub(s3Sq.Value()) })
		ys := sys.Var(func() F { return xr.Value().Sub(xs.Value()).Mul(s4.Value()).Sub(yr.Value()) })

		var row [circuit.Columns]circuit.Var[F]
		row[0], row[1], row[2], row[3] = xt, yt, zero, zero
		row[4], row[5], row[6] = xp, yp, nAcc
		row[7], row[8] = xr, yr
		row[9], row[10] = s1, s3
		row[11], row[12], row[13], row[14] = b1, b2, b3, b4

		sys.Gate(circuit.GateSpec[F]{Typ: circuit.EndoMul, Row: row, Coeffs: nil})

		accX, accY = xs, ys

		prevAcc := nAcc
		nAcc = sys.Var(func() F {
			n := prevAcc.Value()
			n = n.Double()
			n = n.Add(b1.Value())
			n = n.Double()
			n = n.Add(b2.Value())
			n = n.Double()
			n = n.Add(b3.Value())
			n = n.Double()
			n = n.Add(b4.Value())
			return n
		})
	}

	var row [circuit.Columns]circuit.Var[F]
	for i := range row {
		row[i] = zero
	}
	row[4], row[5], row[6] = accX, accY, scalar
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Zero, Row: row, Coeffs: nil})

	return accX, accY
}
