package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
)

// Equals returns a Var that is 1 when x1==x2 and 0 otherwise. Computes
// z = x2-x1 (itself a Sub gate), a z_inv that is the true inverse of z
// when z != 0 (else 0), and b, allocates the constant one through
// Constant (a second row of its own), then emits the three constraint
// rows enforcing:
//
//  1. 1 - b - oneMinusB = 0             (defines oneMinusB := 1-b)
//  2. z_inv * z - oneMinusB = 0
//  3. b * z = 0
//
// which jointly force b ∈ {0,1} and b = [x1==x2]. In all, the gadget
// emits five generic rows, not only the three constraint rows. An older
// variant of
// this gadget with a coefficient-vector bug is deliberately not ported
// here; only this corrected form is implemented.
func Equals[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], x1, x2 circuit.Var[F]) circuit.Var[F] {
	z := Sub(sys, ops, x2, x1)
	zInv := sys.Var(func() F {
		inv, ok := z.Value().Inverse()
		if !ok {
			return ops.Zero()
		}
		return inv
	})
	b := sys.Var(func() F {
		if x1.Value().Equal(x2.Value()) {
			return ops.One()
		}
		return ops.Zero()
	})
	oneMinusB := sys.Var(func() F { return ops.One().Sub(b.Value()) })

	// 1 - b - oneMinusB = 0
	row1 := fillRow(sys, ops)
	one := Constant(sys, ops, ops.One())
	row1[0], row1[1], row1[2] = one, b, oneMinusB
	c1 := zeroCoeffs(ops)
	c1[0] = ops.One()
	c1[1] = ops.One().Neg()
	c1[2] = ops.One().Neg()
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row1, Coeffs: c1})

	// z_inv*z - oneMinusB = 0
	row2 := fillRow(sys, ops)
	row2[0], row2[1], row2[2] = zInv, z, oneMinusB
	c2 := zeroCoeffs(ops)
	c2[2] = ops.One().Neg()
	c2[3] = ops.One() // q_m on (z_inv, z)
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row2, Coeffs: c2})

	// b*z = 0
	row3 := fillRow(sys, ops)
	row3[0], row3[1] = b, z
	c3 := zeroCoeffs(ops)
	c3[3] = ops.One() // q_m on (b, z)
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row3, Coeffs: c3})

	return b
}
