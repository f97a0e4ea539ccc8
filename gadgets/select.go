package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
)

// CondSelect returns f + b*(t-f): b=1 selects t, b=0 selects f. Uses
// three generic rows (delta = t-f; res1 = b*delta; res = res1+f); the
// caller must constrain b to be boolean elsewhere — this gadget does not
// re-derive that.
func CondSelect[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], b, t, f circuit.Var[F]) circuit.Var[F] {
	delta := sys.Var(func() F { return t.Value().Sub(f.Value()) })
	res1 := sys.Var(func() F { return b.Value().Mul(delta.Value()) })
	res := sys.Var(func() F { return f.Value().Add(res1.Value()) })

	row1 := fillRow(sys, ops)
	row1[0], row1[1], row1[2] = t, f, delta
	c1 := zeroCoeffs(ops)
	c1[0] = ops.One()
	c1[1] = ops.One().Neg()
	c1[2] = ops.One().Neg()
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row1, Coeffs: c1})

	row2 := fillRow(sys, ops)
	row2[0], row2[1], row2[2] = b, delta, res1
	c2 := zeroCoeffs(ops)
	c2[2] = ops.One().Neg()
	c2[3] = ops.One() // q_m on (b, delta)
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row2, Coeffs: c2})

	row3 := fillRow(sys, ops)
	row3[0], row3[1], row3[2] = res1, f, res
	c3 := zeroCoeffs(ops)
	c3[0] = ops.One()
	c3[1] = ops.One()
	c3[2] = ops.One().Neg()
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row3, Coeffs: c3})

	return res
}
