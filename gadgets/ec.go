package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
)

// addGroupAux computes the four auxiliary witnesses shared by AddGroup and
// AssertAddGroup: same_x, x21_inv, s, inf_z. The same_x thunk records its
// comparison in a private sameXBool so the s/inf_z thunks can branch on
// it without recomputing it; the x21_inv thunk compares x1 and x2 itself.
func addGroupAux[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], x1, y1, x2, y2 circuit.Var[F]) (sameX, x21Inv, s, infZ circuit.Var[F]) {
	sameXBool := false

	sameX = sys.Var(func() F {
		sameXBool = x1.Value().Equal(x2.Value())
		if sameXBool {
			return ops.One()
		}
		return ops.Zero()
	})

	x21Inv = sys.Var(func() F {
		if x1.Value().Equal(x2.Value()) {
			return ops.Zero()
		}
		inv, ok := x2.Value().Sub(x1.Value()).Inverse()
		if !ok {
			return ops.Zero()
		}
		return inv
	})

	s = sys.Var(func() F {
		if sameXBool {
			x1Sq := x1.Value().Square()
			num := x1Sq.Double().Add(x1Sq)
			denom, ok := y1.Value().Double().Inverse()
			if !ok {
				return ops.Zero()
			}
			return num.Mul(denom)
		}
		return y2.Value().Sub(y1.Value()).Mul(x21Inv.Value())
	})

	infZ = sys.Var(func() F {
		if y1.Value().Equal(y2.Value()) {
			return ops.Zero()
		}
		if sameXBool {
			inv, ok := y2.Value().Sub(y1.Value()).Inverse()
			if !ok {
				return ops.Zero()
			}
			return inv
		}
		return ops.Zero()
	})

	return
}

// AddGroup emits one CompleteAdd gate computing (x3,y3) = (x1,y1)+(x2,y2)
// under the complete addition law, valid for all inputs including
// doublings and the identity sentinel zero. Row layout:
// [x1,y1,x2,y2,x3,y3,zero,same_x,s,inf_z,x21_inv,0,0,0,0].
func AddGroup[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], zero, x1, y1, x2, y2 circuit.Var[F]) (x3, y3 circuit.Var[F]) {
	sameX, x21Inv, s, infZ := addGroupAux(sys, ops, x1, y1, x2, y2)

	x3 = sys.Var(func() F { return s.Value().Square().Sub(x1.Value().Add(x2.Value())) })
	y3 = sys.Var(func() F { return s.Value().Mul(x1.Value().Sub(x3.Value())).Sub(y1.Value()) })

	row := fillRow(sys, ops)
	row[0], row[1], row[2], row[3] = x1, y1, x2, y2
	row[4], row[5], row[6] = x3, y3, zero
	row[7], row[8], row[9], row[10] = sameX, s, infZ, x21Inv

	sys.Gate(circuit.GateSpec[F]{Typ: circuit.CompleteAdd, Row: row, Coeffs: nil})
	return x3, y3
}

// Double returns AddGroup(P,P), the tangent-doubling case.
func Double[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], zero, x1, y1 circuit.Var[F]) (x3, y3 circuit.Var[F]) {
	return AddGroup(sys, ops, zero, x1, y1, x1, y1)
}

// AssertAddGroup emits the same CompleteAdd row as AddGroup but takes
// (x3,y3) from the caller instead of deriving them, so it can be used to
// constrain a pre-existing point to equal P+Q.
func AssertAddGroup[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], zero, x1, y1, x2, y2, x3, y3 circuit.Var[F]) {
	sameX, x21Inv, s, infZ := addGroupAux(sys, ops, x1, y1, x2, y2)

	row := fillRow(sys, ops)
	row[0], row[1], row[2], row[3] = x1, y1, x2, y2
	row[4], row[5], row[6] = x3, y3, zero
	row[7], row[8], row[9], row[10] = sameX, s, infZ, x21Inv

	sys.Gate(circuit.GateSpec[F]{Typ: circuit.CompleteAdd, Row: row, Coeffs: nil})
}
