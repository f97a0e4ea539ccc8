package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/internal/varbasemul"
)

// NumScalarBits is the bit width ScalarMul ladders over.
const NumScalarBits = 255

// numRowPairs is 255/5 five-bit ladder windows.
const numRowPairs = NumScalarBits / 5

// ScalarMul returns (2y+shift)·T for T=(xt,yt) and a ShiftedScalar
// encoding the unshifted scalar y (see circuit.Scalar and
// internal/varbasemul for why the result carries the shift rather than
// being y·T outright). Emits one AddGroup row computing acc0=2T, then 51
// row pairs of types (VarBaseMul, Zero) implementing the double-and-add
// ladder in 5-bit windows MSB-first; witness filling for those pairs is
// delegated to internal/varbasemul.
func ScalarMul[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], zero, xt, yt circuit.Var[F], scalar circuit.ShiftedScalar[F]) (circuit.Var[F], circuit.Var[F]) {
	accX0, accY0 := AddGroup(sys, ops, zero, xt, yt, xt, yt)

	var columns [circuit.Columns][]F
	computed := false
	ensureColumns := func() {
		if computed {
			return
		}
		computed = true
		for c := range columns {
			columns[c] = make([]F, 2*numRowPairs)
		}
		bits := bitsMSB(ops, scalar.Var().Value(), NumScalarBits)
		varbasemul.Fill(ops, &columns, 0, xt.Value(), yt.Value(), bits, accX0.Value(), accY0.Value())
	}

	var resX, resY circuit.Var[F]
	for i := 0; i < numRowPairs; i++ {
		idx := i
		row1 := fillRowFromColumns(sys, ops, &columns, &ensureColumns, 2*idx)
		row2 := fillRowFromColumns(sys, ops, &columns, &ensureColumns, 2*idx+1)

		row1[0], row1[1] = xt, yt
		if idx == 0 {
			row1[2], row1[3], row1[4] = accX0, accY0, zero
		}
		if idx == numRowPairs-1 {
			row1[5] = scalar.Var()
			resX, resY = row2[0], row2[1]
		}

		sys.Gate(circuit.GateSpec[F]{Typ: circuit.VarBaseMul, Row: row1, Coeffs: nil})
		sys.Gate(circuit.GateSpec[F]{Typ: circuit.Zero, Row: row2, Coeffs: nil})
	}

	return resX, resY
}

func fillRowFromColumns[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], columns *[circuit.Columns][]F, ensure *func(), rowIdx int) [circuit.Columns]circuit.Var[F] {
	var row [circuit.Columns]circuit.Var[F]
	for c := range row {
		col := c
		row[c] = sys.Var(func() F {
			(*ensure)()
			return columns[col][rowIdx]
		})
	}
	return row
}

// bitsMSB returns the low `length` bits of x, most-significant bit first.
func bitsMSB[F field.Element[F]](ops field.API[F], x F, length int) []bool {
	lsb := x.BitsLE()
	out := make([]bool, length)
	for i := 0; i < length; i++ {
		var b bool
		if i < len(lsb) {
			b = lsb[i]
		}
		out[length-1-i] = b
	}
	return out
}
