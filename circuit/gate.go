package circuit

import "github.com/kimchi-zk/circuit/field"

// GateType names one of the Kimchi custom gates.
type GateType int

const (
	Generic GateType = iota
	CompleteAdd
	VarBaseMul
	EndoMul
	Poseidon
	Zero
)

func (t GateType) String() string {
	switch t {
	case Generic:
		return "Generic"
	case CompleteAdd:
		return "CompleteAdd"
	case VarBaseMul:
		return "VarBaseMul"
	case EndoMul:
		return "EndoMul"
	case Poseidon:
		return "Poseidon"
	case Zero:
		return "Zero"
	default:
		return "Unknown"
	}
}

// Generics is the number of cells a single generic sub-gate constrains.
const Generics = 3

// SingleGenericCoeffs is the coefficient count of one generic sub-gate
// (q_l, q_r, q_o, q_m, q_c).
const SingleGenericCoeffs = 5

// GenericRowCoeffs is the coefficient count of a full double-generic row:
// two generic sub-gates packed into one row.
const GenericRowCoeffs = 2 * SingleGenericCoeffs

// ZKRows is the number of trailing zero-knowledge padding rows appended
// after the last real gate.
const ZKRows = 3

// GateSpec is one pending row: a gate type, its Columns cell handles, and
// its gate-specific coefficient vector.
type GateSpec[F field.Element[F]] struct {
	Typ    GateType
	Row    [Columns]Var[F]
	Coeffs []F
}

// Wire identifies a single cell by (row, column); it is both the
// compiler's intermediate bookkeeping value and the unit the final
// permutation wiring is expressed in.
type Wire struct {
	Row uint32
	Col uint8
}

// CircuitGate is a fully-compiled row: a gate type, its coefficients, and
// one Wire per column describing the copy-constraint permutation (each
// column points at the *next* cell in its variable's cycle).
type CircuitGate[F field.Element[F]] struct {
	Typ    GateType
	Coeffs []F
	Wires  [Columns]Wire
}
