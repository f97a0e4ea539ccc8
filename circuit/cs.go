package circuit

import (
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/internal/rowmath"
)

// Cs is the builder contract: the abstract capability set every gadget
// in package gadgets is written against. It deliberately exposes only
// three primitives; every gadget is a free function taking a Cs[F]
// value, the same shape gnark's frontend.API methods take, generalised
// one level further since here even the "API" itself is swappable
// between the two backends.
type Cs[F field.Element[F]] interface {
	// Var allocates a fresh cell.
	//
	// Circuit backend: returns a Var with a fresh index and no value;
	// thunk is never called. Witness backend: returns a Var with index 0
	// and thunk()'s value; thunk is always called. thunk may only read
	// Vars allocated before this call — it must not read curr_gate_count
	// or the Cs itself, so both backends allocate in lockstep regardless
	// of which one actually evaluates the thunk.
	Var(thunk func() F) Var[F]

	// Gate appends one row: pushed into the gate list (circuit backend)
	// or materialised into a witness row (witness backend, which reads
	// every cell's Value() and discards Typ/Coeffs).
	Gate(g GateSpec[F])

	// CurrGateCount returns the number of rows emitted so far.
	CurrGateCount() int
}

// EndoScalar allocates a variable holding the little-endian-bit-identity
// reinterpretation of an arbitrary-precision scalar into F, for the
// endomorphism-scalar path: a raw bit-length-N value with none of the
// ShiftedScalar 2y+shift encoding Scalar applies.
func EndoScalar[F field.Element[F]](sys Cs[F], ops field.API[F], length int, thunk func() F) Var[F] {
	rowmath.ExactChunks(length, 4)
	return sys.Var(func() F {
		y := thunk()
		bits := y.BitsLE()
		return ops.FromBitsLE(bits[:min(length, len(bits))])
	})
}

// Scalar allocates a ShiftedScalar from a caller-supplied value already in
// the `x = 2y + shift` encoding (shift = 2^length + 1) that the
// scalar-multiplication ladder's windowing relies on to avoid the
// all-zero/small edge case. thunk yields x; Scalar strips the shift and
// stores the unshifted y = (x-shift)/2 as the Var's witness value — it is
// that unshifted y which gets bit-decomposed by ScalarMul.
func Scalar[F field.Element[F]](sys Cs[F], ops field.API[F], length int, thunk func() F) ShiftedScalar[F] {
	rowmath.ExactChunks(length, 5)
	shift := Shift[F](ops, length)
	two := ops.FromUint64(2)
	v := sys.Var(func() F {
		x := thunk()
		y := x.Sub(shift)
		inv2, ok := two.Inverse()
		if !ok {
			panic("circuit: field characteristic is 2, cannot halve")
		}
		return y.Mul(inv2)
	})
	return NewShiftedScalar(v)
}
