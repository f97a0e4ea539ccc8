// Package circuit implements the dual-mode circuit builder: the Cs[F]
// contract two backends (System, WitnessGenerator) satisfy, the GateSpec
// row/coefficient model, and the compiler that turns a GateSpec stream
// into a wired gate list. The gadget library built on top of Cs[F] lives
// in package gadgets; this package owns only the builder core itself.
package circuit

import "github.com/kimchi-zk/circuit/field"

// Columns is the Kimchi row width.
const Columns = 15

// Permuts is the number of permutable columns.
const Permuts = 7

// Var is a cell handle: a pair {index, value}. In circuit mode Index is
// a fresh, circuit-wide unique id and Value is absent; in witness mode
// Index is unused (conventionally zero) and Value holds the concrete
// field element. Two Vars with equal Index must hold equal values in any
// valid witness — that equivalence is what the compiler's copy-constraint
// cycles (see compiler.go) enforce.
type Var[F field.Element[F]] struct {
	Index uint32
	value F
	has   bool
}

// Value returns the concrete field value of a witness-mode Var. Reading
// the value of a circuit-mode Var is a programmer error and panics
// rather than returning a zero/ok pair.
func (v Var[F]) Value() F {
	if !v.has {
		panic("circuit: reading the witness value of a circuit-mode Var")
	}
	return v.value
}

// HasValue reports whether this Var carries a concrete witness value.
func (v Var[F]) HasValue() bool { return v.has }

// witnessVar constructs a witness-mode Var. Only this package's backends
// may construct Vars directly; gadgets only ever receive them from Cs.Var.
func witnessVar[F field.Element[F]](value F) Var[F] {
	return Var[F]{value: value, has: true}
}

func circuitVar[F field.Element[F]](index uint32) Var[F] {
	return Var[F]{Index: index}
}

// ShiftedScalar wraps a Var carrying the `2y + shift` encoding the
// variable-base scalar-multiplication gadget (gadgets.ScalarMul) expects;
// the underlying y is what the circuit actually stores.
type ShiftedScalar[F field.Element[F]] struct {
	v Var[F]
}

// Var returns the underlying shifted Var.
func (s ShiftedScalar[F]) Var() Var[F] { return s.v }

// NewShiftedScalar wraps v as a ShiftedScalar without altering it; callers
// (circuit.Scalar, see cs.go) are responsible for having already stripped
// the 2y+shift encoding, so that v's witness value is the unshifted y.
func NewShiftedScalar[F field.Element[F]](v Var[F]) ShiftedScalar[F] {
	return ShiftedScalar[F]{v: v}
}

// Shift returns 2^size + 1, the additive offset ShiftedScalar's encoding
// uses. It lets a ShiftedScalar's underlying field value be recovered as
// y = (x - Shift(size)) / 2.
func Shift[F field.Element[F]](ops field.API[F], size int) F {
	result := ops.One()
	base := ops.FromUint64(2)
	for n := size; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return ops.One().Add(result)
}
