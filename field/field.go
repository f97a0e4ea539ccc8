// Package field declares the arithmetic contract the circuit core requires
// of a prime field. The core is generic in this contract so that the same
// gadget library runs over whichever concrete field a given proof system
// targets (see field/frfield for the default, gnark-crypto-backed instance).
package field

import "math/big"

// Element is the per-value arithmetic a field element must support. It is
// deliberately small: only what the gadget library in package gadgets
// needs (add, multiply, invert, square, double, bit-decompose, compare).
// Implementations should be cheap value types so that circuit.Var[F]
// remains trivially copyable.
type Element[F any] interface {
	Add(F) F
	Sub(F) F
	Neg() F
	Mul(F) F
	Square() F
	Double() F

	// Inverse returns the multiplicative inverse and true, or the zero
	// value and false if the receiver is zero. Gadgets that divide must
	// check the bool themselves; there is no implicit panic here, unlike
	// Var.Value() (see circuit.Var).
	Inverse() (F, bool)

	// Pow raises the receiver to the given (non-negative) exponent.
	Pow(e *big.Int) F

	IsZero() bool
	IsOne() bool
	Equal(F) bool

	// BitsLE returns the element's little-endian bit decomposition,
	// padded with false up to the field's bit length.
	BitsLE() []bool
}

// API supplies the constants and constructors that can't be expressed as
// methods on a bare Element value (there is no value to call them on).
// It plays the role package-level functions play for a concrete field
// type (fr.Modulus(), (*fr.Element).SetUint64, ...); since this code is
// generic over F we need an explicit witness object instead, the same
// shape as gnark's std/math/emulated.Field[T] helper.
type API[F Element[F]] interface {
	Zero() F
	One() F
	FromUint64(uint64) F

	// Random samples a uniform element using r as the entropy source.
	Random(r RandSource) F

	// Modulus returns the field's prime modulus.
	Modulus() *big.Int

	// BitLen returns the bit length used by BitsLE/FromBitsLE.
	BitLen() int

	// FromBitsLE is the inverse of Element.BitsLE.
	FromBitsLE(bits []bool) F
}

// RandSource is the minimal randomness source gadgets.Zk and API.Random
// need; io.Reader satisfies it, as does internal/zkrand's generators.
type RandSource interface {
	Read(p []byte) (n int, err error)
}
