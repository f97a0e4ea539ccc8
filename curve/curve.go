// Package curve implements a "native" embedded curve: a short-Weierstrass
// curve y² = x³ + b whose coordinates live in the *same* field the
// surrounding circuit is built over, letting a circuit natively check its
// own group arithmetic.
//
// This package owns none of the circuit semantics the elliptic-curve and
// scalar-multiplication gadgets constrain — those live in package
// gadgets — it only supplies the curve's witness arithmetic (the values
// gadgets need to compute), its generator, and a GLV-style endomorphism
// coefficient.
package curve

import (
	"math/big"

	"github.com/kimchi-zk/circuit/field"
)

// Params describes a short-Weierstrass curve y² = x³ + B over F, plus the
// generator and endomorphism coefficient the scalar-multiplication
// gadgets need.
type Params[F field.Element[F]] struct {
	B F

	// Base is the curve generator's affine coordinates.
	Base [2]F

	// Endo is the base-field coefficient φ of the curve's GLV
	// endomorphism: φ·x is the x-coordinate of (φ, 1)·(x,y) for any
	// point (x,y) on the curve.
	Endo F
}

// Point is an affine curve point, stored as plain field elements (not
// Vars) — it is used by this package's reference arithmetic and by the
// tests that check gadget output against it, never placed directly into
// a GateSpec row.
type Point[F field.Element[F]] struct {
	X, Y F
}

// Add implements the textbook (incomplete) chord-and-tangent group law;
// it is used only to derive witness values (e.g. to seed a generator or
// double a point outside of any gate), never to decide circuit
// constraints — those are emitted by gadgets.AddGroup's "complete
// addition" formulas, which must tolerate the same-x and point-at-infinity
// edge cases this helper does not.
func Add[F field.Element[F]](ops field.API[F], p, q Point[F]) Point[F] {
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return Double(ops, p)
		}
		// p == -q: no general "infinity" value for a bare Point, so
		// callers that may hit this (gadgets) use the complete formula
		// instead. This path exists for the common gadget witness
		// plumbing that always calls with p != -q.
		panic("curve: Add called on P + (-P); use the complete addition gadget instead")
	}
	lambda, ok := q.X.Sub(p.X).Inverse()
	if !ok {
		panic("curve: unreachable, x1 != x2 but subtraction is not invertible")
	}
	lambda = q.Y.Sub(p.Y).Mul(lambda)
	x3 := lambda.Square().Sub(p.X).Sub(q.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point[F]{X: x3, Y: y3}
}

// Double returns p+p via the tangent-line formula, assuming p.Y != 0.
func Double[F field.Element[F]](ops field.API[F], p Point[F]) Point[F] {
	three := ops.FromUint64(3)
	num := p.X.Square().Mul(three)
	den, ok := p.Y.Double().Inverse()
	if !ok {
		panic("curve: Double called at a 2-torsion point (y == 0)")
	}
	lambda := num.Mul(den)
	x3 := lambda.Square().Sub(p.X).Sub(p.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point[F]{X: x3, Y: y3}
}

// ScalarMulNaive multiplies p by a non-negative integer scalar using
// double-and-add; it exists to check gadget output against a reference
// big-integer multiplication in tests. Not used by any gadget.
func ScalarMulNaive[F field.Element[F]](ops field.API[F], p Point[F], k *big.Int) Point[F] {
	if k.Sign() == 0 {
		panic("curve: ScalarMulNaive(0) has no affine representation in this simplified helper")
	}
	acc := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		acc = Double(ops, acc)
		if k.Bit(i) == 1 {
			acc = Add(ops, acc, p)
		}
	}
	return acc
}

// DefaultParams returns a small-b curve (y² = x³ + 3) whose generator is
// the trivially-checkable point (1, 2): 1³+3 = 4 = 2² holds in any field
// of characteristic other than 2, so this needs no per-field constant
// table the way the real Pasta generator would. The endomorphism
// coefficient is found at call time by FindCubeRoot, the same
// rejection-sampling technique a domain-generator search uses to locate a
// generator of a subgroup.
//
// This is an explicit Open Question resolution (see DESIGN.md): the
// curve's concrete constants are treated as an opaque, swappable value
// rather than the literal Pasta/Pallas ones, so any internally-consistent
// curve satisfies the frontend's contract; using the real Pasta/Pallas
// constants would add a large, unverifiable literal table for no
// behavioural difference at this layer.
func DefaultParams[F field.Element[F]](ops field.API[F]) Params[F] {
	one := ops.One()
	two := ops.FromUint64(2)
	three := ops.FromUint64(3)
	endo, ok := FindCubeRoot(ops)
	if !ok {
		panic("curve: field order has no primitive cube root of unity (p % 3 != 1)")
	}
	return Params[F]{
		B:    three,
		Base: [2]F{one, two},
		Endo: endo,
	}
}

// FindCubeRoot searches for a primitive cube root of unity in F, i.e. an
// element φ ≠ 1 with φ³ = 1. It requires p ≡ 1 (mod 3). The search is
// deterministic (not randomized) so that Params construction is
// reproducible: it walks small field elements 2, 3, 4, ... and tests
// g^((p-1)/3) for the first g whose cube-root candidate is not 1 — the
// same rejection-sampling idea a domain-generator search uses, specialised
// to a fixed, auditable probe sequence instead of an RNG.
func FindCubeRoot[F field.Element[F]](ops field.API[F]) (F, bool) {
	p := ops.Modulus()
	three := big.NewInt(3)
	rem := new(big.Int).Mod(p, three)
	if rem.Cmp(big.NewInt(1)) != 0 {
		var zero F
		return zero, false
	}
	exp := new(big.Int).Sub(p, big.NewInt(1))
	exp.Div(exp, three)

	for probe := uint64(2); probe < 1<<16; probe++ {
		g := ops.FromUint64(probe)
		cand := g.Pow(exp)
		if !cand.IsOne() {
			return cand, true
		}
	}
	var zero F
	return zero, false
}
