// Package frfield implements field.Element/field.API over the bn254 scalar
// field from github.com/consensys/gnark-crypto. It is the default concrete
// F used by this module's tests and examples: field arithmetic is treated
// as an external collaborator, so wrapping an audited implementation
// instead of hand-rolling modular arithmetic is the right choice.
package frfield

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/kimchi-zk/circuit/field"
)

// Fr is a single bn254 scalar field element. Its zero value is the field's
// additive identity, matching fr.Element's own zero-value convention.
type Fr struct {
	v fr.Element
}

var _ field.Element[Fr] = Fr{}

// FromElement wraps a gnark-crypto element directly.
func FromElement(e fr.Element) Fr { return Fr{v: e} }

// Inner returns the wrapped gnark-crypto element.
func (z Fr) Inner() fr.Element { return z.v }

func (z Fr) Add(x Fr) Fr {
	var out fr.Element
	out.Add(&z.v, &x.v)
	return Fr{v: out}
}

func (z Fr) Sub(x Fr) Fr {
	var out fr.Element
	out.Sub(&z.v, &x.v)
	return Fr{v: out}
}

func (z Fr) Neg() Fr {
	var out fr.Element
	out.Neg(&z.v)
	return Fr{v: out}
}

func (z Fr) Mul(x Fr) Fr {
	var out fr.Element
	out.Mul(&z.v, &x.v)
	return Fr{v: out}
}

func (z Fr) Square() Fr {
	var out fr.Element
	out.Square(&z.v)
	return Fr{v: out}
}

func (z Fr) Double() Fr {
	var out fr.Element
	out.Double(&z.v)
	return Fr{v: out}
}

func (z Fr) Inverse() (Fr, bool) {
	if z.v.IsZero() {
		return Fr{}, false
	}
	var out fr.Element
	out.Inverse(&z.v)
	return Fr{v: out}, true
}

func (z Fr) Pow(e *big.Int) Fr {
	var out fr.Element
	out.Exp(z.v, e)
	return Fr{v: out}
}

func (z Fr) IsZero() bool { return z.v.IsZero() }

func (z Fr) IsOne() bool {
	var one fr.Element
	one.SetOne()
	return z.v.Equal(&one)
}

func (z Fr) Equal(x Fr) bool { return z.v.Equal(&x.v) }

// BitsLE returns the field order's bit-length worth of little-endian
// bits. Decomposition goes through a bitset.BitSet rather than querying
// big.Int.Bit in a loop, matching the rest of the gadget layer's use of
// bits-and-blooms/bitset for bit-vector bookkeeping (endo/scalarmul/pack
// windows).
func (z Fr) BitsLE() []bool {
	var asBig big.Int
	z.v.BigInt(&asBig)
	n := Ops{}.BitLen()

	bs := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if asBig.Bit(i) == 1 {
			bs.Set(uint(i))
		}
	}

	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = bs.Test(uint(i))
	}
	return out
}

// Ops implements field.API[Fr]. It is stateless; its methods exist only
// because Go generics have no notion of "static" methods on a type
// parameter, so constants and constructors need a witness value to hang
// off (mirrors gnark's std/math/emulated.Field[T] helper object).
type Ops struct{}

var _ field.API[Fr] = Ops{}

func (Ops) Zero() Fr { return Fr{} }

func (Ops) One() Fr {
	var one fr.Element
	one.SetOne()
	return Fr{v: one}
}

func (Ops) FromUint64(u uint64) Fr {
	var out fr.Element
	out.SetUint64(u)
	return Fr{v: out}
}

func (Ops) Random(r field.RandSource) Fr {
	// fr.Element.SetRandom reads from crypto/rand internally; to honour
	// an injected entropy source for deterministic tests, we draw the raw
	// bytes ourselves and reduce mod the field order.
	byteLen := (Ops{}.Modulus().BitLen() + 7) / 8
	buf := make([]byte, byteLen+8) // a little slack to even out the mod-bias
	if _, err := r.Read(buf); err != nil {
		panic("frfield: random source failed: " + err.Error())
	}
	var asBig big.Int
	asBig.SetBytes(buf)
	asBig.Mod(&asBig, Ops{}.Modulus())
	var out fr.Element
	out.SetBigInt(&asBig)
	return Fr{v: out}
}

func (Ops) Modulus() *big.Int {
	return fr.Modulus()
}

func (Ops) BitLen() int {
	return fr.Modulus().BitLen()
}

func (Ops) FromBitsLE(bits []bool) Fr {
	var asBig big.Int
	for i, b := range bits {
		if b {
			asBig.SetBit(&asBig, i, 1)
		}
	}
	var out fr.Element
	out.SetBigInt(&asBig)
	return Fr{v: out}
}
