// Package constants bundles the immutable configuration circuit
// construction needs: Poseidon round parameters, the curve endomorphism
// coefficient, and the generator coordinates. It also owns loading that
// bundle from a versioned, CBOR-encoded blob.
package constants

import (
	"bytes"
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"

	"github.com/kimchi-zk/circuit/curve"
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/poseidon"
)

// Bundle holds every field-dependent constant the circuit builder and
// gadget library consume without deriving themselves.
type Bundle[F field.Element[F]] struct {
	Poseidon poseidon.Params[F]
	Endo     F
	Base     [2]F
}

// FormatVersion is the semver stamped on an encoded Bundle. Bump the
// minor version when adding fields in a backwards-compatible way, the
// major version when RoundConstants/MDS shapes change.
var FormatVersion = semver.MustParse("1.0.0")

// Default builds a Bundle from curve.DefaultParams and freshly-generated
// Poseidon round constants (see GenerateTestParams). curve.DefaultParams
// and DESIGN.md record why this repo derives its own curve/Poseidon
// constants rather than shipping the literal Pasta/Mina ones.
func Default[F field.Element[F]](ops field.API[F]) Bundle[F] {
	cp := curve.DefaultParams(ops)
	return Bundle[F]{
		Poseidon: GenerateTestParams(ops),
		Endo:     cp.Endo,
		Base:     cp.Base,
	}
}

// wireFormat is the on-the-wire (CBOR) shape of a Bundle. Field elements
// are stored as byte strings holding their little-endian bit vectors
// (see elementBytes) rather than F directly, since F is a compile-time
// generic type with no generic CBOR codec; Decode converts them back
// through field.API.FromBitsLE (see elementFromBytes).
type wireFormat struct {
	Version        string
	RoundConstants [][]([]byte)
	MDS            [][]byte
	Endo           []byte
	BaseX          []byte
	BaseY          []byte
}

// Encode serialises a Bundle to CBOR with a semver header. This is param
// config serialisation only — GateSpec/witness rows never pass through
// this path.
func Encode[F field.Element[F]](b Bundle[F]) ([]byte, error) {
	w := wireFormat{Version: FormatVersion.String()}
	for _, row := range b.Poseidon.RoundConstants {
		encRow := make([][]byte, poseidon.Width)
		for i, e := range row {
			encRow[i] = elementBytes(e)
		}
		w.RoundConstants = append(w.RoundConstants, encRow)
	}
	for i := 0; i < poseidon.Width; i++ {
		for j := 0; j < poseidon.Width; j++ {
			w.MDS = append(w.MDS, elementBytes(b.Poseidon.MDS[i][j]))
		}
	}
	w.Endo = elementBytes(b.Endo)
	w.BaseX = elementBytes(b.Base[0])
	w.BaseY = elementBytes(b.Base[1])

	return cbor.Marshal(w)
}

// Decode parses a CBOR-encoded Bundle produced by Encode, rejecting a
// format whose major version does not match FormatVersion.
func Decode[F field.Element[F]](ops field.API[F], data []byte) (Bundle[F], error) {
	var w wireFormat
	if err := cbor.Unmarshal(data, &w); err != nil {
		return Bundle[F]{}, fmt.Errorf("constants: decode cbor: %w", err)
	}
	v, err := semver.Parse(w.Version)
	if err != nil {
		return Bundle[F]{}, fmt.Errorf("constants: parse format version %q: %w", w.Version, err)
	}
	if v.Major != FormatVersion.Major {
		return Bundle[F]{}, fmt.Errorf("constants: incompatible format version %s (expected major %d)", v, FormatVersion.Major)
	}

	var b Bundle[F]
	for _, encRow := range w.RoundConstants {
		if len(encRow) != poseidon.Width {
			return Bundle[F]{}, fmt.Errorf("constants: malformed round-constant row width %d", len(encRow))
		}
		var row [poseidon.Width]F
		for i, raw := range encRow {
			row[i] = elementFromBytes(ops, raw)
		}
		b.Poseidon.RoundConstants = append(b.Poseidon.RoundConstants, row)
	}
	if len(w.MDS) != poseidon.Width*poseidon.Width {
		return Bundle[F]{}, fmt.Errorf("constants: malformed MDS size %d", len(w.MDS))
	}
	for i := 0; i < poseidon.Width; i++ {
		for j := 0; j < poseidon.Width; j++ {
			b.Poseidon.MDS[i][j] = elementFromBytes(ops, w.MDS[i*poseidon.Width+j])
		}
	}
	b.Endo = elementFromBytes(ops, w.Endo)
	b.Base[0] = elementFromBytes(ops, w.BaseX)
	b.Base[1] = elementFromBytes(ops, w.BaseY)

	if !b.Poseidon.Validate() {
		return Bundle[F]{}, fmt.Errorf("constants: decoded %d poseidon rounds, want %d", len(b.Poseidon.RoundConstants), poseidon.TotalRounds)
	}
	return b, nil
}

// elementBytes packs an element's little-endian bits into bytes via
// bitio.Writer, one bit at a time (LSB of the stream first, matching
// BitsLE's own ordering) rather than hand-rolled shift/mask arithmetic.
func elementBytes[F field.Element[F]](e F) []byte {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, b := range e.BitsLE() {
		if err := w.WriteBool(b); err != nil {
			panic(fmt.Sprintf("constants: writing element bitstream: %v", err))
		}
	}
	if err := w.Close(); err != nil {
		panic(fmt.Sprintf("constants: closing element bitstream: %v", err))
	}
	return buf.Bytes()
}

// elementFromBytes is elementBytes' inverse. A stream shorter than
// ops.BitLen() (corrupt or truncated wire data) pads the remaining bits
// with false rather than erroring here — Decode's own shape checks
// (round count, MDS size) are what reject a malformed Bundle.
func elementFromBytes[F field.Element[F]](ops field.API[F], raw []byte) F {
	r := bitio.NewReader(bytes.NewReader(raw))
	bits := make([]bool, ops.BitLen())
	for i := range bits {
		b, err := r.ReadBool()
		if err != nil {
			break
		}
		bits[i] = b
	}
	return ops.FromBitsLE(bits)
}
