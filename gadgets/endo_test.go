package gadgets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/curve"
	"github.com/kimchi-zk/circuit/field/frfield"
	"github.com/kimchi-zk/circuit/gadgets"
)

// endoQuarter builds the per-bit-pair point Q ∈ {±T, ±φT} that one half of
// an EndoMul row selects: b1/b3 pick x=xt vs x=endo·xt, b2/b4 flip the
// sign of y.
func endoQuarter(ops frfield.Ops, endo frfield.Fr, t curve.Point[frfield.Fr], bx, by bool) curve.Point[frfield.Fr] {
	x := t.X
	if bx {
		x = endo.Mul(t.X)
	}
	y := t.Y.Neg()
	if by {
		y = t.Y
	}
	return curve.Point[frfield.Fr]{X: x, Y: y}
}

// endoRowReference computes one EndoMul row's accumulator update the plain
// way — Add(Double(acc), Q1) then Add(Double(·), Q2) — which is
// algebraically identical to the row's two-slope "2P+Q" shortcut (Endo's
// s1/s2 and s3/s4 pairs), giving an independent path to the same value.
func endoRowReference(ops frfield.Ops, endo frfield.Fr, t, acc curve.Point[frfield.Fr], b1, b2, b3, b4 bool) curve.Point[frfield.Fr] {
	q1 := endoQuarter(ops, endo, t, b1, b2)
	r := curve.Add(ops, curve.Double(ops, acc), q1)
	q2 := endoQuarter(ops, endo, t, b3, b4)
	return curve.Add(ops, curve.Double(ops, r), q2)
}

func TestEndoSingleRowMatchesReference(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	params := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: params.Base[0], Y: params.Base[1]}

	// Seed accumulator: acc = Double(AddGroup(Scale(endo,xt)+T, T)), matching
	// gadgets.Endo's own seed computation.
	phiP := curve.Point[frfield.Fr]{X: params.Endo.Mul(base.X), Y: base.Y}
	phiPP1 := curve.Add(ops, phiP, base)
	seed := curve.Double(ops, phiPP1)

	// Bits MSB-first for the 4-bit nibble 0b1011 = 11.
	b1, b2, b3, b4 := true, false, true, true
	want := endoRowReference(ops, params.Endo, base, seed, b1, b2, b3, b4)

	w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
	zero := elementVar(w, ops.Zero())
	xt, yt := elementVar(w, base.X), elementVar(w, base.Y)

	scalarValue := ops.Zero()
	for _, b := range []bool{b1, b2, b3, b4} {
		scalarValue = scalarValue.Double()
		if b {
			scalarValue = scalarValue.Add(ops.One())
		}
	}
	scalar := elementVar(w, scalarValue)

	resX, resY := gadgets.Endo(w, ops, zero, params.Endo, xt, yt, scalar, 4)
	assert.True(resX.Value().Equal(want.X))
	assert.True(resY.Value().Equal(want.Y))
}

// TestEndoTwoRowsThreadsAccumulator checks that a second row folds in the
// next nibble starting from the first row's output accumulator, i.e. that
// Endo's row-to-row threading (not just a single row's arithmetic) is wired
// correctly.
func TestEndoTwoRowsThreadsAccumulator(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	params := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: params.Base[0], Y: params.Base[1]}

	phiP := curve.Point[frfield.Fr]{X: params.Endo.Mul(base.X), Y: base.Y}
	phiPP1 := curve.Add(ops, phiP, base)
	seed := curve.Double(ops, phiPP1)

	bits := []bool{true, false, true, true, false, true, false, false}
	row1 := endoRowReference(ops, params.Endo, base, seed, bits[0], bits[1], bits[2], bits[3])
	want := endoRowReference(ops, params.Endo, base, row1, bits[4], bits[5], bits[6], bits[7])

	w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
	zero := elementVar(w, ops.Zero())
	xt, yt := elementVar(w, base.X), elementVar(w, base.Y)

	scalarValue := ops.Zero()
	for _, b := range bits {
		scalarValue = scalarValue.Double()
		if b {
			scalarValue = scalarValue.Add(ops.One())
		}
	}
	scalar := elementVar(w, scalarValue)

	resX, resY := gadgets.Endo(w, ops, zero, params.Endo, xt, yt, scalar, 8)
	assert.True(resX.Value().Equal(want.X))
	assert.True(resY.Value().Equal(want.Y))
}
