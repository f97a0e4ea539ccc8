package gadgets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/curve"
	"github.com/kimchi-zk/circuit/field/frfield"
	"github.com/kimchi-zk/circuit/gadgets"
)

func elementVar(w *circuit.WitnessGenerator[frfield.Fr], v frfield.Fr) circuit.Var[frfield.Fr] {
	return w.Var(func() frfield.Fr { return v })
}

func TestAddGroupMatchesReferenceAddition(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	params := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: params.Base[0], Y: params.Base[1]}
	q := curve.Add(ops, base, curve.Double(ops, base)) // 3*base, distinct x from base

	w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
	zero := elementVar(w, ops.Zero())
	x1, y1 := elementVar(w, base.X), elementVar(w, base.Y)
	x2, y2 := elementVar(w, q.X), elementVar(w, q.Y)

	x3, y3 := gadgets.AddGroup(w, ops, zero, x1, y1, x2, y2)

	want := curve.Add(ops, base, q)
	assert.True(x3.Value().Equal(want.X))
	assert.True(y3.Value().Equal(want.Y))
}

func TestDoubleMatchesReferenceDouble(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	params := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: params.Base[0], Y: params.Base[1]}

	w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
	zero := elementVar(w, ops.Zero())
	x1, y1 := elementVar(w, base.X), elementVar(w, base.Y)

	x3, y3 := gadgets.Double(w, ops, zero, x1, y1)

	want := curve.Double(ops, base)
	assert.True(x3.Value().Equal(want.X))
	assert.True(y3.Value().Equal(want.Y))
}

func TestAssertAddGroupAcceptsCorrectSum(t *testing.T) {
	ops := frfield.Ops{}
	params := curve.DefaultParams(ops)
	base := curve.Point[frfield.Fr]{X: params.Base[0], Y: params.Base[1]}
	q := curve.Double(ops, base)
	sum := curve.Add(ops, base, q)

	w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
	zero := elementVar(w, ops.Zero())
	x1, y1 := elementVar(w, base.X), elementVar(w, base.Y)
	x2, y2 := elementVar(w, q.X), elementVar(w, q.Y)
	x3, y3 := elementVar(w, sum.X), elementVar(w, sum.Y)

	// Should not panic: the supplied (x3,y3) genuinely is the sum.
	gadgets.AssertAddGroup(w, ops, zero, x1, y1, x2, y2, x3, y3)
}
