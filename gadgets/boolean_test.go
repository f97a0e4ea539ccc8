package gadgets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field/frfield"
	"github.com/kimchi-zk/circuit/gadgets"
)

func TestEqualsIndicator(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}

	cases := []struct {
		a, b uint64
		want bool
	}{
		{5, 5, true},
		{5, 6, false},
		{0, 0, true},
	}

	for _, c := range cases {
		w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
		va := witnessVars(w, c.a)[0]
		vb := witnessVars(w, c.b)[0]
		b := gadgets.Equals(w, ops, va, vb)
		if c.want {
			assert.True(b.Value().IsOne(), "equals(%d,%d) should be 1", c.a, c.b)
		} else {
			assert.True(b.Value().IsZero(), "equals(%d,%d) should be 0", c.a, c.b)
		}
	}
}

// TestEqualsRowCount verifies the full row count: one implicit Sub row,
// one Constant row for the `one` cell, and the three explicit rows.
func TestEqualsRowCount(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	sys := circuit.NewSystem[frfield.Fr]()
	a := sys.Var(func() frfield.Fr { return ops.Zero() })
	b := sys.Var(func() frfield.Fr { return ops.Zero() })

	before := sys.CurrGateCount()
	gadgets.Equals(sys, ops, a, b)
	after := sys.CurrGateCount()

	// Sub (1) + Constant(one) (1) + the three Equals rows (3) = 5.
	assert.Equal(5, after-before)
}
