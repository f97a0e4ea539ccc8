package driver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/constants"
	"github.com/kimchi-zk/circuit/driver"
	"github.com/kimchi-zk/circuit/field/frfield"
)

// addClosure wires public[0]+public[1] into a fresh Var via gadgets.Add's
// underlying Generic-gate convention, emitting one gate regardless of
// backend — the minimal closure exercising the determinism contract
// GenerateProverIndex/Prove both rely on.
func addClosure(sys circuit.Cs[frfield.Fr], public []circuit.Var[frfield.Fr]) {
	ops := frfield.Ops{}
	sum := sys.Var(func() frfield.Fr { return public[0].Value().Add(public[1].Value()) })

	var row [circuit.Columns]circuit.Var[frfield.Fr]
	for i := range row {
		row[i] = sys.Var(func() frfield.Fr { return ops.Zero() })
	}
	row[0], row[1], row[2] = public[0], public[1], sum

	c := make([]frfield.Fr, circuit.GenericRowCoeffs)
	for i := range c {
		c[i] = ops.Zero()
	}
	c[0], c[1] = ops.One(), ops.One()
	c[2] = ops.One().Neg()

	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: row, Coeffs: c})
}

func TestGenerateProverIndexAndProveAgreeOnGateCount(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	bundle := constants.Default[frfield.Fr](ops)
	publicInputs := []frfield.Fr{ops.FromUint64(3), ops.FromUint64(4)}

	cs, err := driver.GenerateProverIndex[frfield.Fr](ops, bundle, len(publicInputs), addClosure)
	assert.NoError(err)

	cols := driver.Prove[frfield.Fr](ops, publicInputs, addClosure)

	assert.Equal(len(cs.Gates), len(cols[0]))
}

func TestGenerateProverIndexErrorsOnEmptyCircuit(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	bundle := constants.Default[frfield.Fr](ops)

	noop := func(sys circuit.Cs[frfield.Fr], public []circuit.Var[frfield.Fr]) {}
	_, err := driver.GenerateProverIndex[frfield.Fr](ops, bundle, 0, noop)
	assert.ErrorIs(err, driver.ErrNoPublicInputs)
}

func TestProveColumnsCarryPublicInputs(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	publicInputs := []frfield.Fr{ops.FromUint64(3), ops.FromUint64(4)}

	cols := driver.Prove[frfield.Fr](ops, publicInputs, addClosure)
	assert.True(cols[0][0].Equal(publicInputs[0]))
	assert.True(cols[0][1].Equal(publicInputs[1]))
}

func TestBuildAndProveMatchesSeparateCalls(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	bundle := constants.Default[frfield.Fr](ops)
	publicInputs := []frfield.Fr{ops.FromUint64(5), ops.FromUint64(6)}

	cs, cols, err := driver.BuildAndProve[frfield.Fr](ops, bundle, publicInputs, addClosure)
	assert.NoError(err)
	assert.Equal(len(cs.Gates), len(cols[0]))

	wantCs, err := driver.GenerateProverIndex[frfield.Fr](ops, bundle, len(publicInputs), addClosure)
	assert.NoError(err)
	assert.Equal(len(wantCs.Gates), len(cs.Gates))
}
