package circuit_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field/frfield"
)

func TestCompileSingleUseVariableSelfLoops(t *testing.T) {
	assert := require.New(t)
	sys := circuit.NewSystem[frfield.Fr]()
	ops := frfield.Ops{}

	v := sys.Var(func() frfield.Fr { return ops.Zero() })
	var row [circuit.Columns]circuit.Var[frfield.Fr]
	row[0] = v
	for i := 1; i < circuit.Columns; i++ {
		row[i] = sys.Var(func() frfield.Fr { return ops.Zero() })
	}
	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: row})

	gates := sys.Gates()
	assert.Equal(circuit.Wire{Row: 0, Col: 0}, gates[0].Wires[0], "a variable used once wires to itself")
}

func TestCompileSharedVariableFormsOneCycle(t *testing.T) {
	assert := require.New(t)
	sys := circuit.NewSystem[frfield.Fr]()
	ops := frfield.Ops{}

	shared := sys.Var(func() frfield.Fr { return ops.Zero() })
	filler := func() circuit.Var[frfield.Fr] { return sys.Var(func() frfield.Fr { return ops.Zero() }) }

	rowAt := func(col int, v circuit.Var[frfield.Fr]) [circuit.Columns]circuit.Var[frfield.Fr] {
		var row [circuit.Columns]circuit.Var[frfield.Fr]
		for i := range row {
			row[i] = filler()
		}
		row[col] = v
		return row
	}

	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: rowAt(0, shared)})
	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: rowAt(3, shared)})
	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: rowAt(7, shared)})

	gates := sys.Gates()

	cells := []circuit.Wire{{Row: 0, Col: 0}, {Row: 1, Col: 3}, {Row: 2, Col: 7}}
	visited := map[circuit.Wire]bool{}
	cur := cells[0]
	for i := 0; i < len(cells); i++ {
		assert.False(visited[cur], "cycle revisited a cell before covering all of them")
		visited[cur] = true
		cur = gates[cur.Row].Wires[cur.Col]
	}
	assert.Equal(cells[0], cur, "cycle must close back on the starting cell")
	for _, c := range cells {
		assert.True(visited[c], "cycle must cover every cell that shared the variable")
	}
}

func TestSystemAndWitnessGeneratorAgreeOnGateCount(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}

	closure := func(sys circuit.Cs[frfield.Fr]) {
		a := sys.Var(func() frfield.Fr { return ops.FromUint64(3) })
		b := sys.Var(func() frfield.Fr { return ops.FromUint64(4) })
		var row [circuit.Columns]circuit.Var[frfield.Fr]
		row[0], row[1] = a, b
		for i := 2; i < circuit.Columns; i++ {
			row[i] = sys.Var(func() frfield.Fr { return ops.Zero() })
		}
		sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: row})
	}

	sys := circuit.NewSystem[frfield.Fr]()
	closure(sys)
	w := circuit.NewWitnessGenerator[frfield.Fr](ops, nil)
	closure(w)

	assert.Equal(sys.CurrGateCount(), w.CurrGateCount())
	assert.Equal(1, sys.CurrGateCount())
}

func TestWitnessGeneratorSeedsPublicInputRows(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	pub := []frfield.Fr{ops.FromUint64(1), ops.FromUint64(2)}
	w := circuit.NewWitnessGenerator[frfield.Fr](ops, pub)

	rows := w.Rows()
	assert.Len(rows, 2)
	assert.True(rows[0][0].Equal(pub[0]))
	assert.True(rows[1][0].Equal(pub[1]))
	for c := 1; c < circuit.Columns; c++ {
		assert.True(rows[0][c].IsZero())
	}
}

func TestVarValuePanicsInCircuitMode(t *testing.T) {
	assert := require.New(t)
	sys := circuit.NewSystem[frfield.Fr]()
	v := sys.Var(func() frfield.Fr { return frfield.Ops{}.Zero() })
	assert.Panics(func() { v.Value() })
}

// TestCompileTwoUnshareVariablesEachSelfLoop checks the full Wires array
// of a two-gate circuit where nothing is shared, using cmp.Diff for a
// readable failure message over the fixed-size [Columns]Wire array
// rather than testify's per-field assertions.
func TestCompileTwoUnshareVariablesEachSelfLoop(t *testing.T) {
	sys := circuit.NewSystem[frfield.Fr]()
	ops := frfield.Ops{}
	filler := func() circuit.Var[frfield.Fr] { return sys.Var(func() frfield.Fr { return ops.Zero() }) }

	rowOf := func() [circuit.Columns]circuit.Var[frfield.Fr] {
		var row [circuit.Columns]circuit.Var[frfield.Fr]
		for i := range row {
			row[i] = filler()
		}
		return row
	}
	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: rowOf()})
	sys.Gate(circuit.GateSpec[frfield.Fr]{Typ: circuit.Generic, Row: rowOf()})

	gates := sys.Gates()
	var want [circuit.Columns]circuit.Wire
	for c := range want {
		want[c] = circuit.Wire{Row: 1, Col: uint8(c)}
	}
	if diff := cmp.Diff(want, gates[1].Wires); diff != "" {
		t.Errorf("row 1's wires mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftIsTwoToTheSizePlusOne(t *testing.T) {
	assert := require.New(t)
	ops := frfield.Ops{}
	shift := circuit.Shift[frfield.Fr](ops, 5)
	want := ops.One().Add(ops.FromUint64(1 << 5))
	assert.True(shift.Equal(want))
}
