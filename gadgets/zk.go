package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
)

// Zk appends circuit.ZKRows trailing Zero-typed rows, each column a
// fresh Variable drawn from rng in witness mode. rng is an explicit
// RandSource rather than ambient global state, so padding stays
// reproducible under a seeded RNG in tests.
func Zk[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], rng field.RandSource) {
	for i := 0; i < circuit.ZKRows; i++ {
		var row [circuit.Columns]circuit.Var[F]
		for c := range row {
			row[c] = sys.Var(func() F { return ops.Random(rng) })
		}
		sys.Gate(circuit.GateSpec[F]{Typ: circuit.Zero, Row: row, Coeffs: nil})
	}
}
