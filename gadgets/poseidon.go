package gadgets

import (
	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/poseidon"
)

// Poseidon applies the fixed-width Poseidon permutation to a 3-element
// state, emitting poseidon.RowsPerHash = 11 Poseidon gate rows of
// poseidon.RoundsPerRow = 5 rounds each. Each row's coefficients are its
// 15 round constants (flattened rc[offset+k][m] for k in [0,5), m in
// [0,3)); its cells hold the initial state (cols 0-2) followed by the
// states after the row's rounds 4, 1, 2, 3 (cols 3-14) — the row's fifth
// round output has no cell of its own and is what seeds the next row's
// cols 0-2. A trailing Zero row pins the final state.
func Poseidon[F field.Element[F]](sys circuit.Cs[F], ops field.API[F], params poseidon.Params[F], input [poseidon.Width]circuit.Var[F]) [poseidon.Width]circuit.Var[F] {
	states := make([][poseidon.Width]circuit.Var[F], 1, poseidon.RowsPerHash*poseidon.RoundsPerRow+1)
	states[0] = input

	for row := 0; row < poseidon.RowsPerHash; row++ {
		offset := row * poseidon.RoundsPerRow

		for k := 0; k < poseidon.RoundsPerRow; k++ {
			roundIdx := offset + k
			prev := states[len(states)-1]

			var cached *[poseidon.Width]F
			var next [poseidon.Width]circuit.Var[F]
			for col := 0; col < poseidon.Width; col++ {
				c := col
				next[col] = sys.Var(func() F {
					if cached == nil {
						var acc [poseidon.Width]F
						for i := 0; i < poseidon.Width; i++ {
							acc[i] = prev[i].Value()
						}
						poseidon.FullRound(ops, params, &acc, roundIdx)
						cached = &acc
					}
					return cached[c]
				})
			}
			states = append(states, next)
		}

		var row15 [circuit.Columns]circuit.Var[F]
		s0 := states[offset]
		s1 := states[offset+1]
		s2 := states[offset+2]
		s3 := states[offset+3]
		s4 := states[offset+4]
		row15[0], row15[1], row15[2] = s0[0], s0[1], s0[2]
		row15[3], row15[4], row15[5] = s4[0], s4[1], s4[2]
		row15[6], row15[7], row15[8] = s1[0], s1[1], s1[2]
		row15[9], row15[10], row15[11] = s2[0], s2[1], s2[2]
		row15[12], row15[13], row15[14] = s3[0], s3[1], s3[2]

		coeffs := make([]F, 15)
		for i := 0; i < 15; i++ {
			coeffs[i] = params.RoundConstants[offset+i/poseidon.Width][i%poseidon.Width]
		}

		sys.Gate(circuit.GateSpec[F]{Typ: circuit.Poseidon, Row: row15, Coeffs: coeffs})
	}

	final := states[len(states)-1]
	var trailing [circuit.Columns]circuit.Var[F]
	for i := range trailing {
		trailing[i] = sys.Var(func() F { return ops.Zero() })
	}
	trailing[0], trailing[1], trailing[2] = final[0], final[1], final[2]
	sys.Gate(circuit.GateSpec[F]{Typ: circuit.Zero, Row: trailing, Coeffs: nil})

	return final
}
