package constants

import (
	"math/big"

	"github.com/kimchi-zk/circuit/field"
	"github.com/kimchi-zk/circuit/poseidon"
)

// GenerateTestParams builds a Poseidon parameter bundle that is internally
// consistent (a genuinely-invertible MDS matrix, TotalRounds worth of
// round constants) but is not the real Mina/Pasta Poseidon parameter
// table — that table is generated offline by a constant-generation
// procedure this package only has to carry, not reproduce or derive
// security properties from.
//
// The MDS matrix uses the standard Cauchy construction
// (M[i][j] = 1/(x_i - y_j) for distinct x_i, y_j), which is always
// invertible by construction — the same technique real Poseidon
// parameter generators use — so FullRound's mixing step is never handed
// a singular matrix.
func GenerateTestParams[F field.Element[F]](ops field.API[F]) poseidon.Params[F] {
	var mds [poseidon.Width][poseidon.Width]F
	for i := 0; i < poseidon.Width; i++ {
		xi := ops.FromUint64(uint64(i))
		for j := 0; j < poseidon.Width; j++ {
			yj := ops.FromUint64(uint64(poseidon.Width + j))
			diff := xi.Sub(yj)
			inv, ok := diff.Inverse()
			if !ok {
				panic("constants: Cauchy MDS probe collided, x_i == y_j")
			}
			mds[i][j] = inv
		}
	}

	rc := make([][poseidon.Width]F, poseidon.TotalRounds)
	// Deterministic, reproducible "random-looking" constants: round r,
	// column c gets seed^(r*Width+c+1) for a fixed small seed, i.e. a
	// power sequence of a non-trivial element. Not cryptographically
	// generated (no preimage-resistance claim is made or needed here),
	// only shaped correctly and distinct from zero/each other.
	seed := ops.FromUint64(5)
	for r := 0; r < poseidon.TotalRounds; r++ {
		for c := 0; c < poseidon.Width; c++ {
			exp := big.NewInt(int64(r*poseidon.Width + c + 1))
			rc[r][c] = seed.Pow(exp)
		}
	}

	return poseidon.Params[F]{RoundConstants: rc, MDS: mds}
}
