package poseidon

import "github.com/kimchi-zk/circuit/field"

// FullRound performs one full Poseidon round in place on state:
//
//	state[i] <- state[i]^Alpha           (S-box, applied to every cell: "full" round)
//	state     <- MDS * state + rc[round]
//
// round indexes into params.RoundConstants (not a row offset — callers in
// package gadgets track the row/round-within-row bookkeeping themselves).
func FullRound[F field.Element[F]](ops field.API[F], params Params[F], state *[Width]F, round int) {
	var boxed [Width]F
	for i := range state {
		boxed[i] = sbox(ops, state[i])
	}

	rc := params.RoundConstants[round]
	for i := 0; i < Width; i++ {
		acc := ops.Zero()
		for j := 0; j < Width; j++ {
			acc = acc.Add(params.MDS[i][j].Mul(boxed[j]))
		}
		state[i] = acc.Add(rc[i])
	}
}

// sbox raises x to the Alpha-th power by repeated squaring; Alpha=7 is
// fixed, so this is a short, unrolled chain rather than a general Pow
// call (keeping the hot path allocation-free and branch-free).
func sbox[F field.Element[F]](ops field.API[F], x F) F {
	_ = ops
	x2 := x.Square()
	x4 := x2.Square()
	x3 := x2.Mul(x)
	return x4.Mul(x3)
}
