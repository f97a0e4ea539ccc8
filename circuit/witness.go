package circuit

import "github.com/kimchi-zk/circuit/field"

// Row is one witness row: the concrete value of every column.
type Row[F field.Element[F]] [Columns]F

// WitnessGenerator is the witness backend: it always invokes Var's thunk
// immediately and, on Gate, appends the row's resolved values (discarding
// Typ/Coeffs).
type WitnessGenerator[F field.Element[F]] struct {
	rows []Row[F]
}

// NewWitnessGenerator returns a WitnessGenerator optionally pre-seeded
// with public-input rows (column 0 = public value, the rest zero), ready
// for the "produce a proof" driver to append the circuit's own rows onto.
func NewWitnessGenerator[F field.Element[F]](ops field.API[F], publicInputs []F) *WitnessGenerator[F] {
	w := &WitnessGenerator[F]{rows: make([]Row[F], len(publicInputs))}
	for i, pub := range publicInputs {
		var row Row[F]
		row[0] = pub
		for c := 1; c < Columns; c++ {
			row[c] = ops.Zero()
		}
		w.rows[i] = row
	}
	return w
}

func (w *WitnessGenerator[F]) Var(thunk func() F) Var[F] {
	return witnessVar[F](thunk())
}

func (w *WitnessGenerator[F]) Gate(g GateSpec[F]) {
	var row Row[F]
	for i := 0; i < Columns; i++ {
		row[i] = g.Row[i].Value()
	}
	w.rows = append(w.rows, row)
}

func (w *WitnessGenerator[F]) CurrGateCount() int {
	return len(w.rows)
}

// Columns returns the witness as column-major vectors, the shape the
// external prover consumes.
func (w *WitnessGenerator[F]) Columns() [Columns][]F {
	var out [Columns][]F
	for c := 0; c < Columns; c++ {
		col := make([]F, len(w.rows))
		for r, row := range w.rows {
			col[r] = row[c]
		}
		out[c] = col
	}
	return out
}

// Rows exposes the row-major witness, mainly for tests that want to
// check a specific row's shape against the expected gadget layout.
func (w *WitnessGenerator[F]) Rows() []Row[F] {
	return w.rows
}
