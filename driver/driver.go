// Package driver composes the circuit and witness backends into the two
// top-level entry points: building a prover index from a user closure,
// and producing a witness trace for a specific input. Logging uses
// structured zerolog (github.com/rs/zerolog) events rather than plain
// stdout prints.
package driver

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kimchi-zk/circuit/circuit"
	"github.com/kimchi-zk/circuit/constants"
	"github.com/kimchi-zk/circuit/field"
)

// Log is the package-level logger, a console writer by default. Callers
// may reassign it to redirect or restructure output.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// ErrNoPublicInputs is returned by GenerateProverIndex when called with
// zero public inputs and a closure that also emits no gates — a circuit
// with no gates cannot be indexed.
var ErrNoPublicInputs = errors.New("driver: circuit has no public input rows and emitted no gates")

// ConstraintSystem is the shaped input an external constraint-system
// constructor (gates, lookups=[], runtime=None, poseidon_params, public)
// consumes. This package only shapes that call's inputs; the actual
// constraint-system/prover-index/proof construction is an external
// collaborator outside this frontend.
type ConstraintSystem[F field.Element[F]] struct {
	Gates        []circuit.CircuitGate[F]
	NumPublic    int
	PoseidonParams constants.Bundle[F]
}

// Closure is the user-supplied circuit description, parameterised over
// the backend Cs[F] is instantiated with. Both backends must allocate
// Vars and emit gates in identical order when run against the same
// closure, so it receives the pre-allocated public-input Variables up
// front, ensuring both backends see the same index-to-public-input
// mapping before any closure-allocated cell exists.
type Closure[F field.Element[F]] func(sys circuit.Cs[F], public []circuit.Var[F])

// GenerateProverIndex builds an empty circuit backend, emits one generic
// gate per public input (coefficients [1,0,...,0], selecting only the
// left cell), runs closure against it, compiles the result, and returns
// the ConstraintSystem the external prover-index constructor consumes.
func GenerateProverIndex[F field.Element[F]](ops field.API[F], bundle constants.Bundle[F], numPublic int, closure Closure[F]) (ConstraintSystem[F], error) {
	sys := circuit.NewSystem[F]()

	public := make([]circuit.Var[F], numPublic)
	for i := range public {
		v := sys.Var(func() F { return ops.Zero() })
		public[i] = v

		row := fillerRow(sys, ops)
		row[0] = v
		sys.Gate(circuit.GateSpec[F]{Typ: circuit.Generic, Row: row, Coeffs: publicInputCoeffs(ops)})
	}

	closure(sys, public)

	if sys.CurrGateCount() == 0 {
		return ConstraintSystem[F]{}, ErrNoPublicInputs
	}

	gates := sys.Gates()
	Log.Debug().Int("gates", len(gates)).Int("variables", sys.NumVariables()).Msg("compiled circuit")

	return ConstraintSystem[F]{
		Gates:          gates,
		NumPublic:      numPublic,
		PoseidonParams: bundle,
	}, nil
}

// Prove constructs a witness backend seeded with publicInputs, runs
// closure against it, and returns the column-major trace the external
// prover consumes. The Variables passed to closure carry publicInputs'
// concrete values but the zero index convention witness mode uses
// throughout.
func Prove[F field.Element[F]](ops field.API[F], publicInputs []F, closure Closure[F]) [circuit.Columns][]F {
	w := circuit.NewWitnessGenerator[F](ops, publicInputs)

	public := make([]circuit.Var[F], len(publicInputs))
	for i, v := range publicInputs {
		public[i] = w.Var(func() F { return v })
	}

	closure(w, public)

	cols := w.Columns()
	Log.Debug().Int("rows", len(w.Rows())).Int("public_inputs", len(publicInputs)).Msg("generated witness")
	return cols
}

// BuildAndProve runs GenerateProverIndex and Prove concurrently via
// errgroup — the two closure invocations run against independent
// builders with no shared state, so they have no data dependency on each
// other — and returns both results, or the first error encountered.
func BuildAndProve[F field.Element[F]](ops field.API[F], bundle constants.Bundle[F], publicInputs []F, closure Closure[F]) (ConstraintSystem[F], [circuit.Columns][]F, error) {
	var cs ConstraintSystem[F]
	var cols [circuit.Columns][]F

	var g errgroup.Group
	g.Go(func() error {
		var err error
		cs, err = GenerateProverIndex(ops, bundle, len(publicInputs), closure)
		if err != nil {
			return fmt.Errorf("driver: building prover index: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		cols = Prove(ops, publicInputs, closure)
		return nil
	})

	if err := g.Wait(); err != nil {
		return ConstraintSystem[F]{}, [circuit.Columns][]F{}, err
	}
	return cs, cols, nil
}

func fillerRow[F field.Element[F]](sys circuit.Cs[F], ops field.API[F]) [circuit.Columns]circuit.Var[F] {
	var row [circuit.Columns]circuit.Var[F]
	for i := range row {
		row[i] = sys.Var(func() F { return ops.Zero() })
	}
	return row
}

func publicInputCoeffs[F field.Element[F]](ops field.API[F]) []F {
	c := make([]F, circuit.GenericRowCoeffs)
	for i := range c {
		c[i] = ops.Zero()
	}
	c[0] = ops.One()
	return c
}
