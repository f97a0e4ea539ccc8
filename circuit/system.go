package circuit

import "github.com/kimchi-zk/circuit/field"

// System is the circuit backend: it enumerates fresh variable indices and
// collects GateSpecs, never invoking any Var thunk.
type System[F field.Element[F]] struct {
	nextVariable uint32
	gates        []GateSpec[F]
}

// NewSystem returns an empty System, ready to have a user closure run
// against it.
func NewSystem[F field.Element[F]]() *System[F] {
	return &System[F]{}
}

func (s *System[F]) Var(_ func() F) Var[F] {
	v := circuitVar[F](s.nextVariable)
	s.nextVariable++
	return v
}

func (s *System[F]) Gate(g GateSpec[F]) {
	s.gates = append(s.gates, g)
}

func (s *System[F]) CurrGateCount() int {
	return len(s.gates)
}

// Gates compiles the accumulated GateSpec stream into a wired gate list.
// See compiler.go for the algorithm.
func (s *System[F]) Gates() []CircuitGate[F] {
	return compile(s.gates)
}

// NumVariables returns how many distinct variable indices were allocated.
func (s *System[F]) NumVariables() int {
	return int(s.nextVariable)
}
