package curve

import "github.com/kimchi-zk/circuit/field"

// Cycle pairs an "inner" field (the one the circuit itself is built over)
// with an "outer" field (the one the resulting proof is verified in).
// Recursive verification itself is out of scope; this type is only a
// typed pairing of the two fields' APIs. No package in this module takes
// a Cycle: driver.GenerateProverIndex and driver.Prove are generic over F
// directly.
type Cycle[Inner field.Element[Inner], Outer field.Element[Outer]] struct {
	Inner field.API[Inner]
	Outer field.API[Outer]
}
