package circuit

import "github.com/kimchi-zk/circuit/field"

// compile converts a GateSpec stream into a wired CircuitGate list via a
// single-pass two-map construction. For every cell (row, col) it tracks,
// per variable index, the first cell that mentioned it and the
// most-recently-visited cell that mentioned it; visiting a cell links it
// back to the previous occurrence (or, for the first occurrence,
// temporarily to itself), and a final pass closes each variable's cycle
// by pointing its first cell at its last. The result is one disjoint
// permutation cycle per variable, not a union-find forest: each cell must
// point at exactly one other cell so the cycle can be walked directly
// without a find operation.
func compile[F field.Element[F]](specs []GateSpec[F]) []CircuitGate[F] {
	firstSeen := make(map[uint32]Wire, len(specs)*2)
	mostRecent := make(map[uint32]Wire, len(specs)*2)

	gates := make([]CircuitGate[F], len(specs))
	for row, spec := range specs {
		var wires [Columns]Wire
		for col := 0; col < Columns; col++ {
			v := spec.Row[col].Index
			curr := Wire{Row: uint32(row), Col: uint8(col)}

			if prev, ok := mostRecent[v]; ok {
				wires[col] = prev
			} else {
				firstSeen[v] = curr
				wires[col] = curr
			}
			mostRecent[v] = curr
		}
		gates[row] = CircuitGate[F]{
			Typ:    spec.Typ,
			Coeffs: spec.Coeffs,
			Wires:  wires,
		}
	}

	for v, first := range firstSeen {
		last := mostRecent[v]
		gates[first.Row].Wires[first.Col] = last
	}

	return gates
}
