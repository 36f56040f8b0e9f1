package element

// lagrangeEntityNodes associates the equispaced Lagrange nodes of the given
// degree with the cell entities. Because LagrangePoints generates nodes in
// entity order the association just slices consecutive index ranges:
// one node per vertex, degree-1 per edge, the remainder interior.
func lagrangeEntityNodes(cell *ReferenceCell, degree int) [][][]int {
	total := basisSize(cell, degree)
	next := 0
	take := func(n int) []int {
		ids := make([]int, n)
		for k := range ids {
			ids[k] = next
			next++
		}
		return ids
	}

	entityNodes := make([][][]int, cell.Dim+1)
	entityNodes[0] = make([][]int, cell.Dim+1)
	for i := 0; i <= cell.Dim; i++ {
		entityNodes[0][i] = take(1)
	}
	if cell.Dim > 1 {
		entityNodes[1] = make([][]int, cell.EntityCount(1))
		for i := range entityNodes[1] {
			entityNodes[1][i] = take(degree - 1)
		}
	}
	entityNodes[cell.Dim] = [][]int{take(total - next)}
	return entityNodes
}

// vectorEntityNodes renumbers a scalar entity-node association for the
// vector element with d values per scalar node, where scalar node j
// becomes dofs d*j .. d*j+d-1.
func vectorEntityNodes(scalar [][][]int, d int) [][][]int {
	out := make([][][]int, len(scalar))
	for dim, ents := range scalar {
		out[dim] = make([][]int, len(ents))
		for i, nodes := range ents {
			dofs := make([]int, 0, d*len(nodes))
			for _, n := range nodes {
				for c := 0; c < d; c++ {
					dofs = append(dofs, d*n+c)
				}
			}
			out[dim][i] = dofs
		}
	}
	return out
}
