package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LagrangePoints constructs the equispaced Lagrange nodes of the given
// degree on the cell. Nodes are generated in entity order: vertex nodes
// first, then the interior nodes of each edge (running from the edge's low
// vertex to its high vertex), then the cell-interior nodes. This ordering
// is what lets the entity-node enumeration slice the node list directly.
//
// The returned matrix has one node per row.
func LagrangePoints(cell *ReferenceCell, degree int) (*mat.Dense, error) {
	if degree < 1 {
		return nil, fmt.Errorf("lagrange points require degree >= 1, got %d", degree)
	}
	d := float64(degree)

	switch cell.Geometry {
	case Interval:
		pts := mat.NewDense(degree+1, 1, nil)
		pts.Set(0, 0, 0)
		pts.Set(1, 0, 1)
		for i := 1; i < degree; i++ {
			pts.Set(i+1, 0, float64(i)/d)
		}
		return pts, nil

	case Triangle:
		np := (degree + 1) * (degree + 2) / 2
		pts := mat.NewDense(np, 2, nil)
		row := 0
		set := func(i, j int) {
			pts.Set(row, 0, float64(i)/d)
			pts.Set(row, 1, float64(j)/d)
			row++
		}
		// Vertices 0, 1, 2
		set(0, 0)
		set(degree, 0)
		set(0, degree)
		// Edge 0 (vertex 1 -> vertex 2): i+j = degree
		for i := degree - 1; i >= 1; i-- {
			set(i, degree-i)
		}
		// Edge 1 (vertex 0 -> vertex 2): x = 0
		for j := 1; j < degree; j++ {
			set(0, j)
		}
		// Edge 2 (vertex 0 -> vertex 1): y = 0
		for i := 1; i < degree; i++ {
			set(i, 0)
		}
		// Interior
		for i := 1; i < degree; i++ {
			for j := 1; j < degree; j++ {
				if i+j < degree {
					set(i, j)
				}
			}
		}
		return pts, nil
	}
	return nil, fmt.Errorf("unsupported cell geometry %s", cell.Geometry)
}
