package element

import (
	"fmt"
	"math"
)

type CellGeometry uint8

const (
	Interval CellGeometry = iota
	Triangle
)

func (g CellGeometry) String() string {
	switch g {
	case Interval:
		return "Interval"
	case Triangle:
		return "Triangle"
	}
	return "Unknown"
}

// ReferenceCell describes the topology and geometry of a reference cell.
// Topology[d][i] lists the vertices incident to entity i of dimension d,
// always in ascending vertex order so that shared entities of adjacent
// cells are traversed in the same direction.
type ReferenceCell struct {
	Geometry CellGeometry
	Dim      int
	Vertices [][]float64
	Topology [][][]int
}

// ReferenceInterval is the unit interval [0,1].
var ReferenceInterval = &ReferenceCell{
	Geometry: Interval,
	Dim:      1,
	Vertices: [][]float64{{0}, {1}},
	Topology: [][][]int{
		{{0}, {1}},
		{{0, 1}},
	},
}

// ReferenceTriangle is the unit triangle with vertices (0,0), (1,0), (0,1).
// Edge i is the edge opposite vertex i.
var ReferenceTriangle = &ReferenceCell{
	Geometry: Triangle,
	Dim:      2,
	Vertices: [][]float64{{0, 0}, {1, 0}, {0, 1}},
	Topology: [][][]int{
		{{0}, {1}, {2}},
		{{1, 2}, {0, 2}, {0, 1}},
		{{0, 1, 2}},
	},
}

// EntityCount returns the number of entities of dimension d.
func (rc *ReferenceCell) EntityCount(d int) int {
	return len(rc.Topology[d])
}

// Volume returns the measure of the reference cell.
func (rc *ReferenceCell) Volume() float64 {
	switch rc.Geometry {
	case Interval:
		return 1
	case Triangle:
		return 0.5
	}
	return 0
}

// barycentric returns the barycentric coordinates of x with respect to the
// cell vertices. Valid for the simplex cells defined above.
func (rc *ReferenceCell) barycentric(x []float64) []float64 {
	lam := make([]float64, rc.Dim+1)
	sum := 0.0
	for d := 0; d < rc.Dim; d++ {
		lam[d+1] = x[d]
		sum += x[d]
	}
	lam[0] = 1 - sum
	return lam
}

// PointOnEntity reports whether x lies on entity (d, i) of the cell, to
// within tol. A point is on an entity when the barycentric coordinates of
// all vertices not incident to the entity vanish and the rest are
// non-negative.
func (rc *ReferenceCell) PointOnEntity(d, i int, x []float64, tol float64) bool {
	lam := rc.barycentric(x)
	incident := make([]bool, rc.Dim+1)
	for _, v := range rc.Topology[d][i] {
		incident[v] = true
	}
	for v, l := range lam {
		if !incident[v] && math.Abs(l) > tol {
			return false
		}
		if l < -tol {
			return false
		}
	}
	return true
}

func (rc *ReferenceCell) String() string {
	return fmt.Sprintf("ReferenceCell(%s, dim=%d)", rc.Geometry, rc.Dim)
}
