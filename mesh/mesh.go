// Package mesh provides simplicial meshes of the unit interval and unit
// square with entity enumeration, adjacency, geometric Jacobians and
// boundary classification.
package mesh

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notargets/gocfd/utils"
)

// Mesh is a conforming simplicial mesh. Each cell's vertex list is stored
// in ascending global order, which fixes a consistent direction along every
// shared edge: both cells incident to an edge traverse it from the lower
// global vertex to the higher one. Function space numbering relies on this.
type Mesh struct {
	Dim int

	// Vertex coordinates per axis. VY is empty for 1D meshes.
	VX, VY utils.Vector

	// CellVertices[c] lists the global vertices of cell c, ascending.
	CellVertices [][]int

	// Edge data, 2D only. EdgeVertices[e] is the ascending vertex pair of
	// edge e; CellEdges[c][i] is the global edge opposite local vertex i of
	// cell c; EdgeCells[e] lists the cells incident to edge e.
	EdgeVertices [][]int
	CellEdges    [][]int
	EdgeCells    [][]int
}

// NewUnitIntervalMesh builds a mesh of n equal cells on [0,1].
func NewUnitIntervalMesh(n int) (*Mesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("unit interval mesh requires at least 1 cell, got %d", n)
	}
	vx := make([]float64, n+1)
	for i := range vx {
		vx[i] = float64(i) / float64(n)
	}
	cells := make([][]int, n)
	for c := range cells {
		cells[c] = []int{c, c + 1}
	}
	return &Mesh{
		Dim:          1,
		VX:           utils.NewVector(n+1, vx),
		CellVertices: cells,
	}, nil
}

// NewUnitSquareMesh builds a mesh of the unit square from an nx by ny grid
// of squares, each split into two triangles along its diagonal.
func NewUnitSquareMesh(nx, ny int) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("unit square mesh requires positive divisions, got %dx%d", nx, ny)
	}
	nvx, nvy := nx+1, ny+1
	vx := make([]float64, nvx*nvy)
	vy := make([]float64, nvx*nvy)
	for j := 0; j < nvy; j++ {
		for i := 0; i < nvx; i++ {
			v := j*nvx + i
			vx[v] = float64(i) / float64(nx)
			vy[v] = float64(j) / float64(ny)
		}
	}

	cells := make([][]int, 0, 2*nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v00 := j*nvx + i
			v10 := v00 + 1
			v01 := v00 + nvx
			v11 := v01 + 1
			// Diagonal from v00 to v11.
			cells = append(cells, sortedCell(v00, v10, v11), sortedCell(v00, v01, v11))
		}
	}

	m := &Mesh{
		Dim:          2,
		VX:           utils.NewVector(len(vx), vx),
		VY:           utils.NewVector(len(vy), vy),
		CellVertices: cells,
	}
	m.buildEdges()
	return m, nil
}

func sortedCell(vs ...int) []int {
	sort.Ints(vs)
	return vs
}

// buildEdges enumerates the mesh edges and fills CellEdges and EdgeCells.
// Local edge i of a cell is the edge opposite local vertex i, matching the
// reference triangle topology; with ascending cell vertex lists every local
// edge pair is already ascending.
func (m *Mesh) buildEdges() {
	edgeID := make(map[[2]int]int)
	m.CellEdges = make([][]int, len(m.CellVertices))
	for c, verts := range m.CellVertices {
		m.CellEdges[c] = make([]int, 3)
		for i := 0; i < 3; i++ {
			var pair [2]int
			switch i {
			case 0:
				pair = [2]int{verts[1], verts[2]}
			case 1:
				pair = [2]int{verts[0], verts[2]}
			case 2:
				pair = [2]int{verts[0], verts[1]}
			}
			e, ok := edgeID[pair]
			if !ok {
				e = len(m.EdgeVertices)
				edgeID[pair] = e
				m.EdgeVertices = append(m.EdgeVertices, []int{pair[0], pair[1]})
				m.EdgeCells = append(m.EdgeCells, nil)
			}
			m.CellEdges[c][i] = e
			m.EdgeCells[e] = append(m.EdgeCells[e], c)
		}
	}
}

// NumVertices returns the number of mesh vertices.
func (m *Mesh) NumVertices() int { return len(m.VX.DataP) }

// NumCells returns the number of cells.
func (m *Mesh) NumCells() int { return len(m.CellVertices) }

// NumEdges returns the number of edges (zero for 1D meshes).
func (m *Mesh) NumEdges() int { return len(m.EdgeVertices) }

// EntityCounts returns the number of entities of each dimension, indexed by
// dimension.
func (m *Mesh) EntityCounts() []int {
	if m.Dim == 1 {
		return []int{m.NumVertices(), m.NumCells()}
	}
	return []int{m.NumVertices(), m.NumEdges(), m.NumCells()}
}

// Vertex returns the coordinates of vertex v.
func (m *Mesh) Vertex(v int) []float64 {
	if m.Dim == 1 {
		return []float64{m.VX.DataP[v]}
	}
	return []float64{m.VX.DataP[v], m.VY.DataP[v]}
}

// Adjacency returns the adjacency table from entities of dimension d1 to
// entities of dimension d2, for d1 >= d2. Row i lists the global d2
// entities incident to d1 entity i, in local entity order.
func (m *Mesh) Adjacency(d1, d2 int) ([][]int, error) {
	switch {
	case d1 == m.Dim && d2 == 0:
		return m.CellVertices, nil
	case d1 == m.Dim && d2 == m.Dim-1 && m.Dim == 2:
		return m.CellEdges, nil
	case d1 == 1 && d2 == 0 && m.Dim == 2:
		return m.EdgeVertices, nil
	case d1 == d2:
		n := m.EntityCounts()[d1]
		id := make([][]int, n)
		for i := range id {
			id[i] = []int{i}
		}
		return id, nil
	}
	return nil, fmt.Errorf("no adjacency from dimension %d to %d on a %dD mesh", d1, d2, m.Dim)
}

// BoundaryEntities returns the global indices of boundary entities of
// dimension d: facets incident to a single cell, and for d=0 the vertices
// of those facets.
func (m *Mesh) BoundaryEntities(d int) ([]int, error) {
	if d < 0 || d >= m.Dim {
		return nil, fmt.Errorf("boundary entities have dimension < %d, got %d", m.Dim, d)
	}

	if m.Dim == 1 {
		// Facets are the vertices themselves.
		count := make([]int, m.NumVertices())
		for _, verts := range m.CellVertices {
			for _, v := range verts {
				count[v]++
			}
		}
		var out []int
		for v, c := range count {
			if c == 1 {
				out = append(out, v)
			}
		}
		return out, nil
	}

	var bEdges []int
	for e, cells := range m.EdgeCells {
		if len(cells) == 1 {
			bEdges = append(bEdges, e)
		}
	}
	if d == 1 {
		return bEdges, nil
	}
	seen := make(map[int]bool)
	var verts []int
	for _, e := range bEdges {
		for _, v := range m.EdgeVertices[e] {
			if !seen[v] {
				seen[v] = true
				verts = append(verts, v)
			}
		}
	}
	sort.Ints(verts)
	return verts, nil
}

func (m *Mesh) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mesh(dim=%d, vertices=%d", m.Dim, m.NumVertices()))
	if m.Dim == 2 {
		sb.WriteString(fmt.Sprintf(", edges=%d", m.NumEdges()))
	}
	sb.WriteString(fmt.Sprintf(", cells=%d)", m.NumCells()))
	return sb.String()
}
