// Package fespace builds global function spaces from a mesh and a finite
// element, numbering degrees of freedom by mesh entity so that neighbouring
// cells agree on their shared dofs.
package fespace

import (
	"fmt"

	"github.com/notargets/CGKernel/element"
	"github.com/notargets/CGKernel/mesh"
)

// FunctionSpace couples a mesh with a finite element. Global dofs are
// grouped by entity dimension: all vertex dofs first, then edge dofs, then
// cell dofs, with entity e of dimension d owning the contiguous block
// starting at offset[d] + e*dofsPerEntity[d]. Shared dofs between
// neighbouring cells coincide because mesh edges and reference edges both
// run from their low vertex to their high vertex.
type FunctionSpace struct {
	Mesh *mesh.Mesh
	Elem element.Element

	// CellDofs[c][i] is the global dof of local dof i on cell c.
	CellDofs [][]int

	offsets []int
	numDofs int
}

// New builds the function space for the element over the mesh.
func New(m *mesh.Mesh, el element.Element) (*FunctionSpace, error) {
	if el.RefCell().Dim != m.Dim {
		return nil, fmt.Errorf("element cell dimension %d does not match mesh dimension %d",
			el.RefCell().Dim, m.Dim)
	}
	if el.EntityDofs() == nil {
		return nil, fmt.Errorf("element %s carries no entity association", el.Name())
	}

	counts := m.EntityCounts()
	dpe := el.DofsPerEntity()

	fs := &FunctionSpace{
		Mesh:    m,
		Elem:    el,
		offsets: make([]int, m.Dim+1),
	}
	for d := 0; d <= m.Dim; d++ {
		fs.offsets[d] = fs.numDofs
		fs.numDofs += counts[d] * dpe[d]
	}

	entityDofs := el.EntityDofs()
	fs.CellDofs = make([][]int, m.NumCells())
	for c := range fs.CellDofs {
		dofs := make([]int, el.Np())
		for d := 0; d <= m.Dim; d++ {
			adj, err := m.Adjacency(m.Dim, d)
			if err != nil {
				return nil, err
			}
			for i, local := range entityDofs[d] {
				e := adj[c][i]
				base := fs.offsets[d] + e*dpe[d]
				for k, li := range local {
					dofs[li] = base + k
				}
			}
		}
		fs.CellDofs[c] = dofs
	}
	return fs, nil
}

// NumDofs returns the global number of degrees of freedom.
func (fs *FunctionSpace) NumDofs() int { return fs.numDofs }

// EntityDofRange returns the global dof block of entity e of dimension d.
func (fs *FunctionSpace) EntityDofRange(d, e int) (lo, hi int) {
	dpe := fs.Elem.DofsPerEntity()[d]
	lo = fs.offsets[d] + e*dpe
	return lo, lo + dpe
}

// BoundaryDofs returns the sorted global dofs supported on the mesh
// boundary: every dof attached to a boundary entity of dimension < Dim.
func (fs *FunctionSpace) BoundaryDofs() ([]int, error) {
	var out []int
	for d := 0; d < fs.Mesh.Dim; d++ {
		ents, err := fs.Mesh.BoundaryEntities(d)
		if err != nil {
			return nil, err
		}
		for _, e := range ents {
			lo, hi := fs.EntityDofRange(d, e)
			for g := lo; g < hi; g++ {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

func (fs *FunctionSpace) String() string {
	return fmt.Sprintf("FunctionSpace(%s, %s, dofs=%d)", fs.Mesh, fs.Elem.Name(), fs.numDofs)
}
